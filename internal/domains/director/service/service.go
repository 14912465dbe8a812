package service

import (
	"context"
	"errors"

	"movies-api/internal/domains/director/model"
	"movies-api/internal/domains/director/repository"
	"movies-api/internal/shared/apperror"
	"movies-api/pkg/database"
)

type directorService struct {
	directorRepo repository.DirectorRepository
	movies       Filmography
}

func NewDirectorService(directorRepo repository.DirectorRepository, movies Filmography) ServiceInterface {
	return &directorService{directorRepo: directorRepo, movies: movies}
}

func (s *directorService) ListDirectors(ctx context.Context, page database.Page) (*model.ListDirectorsResponse, error) {
	directors, err := s.directorRepo.List(ctx, page)
	if err != nil {
		return nil, apperror.FromStore("director.list", err, map[string]any{"limit": page.Limit, "offset": page.Offset})
	}
	return &model.ListDirectorsResponse{Directors: directors, Count: len(directors)}, nil
}

func (s *directorService) GetDirector(ctx context.Context, id int64) (*model.DirectorDetail, error) {
	const op = "director.get"

	director, err := s.directorRepo.GetByID(ctx, id)
	if errors.Is(err, model.ErrDirectorNotFound) {
		return nil, model.NewDirectorNotFoundError()
	}
	if err != nil {
		return nil, apperror.FromStore(op, err, map[string]any{"director_id": id})
	}

	movies, err := s.movies.ListByDirector(ctx, id)
	if err != nil {
		return nil, apperror.FromStore(op, err, map[string]any{"director_id": id})
	}

	return &model.DirectorDetail{Director: *director, Movies: movies, MovieCount: len(movies)}, nil
}
