package service

import (
	"context"
	"errors"

	"movies-api/internal/domains/genre/model"
	"movies-api/internal/domains/genre/repository"
	"movies-api/internal/shared/apperror"
	"movies-api/pkg/database"
)

type genreService struct {
	genreRepo repository.GenreRepository
	movies    MovieLister
}

func NewGenreService(genreRepo repository.GenreRepository, movies MovieLister) ServiceInterface {
	return &genreService{genreRepo: genreRepo, movies: movies}
}

func (s *genreService) ListGenres(ctx context.Context, page database.Page) (*model.ListGenresResponse, error) {
	genres, err := s.genreRepo.List(ctx, page)
	if err != nil {
		return nil, apperror.FromStore("genre.list", err, nil)
	}
	return &model.ListGenresResponse{Genres: genres, Count: len(genres)}, nil
}

func (s *genreService) GetGenre(ctx context.Context, id int64) (*model.GenreDetail, error) {
	genre, err := s.genreRepo.GetByID(ctx, id)
	if errors.Is(err, model.ErrGenreNotFound) {
		return nil, model.NewGenreNotFoundError()
	}
	if err != nil {
		return nil, apperror.FromStore("genre.get", err, map[string]any{"genre_id": id})
	}

	movies, err := s.movies.ListByGenre(ctx, id)
	if err != nil {
		return nil, apperror.FromStore("genre.get", err, map[string]any{"genre_id": id})
	}

	return &model.GenreDetail{Genre: *genre, Movies: movies, MovieCount: len(movies)}, nil
}
