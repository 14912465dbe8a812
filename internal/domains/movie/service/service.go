package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"movies-api/internal/domains/movie/model"
	"movies-api/internal/domains/movie/repository"
	"movies-api/internal/shared/apperror"
	"movies-api/internal/shared/utils"
	"movies-api/pkg/database"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type movieService struct {
	movieRepo repository.MovieRepository
	refs      References
	reviews   ReviewLister
}

func NewMovieService(movieRepo repository.MovieRepository, refs References, reviews ReviewLister) ServiceInterface {
	return &movieService{
		movieRepo: movieRepo,
		refs:      refs,
		reviews:   reviews,
	}
}

// =====================================================
// LIST / SEARCH
// =====================================================

func (s *movieService) ListMovies(ctx context.Context, filter model.ListFilter) (*model.ListMoviesResponse, error) {
	movies, err := s.movieRepo.List(ctx, filter)
	if err != nil {
		return nil, apperror.FromStore("movie.list", err, map[string]any{
			"limit":  filter.Limit,
			"offset": filter.Offset,
		})
	}
	return &model.ListMoviesResponse{Movies: movies, Count: len(movies)}, nil
}

func (s *movieService) SearchMovies(ctx context.Context, term string) (*model.ListMoviesResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, model.NewEmptySearchTermError()
	}

	movies, err := s.movieRepo.Search(ctx, term)
	if err != nil {
		return nil, apperror.FromStore("movie.search", err, map[string]any{"term": term})
	}
	return &model.ListMoviesResponse{Movies: movies, Count: len(movies)}, nil
}

// =====================================================
// GET MOVIE
// =====================================================

// GetMovie assembles the movie with its cast and its reviews.
func (s *movieService) GetMovie(ctx context.Context, id int64) (*model.MovieDetail, error) {
	const op = "movie.get"

	// Step 1: Base row
	movie, err := s.movieRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(op, id, err)
	}

	// Step 2: Cast
	cast, err := s.movieRepo.ListCast(ctx, id)
	if err != nil {
		return nil, translate(op, id, err)
	}

	// Step 3: Reviews
	reviews, err := s.reviews.ListByMovie(ctx, id)
	if err != nil {
		return nil, translate(op, id, err)
	}

	return &model.MovieDetail{Movie: *movie, Cast: cast, Reviews: reviews}, nil
}

// =====================================================
// CREATE MOVIE
// =====================================================

func (s *movieService) CreateMovie(ctx context.Context, req model.CreateMovieRequest) (*model.MovieDetail, error) {
	const op = "movie.create"
	fields := map[string]any{"title": req.Title}

	// Step 1: Resolve director then genre
	directorID, err := s.refs.GetOrCreate(ctx, database.Directors, req.DirectorName)
	if err != nil {
		return nil, apperror.FromStore(op, err, fields)
	}
	genreID, err := s.refs.GetOrCreate(ctx, database.Genres, req.GenreName)
	if err != nil {
		return nil, apperror.FromStore(op, err, fields)
	}

	// Step 2: Insert
	id, err := s.movieRepo.Create(ctx, req.NewMovie(directorID, genreID))
	if err != nil {
		return nil, apperror.FromStore(op, err, fields)
	}

	log.Info().Str("op", op).Int64("movie_id", id).Str("title", req.Title).Msg("movie created")

	// Step 3: Return the full movie
	return s.GetMovie(ctx, id)
}

// =====================================================
// UPDATE MOVIE
// =====================================================

func (s *movieService) UpdateMovie(ctx context.Context, id int64, req model.UpdateMovieRequest) (*model.MovieDetail, error) {
	const op = "movie.update"

	// Step 1: Existence check
	exists, err := s.movieRepo.Exists(ctx, id)
	if err != nil {
		return nil, translate(op, id, err)
	}
	if !exists {
		return nil, model.NewMovieNotFoundError()
	}

	changes := model.Changes{
		Title:       req.Title,
		ReleaseYear: req.ReleaseYear,
		Rating:      utils.ParseFloatToDecimal(req.Rating),
		Description: req.Description,
		Language:    req.Language,
		ImageURL:    req.ImageURL,
	}

	// Step 2: Resolve new director / genre names if given
	if req.DirectorName != nil {
		directorID, err := s.refs.GetOrCreate(ctx, database.Directors, *req.DirectorName)
		if err != nil {
			return nil, translate(op, id, err)
		}
		changes.DirectorID = &directorID
	}
	if req.GenreName != nil {
		genreID, err := s.refs.GetOrCreate(ctx, database.Genres, *req.GenreName)
		if err != nil {
			return nil, translate(op, id, err)
		}
		changes.GenreID = &genreID
	}

	// Step 3: Apply
	if err := s.movieRepo.Update(ctx, id, changes); err != nil {
		return nil, translate(op, id, err)
	}

	// Step 4: Re-fetch
	return s.GetMovie(ctx, id)
}

// =====================================================
// DELETE MOVIE
// =====================================================

func (s *movieService) DeleteMovie(ctx context.Context, id int64) error {
	if err := s.movieRepo.Delete(ctx, id); err != nil {
		return translate("movie.delete", id, err)
	}
	log.Info().Str("op", "movie.delete").Int64("movie_id", id).Msg("movie deleted")
	return nil
}

func translate(op string, id int64, err error) error {
	if errors.Is(err, model.ErrMovieNotFound) {
		return model.NewMovieNotFoundError()
	}
	return apperror.FromStore(op, err, map[string]any{"movie_id": id})
}
