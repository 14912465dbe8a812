package service

import (
	"context"

	"movies-api/internal/domains/movie/model"
	reviewModel "movies-api/internal/domains/review/model"
	"movies-api/pkg/database"
)

// =====================================================
// SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	ListMovies(ctx context.Context, filter model.ListFilter) (*model.ListMoviesResponse, error)
	GetMovie(ctx context.Context, id int64) (*model.MovieDetail, error)
	CreateMovie(ctx context.Context, req model.CreateMovieRequest) (*model.MovieDetail, error)
	UpdateMovie(ctx context.Context, id int64, req model.UpdateMovieRequest) (*model.MovieDetail, error)
	DeleteMovie(ctx context.Context, id int64) error
	SearchMovies(ctx context.Context, term string) (*model.ListMoviesResponse, error)
}

// References resolves a director or genre name to its id, creating the row
// when it does not exist yet.
type References interface {
	GetOrCreate(ctx context.Context, lookup database.Lookup, value string) (int64, error)
}

// ReviewLister lists the reviews attached to a movie.
type ReviewLister interface {
	ListByMovie(ctx context.Context, movieID int64) ([]reviewModel.Review, error)
}
