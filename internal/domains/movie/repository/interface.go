package repository

import (
	"context"

	"movies-api/internal/domains/movie/model"
)

// =====================================================
// MOVIE REPOSITORY INTERFACE
// =====================================================

type MovieRepository interface {
	// Reads
	List(ctx context.Context, filter model.ListFilter) ([]model.Movie, error)
	Search(ctx context.Context, term string) ([]model.Movie, error)
	GetByID(ctx context.Context, id int64) (*model.Movie, error)
	Exists(ctx context.Context, id int64) (bool, error)
	ListCast(ctx context.Context, movieID int64) ([]model.CastMember, error)

	// Filmographies, newest release first
	ListByDirector(ctx context.Context, directorID int64) ([]model.Movie, error)
	ListByGenre(ctx context.Context, genreID int64) ([]model.Movie, error)

	// Writes
	Create(ctx context.Context, movie model.NewMovie) (int64, error)
	Update(ctx context.Context, id int64, changes model.Changes) error
	Delete(ctx context.Context, id int64) error
}
