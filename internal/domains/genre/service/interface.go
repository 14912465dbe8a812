package service

import (
	"context"

	"movies-api/internal/domains/genre/model"
	movieModel "movies-api/internal/domains/movie/model"
	"movies-api/pkg/database"
)

// =====================================================
// SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	ListGenres(ctx context.Context, page database.Page) (*model.ListGenresResponse, error)
	GetGenre(ctx context.Context, id int64) (*model.GenreDetail, error)
}

type MovieLister interface {
	ListByGenre(ctx context.Context, genreID int64) ([]movieModel.Movie, error)
}
