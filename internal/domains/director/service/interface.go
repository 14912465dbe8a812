package service

import (
	"context"

	"movies-api/internal/domains/director/model"
	movieModel "movies-api/internal/domains/movie/model"
	"movies-api/pkg/database"
)

// =====================================================
// SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	ListDirectors(ctx context.Context, page database.Page) (*model.ListDirectorsResponse, error)
	GetDirector(ctx context.Context, id int64) (*model.DirectorDetail, error)
}

// Filmography lists the movies of a director.
type Filmography interface {
	ListByDirector(ctx context.Context, directorID int64) ([]movieModel.Movie, error)
}
