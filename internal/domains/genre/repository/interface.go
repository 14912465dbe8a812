package repository

import (
	"context"

	"movies-api/internal/domains/genre/model"
	"movies-api/pkg/database"
)

// =====================================================
// GENRE REPOSITORY INTERFACE
// =====================================================

type GenreRepository interface {
	List(ctx context.Context, page database.Page) ([]model.Genre, error)

	// GetByID returns model.ErrGenreNotFound when absent
	GetByID(ctx context.Context, id int64) (*model.Genre, error)
}
