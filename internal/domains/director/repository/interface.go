package repository

import (
	"context"

	"movies-api/internal/domains/director/model"
	"movies-api/pkg/database"
)

type DirectorRepository interface {
	List(ctx context.Context, page database.Page) ([]model.Director, error)
	GetByID(ctx context.Context, id int64) (*model.Director, error)
}
