package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"movies-api/internal/domains/review/model"
)

// =====================================================
// REVIEW REPOSITORY INTERFACE
// =====================================================

type ReviewRepository interface {
	// Create inserts a review and returns the stored row
	Create(ctx context.Context, movieID int64, reviewerName string, rating decimal.Decimal, comment *string) (*model.Review, error)

	// GetByID returns model.ErrReviewNotFound when absent
	GetByID(ctx context.Context, id int64) (*model.Review, error)

	// ListByMovie lists reviews of a movie, newest first
	ListByMovie(ctx context.Context, movieID int64) ([]model.Review, error)

	// Update applies only the non-nil changes. No statement runs when there is nothing to change
	Update(ctx context.Context, id int64, changes model.Changes) error

	// Delete returns model.ErrReviewNotFound when no row was deleted
	Delete(ctx context.Context, id int64) error
}
