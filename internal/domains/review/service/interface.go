package service

import (
	"context"

	"movies-api/internal/domains/review/model"
)

// =====================================================
// SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	CreateReview(ctx context.Context, req model.CreateReviewRequest) (*model.Review, error)
	GetReview(ctx context.Context, id int64) (*model.Review, error)
	ListMovieReviews(ctx context.Context, movieID int64) (*model.ListReviewsResponse, error)
	UpdateReview(ctx context.Context, id int64, req model.UpdateReviewRequest) (*model.Review, error)
	DeleteReview(ctx context.Context, id int64) error
}

// MovieChecker reports whether a movie exists.
type MovieChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
