package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"movies-api/internal/domains/review/model"
	"movies-api/internal/domains/review/repository"
	"movies-api/internal/shared/apperror"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type reviewService struct {
	reviewRepo repository.ReviewRepository
	movies     MovieChecker
}

func NewReviewService(reviewRepo repository.ReviewRepository, movies MovieChecker) ServiceInterface {
	return &reviewService{
		reviewRepo: reviewRepo,
		movies:     movies,
	}
}

// =====================================================
// CREATE REVIEW
// =====================================================

func (s *reviewService) CreateReview(ctx context.Context, req model.CreateReviewRequest) (*model.Review, error) {
	const op = "review.create"

	// Step 1: Movie must exist
	if err := s.requireMovie(ctx, op, req.MovieID); err != nil {
		return nil, err
	}

	// Step 2: Insert
	rating := decimal.Zero
	if req.Rating != nil {
		rating = decimal.NewFromFloat(*req.Rating)
	}
	review, err := s.reviewRepo.Create(ctx, req.MovieID, req.ReviewerName, rating, req.Comment)
	if err != nil {
		return nil, apperror.FromStore(op, err, map[string]any{"movie_id": req.MovieID})
	}

	log.Info().Str("op", op).Int64("review_id", review.ID).Int64("movie_id", review.MovieID).Msg("review created")
	return review, nil
}

// =====================================================
// READ
// =====================================================

func (s *reviewService) GetReview(ctx context.Context, id int64) (*model.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translate("review.get", id, err)
	}
	return review, nil
}

func (s *reviewService) ListMovieReviews(ctx context.Context, movieID int64) (*model.ListReviewsResponse, error) {
	const op = "review.list_by_movie"

	if err := s.requireMovie(ctx, op, movieID); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByMovie(ctx, movieID)
	if err != nil {
		return nil, apperror.FromStore(op, err, map[string]any{"movie_id": movieID})
	}

	return &model.ListReviewsResponse{Reviews: reviews, Count: len(reviews)}, nil
}

// =====================================================
// UPDATE / DELETE
// =====================================================

func (s *reviewService) UpdateReview(ctx context.Context, id int64, req model.UpdateReviewRequest) (*model.Review, error) {
	const op = "review.update"

	// Step 1: Existence check
	if _, err := s.reviewRepo.GetByID(ctx, id); err != nil {
		return nil, translate(op, id, err)
	}

	// Step 2: Apply provided fields only
	if err := s.reviewRepo.Update(ctx, id, req.Changes()); err != nil {
		return nil, translate(op, id, err)
	}

	// Step 3: Re-fetch
	return s.GetReview(ctx, id)
}

func (s *reviewService) DeleteReview(ctx context.Context, id int64) error {
	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		return translate("review.delete", id, err)
	}
	log.Info().Str("op", "review.delete").Int64("review_id", id).Msg("review deleted")
	return nil
}

// =====================================================
// HELPERS
// =====================================================

func (s *reviewService) requireMovie(ctx context.Context, op string, movieID int64) error {
	exists, err := s.movies.Exists(ctx, movieID)
	if err != nil {
		return apperror.FromStore(op, err, map[string]any{"movie_id": movieID})
	}
	if !exists {
		log.Debug().Str("op", op).Int64("movie_id", movieID).Msg("movie not found")
		return model.NewMovieNotFoundError()
	}
	return nil
}

func translate(op string, id int64, err error) error {
	if errors.Is(err, model.ErrReviewNotFound) {
		return model.NewReviewNotFoundError()
	}
	return apperror.FromStore(op, err, map[string]any{"review_id": id})
}
