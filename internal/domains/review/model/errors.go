package model

import (
	"errors"

	"movies-api/internal/shared/apperror"
)

// Error codes
const (
	ErrCodeReviewNotFound = "REV001"
	ErrCodeMovieNotFound  = "REV002"
)

var ErrReviewNotFound = errors.New("review not found")

func NewReviewNotFoundError() *apperror.Error {
	return apperror.NotFound(ErrCodeReviewNotFound, "Review not found", ErrReviewNotFound)
}

func NewMovieNotFoundError() *apperror.Error {
	return apperror.NotFound(ErrCodeMovieNotFound, "Movie not found", nil)
}
