package model

import (
	"errors"

	"movies-api/internal/shared/apperror"
)

// Error codes
const (
	ErrCodeMovieNotFound   = "MOV001"
	ErrCodeEmptySearchTerm = "MOV002"
)

var ErrMovieNotFound = errors.New("movie not found")

func NewMovieNotFoundError() *apperror.Error {
	return apperror.NotFound(ErrCodeMovieNotFound, "Movie not found", ErrMovieNotFound)
}

func NewEmptySearchTermError() *apperror.Error {
	return apperror.BadRequest(ErrCodeEmptySearchTerm, "Search term cannot be empty")
}
