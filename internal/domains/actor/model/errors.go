package model

import (
	"errors"

	"movies-api/internal/shared/apperror"
)

// Error codes
const (
	ErrCodeActorNotFound     = "ACT001"
	ErrCodeMovieNotFound     = "ACT002"
	ErrCodeCastEntryNotFound = "ACT003"
)

var (
	ErrActorNotFound     = errors.New("actor not found")
	ErrCastEntryNotFound = errors.New("actor is not in movie")
)

func NewActorNotFoundError() *apperror.Error {
	return apperror.NotFound(ErrCodeActorNotFound, "Actor not found", ErrActorNotFound)
}

func NewMovieNotFoundError() *apperror.Error {
	return apperror.NotFound(ErrCodeMovieNotFound, "Movie not found", nil)
}

func NewCastEntryNotFoundError() *apperror.Error {
	return apperror.NotFound(ErrCodeCastEntryNotFound, "Actor not found in movie", ErrCastEntryNotFound)
}
