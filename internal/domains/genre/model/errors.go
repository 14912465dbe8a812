package model

import (
	"errors"

	"movies-api/internal/shared/apperror"
)

const ErrCodeGenreNotFound = "GEN001"

var ErrGenreNotFound = errors.New("genre not found")

func NewGenreNotFoundError() *apperror.Error {
	return apperror.NotFound(ErrCodeGenreNotFound, "Genre not found", ErrGenreNotFound)
}
