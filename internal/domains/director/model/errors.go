package model

import (
	"errors"

	"movies-api/internal/shared/apperror"
)

const ErrCodeDirectorNotFound = "DIR001"

var ErrDirectorNotFound = errors.New("director not found")

func NewDirectorNotFoundError() *apperror.Error {
	return apperror.NotFound(ErrCodeDirectorNotFound, "Director not found", ErrDirectorNotFound)
}
