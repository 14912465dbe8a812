package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movies-api/pkg/database"
)

// storeError builds the error shape the executor returns for a server failure.
func storeError(t *testing.T, code string) error {
	t.Helper()
	return &database.DatabaseError{Op: "query", Code: code, Err: &pgconn.PgError{Code: code, Message: "boom"}}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NotFound("X", "x", nil).HTTPStatus())
	assert.Equal(t, http.StatusUnprocessableEntity, Validation("x", nil).HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, BadRequest("X", "x").HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, Conflict("x", nil).HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, Internal(errors.New("x")).HTTPStatus())
}

func TestFromStoreConstraintViolationIsConflict(t *testing.T) {
	err := FromStore("movie.create", storeError(t, database.CodeUniqueViolation), map[string]any{"title": "x"})

	assert.Equal(t, KindConflict, err.Kind)
	assert.Equal(t, "Resource already exists", err.PublicMessage())

	err = FromStore("movie.create", storeError(t, database.CodeForeignKeyViolation), nil)
	assert.Equal(t, KindConflict, err.Kind)
}

func TestFromStoreOtherFailuresAreInternalAndHideDetails(t *testing.T) {
	err := FromStore("movie.get", storeError(t, "08006"), map[string]any{"movie_id": 1})

	assert.Equal(t, KindInternal, err.Kind)
	assert.Equal(t, "Internal server error", err.PublicMessage())
	assert.NotContains(t, err.PublicMessage(), "boom")

	err = FromStore("movie.get", errors.New("decode record: bad"), nil)
	assert.Equal(t, KindInternal, err.Kind)
}

func TestFromStorePassesThroughAppErrors(t *testing.T) {
	notFound := NotFound("MOV001", "Movie not found", nil)
	wrapped := fmt.Errorf("wrapped: %w", notFound)

	assert.Same(t, notFound, FromStore("movie.update", wrapped, nil))
}

func TestAs(t *testing.T) {
	_, ok := As(errors.New("plain"))
	assert.False(t, ok)

	appErr, ok := As(fmt.Errorf("ctx: %w", BadRequest("B", "bad")))
	require.True(t, ok)
	assert.Equal(t, "B", appErr.Code)
}
