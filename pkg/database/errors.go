package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes the services care about.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeNotNullViolation    = "23502"
	CodeCheckViolation      = "23514"
)

// ErrLookupNotAllowed is returned when a lookup outside the whitelist is used.
var ErrLookupNotAllowed = errors.New("lookup table not allowed")

// DatabaseError wraps any failure raised while running a statement.
type DatabaseError struct {
	Op   string // executor stage that failed
	Code string // SQLSTATE, empty when the failure did not come from the server
	Err  error
}

func newDatabaseError(op string, err error) *DatabaseError {
	dbErr := &DatabaseError{Op: op, Err: err}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		dbErr.Code = pgErr.Code
	}
	return dbErr
}

func (e *DatabaseError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("database %s failed (%s): %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("database %s failed: %v", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// IsConstraintViolation reports SQLSTATE class 23 (integrity constraint).
func (e *DatabaseError) IsConstraintViolation() bool {
	return strings.HasPrefix(e.Code, "23")
}

// AsDatabaseError unwraps err into a *DatabaseError.
func AsDatabaseError(err error) (*DatabaseError, bool) {
	var dbErr *DatabaseError
	if errors.As(err, &dbErr) {
		return dbErr, true
	}
	return nil, false
}

// IsConstraintViolation reports whether err carries an integrity constraint failure.
func IsConstraintViolation(err error) bool {
	dbErr, ok := AsDatabaseError(err)
	return ok && dbErr.IsConstraintViolation()
}
