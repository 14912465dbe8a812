package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"movies-api/pkg/database"
)

// Kind classifies an error for the transport layer.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindBadRequest
	KindConflict
)

// Generic codes shared by every domain.
const (
	CodeInternal   = "INTERNAL_ERROR"
	CodeValidation = "VALIDATION_ERROR"
	CodeBadRequest = "BAD_REQUEST"
	CodeConflict   = "CONFLICT"
	CodeNotFound   = "NOT_FOUND"
)

// Error is the error every service returns to handlers.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Details any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the kind onto a status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindBadRequest, KindConflict:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is the message safe to send to a client.
func (e *Error) PublicMessage() string {
	if e.Kind == KindInternal {
		return "Internal server error"
	}
	return e.Message
}

// =====================================================
// CONSTRUCTORS
// =====================================================

func NotFound(code, message string, err error) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message, Err: err}
}

func Validation(message string, details any) *Error {
	return &Error{Kind: KindValidation, Code: CodeValidation, Message: message, Details: details}
}

func BadRequest(code, message string) *Error {
	return &Error{Kind: KindBadRequest, Code: code, Message: message}
}

func Conflict(message string, err error) *Error {
	return &Error{Kind: KindConflict, Code: CodeConflict, Message: message, Err: err}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Code: CodeInternal, Message: "internal error", Err: err}
}

// As unwraps err into an *Error.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// FromStore translates a store failure and logs it.
//   - constraint violation: Conflict
//   - anything else: Internal
//
// An error that is already an *Error passes through unchanged.
func FromStore(op string, err error, fields map[string]any) *Error {
	if appErr, ok := As(err); ok {
		return appErr
	}

	dbErr, isStore := database.AsDatabaseError(err)
	if isStore && dbErr.IsConstraintViolation() {
		log.Warn().Err(err).Str("op", op).Fields(fields).Str("sqlstate", dbErr.Code).Msg("constraint violation")
		return Conflict(conflictMessage(dbErr.Code), err)
	}

	event := log.Error().Err(err).Str("op", op).Fields(fields)
	if isStore {
		event = event.Str("sqlstate", dbErr.Code).Str("stage", dbErr.Op)
	}
	event.Msg("store failure")

	return Internal(err)
}

func conflictMessage(code string) string {
	switch code {
	case database.CodeUniqueViolation:
		return "Resource already exists"
	case database.CodeForeignKeyViolation:
		return "Referenced resource does not exist"
	default:
		return "Request violates a data constraint"
	}
}
