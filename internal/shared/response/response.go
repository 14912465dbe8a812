package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"movies-api/internal/shared/apperror"
)

// Ratings are written as JSON numbers.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Resource bodies are written as they are. Errors use the envelope below.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Error   *Error `json:"error"`
}

type Error struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Message is the body of delete and association endpoints.
type Message struct {
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

// Success responses
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Error responses
func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	ErrorWithDetails(c, statusCode, code, message, nil)
}

func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, ErrorEnvelope{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// AppError writes err using its kind. Errors that are not *apperror.Error
// are treated as internal.
func AppError(c *gin.Context, err error) {
	appErr, ok := apperror.As(err)
	if !ok {
		appErr = apperror.Internal(err)
	}
	_ = c.Error(err)
	ErrorWithDetails(c, appErr.HTTPStatus(), appErr.Code, appErr.PublicMessage(), appErr.Details)
}

func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, apperror.CodeNotFound, message)
}
