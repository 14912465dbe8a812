package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"movies-api/internal/shared/apperror"
)

// ParseIDParam reads a positive integer path parameter.
func ParseIDParam(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, invalidParam(name, "must be a positive integer")
	}
	return id, nil
}

// QueryInt reads an optional integer query parameter. Absent returns nil.
func QueryInt(c *gin.Context, name string) (*int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, invalidParam(name, "must be an integer")
	}
	return &v, nil
}

// QueryString reads an optional query parameter, trimmed. Absent or blank returns nil.
func QueryString(c *gin.Context, name string) *string {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return &raw
}

// PageParams reads limit and offset with their defaults and bounds checks.
func PageParams(c *gin.Context, defaultLimit, maxLimit int) (limit, offset int, err error) {
	limit, offset = defaultLimit, 0

	l, err := QueryInt(c, "limit")
	if err != nil {
		return 0, 0, err
	}
	o, err := QueryInt(c, "offset")
	if err != nil {
		return 0, 0, err
	}
	if l != nil {
		limit = *l
	}
	if o != nil {
		offset = *o
	}

	errs := validation.Errors{}
	if limit < 1 || limit > maxLimit {
		errs["limit"] = fmt.Errorf("must be between 1 and %d", maxLimit)
	}
	if offset < 0 {
		errs["offset"] = fmt.Errorf("must be no less than 0")
	}
	if len(errs) > 0 {
		err = apperror.Validation("Invalid query parameters", errs)
	}
	return limit, offset, err
}

// BindJSON decodes the request body into dst. Malformed bodies are
// validation errors.
func BindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return apperror.Validation("Invalid request body", err.Error())
	}
	return nil
}

// Validated wraps a DTO validation failure. nil stays nil.
func Validated(err error) error {
	if err == nil {
		return nil
	}
	return apperror.Validation("Validation failed", err)
}

func invalidParam(name, msg string) error {
	return apperror.Validation("Invalid parameter", validation.Errors{name: errors.New(msg)})
}
