// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"

	domainerrors "subul/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// parseUUIDParam reads a path parameter as a UUID. A malformed value is a
// validation failure, not a 404: the route matched, the identifier did not.
func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name + " parameter")
	}

	return id, nil
}

// queryInt reads an integer query parameter, returning 0 when absent or
// malformed. Pagination normalization downstream turns 0 into the defaults.
func queryInt(c echo.Context, name string) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}

	return value
}
