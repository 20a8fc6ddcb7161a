// Package middleware contains the cross-cutting HTTP middleware.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"subul/internal/delivery/http/response"
	domainerrors "subul/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprintf("%v", httpErr.Message)
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, message)

		return
	}

	// Default to internal error, log and return a generic message
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	_ = response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", "")
}
