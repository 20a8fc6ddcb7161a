package middleware

import (
	"time"

	domainerrors "subul/internal/domain/errors"
	"subul/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ActivityMiddleware records one analytics document per request.
type ActivityMiddleware struct {
	recorder service.ActivityRecorder
}

// NewActivityMiddleware is the constructor for ActivityMiddleware.
func NewActivityMiddleware(recorder service.ActivityRecorder) *ActivityMiddleware {
	return &ActivityMiddleware{recorder: recorder}
}

// RecordAPILog captures method, path, status and latency after the handler
// runs. The recorder is fire-and-forget, so a slow or down analytics store
// never affects the response.
func (m *ActivityMiddleware) RecordAPILog(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		var userID *uuid.UUID
		if identity, ok := IdentityFrom(c); ok {
			id := identity.ID
			userID = &id
		}

		// On failure the response is not committed yet, so c.Response().Status
		// still reads 200. Resolve the status the central error handler will
		// render, the same way error_middleware does.
		status := c.Response().Status
		if err != nil {
			var appErr domainerrors.AppError
			var httpErr *echo.HTTPError
			switch {
			case errors.As(err, &appErr):
				status = appErr.HTTPCode()
			case errors.As(err, &httpErr):
				status = httpErr.Code
			}
		}

		m.recorder.RecordAPILog(c.Request().Context(), service.APILog{
			Method:       c.Request().Method,
			Path:         c.Path(),
			StatusCode:   status,
			ResponseTime: time.Since(start).Milliseconds(),
			UserID:       userID,
			IP:           c.RealIP(),
			UserAgent:    c.Request().UserAgent(),
			Timestamp:    start,
		})

		return err
	}
}
