package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "subul/internal/domain/errors"
	"subul/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureRecorder collects recorded events in memory for assertions.
type captureRecorder struct {
	apiLogs []service.APILog
}

func (r *captureRecorder) RecordAPILog(_ context.Context, log service.APILog) {
	r.apiLogs = append(r.apiLogs, log)
}

func (r *captureRecorder) RecordUserActivity(_ context.Context, _ service.UserActivity) {}

func (r *captureRecorder) RecordOrderAnalytics(_ context.Context, _ service.OrderAnalytics) {}

func newActivityTestServer(t *testing.T, handler echo.HandlerFunc) (*echo.Echo, *captureRecorder) {
	t.Helper()

	recorder := &captureRecorder{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(logger).HandleHTTPError
	e.Use(NewActivityMiddleware(recorder).RecordAPILog)
	e.GET("/resource", handler)

	return e, recorder
}

func TestActivityMiddleware_RecordAPILog_Success(t *testing.T) {
	e, recorder := newActivityTestServer(t, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Len(t, recorder.apiLogs, 1)
	assert.Equal(t, http.StatusOK, recorder.apiLogs[0].StatusCode)
	assert.Equal(t, http.MethodGet, recorder.apiLogs[0].Method)
	assert.Equal(t, "/resource", recorder.apiLogs[0].Path)
}

func TestActivityMiddleware_RecordAPILog_AppErrorStatus(t *testing.T) {
	e, recorder := newActivityTestServer(t, func(_ echo.Context) error {
		return domainerrors.ErrUserNotFound
	})

	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.Len(t, recorder.apiLogs, 1)
	assert.Equal(t, http.StatusNotFound, recorder.apiLogs[0].StatusCode)
}

func TestActivityMiddleware_RecordAPILog_EchoHTTPErrorStatus(t *testing.T) {
	e, recorder := newActivityTestServer(t, func(_ echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	require.Len(t, recorder.apiLogs, 1)
	assert.Equal(t, http.StatusTeapot, recorder.apiLogs[0].StatusCode)
}
