package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"subul/config"
	"subul/internal/delivery/http/middleware"
	"subul/internal/delivery/http/validator"
	"subul/internal/domain/entity"
	"subul/internal/domain/repository"
	mockRepo "subul/internal/mocks/repository"
	mockService "subul/internal/mocks/service"
	"subul/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// newTestServer wires a real Echo instance with the request validator and the
// central error handler, so handler tests exercise the same response envelope
// the running server produces.
func newTestServer(t *testing.T) (*echo.Echo, *mockRepo.MockUserRepository) {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{Pagination: &config.PaginationConfig{DefaultLimit: 100, MaxLimit: 500}}
	service := impl.NewUserService(userRepo, hasher, cfg, logger)
	handler := NewUserHandler(service, logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.PATCH("/users/:id", handler.UpdateUser)

	return e, userRepo
}

func TestUserHandler_UpdateUser_Success(t *testing.T) {
	e, userRepo := newTestServer(t)

	userID := uuid.New()
	updated := &entity.User{ID: userID, FirstName: "Nadia"}
	userRepo.On("Update", mock.Anything, userID, mock.MatchedBy(func(patch entity.UserPatch) bool {
		return patch.FirstName != nil && *patch.FirstName == "Nadia"
	})).Return(updated, nil)

	req := httptest.NewRequest(http.MethodPatch, "/users/"+userID.String(),
		strings.NewReader(`{"first_name":"Nadia"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"Nadia"`)
}

func TestUserHandler_UpdateUser_EmptyBodyIsBadRequest(t *testing.T) {
	e, userRepo := newTestServer(t)

	userID := uuid.New()
	userRepo.On("Update", mock.Anything, userID, entity.UserPatch{}).
		Return(nil, repository.ErrEmptyPatch)

	req := httptest.NewRequest(http.MethodPatch, "/users/"+userID.String(), strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "NO_FIELDS_TO_UPDATE")
}

func TestUserHandler_UpdateUser_UnknownIDIsNotFound(t *testing.T) {
	e, userRepo := newTestServer(t)

	userID := uuid.New()
	userRepo.On("Update", mock.Anything, userID, mock.AnythingOfType("entity.UserPatch")).
		Return(nil, repository.ErrUserNotFound)

	req := httptest.NewRequest(http.MethodPatch, "/users/"+userID.String(),
		strings.NewReader(`{"first_name":"Nadia"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_NOT_FOUND")
}

func TestUserHandler_UpdateUser_MalformedIDIsBadRequest(t *testing.T) {
	e, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPatch, "/users/not-a-uuid",
		strings.NewReader(`{"first_name":"Nadia"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}
