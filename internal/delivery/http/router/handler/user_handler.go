package handler

import (
	"log/slog"
	"net/http"

	"subul/internal/delivery/http/middleware"
	"subul/internal/delivery/http/response"
	domainerrors "subul/internal/domain/errors"
	"subul/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user account handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

// GetProfile returns the authenticated caller's own account.
func (h *UserHandler) GetProfile(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	user, err := h.uc.GetUser(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// ListUsers returns accounts newest-first with limit/offset paging.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context(), queryInt(c, "limit"), queryInt(c, "offset"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

// GetUser returns a single account by id.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// UpdateUser applies a sparse account update.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User updated successfully")
}

// DeleteUser removes an account.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
