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

// NotificationHandler holds dependencies for in-app notification handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{uc: uc, logger: logger}
}

// CreateNotification sends an in-app notification to a user.
func (h *NotificationHandler) CreateNotification(c echo.Context) error {
	var input usecase.CreateNotificationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	notification, err := h.uc.CreateNotification(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, notification, "Notification created successfully")
}

// ListNotifications returns the caller's notifications newest-first.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	notifications, err := h.uc.ListNotifications(c.Request().Context(), identity.ID, queryInt(c, "limit"), queryInt(c, "offset"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notifications, "")
}

// MarkNotificationRead flips the read flag on one of the caller's notifications.
func (h *NotificationHandler) MarkNotificationRead(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	notification, err := h.uc.MarkNotificationRead(c.Request().Context(), id, identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notification, "Notification marked as read")
}
