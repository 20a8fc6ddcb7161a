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

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

// CreateOrder places an order for the authenticated caller.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var input usecase.CreateOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), identity.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created successfully")
}

// ListOrders returns the authenticated caller's orders newest-first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	orders, err := h.uc.ListOrdersByUser(c.Request().Context(), identity.ID, queryInt(c, "limit"), queryInt(c, "offset"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// GetOrder returns a single order with its items.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	order, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// UpdateOrder applies a sparse order update.
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	order, err := h.uc.UpdateOrder(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order updated successfully")
}
