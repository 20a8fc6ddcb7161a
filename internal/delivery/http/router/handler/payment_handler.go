package handler

import (
	"log/slog"
	"net/http"

	"subul/internal/delivery/http/response"
	"subul/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for payment handlers.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{uc: uc, logger: logger}
}

// CreatePayment opens a settlement attempt for an order.
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	var input usecase.CreatePaymentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	payment, err := h.uc.CreatePayment(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, payment, "Payment created successfully")
}

// GetPaymentByOrder returns the latest settlement attempt for an order.
func (h *PaymentHandler) GetPaymentByOrder(c echo.Context) error {
	orderID, err := parseUUIDParam(c, "order_id")
	if err != nil {
		return err
	}

	payment, err := h.uc.GetPaymentByOrder(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payment, "")
}

// UpdatePayment applies a sparse payment update.
func (h *PaymentHandler) UpdatePayment(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdatePaymentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	payment, err := h.uc.UpdatePayment(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payment, "Payment updated successfully")
}
