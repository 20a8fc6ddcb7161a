package handler

import (
	"log/slog"
	"net/http"

	"subul/internal/delivery/http/response"
	"subul/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DeliveryHandler holds dependencies for shipment handlers.
type DeliveryHandler struct {
	uc     usecase.DeliveryUsecase
	logger *slog.Logger
}

// NewDeliveryHandler is the constructor for DeliveryHandler, injected by Fx.
func NewDeliveryHandler(uc usecase.DeliveryUsecase, logger *slog.Logger) *DeliveryHandler {
	return &DeliveryHandler{uc: uc, logger: logger}
}

// CreateDelivery opens a shipment record for an order.
func (h *DeliveryHandler) CreateDelivery(c echo.Context) error {
	var input usecase.CreateDeliveryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	delivery, err := h.uc.CreateDelivery(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, delivery, "Delivery created successfully")
}

// GetDeliveryByOrder returns the shipment record for an order.
func (h *DeliveryHandler) GetDeliveryByOrder(c echo.Context) error {
	orderID, err := parseUUIDParam(c, "order_id")
	if err != nil {
		return err
	}

	delivery, err := h.uc.GetDeliveryByOrder(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, delivery, "")
}

// UpdateDelivery applies a sparse shipment update.
func (h *DeliveryHandler) UpdateDelivery(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateDeliveryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	delivery, err := h.uc.UpdateDelivery(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, delivery, "Delivery updated successfully")
}
