package handler

import (
	"log/slog"
	"net/http"

	"subul/internal/delivery/http/response"
	"subul/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InventoryHandler holds dependencies for stock handlers.
type InventoryHandler struct {
	uc     usecase.InventoryUsecase
	logger *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler, injected by Fx.
func NewInventoryHandler(uc usecase.InventoryUsecase, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, logger: logger}
}

// CreateInventory opens a stock record for a product.
func (h *InventoryHandler) CreateInventory(c echo.Context) error {
	var input usecase.CreateInventoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inventory input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	inventory, err := h.uc.CreateInventory(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, inventory, "Inventory created successfully")
}

// GetInventoryByProduct returns the stock record for a product.
func (h *InventoryHandler) GetInventoryByProduct(c echo.Context) error {
	productID, err := parseUUIDParam(c, "product_id")
	if err != nil {
		return err
	}

	inventory, err := h.uc.GetInventoryByProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, inventory, "")
}

// UpdateInventory applies a sparse stock update.
func (h *InventoryHandler) UpdateInventory(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateInventoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	inventory, err := h.uc.UpdateInventory(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, inventory, "Inventory updated successfully")
}
