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

// MerchantHandler holds dependencies for merchant storefront handlers.
type MerchantHandler struct {
	uc     usecase.MerchantUsecase
	logger *slog.Logger
}

// NewMerchantHandler is the constructor for MerchantHandler, injected by Fx.
func NewMerchantHandler(uc usecase.MerchantUsecase, logger *slog.Logger) *MerchantHandler {
	return &MerchantHandler{uc: uc, logger: logger}
}

// CreateMerchant registers a storefront owned by the authenticated caller.
func (h *MerchantHandler) CreateMerchant(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var input usecase.CreateMerchantInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid merchant input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	merchant, err := h.uc.CreateMerchant(c.Request().Context(), identity.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, merchant, "Merchant created successfully")
}

// GetMerchant returns a single storefront by id.
func (h *MerchantHandler) GetMerchant(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	merchant, err := h.uc.GetMerchant(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, merchant, "")
}

// ListMerchants returns storefronts newest-first with limit/offset paging.
func (h *MerchantHandler) ListMerchants(c echo.Context) error {
	merchants, err := h.uc.ListMerchants(c.Request().Context(), queryInt(c, "limit"), queryInt(c, "offset"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, merchants, "")
}

// UpdateMerchant applies a sparse storefront update.
func (h *MerchantHandler) UpdateMerchant(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateMerchantInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	merchant, err := h.uc.UpdateMerchant(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, merchant, "Merchant updated successfully")
}

// DeleteMerchant removes a storefront.
func (h *MerchantHandler) DeleteMerchant(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteMerchant(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
