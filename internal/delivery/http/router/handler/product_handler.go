package handler

import (
	"log/slog"
	"net/http"

	"subul/internal/delivery/http/response"
	"subul/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: logger}
}

// CreateProduct lists a new product under a merchant.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var input usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// GetProduct returns a single product by id.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// ListProducts returns catalog entries newest-first. Optional merchant_id and
// category query parameters narrow the listing.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	input := usecase.ListProductsInput{
		Category: c.QueryParam("category"),
		Limit:    queryInt(c, "limit"),
		Offset:   queryInt(c, "offset"),
	}

	if raw := c.QueryParam("merchant_id"); raw != "" {
		merchantID, err := uuid.Parse(raw)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid merchant_id filter")
		}
		input.MerchantID = merchantID
	}

	products, err := h.uc.ListProducts(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// UpdateProduct applies a sparse product update.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// DeleteProduct removes a product from the catalog.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
