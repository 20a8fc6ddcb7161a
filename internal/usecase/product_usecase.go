package usecase

import (
	"context"

	"subul/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductUsecase defines the interface for product catalog management.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListProducts returns products newest-first, optionally narrowed by
	// merchant and/or category.
	ListProducts(ctx context.Context, input *ListProductsInput) ([]*entity.Product, error)

	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// CreateProductInput defines the data required to list a product.
type CreateProductInput struct {
	MerchantID  uuid.UUID `json:"merchant_id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url" validate:"omitempty,url"`
}

// UpdateProductInput is a sparse product update. Absent fields stay unchanged.
type UpdateProductInput struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Category    *string  `json:"category,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty" validate:"omitempty,url"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

// ListProductsInput narrows and pages a catalog listing.
type ListProductsInput struct {
	MerchantID uuid.UUID
	Category   string
	Limit      int
	Offset     int
}
