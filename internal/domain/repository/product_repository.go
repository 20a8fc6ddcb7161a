package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"subul/internal/domain/entity"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List returns products ordered newest-created first, optionally narrowed
	// by merchant and/or category.
	List(ctx context.Context, limit, offset int, filter entity.ProductFilter) ([]*entity.Product, error)

	Update(ctx context.Context, id uuid.UUID, patch entity.ProductPatch) (*entity.Product, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
