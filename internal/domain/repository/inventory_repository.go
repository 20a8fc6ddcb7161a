package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"subul/internal/domain/entity"
)

// ErrInventoryNotFound is returned when an inventory row is not found.
var ErrInventoryNotFound = errors.New("inventory not found")

// InventoryRepository defines the standard operations for inventory persistence.
type InventoryRepository interface {
	Create(ctx context.Context, inventory *entity.Inventory) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Inventory, error)

	// FindByProductID retrieves the inventory row for a product.
	FindByProductID(ctx context.Context, productID uuid.UUID) (*entity.Inventory, error)

	Update(ctx context.Context, id uuid.UUID, patch entity.InventoryPatch) (*entity.Inventory, error)
}
