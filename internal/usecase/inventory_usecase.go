package usecase

import (
	"context"

	"subul/internal/domain/entity"

	"github.com/google/uuid"
)

// InventoryUsecase defines the interface for stock management.
type InventoryUsecase interface {
	// CreateInventory opens a stock record for a product. Each product has at
	// most one record.
	CreateInventory(ctx context.Context, input *CreateInventoryInput) (*entity.Inventory, error)

	GetInventoryByProduct(ctx context.Context, productID uuid.UUID) (*entity.Inventory, error)

	UpdateInventory(ctx context.Context, id uuid.UUID, input *UpdateInventoryInput) (*entity.Inventory, error)
}

// CreateInventoryInput defines the data required to open a stock record.
type CreateInventoryInput struct {
	ProductID         uuid.UUID `json:"product_id" validate:"required"`
	Quantity          int       `json:"quantity" validate:"gte=0"`
	WarehouseLocation string    `json:"warehouse_location"`
}

// UpdateInventoryInput is a sparse stock update. Absent fields stay unchanged.
// Setting Quantity also stamps the restock time.
type UpdateInventoryInput struct {
	Quantity          *int    `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	ReservedQuantity  *int    `json:"reserved_quantity,omitempty" validate:"omitempty,gte=0"`
	WarehouseLocation *string `json:"warehouse_location,omitempty"`
}
