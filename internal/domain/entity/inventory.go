package entity

import (
	"time"

	"github.com/google/uuid"
)

// Inventory tracks stock for a single Product.
type Inventory struct {
	ID                uuid.UUID  `json:"id"`
	ProductID         uuid.UUID  `json:"product_id"`
	Quantity          int        `json:"quantity"`
	ReservedQuantity  int        `json:"reserved_quantity"`
	WarehouseLocation string     `json:"warehouse_location"`
	LastRestockedAt   *time.Time `json:"last_restocked_at"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// InventoryPatch is a sparse update for an Inventory row. A nil field means
// "leave unchanged".
type InventoryPatch struct {
	Quantity          *int
	ReservedQuantity  *int
	WarehouseLocation *string
	LastRestockedAt   *time.Time
}

// Changes returns the column -> value mapping for the set fields.
func (p InventoryPatch) Changes() map[string]any {
	changes := make(map[string]any)
	if p.Quantity != nil {
		changes["quantity"] = *p.Quantity
	}
	if p.ReservedQuantity != nil {
		changes["reserved_quantity"] = *p.ReservedQuantity
	}
	if p.WarehouseLocation != nil {
		changes["warehouse_location"] = *p.WarehouseLocation
	}
	if p.LastRestockedAt != nil {
		changes["last_restocked_at"] = *p.LastRestockedAt
	}

	return changes
}
