package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order is a purchase placed by a User against a Merchant. Items are priced
// at creation time; the stored line price is a snapshot, not a reference.
type Order struct {
	ID              uuid.UUID   `json:"id"`
	UserID          uuid.UUID   `json:"user_id"`
	MerchantID      uuid.UUID   `json:"merchant_id"`
	TotalAmount     float64     `json:"total_amount"`
	Status          OrderStatus `json:"status"`
	ShippingAddress string      `json:"shipping_address"`
	Items           []OrderItem `json:"items,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderItem is a single line of an Order.
type OrderItem struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderPatch is a sparse update for an Order. A nil field means "leave unchanged".
type OrderPatch struct {
	Status          *OrderStatus
	ShippingAddress *string
}

// Changes returns the column -> value mapping for the set fields.
func (p OrderPatch) Changes() map[string]any {
	changes := make(map[string]any)
	if p.Status != nil {
		changes["status"] = p.Status.String()
	}
	if p.ShippingAddress != nil {
		changes["shipping_address"] = *p.ShippingAddress
	}

	return changes
}
