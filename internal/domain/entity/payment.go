package entity

import (
	"time"

	"github.com/google/uuid"
)

// Payment is a settlement attempt for an Order.
type Payment struct {
	ID            uuid.UUID     `json:"id"`
	OrderID       uuid.UUID     `json:"order_id"`
	Amount        float64       `json:"amount"`
	PaymentMethod string        `json:"payment_method"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	TransactionID string        `json:"transaction_id"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// PaymentPatch is a sparse update for a Payment. A nil field means "leave unchanged".
type PaymentPatch struct {
	PaymentStatus *PaymentStatus
	TransactionID *string
}

// Changes returns the column -> value mapping for the set fields.
func (p PaymentPatch) Changes() map[string]any {
	changes := make(map[string]any)
	if p.PaymentStatus != nil {
		changes["payment_status"] = p.PaymentStatus.String()
	}
	if p.TransactionID != nil {
		changes["transaction_id"] = *p.TransactionID
	}

	return changes
}
