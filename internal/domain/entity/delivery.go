package entity

import (
	"time"

	"github.com/google/uuid"
)

// Delivery is the shipment record for an Order.
type Delivery struct {
	ID                    uuid.UUID      `json:"id"`
	OrderID               uuid.UUID      `json:"order_id"`
	DeliveryStatus        DeliveryStatus `json:"delivery_status"`
	DeliveryAddress       string         `json:"delivery_address"`
	EstimatedDeliveryDate *time.Time     `json:"estimated_delivery_date"`
	ActualDeliveryDate    *time.Time     `json:"actual_delivery_date"`
	TrackingNumber        string         `json:"tracking_number"`
	Carrier               string         `json:"carrier"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
}

// DeliveryPatch is a sparse update for a Delivery. A nil field means "leave unchanged".
type DeliveryPatch struct {
	DeliveryStatus        *DeliveryStatus
	DeliveryAddress       *string
	EstimatedDeliveryDate *time.Time
	ActualDeliveryDate    *time.Time
	TrackingNumber        *string
	Carrier               *string
}

// Changes returns the column -> value mapping for the set fields.
func (p DeliveryPatch) Changes() map[string]any {
	changes := make(map[string]any)
	if p.DeliveryStatus != nil {
		changes["delivery_status"] = p.DeliveryStatus.String()
	}
	if p.DeliveryAddress != nil {
		changes["delivery_address"] = *p.DeliveryAddress
	}
	if p.EstimatedDeliveryDate != nil {
		changes["estimated_delivery_date"] = *p.EstimatedDeliveryDate
	}
	if p.ActualDeliveryDate != nil {
		changes["actual_delivery_date"] = *p.ActualDeliveryDate
	}
	if p.TrackingNumber != nil {
		changes["tracking_number"] = *p.TrackingNumber
	}
	if p.Carrier != nil {
		changes["carrier"] = *p.Carrier
	}

	return changes
}
