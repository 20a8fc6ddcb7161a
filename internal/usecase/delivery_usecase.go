package usecase

import (
	"context"
	"time"

	"subul/internal/domain/entity"

	"github.com/google/uuid"
)

// DeliveryUsecase defines the interface for shipment management.
type DeliveryUsecase interface {
	// CreateDelivery opens a shipment record for an order.
	CreateDelivery(ctx context.Context, input *CreateDeliveryInput) (*entity.Delivery, error)

	GetDeliveryByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Delivery, error)

	UpdateDelivery(ctx context.Context, id uuid.UUID, input *UpdateDeliveryInput) (*entity.Delivery, error)
}

// CreateDeliveryInput defines the data required to open a shipment.
type CreateDeliveryInput struct {
	OrderID               uuid.UUID  `json:"order_id" validate:"required"`
	DeliveryAddress       string     `json:"delivery_address" validate:"required"`
	EstimatedDeliveryDate *time.Time `json:"estimated_delivery_date,omitempty"`
	Carrier               string     `json:"carrier"`
}

// UpdateDeliveryInput is a sparse shipment update. Absent fields stay unchanged.
type UpdateDeliveryInput struct {
	DeliveryStatus        *string    `json:"delivery_status,omitempty" validate:"omitempty,oneof=pending in_transit delivered failed"`
	DeliveryAddress       *string    `json:"delivery_address,omitempty"`
	EstimatedDeliveryDate *time.Time `json:"estimated_delivery_date,omitempty"`
	ActualDeliveryDate    *time.Time `json:"actual_delivery_date,omitempty"`
	TrackingNumber        *string    `json:"tracking_number,omitempty"`
	Carrier               *string    `json:"carrier,omitempty"`
}
