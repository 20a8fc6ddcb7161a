package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"subul/internal/domain/entity"
)

// ErrDeliveryNotFound is returned when a delivery is not found.
var ErrDeliveryNotFound = errors.New("delivery not found")

// DeliveryRepository defines the standard operations for delivery persistence.
type DeliveryRepository interface {
	Create(ctx context.Context, delivery *entity.Delivery) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Delivery, error)

	// FindByOrderID retrieves the delivery record for an order.
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Delivery, error)

	Update(ctx context.Context, id uuid.UUID, patch entity.DeliveryPatch) (*entity.Delivery, error)
}
