package usecase

import (
	"context"

	"subul/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase defines the interface for order management.
type OrderUsecase interface {
	// CreateOrder places an order. Line prices are snapshotted from the
	// current catalog and the total is computed server-side; stock is
	// reserved in the same transaction as the order rows.
	CreateOrder(ctx context.Context, userID uuid.UUID, input *CreateOrderInput) (*entity.Order, error)

	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListOrdersByUser returns a user's orders newest-first.
	ListOrdersByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error)

	UpdateOrder(ctx context.Context, id uuid.UUID, input *UpdateOrderInput) (*entity.Order, error)
}

// CreateOrderInput defines the data required to place an order. Prices are
// deliberately absent: the server prices every line.
type CreateOrderInput struct {
	MerchantID      uuid.UUID        `json:"merchant_id" validate:"required"`
	ShippingAddress string           `json:"shipping_address" validate:"required"`
	Items           []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// OrderItemInput is a single requested line of a new order.
type OrderItemInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// UpdateOrderInput is a sparse order update. Absent fields stay unchanged.
type UpdateOrderInput struct {
	Status          *string `json:"status,omitempty" validate:"omitempty,oneof=pending paid shipped delivered cancelled"`
	ShippingAddress *string `json:"shipping_address,omitempty"`
}
