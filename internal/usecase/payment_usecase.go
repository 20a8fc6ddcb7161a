package usecase

import (
	"context"

	"subul/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentUsecase defines the interface for payment management.
type PaymentUsecase interface {
	// CreatePayment opens a settlement attempt for an order. The amount is
	// taken from the order, never from the caller.
	CreatePayment(ctx context.Context, input *CreatePaymentInput) (*entity.Payment, error)

	GetPaymentByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error)

	UpdatePayment(ctx context.Context, id uuid.UUID, input *UpdatePaymentInput) (*entity.Payment, error)
}

// CreatePaymentInput defines the data required to open a settlement attempt.
type CreatePaymentInput struct {
	OrderID       uuid.UUID `json:"order_id" validate:"required"`
	PaymentMethod string    `json:"payment_method" validate:"required"`
}

// UpdatePaymentInput is a sparse payment update. Absent fields stay unchanged.
type UpdatePaymentInput struct {
	PaymentStatus *string `json:"payment_status,omitempty" validate:"omitempty,oneof=pending completed failed refunded"`
	TransactionID *string `json:"transaction_id,omitempty"`
}
