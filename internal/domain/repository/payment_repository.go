package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"subul/internal/domain/entity"
)

// ErrPaymentNotFound is returned when a payment is not found.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository defines the standard operations for payment persistence.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// FindByOrderID retrieves the payment record for an order.
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error)

	Update(ctx context.Context, id uuid.UUID, patch entity.PaymentPatch) (*entity.Payment, error)
}
