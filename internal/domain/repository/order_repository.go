package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"subul/internal/domain/entity"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// Create persists an order together with its items. When called through
	// the transaction manager, order and items land in a single transaction.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByUser returns a user's orders, newest-created first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error)

	Update(ctx context.Context, id uuid.UUID, patch entity.OrderPatch) (*entity.Order, error)
}
