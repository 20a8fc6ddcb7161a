package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"subul/internal/domain/entity"
)

// ErrMerchantNotFound is returned when a merchant is not found.
var ErrMerchantNotFound = errors.New("merchant not found")

// MerchantRepository defines the standard operations for merchant persistence.
type MerchantRepository interface {
	Create(ctx context.Context, merchant *entity.Merchant) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Merchant, error)

	// FindByUserID retrieves the merchant owned by a user account.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Merchant, error)

	List(ctx context.Context, limit, offset int) ([]*entity.Merchant, error)

	Update(ctx context.Context, id uuid.UUID, patch entity.MerchantPatch) (*entity.Merchant, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
