package usecase

import (
	"context"

	"subul/internal/domain/entity"

	"github.com/google/uuid"
)

// MerchantUsecase defines the interface for merchant storefront management.
type MerchantUsecase interface {
	// CreateMerchant registers a storefront for the given user account.
	CreateMerchant(ctx context.Context, userID uuid.UUID, input *CreateMerchantInput) (*entity.Merchant, error)

	GetMerchant(ctx context.Context, id uuid.UUID) (*entity.Merchant, error)

	ListMerchants(ctx context.Context, limit, offset int) ([]*entity.Merchant, error)

	UpdateMerchant(ctx context.Context, id uuid.UUID, input *UpdateMerchantInput) (*entity.Merchant, error)

	DeleteMerchant(ctx context.Context, id uuid.UUID) error
}

// CreateMerchantInput defines the data required to register a storefront.
type CreateMerchantInput struct {
	BusinessName    string `json:"business_name" validate:"required"`
	BusinessAddress string `json:"business_address"`
	BusinessPhone   string `json:"business_phone"`
	BusinessEmail   string `json:"business_email" validate:"omitempty,email"`
	TaxID           string `json:"tax_id"`
}

// UpdateMerchantInput is a sparse storefront update. Absent fields stay unchanged.
type UpdateMerchantInput struct {
	BusinessName    *string `json:"business_name,omitempty"`
	BusinessAddress *string `json:"business_address,omitempty"`
	BusinessPhone   *string `json:"business_phone,omitempty"`
	BusinessEmail   *string `json:"business_email,omitempty" validate:"omitempty,email"`
	TaxID           *string `json:"tax_id,omitempty"`
	IsVerified      *bool   `json:"is_verified,omitempty"`
}
