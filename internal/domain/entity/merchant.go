package entity

import (
	"time"

	"github.com/google/uuid"
)

// Merchant is a storefront owned by a User account. A user may operate at most
// one merchant; the relation is purely referential.
type Merchant struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	BusinessName    string    `json:"business_name"`
	BusinessAddress string    `json:"business_address"`
	BusinessPhone   string    `json:"business_phone"`
	BusinessEmail   string    `json:"business_email"`
	TaxID           string    `json:"tax_id"`
	IsVerified      bool      `json:"is_verified"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// MerchantPatch is a sparse update for a Merchant. A nil field means "leave
// unchanged". IsVerified is deliberately patchable: the original system lets
// any authorized caller flip the verification flag through the generic update
// path, and that behavior is preserved pending product review.
type MerchantPatch struct {
	BusinessName    *string
	BusinessAddress *string
	BusinessPhone   *string
	BusinessEmail   *string
	TaxID           *string
	IsVerified      *bool
}

// Changes returns the column -> value mapping for the set fields.
func (p MerchantPatch) Changes() map[string]any {
	changes := make(map[string]any)
	if p.BusinessName != nil {
		changes["business_name"] = *p.BusinessName
	}
	if p.BusinessAddress != nil {
		changes["business_address"] = *p.BusinessAddress
	}
	if p.BusinessPhone != nil {
		changes["business_phone"] = *p.BusinessPhone
	}
	if p.BusinessEmail != nil {
		changes["business_email"] = *p.BusinessEmail
	}
	if p.TaxID != nil {
		changes["tax_id"] = *p.TaxID
	}
	if p.IsVerified != nil {
		changes["is_verified"] = *p.IsVerified
	}

	return changes
}
