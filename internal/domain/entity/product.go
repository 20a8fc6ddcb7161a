package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a sellable item listed by a Merchant.
type Product struct {
	ID          uuid.UUID `json:"id"`
	MerchantID  uuid.UUID `json:"merchant_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductPatch is a sparse update for a Product. A nil field means "leave unchanged".
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	ImageURL    *string
	IsActive    *bool
}

// Changes returns the column -> value mapping for the set fields.
func (p ProductPatch) Changes() map[string]any {
	changes := make(map[string]any)
	if p.Name != nil {
		changes["name"] = *p.Name
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.Price != nil {
		changes["price"] = *p.Price
	}
	if p.Category != nil {
		changes["category"] = *p.Category
	}
	if p.ImageURL != nil {
		changes["image_url"] = *p.ImageURL
	}
	if p.IsActive != nil {
		changes["is_active"] = *p.IsActive
	}

	return changes
}

// ProductFilter narrows a product listing. Zero values mean "no filter".
type ProductFilter struct {
	MerchantID uuid.UUID
	Category   string
}
