package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. MerchantID references merchants.id.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MerchantID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"type:decimal(10,2);not null"`
	Category    string    `gorm:"type:varchar(100);index"`
	ImageURL    string    `gorm:"type:text"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
