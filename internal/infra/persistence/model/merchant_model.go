package model

import (
	"time"

	"github.com/google/uuid"
)

// MerchantModel mirrors the 'merchants' table. UserID references users.id.
type MerchantModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	BusinessName    string    `gorm:"type:varchar(255);not null"`
	BusinessAddress string    `gorm:"type:text"`
	BusinessPhone   string    `gorm:"type:varchar(20)"`
	BusinessEmail   string    `gorm:"type:varchar(255)"`
	TaxID           string    `gorm:"type:varchar(100)"`
	IsVerified      bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (MerchantModel) TableName() string {
	return "merchants"
}
