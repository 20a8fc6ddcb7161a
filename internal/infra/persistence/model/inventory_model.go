package model

import (
	"time"

	"github.com/google/uuid"
)

// InventoryModel mirrors the 'inventory' table. ProductID references products.id.
type InventoryModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	Quantity          int        `gorm:"not null;default:0"`
	ReservedQuantity  int        `gorm:"not null;default:0"`
	WarehouseLocation string     `gorm:"type:varchar(255)"`
	LastRestockedAt   *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (InventoryModel) TableName() string {
	return "inventory"
}
