package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryModel mirrors the 'deliveries' table. OrderID references orders.id.
type DeliveryModel struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID               uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	DeliveryStatus        string     `gorm:"type:varchar(50);not null;default:'pending'"`
	DeliveryAddress       string     `gorm:"type:text"`
	EstimatedDeliveryDate *time.Time
	ActualDeliveryDate    *time.Time
	TrackingNumber        string `gorm:"type:varchar(100)"`
	Carrier               string `gorm:"type:varchar(100)"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryModel) TableName() string {
	return "deliveries"
}
