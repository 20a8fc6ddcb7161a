package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	MerchantID      uuid.UUID `gorm:"type:uuid;not null;index"`
	TotalAmount     float64   `gorm:"type:decimal(10,2);not null"`
	Status          string    `gorm:"type:varchar(50);not null;default:'pending'"`
	ShippingAddress string    `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []*OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Line prices are snapshots
// taken at order creation; there is no updated_at because items are immutable.
type OrderItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"not null"`
	Price     float64   `gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
