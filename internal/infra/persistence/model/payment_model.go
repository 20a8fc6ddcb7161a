package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel mirrors the 'payments' table. OrderID references orders.id.
type PaymentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount        float64   `gorm:"type:decimal(10,2);not null"`
	PaymentMethod string    `gorm:"type:varchar(50)"`
	PaymentStatus string    `gorm:"type:varchar(50);not null;default:'pending'"`
	TransactionID string    `gorm:"type:varchar(255)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
