package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel mirrors the 'notifications' table. Notifications are
// append-only apart from the is_read flag, so there is no updated_at.
type NotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Message   string    `gorm:"type:text;not null"`
	Type      string    `gorm:"type:varchar(50)"`
	IsRead    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
