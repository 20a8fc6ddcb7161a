// Package model contains the GORM persistence structs mirroring the
// relational schema. PostgreSQL generates UUID primary keys via
// uuid_generate_v7(); created_at/updated_at are maintained by GORM.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Password  string    `gorm:"type:varchar(255);not null"`
	FirstName string    `gorm:"type:varchar(100)"`
	LastName  string    `gorm:"type:varchar(100)"`
	Phone     string    `gorm:"type:varchar(20)"`
	Role      string    `gorm:"type:varchar(50);not null;default:'customer'"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
