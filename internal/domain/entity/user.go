// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account entity. Every actor in the system (customer, merchant
// operator, administrator) is a User; the Role field classifies the account.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserPatch is a sparse update for a User. A nil field means "leave unchanged".
// The identity and creation timestamp are structurally absent: a patch cannot
// express a change to them.
type UserPatch struct {
	Email     *string
	Password  *string // already hashed by the caller
	FirstName *string
	LastName  *string
	Phone     *string
	Role      *Role
	IsActive  *bool
}

// Changes returns the column -> value mapping for the set fields.
func (p UserPatch) Changes() map[string]any {
	changes := make(map[string]any)
	if p.Email != nil {
		changes["email"] = *p.Email
	}
	if p.Password != nil {
		changes["password"] = *p.Password
	}
	if p.FirstName != nil {
		changes["first_name"] = *p.FirstName
	}
	if p.LastName != nil {
		changes["last_name"] = *p.LastName
	}
	if p.Phone != nil {
		changes["phone"] = *p.Phone
	}
	if p.Role != nil {
		changes["role"] = p.Role.String()
	}
	if p.IsActive != nil {
		changes["is_active"] = *p.IsActive
	}

	return changes
}
