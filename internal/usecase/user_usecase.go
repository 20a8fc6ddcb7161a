package usecase

import (
	"context"

	"subul/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase defines the interface for user account management.
type UserUsecase interface {
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// ListUsers returns accounts newest-first. Limit and offset are
	// normalized against the configured pagination bounds.
	ListUsers(ctx context.Context, limit, offset int) ([]*entity.User, error)

	// UpdateUser applies a sparse update and returns the full record.
	UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)

	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// UpdateUserInput is a sparse account update. Absent fields stay unchanged.
type UpdateUserInput struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=8"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Role      *string `json:"role,omitempty" validate:"omitempty,oneof=customer merchant admin"`
	IsActive  *bool   `json:"is_active,omitempty"`
}
