// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"subul/internal/domain/entity"
)

// AuthUsecase defines the interface for registration and authentication.
type AuthUsecase interface {
	// Register creates a new account and returns it with a fresh token.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and returns the account with a fresh token.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}

// --- Input DTOs ---

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone"`
	Role      string `json:"role" validate:"omitempty,oneof=customer merchant admin"`
}

// LoginInput defines the credentials for authentication.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput carries the authenticated account and its bearer token.
type AuthOutput struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}
