package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"subul/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user and fills in generated ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns users ordered newest-created first.
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)

	// Update applies a sparse patch and returns the full updated record.
	// Returns ErrEmptyPatch when the patch is empty and ErrUserNotFound when
	// no record matches the id.
	Update(ctx context.Context, id uuid.UUID, patch entity.UserPatch) (*entity.User, error)

	// Delete removes a user by id. Returns ErrUserNotFound when nothing was removed.
	Delete(ctx context.Context, id uuid.UUID) error
}
