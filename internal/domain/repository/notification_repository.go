package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"subul/internal/domain/entity"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the standard operations for notification persistence.
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error

	// ListByUser returns a user's notifications, newest-created first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// MarkRead flips is_read for a notification owned by the given user.
	// Returns ErrNotificationNotFound when no matching row exists.
	MarkRead(ctx context.Context, id, userID uuid.UUID) (*entity.Notification, error)
}
