package usecase

import (
	"context"

	"subul/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for in-app notifications.
type NotificationUsecase interface {
	CreateNotification(ctx context.Context, input *CreateNotificationInput) (*entity.Notification, error)

	// ListNotifications returns a user's notifications newest-first.
	ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// MarkNotificationRead flips the read flag on a notification owned by userID.
	MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) (*entity.Notification, error)
}

// CreateNotificationInput defines the data required to send a notification.
type CreateNotificationInput struct {
	UserID  uuid.UUID `json:"user_id" validate:"required"`
	Title   string    `json:"title" validate:"required"`
	Message string    `json:"message" validate:"required"`
	Type    string    `json:"type"`
}
