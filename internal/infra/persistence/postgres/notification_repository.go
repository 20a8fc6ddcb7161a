package postgres

import (
	"context"

	"subul/internal/domain/entity"
	"subul/internal/domain/repository"
	"subul/internal/errors"
	"subul/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a NotificationRepository backed by PostgreSQL.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	m := toNotificationModel(notification)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return convertConstraintError(err)
	}

	*notification = *toNotificationEntity(m)

	return nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	var ms []*model.NotificationModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications by user")
	}

	notifications := make([]*entity.Notification, 0, len(ms))
	for _, m := range ms {
		notifications = append(notifications, toNotificationEntity(m))
	}

	return notifications, nil
}

// MarkRead flips is_read for a notification owned by userID. The ownership
// predicate is part of the UPDATE so another user's notification reads as
// not-found rather than forbidden.
func (r *notificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) (*entity.Notification, error) {
	result := r.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to mark notification read")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrNotificationNotFound
	}

	var m model.NotificationModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload notification")
	}

	return toNotificationEntity(&m), nil
}

func toNotificationModel(e *entity.Notification) *model.NotificationModel {
	return &model.NotificationModel{
		ID:        e.ID,
		UserID:    e.UserID,
		Title:     e.Title,
		Message:   e.Message,
		Type:      e.Type,
		IsRead:    e.IsRead,
		CreatedAt: e.CreatedAt,
	}
}

func toNotificationEntity(m *model.NotificationModel) *entity.Notification {
	return &entity.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Message:   m.Message,
		Type:      m.Type,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}
