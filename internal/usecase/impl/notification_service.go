package impl

import (
	"context"
	"log/slog"

	"subul/config"
	"subul/internal/domain/entity"
	domainerrors "subul/internal/domain/errors"
	"subul/internal/domain/repository"
	"subul/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	pager            pager
	logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		pager:            newPager(cfg.Pagination),
		logger:           logger,
	}
}

func (srv *notificationService) CreateNotification(ctx context.Context, input *usecase.CreateNotificationInput) (*entity.Notification, error) {
	notification := &entity.Notification{
		UserID:  input.UserID,
		Title:   input.Title,
		Message: input.Message,
		Type:    input.Type,
	}

	if err := srv.notificationRepo.Create(ctx, notification); err != nil {
		if errors.Is(err, repository.ErrInvalidReference) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to create notification")
	}

	srv.logger.Info("Notification created", "notificationID", notification.ID, "userID", notification.UserID)

	return notification, nil
}

func (srv *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	limit, offset = srv.pager.normalize(limit, offset)

	notifications, err := srv.notificationRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

func (srv *notificationService) MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) (*entity.Notification, error) {
	notification, err := srv.notificationRepo.MarkRead(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to mark notification read")
	}

	return notification, nil
}
