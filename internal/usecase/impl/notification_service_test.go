package impl

import (
	"context"
	"testing"

	"subul/internal/domain/entity"
	domainerrors "subul/internal/domain/errors"
	"subul/internal/domain/repository"
	mockRepo "subul/internal/mocks/repository"
	"subul/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (usecase.NotificationUsecase, *mockRepo.MockNotificationRepository) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(notificationRepo, newTestConfig(), newDiscardLogger())

	return service, notificationRepo
}

func TestNotificationService_ListNotifications_AppliesPaginationDefaults(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Notification{{ID: uuid.New(), UserID: userID}}
	notificationRepo.On("ListByUser", ctx, userID, 100, 0).Return(expected, nil)

	notifications, err := service.ListNotifications(ctx, userID, 0, 0)

	require.NoError(t, err)
	assert.Equal(t, expected, notifications)
}

func TestNotificationService_MarkNotificationRead_OtherUsersNotificationIsNotFound(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()
	notificationRepo.On("MarkRead", ctx, id, userID).Return(nil, repository.ErrNotificationNotFound)

	notification, err := service.MarkNotificationRead(ctx, id, userID)

	assert.Nil(t, notification)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}
