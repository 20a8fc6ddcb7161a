package repository

import (
	"context"
	"testing"

	"subul/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockNotificationRepository mocks repository.NotificationRepository.
type MockNotificationRepository struct {
	mock.Mock
}

// NewMockNotificationRepository creates a mock whose expectations are asserted on cleanup.
func NewMockNotificationRepository(t *testing.T) *MockNotificationRepository {
	m := &MockNotificationRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	args := m.Called(ctx, notification)

	return args.Error(0)
}

func (m *MockNotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	args := m.Called(ctx, userID, limit, offset)
	notifications, _ := args.Get(0).([]*entity.Notification)

	return notifications, args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) (*entity.Notification, error) {
	args := m.Called(ctx, id, userID)
	notification, _ := args.Get(0).(*entity.Notification)

	return notification, args.Error(1)
}
