package repository

import (
	"context"
	"testing"

	"subul/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockDeliveryRepository mocks repository.DeliveryRepository.
type MockDeliveryRepository struct {
	mock.Mock
}

// NewMockDeliveryRepository creates a mock whose expectations are asserted on cleanup.
func NewMockDeliveryRepository(t *testing.T) *MockDeliveryRepository {
	m := &MockDeliveryRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockDeliveryRepository) Create(ctx context.Context, delivery *entity.Delivery) error {
	args := m.Called(ctx, delivery)

	return args.Error(0)
}

func (m *MockDeliveryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Delivery, error) {
	args := m.Called(ctx, id)
	delivery, _ := args.Get(0).(*entity.Delivery)

	return delivery, args.Error(1)
}

func (m *MockDeliveryRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Delivery, error) {
	args := m.Called(ctx, orderID)
	delivery, _ := args.Get(0).(*entity.Delivery)

	return delivery, args.Error(1)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, id uuid.UUID, patch entity.DeliveryPatch) (*entity.Delivery, error) {
	args := m.Called(ctx, id, patch)
	delivery, _ := args.Get(0).(*entity.Delivery)

	return delivery, args.Error(1)
}
