package repository

import (
	"context"
	"testing"

	"subul/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository mocks repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

// NewMockOrderRepository creates a mock whose expectations are asserted on cleanup.
func NewMockOrderRepository(t *testing.T) *MockOrderRepository {
	m := &MockOrderRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)

	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	order, _ := args.Get(0).(*entity.Order)

	return order, args.Error(1)
}

func (m *MockOrderRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	args := m.Called(ctx, userID, limit, offset)
	orders, _ := args.Get(0).([]*entity.Order)

	return orders, args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, id uuid.UUID, patch entity.OrderPatch) (*entity.Order, error) {
	args := m.Called(ctx, id, patch)
	order, _ := args.Get(0).(*entity.Order)

	return order, args.Error(1)
}
