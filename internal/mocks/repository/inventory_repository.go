package repository

import (
	"context"
	"testing"

	"subul/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockInventoryRepository mocks repository.InventoryRepository.
type MockInventoryRepository struct {
	mock.Mock
}

// NewMockInventoryRepository creates a mock whose expectations are asserted on cleanup.
func NewMockInventoryRepository(t *testing.T) *MockInventoryRepository {
	m := &MockInventoryRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockInventoryRepository) Create(ctx context.Context, inventory *entity.Inventory) error {
	args := m.Called(ctx, inventory)

	return args.Error(0)
}

func (m *MockInventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Inventory, error) {
	args := m.Called(ctx, id)
	inventory, _ := args.Get(0).(*entity.Inventory)

	return inventory, args.Error(1)
}

func (m *MockInventoryRepository) FindByProductID(ctx context.Context, productID uuid.UUID) (*entity.Inventory, error) {
	args := m.Called(ctx, productID)
	inventory, _ := args.Get(0).(*entity.Inventory)

	return inventory, args.Error(1)
}

func (m *MockInventoryRepository) Update(ctx context.Context, id uuid.UUID, patch entity.InventoryPatch) (*entity.Inventory, error) {
	args := m.Called(ctx, id, patch)
	inventory, _ := args.Get(0).(*entity.Inventory)

	return inventory, args.Error(1)
}
