package repository

import (
	"context"
	"testing"

	"subul/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository mocks repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

// NewMockProductRepository creates a mock whose expectations are asserted on cleanup.
func NewMockProductRepository(t *testing.T) *MockProductRepository {
	m := &MockProductRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*entity.Product)

	return product, args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, limit, offset int, filter entity.ProductFilter) ([]*entity.Product, error) {
	args := m.Called(ctx, limit, offset, filter)
	products, _ := args.Get(0).([]*entity.Product)

	return products, args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, id uuid.UUID, patch entity.ProductPatch) (*entity.Product, error) {
	args := m.Called(ctx, id, patch)
	product, _ := args.Get(0).(*entity.Product)

	return product, args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
