package repository

import (
	"context"
	"testing"

	"subul/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockMerchantRepository mocks repository.MerchantRepository.
type MockMerchantRepository struct {
	mock.Mock
}

// NewMockMerchantRepository creates a mock whose expectations are asserted on cleanup.
func NewMockMerchantRepository(t *testing.T) *MockMerchantRepository {
	m := &MockMerchantRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMerchantRepository) Create(ctx context.Context, merchant *entity.Merchant) error {
	args := m.Called(ctx, merchant)

	return args.Error(0)
}

func (m *MockMerchantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Merchant, error) {
	args := m.Called(ctx, id)
	merchant, _ := args.Get(0).(*entity.Merchant)

	return merchant, args.Error(1)
}

func (m *MockMerchantRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Merchant, error) {
	args := m.Called(ctx, userID)
	merchant, _ := args.Get(0).(*entity.Merchant)

	return merchant, args.Error(1)
}

func (m *MockMerchantRepository) List(ctx context.Context, limit, offset int) ([]*entity.Merchant, error) {
	args := m.Called(ctx, limit, offset)
	merchants, _ := args.Get(0).([]*entity.Merchant)

	return merchants, args.Error(1)
}

func (m *MockMerchantRepository) Update(ctx context.Context, id uuid.UUID, patch entity.MerchantPatch) (*entity.Merchant, error) {
	args := m.Called(ctx, id, patch)
	merchant, _ := args.Get(0).(*entity.Merchant)

	return merchant, args.Error(1)
}

func (m *MockMerchantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
