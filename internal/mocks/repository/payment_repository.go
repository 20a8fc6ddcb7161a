package repository

import (
	"context"
	"testing"

	"subul/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPaymentRepository mocks repository.PaymentRepository.
type MockPaymentRepository struct {
	mock.Mock
}

// NewMockPaymentRepository creates a mock whose expectations are asserted on cleanup.
func NewMockPaymentRepository(t *testing.T) *MockPaymentRepository {
	m := &MockPaymentRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	args := m.Called(ctx, payment)

	return args.Error(0)
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	args := m.Called(ctx, id)
	payment, _ := args.Get(0).(*entity.Payment)

	return payment, args.Error(1)
}

func (m *MockPaymentRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error) {
	args := m.Called(ctx, orderID)
	payment, _ := args.Get(0).(*entity.Payment)

	return payment, args.Error(1)
}

func (m *MockPaymentRepository) Update(ctx context.Context, id uuid.UUID, patch entity.PaymentPatch) (*entity.Payment, error) {
	args := m.Called(ctx, id, patch)
	payment, _ := args.Get(0).(*entity.Payment)

	return payment, args.Error(1)
}
