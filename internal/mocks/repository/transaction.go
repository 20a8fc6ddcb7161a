package repository

import (
	"context"
	"testing"

	"subul/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager mocks repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates a mock whose expectations are asserted on cleanup.
func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if rf, ok := args.Get(0).(func(context.Context, func(repository.RepositoryFactory) error) error); ok {
		return rf(ctx, fn)
	}

	return args.Error(0)
}

// MockRepositoryFactory mocks repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// NewMockRepositoryFactory creates a mock whose expectations are asserted on cleanup.
func NewMockRepositoryFactory(t *testing.T) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) Orders() repository.OrderRepository {
	args := m.Called()
	repo, _ := args.Get(0).(repository.OrderRepository)

	return repo
}

func (m *MockRepositoryFactory) Products() repository.ProductRepository {
	args := m.Called()
	repo, _ := args.Get(0).(repository.ProductRepository)

	return repo
}

func (m *MockRepositoryFactory) Inventories() repository.InventoryRepository {
	args := m.Called()
	repo, _ := args.Get(0).(repository.InventoryRepository)

	return repo
}
