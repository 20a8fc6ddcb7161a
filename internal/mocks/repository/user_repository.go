// Package repository contains testify mocks for the repository interfaces.
package repository

import (
	"context"
	"testing"

	"subul/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock whose expectations are asserted on cleanup.
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	args := m.Called(ctx, limit, offset)
	users, _ := args.Get(0).([]*entity.User)

	return users, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id uuid.UUID, patch entity.UserPatch) (*entity.User, error) {
	args := m.Called(ctx, id, patch)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
