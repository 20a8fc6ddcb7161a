// Package service contains testify mocks for the domain service interfaces.
package service

import (
	"context"
	"testing"

	"subul/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher mocks service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a mock whose expectations are asserted on cleanup.
func NewMockPasswordHasher(t *testing.T) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockTokenService mocks service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock whose expectations are asserted on cleanup.
func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Generate(identity service.Identity) (string, error) {
	args := m.Called(identity)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Verify(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*service.Claims)

	return claims, args.Error(1)
}

// MockActivityRecorder mocks service.ActivityRecorder. Recording is
// best-effort, so expectations default to permissive.
type MockActivityRecorder struct {
	mock.Mock
}

// NewMockActivityRecorder creates a permissive recorder mock: all record
// calls are accepted without prior expectation.
func NewMockActivityRecorder(t *testing.T) *MockActivityRecorder {
	m := &MockActivityRecorder{}
	m.Test(t)
	m.On("RecordAPILog", mock.Anything, mock.Anything).Maybe()
	m.On("RecordUserActivity", mock.Anything, mock.Anything).Maybe()
	m.On("RecordOrderAnalytics", mock.Anything, mock.Anything).Maybe()

	return m
}

func (m *MockActivityRecorder) RecordAPILog(ctx context.Context, log service.APILog) {
	m.Called(ctx, log)
}

func (m *MockActivityRecorder) RecordUserActivity(ctx context.Context, activity service.UserActivity) {
	m.Called(ctx, activity)
}

func (m *MockActivityRecorder) RecordOrderAnalytics(ctx context.Context, analytics service.OrderAnalytics) {
	m.Called(ctx, analytics)
}
