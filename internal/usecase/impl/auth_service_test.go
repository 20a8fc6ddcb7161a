package impl

import (
	"context"
	"testing"

	"subul/internal/domain/entity"
	domainerrors "subul/internal/domain/errors"
	"subul/internal/domain/repository"
	mockRepo "subul/internal/mocks/repository"
	mockService "subul/internal/mocks/service"
	"subul/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service  usecase.AuthUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockService.MockPasswordHasher
	tokens   *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokens := mockService.NewMockTokenService(t)
	recorder := mockService.NewMockActivityRecorder(t)
	service := NewAuthService(userRepo, hasher, tokens, recorder, newDiscardLogger())

	return authServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RegisterInput{
		Email:     "new@example.com",
		Password:  "supersecret",
		FirstName: "New",
		LastName:  "User",
	}

	fx.hasher.On("Hash", "supersecret").Return("hashed", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = userID
		}).
		Return(nil)
	fx.tokens.On("Generate", mock.AnythingOfType("service.Identity")).Return("token-123", nil)

	out, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "token-123", out.Token)
	assert.Equal(t, userID, out.User.ID)
	assert.Equal(t, entity.RoleCustomer, out.User.Role)
	assert.Equal(t, "hashed", out.User.Password)
	assert.True(t, out.User.IsActive)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:     "taken@example.com",
		Password:  "supersecret",
		FirstName: "New",
		LastName:  "User",
	}

	fx.hasher.On("Hash", "supersecret").Return("hashed", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateKey)

	out, err := fx.service.Register(ctx, input)

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_UnknownRole(t *testing.T) {
	fx := createTestAuthService(t)

	input := &usecase.RegisterInput{
		Email:     "new@example.com",
		Password:  "supersecret",
		FirstName: "New",
		LastName:  "User",
		Role:      "superuser",
	}

	out, err := fx.service.Register(context.Background(), input)

	assert.Nil(t, out)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:       uuid.New(),
		Email:    "user@example.com",
		Password: "stored-hash",
		Role:     entity.RoleCustomer,
		IsActive: true,
	}

	fx.userRepo.On("FindByEmail", ctx, "user@example.com").Return(user, nil)
	fx.hasher.On("Check", "supersecret", "stored-hash").Return(true)
	fx.tokens.On("Generate", mock.AnythingOfType("service.Identity")).Return("token-456", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "user@example.com", Password: "supersecret"})

	require.NoError(t, err)
	assert.Equal(t, "token-456", out.Token)
	assert.Equal(t, user, out.User)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "user@example.com", Password: "stored-hash", IsActive: true}

	fx.userRepo.On("FindByEmail", ctx, "user@example.com").Return(user, nil)
	fx.hasher.On("Check", "wrong", "stored-hash").Return(false)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "user@example.com", Password: "wrong"})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmailYieldsSameError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_DeactivatedAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "user@example.com", Password: "stored-hash", IsActive: false}

	fx.userRepo.On("FindByEmail", ctx, "user@example.com").Return(user, nil)
	fx.hasher.On("Check", "supersecret", "stored-hash").Return(true)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "user@example.com", Password: "supersecret"})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrAccountDeactivated)
}
