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
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockService.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	service := NewUserService(userRepo, hasher, newTestConfig(), newDiscardLogger())

	return userServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetUser(ctx, userID)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ListUsers_AppliesPaginationDefaults(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	expected := []*entity.User{{ID: uuid.New()}}
	fx.userRepo.On("List", ctx, 100, 0).Return(expected, nil)

	users, err := fx.service.ListUsers(ctx, 0, -3)

	require.NoError(t, err)
	assert.Equal(t, expected, users)
}

func TestUserService_ListUsers_ClampsLimitToMax(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.On("List", ctx, 500, 20).Return([]*entity.User{}, nil)

	_, err := fx.service.ListUsers(ctx, 10000, 20)

	require.NoError(t, err)
}

func TestUserService_UpdateUser_EmptyPatchIsBadRequest(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.userRepo.On("Update", ctx, userID, entity.UserPatch{}).
		Return(nil, repository.ErrEmptyPatch)

	user, err := fx.service.UpdateUser(ctx, userID, &usecase.UpdateUserInput{})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrNoFieldsToUpdate)
}

func TestUserService_UpdateUser_NotFoundIsDistinctFromEmptyPatch(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	phone := "0790000000"
	fx.userRepo.On("Update", ctx, userID, entity.UserPatch{Phone: &phone}).
		Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.UpdateUser(ctx, userID, &usecase.UpdateUserInput{Phone: &phone})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.NotErrorIs(t, err, domainerrors.ErrNoFieldsToUpdate)
}

func TestUserService_UpdateUser_HashesPasswordBeforeStore(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	password := "newpassword"
	hashed := "hashed-new"
	updated := &entity.User{ID: userID}

	fx.hasher.On("Hash", password).Return(hashed, nil)
	fx.userRepo.On("Update", ctx, userID, entity.UserPatch{Password: &hashed}).
		Return(updated, nil)

	user, err := fx.service.UpdateUser(ctx, userID, &usecase.UpdateUserInput{Password: &password})

	require.NoError(t, err)
	assert.Equal(t, updated, user)
}

func TestUserService_UpdateUser_RejectsUnknownRole(t *testing.T) {
	fx := createTestUserService(t)

	role := "superuser"
	user, err := fx.service.UpdateUser(context.Background(), uuid.New(), &usecase.UpdateUserInput{Role: &role})

	assert.Nil(t, user)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestUserService_UpdateUser_DuplicateEmailIsConflict(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	email := "taken@example.com"
	fx.userRepo.On("Update", ctx, userID, entity.UserPatch{Email: &email}).
		Return(nil, repository.ErrDuplicateKey)

	user, err := fx.service.UpdateUser(ctx, userID, &usecase.UpdateUserInput{Email: &email})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.userRepo.On("Delete", ctx, userID).Return(repository.ErrUserNotFound)

	err := fx.service.DeleteUser(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
