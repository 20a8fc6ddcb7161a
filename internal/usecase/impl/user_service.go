package impl

import (
	"context"
	"log/slog"

	"subul/config"
	"subul/internal/domain/entity"
	domainerrors "subul/internal/domain/errors"
	"subul/internal/domain/repository"
	"subul/internal/domain/service"
	"subul/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	pager    pager
	logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
		pager:    newPager(cfg.Pagination),
		logger:   logger,
	}
}

func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *userService) ListUsers(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	limit, offset = srv.pager.normalize(limit, offset)

	users, err := srv.userRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// UpdateUser applies a sparse account update. A plaintext password in the
// input is hashed before it reaches the store.
func (srv *userService) UpdateUser(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	patch := entity.UserPatch{
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		IsActive:  input.IsActive,
	}

	if input.Password != nil {
		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		patch.Password = &hash
	}

	if input.Role != nil {
		role := entity.Role(*input.Role)
		if !role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role: " + *input.Role)
		}
		patch.Role = &role
	}

	user, err := srv.userRepo.Update(ctx, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmptyPatch):
			return nil, domainerrors.ErrNoFieldsToUpdate
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, domainerrors.ErrUserNotFound
		case errors.Is(err, repository.ErrDuplicateKey):
			return nil, domainerrors.ErrUserAlreadyExists
		default:
			return nil, errors.Wrap(err, "failed to update user")
		}
	}

	srv.logger.Info("User updated", "userID", id)

	return user, nil
}

func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.logger.Info("User deleted", "userID", id)

	return nil
}
