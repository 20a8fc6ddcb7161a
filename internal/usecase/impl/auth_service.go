package impl

import (
	"context"
	"log/slog"
	"time"

	"subul/internal/domain/entity"
	domainerrors "subul/internal/domain/errors"
	"subul/internal/domain/repository"
	"subul/internal/domain/service"
	"subul/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	tokens   service.TokenService
	recorder service.ActivityRecorder
	logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	recorder service.ActivityRecorder,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		recorder: recorder,
		logger:   logger,
	}
}

// Register creates an account with a hashed password and issues a token.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.logger.Info("Registering user", "email", input.Email)

	role := entity.RoleCustomer
	if input.Role != "" {
		role = entity.Role(input.Role)
		if !role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role: " + input.Role)
		}
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Email:     input.Email,
		Password:  hash,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Role:      role,
		IsActive:  true,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	token, err := srv.tokens.Generate(service.Identity{ID: user.ID, Email: user.Email, Role: user.Role})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.recorder.RecordUserActivity(ctx, service.UserActivity{
		UserID:    user.ID,
		Action:    "register",
		Timestamp: time.Now(),
	})

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// Login verifies credentials against the stored hash and issues a token.
// Unknown email and wrong password yield the same error, so responses do not
// reveal which accounts exist.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.Password) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domainerrors.ErrAccountDeactivated
	}

	token, err := srv.tokens.Generate(service.Identity{ID: user.ID, Email: user.Email, Role: user.Role})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.recorder.RecordUserActivity(ctx, service.UserActivity{
		UserID:    user.ID,
		Action:    "login",
		Timestamp: time.Now(),
	})

	srv.logger.Info("User logged in", "userID", user.ID)

	return &usecase.AuthOutput{Token: token, User: user}, nil
}
