package impl

import (
	"context"
	"log/slog"

	"subul/config"
	"subul/internal/domain/entity"
	domainerrors "subul/internal/domain/errors"
	"subul/internal/domain/repository"
	"subul/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// merchantService implements the MerchantUsecase interface.
type merchantService struct {
	merchantRepo repository.MerchantRepository
	pager        pager
	logger       *slog.Logger
}

// NewMerchantService is the constructor for merchantService.
func NewMerchantService(
	merchantRepo repository.MerchantRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.MerchantUsecase {
	return &merchantService{
		merchantRepo: merchantRepo,
		pager:        newPager(cfg.Pagination),
		logger:       logger,
	}
}

// CreateMerchant registers a storefront for a user account. A user operates
// at most one storefront.
func (srv *merchantService) CreateMerchant(ctx context.Context, userID uuid.UUID, input *usecase.CreateMerchantInput) (*entity.Merchant, error) {
	_, err := srv.merchantRepo.FindByUserID(ctx, userID)
	switch {
	case err == nil:
		return nil, domainerrors.ErrMerchantAlreadyExists
	case !errors.Is(err, repository.ErrMerchantNotFound):
		return nil, errors.Wrap(err, "failed to check existing merchant")
	}

	merchant := &entity.Merchant{
		UserID:          userID,
		BusinessName:    input.BusinessName,
		BusinessAddress: input.BusinessAddress,
		BusinessPhone:   input.BusinessPhone,
		BusinessEmail:   input.BusinessEmail,
		TaxID:           input.TaxID,
		IsVerified:      false,
	}

	if err := srv.merchantRepo.Create(ctx, merchant); err != nil {
		if errors.Is(err, repository.ErrInvalidReference) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to create merchant")
	}

	srv.logger.Info("Merchant created", "merchantID", merchant.ID, "userID", userID)

	return merchant, nil
}

func (srv *merchantService) GetMerchant(ctx context.Context, id uuid.UUID) (*entity.Merchant, error) {
	merchant, err := srv.merchantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return nil, domainerrors.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant")
	}

	return merchant, nil
}

func (srv *merchantService) ListMerchants(ctx context.Context, limit, offset int) ([]*entity.Merchant, error) {
	limit, offset = srv.pager.normalize(limit, offset)

	merchants, err := srv.merchantRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merchants")
	}

	return merchants, nil
}

func (srv *merchantService) UpdateMerchant(ctx context.Context, id uuid.UUID, input *usecase.UpdateMerchantInput) (*entity.Merchant, error) {
	patch := entity.MerchantPatch{
		BusinessName:    input.BusinessName,
		BusinessAddress: input.BusinessAddress,
		BusinessPhone:   input.BusinessPhone,
		BusinessEmail:   input.BusinessEmail,
		TaxID:           input.TaxID,
		IsVerified:      input.IsVerified,
	}

	merchant, err := srv.merchantRepo.Update(ctx, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmptyPatch):
			return nil, domainerrors.ErrNoFieldsToUpdate
		case errors.Is(err, repository.ErrMerchantNotFound):
			return nil, domainerrors.ErrMerchantNotFound
		default:
			return nil, errors.Wrap(err, "failed to update merchant")
		}
	}

	srv.logger.Info("Merchant updated", "merchantID", id)

	return merchant, nil
}

func (srv *merchantService) DeleteMerchant(ctx context.Context, id uuid.UUID) error {
	if err := srv.merchantRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return domainerrors.ErrMerchantNotFound
		}

		return errors.Wrap(err, "failed to delete merchant")
	}

	srv.logger.Info("Merchant deleted", "merchantID", id)

	return nil
}
