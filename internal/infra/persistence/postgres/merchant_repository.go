package postgres

import (
	"context"

	"subul/internal/domain/entity"
	"subul/internal/domain/repository"
	"subul/internal/errors"
	"subul/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type merchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository creates a MerchantRepository backed by PostgreSQL.
func NewMerchantRepository(db *gorm.DB) repository.MerchantRepository {
	return &merchantRepository{db: db}
}

func (r *merchantRepository) Create(ctx context.Context, merchant *entity.Merchant) error {
	m := toMerchantModel(merchant)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return convertConstraintError(err)
	}

	*merchant = *toMerchantEntity(m)

	return nil
}

func (r *merchantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Merchant, error) {
	var m model.MerchantModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant by id")
	}

	return toMerchantEntity(&m), nil
}

func (r *merchantRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Merchant, error) {
	var m model.MerchantModel
	if err := r.db.WithContext(ctx).First(&m, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant by user id")
	}

	return toMerchantEntity(&m), nil
}

func (r *merchantRepository) List(ctx context.Context, limit, offset int) ([]*entity.Merchant, error) {
	var ms []*model.MerchantModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merchants")
	}

	merchants := make([]*entity.Merchant, 0, len(ms))
	for _, m := range ms {
		merchants = append(merchants, toMerchantEntity(m))
	}

	return merchants, nil
}

func (r *merchantRepository) Update(ctx context.Context, id uuid.UUID, patch entity.MerchantPatch) (*entity.Merchant, error) {
	err := applyPatch(ctx, r.db, &model.MerchantModel{}, id, patch.Changes(), repository.ErrMerchantNotFound)
	if err != nil {
		return nil, convertConstraintError(err)
	}

	return r.FindByID(ctx, id)
}

func (r *merchantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.MerchantModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete merchant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMerchantNotFound
	}

	return nil
}

func toMerchantModel(e *entity.Merchant) *model.MerchantModel {
	return &model.MerchantModel{
		ID:              e.ID,
		UserID:          e.UserID,
		BusinessName:    e.BusinessName,
		BusinessAddress: e.BusinessAddress,
		BusinessPhone:   e.BusinessPhone,
		BusinessEmail:   e.BusinessEmail,
		TaxID:           e.TaxID,
		IsVerified:      e.IsVerified,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func toMerchantEntity(m *model.MerchantModel) *entity.Merchant {
	return &entity.Merchant{
		ID:              m.ID,
		UserID:          m.UserID,
		BusinessName:    m.BusinessName,
		BusinessAddress: m.BusinessAddress,
		BusinessPhone:   m.BusinessPhone,
		BusinessEmail:   m.BusinessEmail,
		TaxID:           m.TaxID,
		IsVerified:      m.IsVerified,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
