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

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a ProductRepository backed by PostgreSQL.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	m := toProductModel(product)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return convertConstraintError(err)
	}

	*product = *toProductEntity(m)

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var m model.ProductModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductEntity(&m), nil
}

func (r *productRepository) List(ctx context.Context, limit, offset int, filter entity.ProductFilter) ([]*entity.Product, error) {
	query := r.db.WithContext(ctx).Model(&model.ProductModel{})
	if filter.MerchantID != uuid.Nil {
		query = query.Where("merchant_id = ?", filter.MerchantID)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var ms []*model.ProductModel
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(ms))
	for _, m := range ms {
		products = append(products, toProductEntity(m))
	}

	return products, nil
}

func (r *productRepository) Update(ctx context.Context, id uuid.UUID, patch entity.ProductPatch) (*entity.Product, error) {
	err := applyPatch(ctx, r.db, &model.ProductModel{}, id, patch.Changes(), repository.ErrProductNotFound)
	if err != nil {
		return nil, convertConstraintError(err)
	}

	return r.FindByID(ctx, id)
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ProductModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func toProductModel(e *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          e.ID,
		MerchantID:  e.MerchantID,
		Name:        e.Name,
		Description: e.Description,
		Price:       e.Price,
		Category:    e.Category,
		ImageURL:    e.ImageURL,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toProductEntity(m *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:          m.ID,
		MerchantID:  m.MerchantID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Category:    m.Category,
		ImageURL:    m.ImageURL,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
