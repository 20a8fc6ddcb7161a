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

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates an InventoryRepository backed by PostgreSQL.
func NewInventoryRepository(db *gorm.DB) repository.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(ctx context.Context, inventory *entity.Inventory) error {
	m := toInventoryModel(inventory)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return convertConstraintError(err)
	}

	*inventory = *toInventoryEntity(m)

	return nil
}

func (r *inventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Inventory, error) {
	var m model.InventoryModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInventoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find inventory by id")
	}

	return toInventoryEntity(&m), nil
}

func (r *inventoryRepository) FindByProductID(ctx context.Context, productID uuid.UUID) (*entity.Inventory, error) {
	var m model.InventoryModel
	if err := r.db.WithContext(ctx).First(&m, "product_id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInventoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find inventory by product id")
	}

	return toInventoryEntity(&m), nil
}

func (r *inventoryRepository) Update(ctx context.Context, id uuid.UUID, patch entity.InventoryPatch) (*entity.Inventory, error) {
	err := applyPatch(ctx, r.db, &model.InventoryModel{}, id, patch.Changes(), repository.ErrInventoryNotFound)
	if err != nil {
		return nil, convertConstraintError(err)
	}

	return r.FindByID(ctx, id)
}

func toInventoryModel(e *entity.Inventory) *model.InventoryModel {
	return &model.InventoryModel{
		ID:                e.ID,
		ProductID:         e.ProductID,
		Quantity:          e.Quantity,
		ReservedQuantity:  e.ReservedQuantity,
		WarehouseLocation: e.WarehouseLocation,
		LastRestockedAt:   e.LastRestockedAt,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func toInventoryEntity(m *model.InventoryModel) *entity.Inventory {
	return &entity.Inventory{
		ID:                m.ID,
		ProductID:         m.ProductID,
		Quantity:          m.Quantity,
		ReservedQuantity:  m.ReservedQuantity,
		WarehouseLocation: m.WarehouseLocation,
		LastRestockedAt:   m.LastRestockedAt,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
