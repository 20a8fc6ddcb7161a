package impl

import (
	"context"
	"log/slog"
	"time"

	"subul/internal/domain/entity"
	domainerrors "subul/internal/domain/errors"
	"subul/internal/domain/repository"
	"subul/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// inventoryService implements the InventoryUsecase interface.
type inventoryService struct {
	inventoryRepo repository.InventoryRepository
	logger        *slog.Logger
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(
	inventoryRepo repository.InventoryRepository,
	logger *slog.Logger,
) usecase.InventoryUsecase {
	return &inventoryService{
		inventoryRepo: inventoryRepo,
		logger:        logger,
	}
}

func (srv *inventoryService) CreateInventory(ctx context.Context, input *usecase.CreateInventoryInput) (*entity.Inventory, error) {
	now := time.Now()
	inventory := &entity.Inventory{
		ProductID:         input.ProductID,
		Quantity:          input.Quantity,
		WarehouseLocation: input.WarehouseLocation,
		LastRestockedAt:   &now,
	}

	if err := srv.inventoryRepo.Create(ctx, inventory); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateKey):
			return nil, domainerrors.ErrConflict.WithDetails("inventory already exists for this product")
		case errors.Is(err, repository.ErrInvalidReference):
			return nil, domainerrors.ErrProductNotFound
		default:
			return nil, errors.Wrap(err, "failed to create inventory")
		}
	}

	srv.logger.Info("Inventory created", "inventoryID", inventory.ID, "productID", inventory.ProductID)

	return inventory, nil
}

func (srv *inventoryService) GetInventoryByProduct(ctx context.Context, productID uuid.UUID) (*entity.Inventory, error) {
	inventory, err := srv.inventoryRepo.FindByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrInventoryNotFound) {
			return nil, domainerrors.ErrInventoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find inventory")
	}

	return inventory, nil
}

// UpdateInventory applies a sparse stock update. A quantity change also
// stamps the restock time.
func (srv *inventoryService) UpdateInventory(ctx context.Context, id uuid.UUID, input *usecase.UpdateInventoryInput) (*entity.Inventory, error) {
	patch := entity.InventoryPatch{
		Quantity:          input.Quantity,
		ReservedQuantity:  input.ReservedQuantity,
		WarehouseLocation: input.WarehouseLocation,
	}

	if input.Quantity != nil {
		now := time.Now()
		patch.LastRestockedAt = &now
	}

	inventory, err := srv.inventoryRepo.Update(ctx, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmptyPatch):
			return nil, domainerrors.ErrNoFieldsToUpdate
		case errors.Is(err, repository.ErrInventoryNotFound):
			return nil, domainerrors.ErrInventoryNotFound
		default:
			return nil, errors.Wrap(err, "failed to update inventory")
		}
	}

	srv.logger.Info("Inventory updated", "inventoryID", id)

	return inventory, nil
}
