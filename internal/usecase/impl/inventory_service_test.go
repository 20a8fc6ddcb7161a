package impl

import (
	"context"
	"testing"

	"subul/internal/domain/entity"
	domainerrors "subul/internal/domain/errors"
	"subul/internal/domain/repository"
	mockRepo "subul/internal/mocks/repository"
	"subul/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestInventoryService(t *testing.T) (usecase.InventoryUsecase, *mockRepo.MockInventoryRepository) {
	inventoryRepo := mockRepo.NewMockInventoryRepository(t)
	service := NewInventoryService(inventoryRepo, newDiscardLogger())

	return service, inventoryRepo
}

func TestInventoryService_CreateInventory_StampsRestockTime(t *testing.T) {
	service, inventoryRepo := createTestInventoryService(t)

	ctx := context.Background()
	productID := uuid.New()
	inventoryRepo.On("Create", ctx, mock.AnythingOfType("*entity.Inventory")).
		Run(func(args mock.Arguments) {
			inventory := args.Get(1).(*entity.Inventory)
			inventory.ID = uuid.New()
		}).
		Return(nil)

	inventory, err := service.CreateInventory(ctx, &usecase.CreateInventoryInput{
		ProductID:         productID,
		Quantity:          10,
		WarehouseLocation: "warehouse-a",
	})

	require.NoError(t, err)
	assert.Equal(t, productID, inventory.ProductID)
	assert.Equal(t, 10, inventory.Quantity)
	require.NotNil(t, inventory.LastRestockedAt)
}

func TestInventoryService_CreateInventory_OnePerProduct(t *testing.T) {
	service, inventoryRepo := createTestInventoryService(t)

	ctx := context.Background()
	inventoryRepo.On("Create", ctx, mock.AnythingOfType("*entity.Inventory")).
		Return(repository.ErrDuplicateKey)

	inventory, err := service.CreateInventory(ctx, &usecase.CreateInventoryInput{ProductID: uuid.New(), Quantity: 1})

	assert.Nil(t, inventory)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.ErrorCode())
}

func TestInventoryService_CreateInventory_UnknownProduct(t *testing.T) {
	service, inventoryRepo := createTestInventoryService(t)

	ctx := context.Background()
	inventoryRepo.On("Create", ctx, mock.AnythingOfType("*entity.Inventory")).
		Return(repository.ErrInvalidReference)

	inventory, err := service.CreateInventory(ctx, &usecase.CreateInventoryInput{ProductID: uuid.New(), Quantity: 1})

	assert.Nil(t, inventory)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestInventoryService_UpdateInventory_QuantityChangeStampsRestockTime(t *testing.T) {
	service, inventoryRepo := createTestInventoryService(t)

	ctx := context.Background()
	inventoryID := uuid.New()
	quantity := 25
	updated := &entity.Inventory{ID: inventoryID, Quantity: quantity}

	inventoryRepo.On("Update", ctx, inventoryID, mock.MatchedBy(func(patch entity.InventoryPatch) bool {
		return patch.Quantity != nil && *patch.Quantity == quantity && patch.LastRestockedAt != nil
	})).Return(updated, nil)

	inventory, err := service.UpdateInventory(ctx, inventoryID, &usecase.UpdateInventoryInput{Quantity: &quantity})

	require.NoError(t, err)
	assert.Equal(t, quantity, inventory.Quantity)
}

func TestInventoryService_UpdateInventory_ReservationOnlyLeavesRestockTime(t *testing.T) {
	service, inventoryRepo := createTestInventoryService(t)

	ctx := context.Background()
	inventoryID := uuid.New()
	reserved := 3
	updated := &entity.Inventory{ID: inventoryID, ReservedQuantity: reserved}

	inventoryRepo.On("Update", ctx, inventoryID, entity.InventoryPatch{ReservedQuantity: &reserved}).
		Return(updated, nil)

	inventory, err := service.UpdateInventory(ctx, inventoryID, &usecase.UpdateInventoryInput{ReservedQuantity: &reserved})

	require.NoError(t, err)
	assert.Equal(t, reserved, inventory.ReservedQuantity)
}

func TestInventoryService_UpdateInventory_EmptyPatchIsBadRequest(t *testing.T) {
	service, inventoryRepo := createTestInventoryService(t)

	ctx := context.Background()
	inventoryID := uuid.New()
	inventoryRepo.On("Update", ctx, inventoryID, entity.InventoryPatch{}).
		Return(nil, repository.ErrEmptyPatch)

	inventory, err := service.UpdateInventory(ctx, inventoryID, &usecase.UpdateInventoryInput{})

	assert.Nil(t, inventory)
	assert.ErrorIs(t, err, domainerrors.ErrNoFieldsToUpdate)
	assert.NotErrorIs(t, err, domainerrors.ErrInventoryNotFound)
}

func TestInventoryService_GetInventoryByProduct_NotFound(t *testing.T) {
	service, inventoryRepo := createTestInventoryService(t)

	ctx := context.Background()
	productID := uuid.New()
	inventoryRepo.On("FindByProductID", ctx, productID).Return(nil, repository.ErrInventoryNotFound)

	inventory, err := service.GetInventoryByProduct(ctx, productID)

	assert.Nil(t, inventory)
	assert.ErrorIs(t, err, domainerrors.ErrInventoryNotFound)
}
