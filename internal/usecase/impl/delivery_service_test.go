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

func createTestDeliveryService(t *testing.T) (usecase.DeliveryUsecase, *mockRepo.MockDeliveryRepository, *mockRepo.MockOrderRepository) {
	deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	service := NewDeliveryService(deliveryRepo, orderRepo, newDiscardLogger())

	return service, deliveryRepo, orderRepo
}

func TestDeliveryService_CreateDelivery_StartsPending(t *testing.T) {
	service, deliveryRepo, orderRepo := createTestDeliveryService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New()}
	orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
	deliveryRepo.On("Create", ctx, mock.AnythingOfType("*entity.Delivery")).
		Run(func(args mock.Arguments) {
			delivery := args.Get(1).(*entity.Delivery)
			delivery.ID = uuid.New()
		}).
		Return(nil)

	delivery, err := service.CreateDelivery(ctx, &usecase.CreateDeliveryInput{
		OrderID:         order.ID,
		DeliveryAddress: "221B Baker Street",
		Carrier:         "dhl",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryStatusPending, delivery.DeliveryStatus)
	assert.Equal(t, order.ID, delivery.OrderID)
}

func TestDeliveryService_CreateDelivery_UnknownOrder(t *testing.T) {
	service, _, orderRepo := createTestDeliveryService(t)

	ctx := context.Background()
	orderID := uuid.New()
	orderRepo.On("FindByID", ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	delivery, err := service.CreateDelivery(ctx, &usecase.CreateDeliveryInput{
		OrderID:         orderID,
		DeliveryAddress: "221B Baker Street",
	})

	assert.Nil(t, delivery)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestDeliveryService_CreateDelivery_OnePerOrder(t *testing.T) {
	service, deliveryRepo, orderRepo := createTestDeliveryService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New()}
	orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
	deliveryRepo.On("Create", ctx, mock.AnythingOfType("*entity.Delivery")).
		Return(repository.ErrDuplicateKey)

	delivery, err := service.CreateDelivery(ctx, &usecase.CreateDeliveryInput{
		OrderID:         order.ID,
		DeliveryAddress: "221B Baker Street",
	})

	assert.Nil(t, delivery)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.ErrorCode())
}

func TestDeliveryService_UpdateDelivery_StatusChangeChecksCurrentState(t *testing.T) {
	service, deliveryRepo, _ := createTestDeliveryService(t)

	ctx := context.Background()
	deliveryID := uuid.New()
	current := &entity.Delivery{ID: deliveryID, DeliveryStatus: entity.DeliveryStatusPending}
	status := "in_transit"
	inTransit := entity.DeliveryStatusInTransit
	updated := &entity.Delivery{ID: deliveryID, DeliveryStatus: inTransit}

	deliveryRepo.On("FindByID", ctx, deliveryID).Return(current, nil)
	deliveryRepo.On("Update", ctx, deliveryID, entity.DeliveryPatch{DeliveryStatus: &inTransit}).
		Return(updated, nil)

	delivery, err := service.UpdateDelivery(ctx, deliveryID, &usecase.UpdateDeliveryInput{DeliveryStatus: &status})

	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryStatusInTransit, delivery.DeliveryStatus)
}

func TestDeliveryService_UpdateDelivery_RejectsUnknownStatus(t *testing.T) {
	service, deliveryRepo, _ := createTestDeliveryService(t)

	ctx := context.Background()
	deliveryID := uuid.New()
	current := &entity.Delivery{ID: deliveryID, DeliveryStatus: entity.DeliveryStatusPending}
	status := "teleported"

	deliveryRepo.On("FindByID", ctx, deliveryID).Return(current, nil)

	delivery, err := service.UpdateDelivery(ctx, deliveryID, &usecase.UpdateDeliveryInput{DeliveryStatus: &status})

	assert.Nil(t, delivery)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestDeliveryService_UpdateDelivery_EmptyPatchIsBadRequest(t *testing.T) {
	service, deliveryRepo, _ := createTestDeliveryService(t)

	ctx := context.Background()
	deliveryID := uuid.New()
	deliveryRepo.On("Update", ctx, deliveryID, entity.DeliveryPatch{}).
		Return(nil, repository.ErrEmptyPatch)

	delivery, err := service.UpdateDelivery(ctx, deliveryID, &usecase.UpdateDeliveryInput{})

	assert.Nil(t, delivery)
	assert.ErrorIs(t, err, domainerrors.ErrNoFieldsToUpdate)
}
