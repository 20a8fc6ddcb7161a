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

func createTestPaymentService(t *testing.T) (usecase.PaymentUsecase, *mockRepo.MockPaymentRepository, *mockRepo.MockOrderRepository) {
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	service := NewPaymentService(paymentRepo, orderRepo, newDiscardLogger())

	return service, paymentRepo, orderRepo
}

func TestPaymentService_CreatePayment_AmountComesFromOrder(t *testing.T) {
	service, paymentRepo, orderRepo := createTestPaymentService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), TotalAmount: 42.50}
	orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
	paymentRepo.On("Create", ctx, mock.AnythingOfType("*entity.Payment")).
		Run(func(args mock.Arguments) {
			payment := args.Get(1).(*entity.Payment)
			payment.ID = uuid.New()
		}).
		Return(nil)

	payment, err := service.CreatePayment(ctx, &usecase.CreatePaymentInput{
		OrderID:       order.ID,
		PaymentMethod: "card",
	})

	require.NoError(t, err)
	assert.InDelta(t, 42.50, payment.Amount, 0.001)
	assert.Equal(t, entity.PaymentStatusPending, payment.PaymentStatus)
}

func TestPaymentService_CreatePayment_UnknownOrder(t *testing.T) {
	service, _, orderRepo := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()
	orderRepo.On("FindByID", ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	payment, err := service.CreatePayment(ctx, &usecase.CreatePaymentInput{OrderID: orderID, PaymentMethod: "card"})

	assert.Nil(t, payment)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestPaymentService_UpdatePayment_StatusChangeChecksCurrentState(t *testing.T) {
	service, paymentRepo, _ := createTestPaymentService(t)

	ctx := context.Background()
	paymentID := uuid.New()
	current := &entity.Payment{ID: paymentID, PaymentStatus: entity.PaymentStatusPending}
	status := "completed"
	completed := entity.PaymentStatusCompleted
	updated := &entity.Payment{ID: paymentID, PaymentStatus: completed}

	paymentRepo.On("FindByID", ctx, paymentID).Return(current, nil)
	paymentRepo.On("Update", ctx, paymentID, entity.PaymentPatch{PaymentStatus: &completed}).Return(updated, nil)

	payment, err := service.UpdatePayment(ctx, paymentID, &usecase.UpdatePaymentInput{PaymentStatus: &status})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCompleted, payment.PaymentStatus)
}

func TestPaymentService_UpdatePayment_EmptyPatchIsBadRequest(t *testing.T) {
	service, paymentRepo, _ := createTestPaymentService(t)

	ctx := context.Background()
	paymentID := uuid.New()
	paymentRepo.On("Update", ctx, paymentID, entity.PaymentPatch{}).
		Return(nil, repository.ErrEmptyPatch)

	payment, err := service.UpdatePayment(ctx, paymentID, &usecase.UpdatePaymentInput{})

	assert.Nil(t, payment)
	assert.ErrorIs(t, err, domainerrors.ErrNoFieldsToUpdate)
}
