package impl

import (
	"context"
	"fmt"
	"log/slog"

	"subul/internal/domain/entity"
	domainerrors "subul/internal/domain/errors"
	"subul/internal/domain/repository"
	"subul/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
	logger      *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	orderRepo repository.OrderRepository,
	logger *slog.Logger,
) usecase.PaymentUsecase {
	return &paymentService{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		logger:      logger,
	}
}

// CreatePayment opens a settlement attempt. The amount always comes from the
// stored order total.
func (srv *paymentService) CreatePayment(ctx context.Context, input *usecase.CreatePaymentInput) (*entity.Payment, error) {
	order, err := srv.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to check order")
	}

	payment := &entity.Payment{
		OrderID:       order.ID,
		Amount:        order.TotalAmount,
		PaymentMethod: input.PaymentMethod,
		PaymentStatus: entity.PaymentStatusPending,
	}

	if err := srv.paymentRepo.Create(ctx, payment); err != nil {
		if errors.Is(err, repository.ErrInvalidReference) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to create payment")
	}

	srv.logger.Info("Payment created", "paymentID", payment.ID, "orderID", payment.OrderID)

	return payment, nil
}

func (srv *paymentService) GetPaymentByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error) {
	payment, err := srv.paymentRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment")
	}

	return payment, nil
}

// UpdatePayment applies a sparse payment update. A status change is validated
// against the current stored status before anything is written.
func (srv *paymentService) UpdatePayment(ctx context.Context, id uuid.UUID, input *usecase.UpdatePaymentInput) (*entity.Payment, error) {
	patch := entity.PaymentPatch{TransactionID: input.TransactionID}

	if input.PaymentStatus != nil {
		next := entity.PaymentStatus(*input.PaymentStatus)

		current, err := srv.paymentRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrPaymentNotFound) {
				return nil, domainerrors.ErrPaymentNotFound
			}

			return nil, errors.Wrap(err, "failed to find payment")
		}
		if err := entity.ValidateTransition(current.PaymentStatus, next); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("cannot move payment from %s to %s", current.PaymentStatus, next))
		}
		patch.PaymentStatus = &next
	}

	payment, err := srv.paymentRepo.Update(ctx, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmptyPatch):
			return nil, domainerrors.ErrNoFieldsToUpdate
		case errors.Is(err, repository.ErrPaymentNotFound):
			return nil, domainerrors.ErrPaymentNotFound
		default:
			return nil, errors.Wrap(err, "failed to update payment")
		}
	}

	srv.logger.Info("Payment updated", "paymentID", id)

	return payment, nil
}
