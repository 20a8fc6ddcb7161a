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

// deliveryService implements the DeliveryUsecase interface.
type deliveryService struct {
	deliveryRepo repository.DeliveryRepository
	orderRepo    repository.OrderRepository
	logger       *slog.Logger
}

// NewDeliveryService is the constructor for deliveryService.
func NewDeliveryService(
	deliveryRepo repository.DeliveryRepository,
	orderRepo repository.OrderRepository,
	logger *slog.Logger,
) usecase.DeliveryUsecase {
	return &deliveryService{
		deliveryRepo: deliveryRepo,
		orderRepo:    orderRepo,
		logger:       logger,
	}
}

func (srv *deliveryService) CreateDelivery(ctx context.Context, input *usecase.CreateDeliveryInput) (*entity.Delivery, error) {
	if _, err := srv.orderRepo.FindByID(ctx, input.OrderID); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to check order")
	}

	delivery := &entity.Delivery{
		OrderID:               input.OrderID,
		DeliveryStatus:        entity.DeliveryStatusPending,
		DeliveryAddress:       input.DeliveryAddress,
		EstimatedDeliveryDate: input.EstimatedDeliveryDate,
		Carrier:               input.Carrier,
	}

	if err := srv.deliveryRepo.Create(ctx, delivery); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateKey):
			return nil, domainerrors.ErrConflict.WithDetails("delivery already exists for this order")
		case errors.Is(err, repository.ErrInvalidReference):
			return nil, domainerrors.ErrOrderNotFound
		default:
			return nil, errors.Wrap(err, "failed to create delivery")
		}
	}

	srv.logger.Info("Delivery created", "deliveryID", delivery.ID, "orderID", delivery.OrderID)

	return delivery, nil
}

func (srv *deliveryService) GetDeliveryByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Delivery, error) {
	delivery, err := srv.deliveryRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrDeliveryNotFound) {
			return nil, domainerrors.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery")
	}

	return delivery, nil
}

// UpdateDelivery applies a sparse shipment update. A status change is
// validated against the current stored status before anything is written.
func (srv *deliveryService) UpdateDelivery(ctx context.Context, id uuid.UUID, input *usecase.UpdateDeliveryInput) (*entity.Delivery, error) {
	patch := entity.DeliveryPatch{
		DeliveryAddress:       input.DeliveryAddress,
		EstimatedDeliveryDate: input.EstimatedDeliveryDate,
		ActualDeliveryDate:    input.ActualDeliveryDate,
		TrackingNumber:        input.TrackingNumber,
		Carrier:               input.Carrier,
	}

	if input.DeliveryStatus != nil {
		next := entity.DeliveryStatus(*input.DeliveryStatus)

		current, err := srv.deliveryRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrDeliveryNotFound) {
				return nil, domainerrors.ErrDeliveryNotFound
			}

			return nil, errors.Wrap(err, "failed to find delivery")
		}
		if err := entity.ValidateTransition(current.DeliveryStatus, next); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("cannot move delivery from %s to %s", current.DeliveryStatus, next))
		}
		patch.DeliveryStatus = &next
	}

	delivery, err := srv.deliveryRepo.Update(ctx, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmptyPatch):
			return nil, domainerrors.ErrNoFieldsToUpdate
		case errors.Is(err, repository.ErrDeliveryNotFound):
			return nil, domainerrors.ErrDeliveryNotFound
		default:
			return nil, errors.Wrap(err, "failed to update delivery")
		}
	}

	srv.logger.Info("Delivery updated", "deliveryID", id)

	return delivery, nil
}
