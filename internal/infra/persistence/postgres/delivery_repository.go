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

type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository creates a DeliveryRepository backed by PostgreSQL.
func NewDeliveryRepository(db *gorm.DB) repository.DeliveryRepository {
	return &deliveryRepository{db: db}
}

func (r *deliveryRepository) Create(ctx context.Context, delivery *entity.Delivery) error {
	m := toDeliveryModel(delivery)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return convertConstraintError(err)
	}

	*delivery = *toDeliveryEntity(m)

	return nil
}

func (r *deliveryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Delivery, error) {
	var m model.DeliveryModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery by id")
	}

	return toDeliveryEntity(&m), nil
}

func (r *deliveryRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Delivery, error) {
	var m model.DeliveryModel
	if err := r.db.WithContext(ctx).First(&m, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery by order id")
	}

	return toDeliveryEntity(&m), nil
}

func (r *deliveryRepository) Update(ctx context.Context, id uuid.UUID, patch entity.DeliveryPatch) (*entity.Delivery, error) {
	err := applyPatch(ctx, r.db, &model.DeliveryModel{}, id, patch.Changes(), repository.ErrDeliveryNotFound)
	if err != nil {
		return nil, convertConstraintError(err)
	}

	return r.FindByID(ctx, id)
}

func toDeliveryModel(e *entity.Delivery) *model.DeliveryModel {
	return &model.DeliveryModel{
		ID:                    e.ID,
		OrderID:               e.OrderID,
		DeliveryStatus:        e.DeliveryStatus.String(),
		DeliveryAddress:       e.DeliveryAddress,
		EstimatedDeliveryDate: e.EstimatedDeliveryDate,
		ActualDeliveryDate:    e.ActualDeliveryDate,
		TrackingNumber:        e.TrackingNumber,
		Carrier:               e.Carrier,
		CreatedAt:             e.CreatedAt,
		UpdatedAt:             e.UpdatedAt,
	}
}

func toDeliveryEntity(m *model.DeliveryModel) *entity.Delivery {
	return &entity.Delivery{
		ID:                    m.ID,
		OrderID:               m.OrderID,
		DeliveryStatus:        entity.DeliveryStatus(m.DeliveryStatus),
		DeliveryAddress:       m.DeliveryAddress,
		EstimatedDeliveryDate: m.EstimatedDeliveryDate,
		ActualDeliveryDate:    m.ActualDeliveryDate,
		TrackingNumber:        m.TrackingNumber,
		Carrier:               m.Carrier,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}
