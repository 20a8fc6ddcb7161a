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

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a PaymentRepository backed by PostgreSQL.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	m := toPaymentModel(payment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return convertConstraintError(err)
	}

	*payment = *toPaymentEntity(m)

	return nil
}

func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var m model.PaymentModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by id")
	}

	return toPaymentEntity(&m), nil
}

func (r *paymentRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error) {
	var m model.PaymentModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		First(&m, "order_id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by order id")
	}

	return toPaymentEntity(&m), nil
}

func (r *paymentRepository) Update(ctx context.Context, id uuid.UUID, patch entity.PaymentPatch) (*entity.Payment, error) {
	err := applyPatch(ctx, r.db, &model.PaymentModel{}, id, patch.Changes(), repository.ErrPaymentNotFound)
	if err != nil {
		return nil, convertConstraintError(err)
	}

	return r.FindByID(ctx, id)
}

func toPaymentModel(e *entity.Payment) *model.PaymentModel {
	return &model.PaymentModel{
		ID:            e.ID,
		OrderID:       e.OrderID,
		Amount:        e.Amount,
		PaymentMethod: e.PaymentMethod,
		PaymentStatus: e.PaymentStatus.String(),
		TransactionID: e.TransactionID,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func toPaymentEntity(m *model.PaymentModel) *entity.Payment {
	return &entity.Payment{
		ID:            m.ID,
		OrderID:       m.OrderID,
		Amount:        m.Amount,
		PaymentMethod: m.PaymentMethod,
		PaymentStatus: entity.PaymentStatus(m.PaymentStatus),
		TransactionID: m.TransactionID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
