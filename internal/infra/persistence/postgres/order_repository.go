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

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates an OrderRepository backed by PostgreSQL.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists the order and its items in one association insert. Run it
// through the transaction manager so partial writes cannot survive a failure.
func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	m := toOrderModel(order)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return convertConstraintError(err)
	}

	*order = *toOrderEntity(m)

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var m model.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderEntity(&m), nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	var ms []*model.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	orders := make([]*entity.Order, 0, len(ms))
	for _, m := range ms {
		orders = append(orders, toOrderEntity(m))
	}

	return orders, nil
}

func (r *orderRepository) Update(ctx context.Context, id uuid.UUID, patch entity.OrderPatch) (*entity.Order, error) {
	err := applyPatch(ctx, r.db, &model.OrderModel{}, id, patch.Changes(), repository.ErrOrderNotFound)
	if err != nil {
		return nil, convertConstraintError(err)
	}

	return r.FindByID(ctx, id)
}

func toOrderModel(e *entity.Order) *model.OrderModel {
	items := make([]*model.OrderItemModel, 0, len(e.Items))
	for i := range e.Items {
		items = append(items, toOrderItemModel(&e.Items[i]))
	}

	return &model.OrderModel{
		ID:              e.ID,
		UserID:          e.UserID,
		MerchantID:      e.MerchantID,
		TotalAmount:     e.TotalAmount,
		Status:          e.Status.String(),
		ShippingAddress: e.ShippingAddress,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
		Items:           items,
	}
}

func toOrderItemModel(e *entity.OrderItem) *model.OrderItemModel {
	return &model.OrderItemModel{
		ID:        e.ID,
		OrderID:   e.OrderID,
		ProductID: e.ProductID,
		Quantity:  e.Quantity,
		Price:     e.Price,
		CreatedAt: e.CreatedAt,
	}
}

func toOrderEntity(m *model.OrderModel) *entity.Order {
	items := make([]entity.OrderItem, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, entity.OrderItem{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			CreatedAt: item.CreatedAt,
		})
	}

	return &entity.Order{
		ID:              m.ID,
		UserID:          m.UserID,
		MerchantID:      m.MerchantID,
		TotalAmount:     m.TotalAmount,
		Status:          entity.OrderStatus(m.Status),
		ShippingAddress: m.ShippingAddress,
		Items:           items,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
