package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"subul/config"
	"subul/internal/domain/entity"
	domainerrors "subul/internal/domain/errors"
	"subul/internal/domain/repository"
	"subul/internal/domain/service"
	"subul/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo        repository.OrderRepository
	notificationRepo repository.NotificationRepository
	txManager        repository.TransactionManager
	recorder         service.ActivityRecorder
	pager            pager
	logger           *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	orderRepo repository.OrderRepository,
	notificationRepo repository.NotificationRepository,
	txManager repository.TransactionManager,
	recorder service.ActivityRecorder,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orderRepo:        orderRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
		recorder:         recorder,
		pager:            newPager(cfg.Pagination),
		logger:           logger,
	}
}

// CreateOrder places an order atomically: every line is priced from the
// current catalog, stock is reserved, and the order plus its items are
// written in one transaction. Caller-supplied prices never enter the total.
func (srv *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrEmptyOrder
	}

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		products := repoFactory.Products()
		inventories := repoFactory.Inventories()

		var total float64
		items := make([]entity.OrderItem, 0, len(input.Items))

		for _, line := range input.Items {
			product, err := products.FindByID(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return domainerrors.ErrProductNotFound.WithDetails("product " + line.ProductID.String())
				}

				return errors.Wrap(err, "failed to load product")
			}

			if !product.IsActive {
				return domainerrors.ErrValidationFailed.WithDetails("product is not available: " + product.Name)
			}
			if product.MerchantID != input.MerchantID {
				return domainerrors.ErrValidationFailed.WithDetails("product belongs to another merchant: " + product.Name)
			}

			if err := reserveStock(ctx, inventories, product, line.Quantity); err != nil {
				return err
			}

			total += product.Price * float64(line.Quantity)
			items = append(items, entity.OrderItem{
				ProductID: product.ID,
				Quantity:  line.Quantity,
				Price:     product.Price,
			})
		}

		order = &entity.Order{
			UserID:          userID,
			MerchantID:      input.MerchantID,
			TotalAmount:     total,
			Status:          entity.OrderStatusPending,
			ShippingAddress: input.ShippingAddress,
			Items:           items,
		}

		if err := repoFactory.Orders().Create(ctx, order); err != nil {
			if errors.Is(err, repository.ErrInvalidReference) {
				return domainerrors.ErrMerchantNotFound
			}

			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.recorder.RecordOrderAnalytics(ctx, service.OrderAnalytics{
		OrderID:     order.ID,
		MerchantID:  order.MerchantID,
		TotalAmount: order.TotalAmount,
		Status:      order.Status.String(),
		ItemCount:   len(order.Items),
		Timestamp:   time.Now(),
	})

	srv.notifyOrderPlaced(ctx, order)

	srv.logger.Info("Order created", "orderID", order.ID, "userID", userID, "total", order.TotalAmount)

	return order, nil
}

func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

func (srv *orderService) ListOrdersByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	limit, offset = srv.pager.normalize(limit, offset)

	orders, err := srv.orderRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// UpdateOrder applies a sparse order update. A status change is validated
// against the current stored status before anything is written.
func (srv *orderService) UpdateOrder(ctx context.Context, id uuid.UUID, input *usecase.UpdateOrderInput) (*entity.Order, error) {
	patch := entity.OrderPatch{ShippingAddress: input.ShippingAddress}

	if input.Status != nil {
		next := entity.OrderStatus(*input.Status)

		current, err := srv.GetOrder(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := entity.ValidateTransition(current.Status, next); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("cannot move order from %s to %s", current.Status, next))
		}
		patch.Status = &next
	}

	order, err := srv.orderRepo.Update(ctx, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmptyPatch):
			return nil, domainerrors.ErrNoFieldsToUpdate
		case errors.Is(err, repository.ErrOrderNotFound):
			return nil, domainerrors.ErrOrderNotFound
		default:
			return nil, errors.Wrap(err, "failed to update order")
		}
	}

	srv.logger.Info("Order updated", "orderID", id)

	return order, nil
}

// reserveStock moves line quantity from available to reserved, failing when
// the product has no stock record or not enough unreserved units.
func reserveStock(ctx context.Context, inventories repository.InventoryRepository, product *entity.Product, quantity int) error {
	inventory, err := inventories.FindByProductID(ctx, product.ID)
	if err != nil {
		if errors.Is(err, repository.ErrInventoryNotFound) {
			return domainerrors.ErrValidationFailed.WithDetails("no stock record for product: " + product.Name)
		}

		return errors.Wrap(err, "failed to load inventory")
	}

	available := inventory.Quantity - inventory.ReservedQuantity
	if available < quantity {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("insufficient stock for %s: requested %d, available %d", product.Name, quantity, available))
	}

	reserved := inventory.ReservedQuantity + quantity
	if _, err := inventories.Update(ctx, inventory.ID, entity.InventoryPatch{ReservedQuantity: &reserved}); err != nil {
		return errors.Wrap(err, "failed to reserve stock")
	}

	return nil
}

// notifyOrderPlaced writes an in-app notification. Failures are logged and
// dropped; a missing notification never fails an already-committed order.
func (srv *orderService) notifyOrderPlaced(ctx context.Context, order *entity.Order) {
	notification := &entity.Notification{
		UserID:  order.UserID,
		Title:   "Order placed",
		Message: fmt.Sprintf("Your order for %.2f was placed successfully.", order.TotalAmount),
		Type:    "order",
	}

	if err := srv.notificationRepo.Create(ctx, notification); err != nil {
		srv.logger.Warn("Order notification dropped", "orderID", order.ID, "error", err)
	}
}
