package postgres

import (
	"context"
	"fmt"

	"subul/internal/domain/repository"
	"subul/internal/errors"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a TransactionManager backed by GORM.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside a single database transaction. The factory handed to
// fn yields repositories bound to that transaction, so every operation inside
// fn commits or rolls back together.
func (m *gormTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) (err error) {
	tx := m.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			err = errors.Wrap(fmt.Errorf("%v", r), "panic during transaction")
		}
	}()

	if err := fn(newRepositoryFactory(tx)); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "rollback also failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}

type gormRepositoryFactory struct {
	tx *gorm.DB
}

func newRepositoryFactory(tx *gorm.DB) repository.RepositoryFactory {
	return &gormRepositoryFactory{tx: tx}
}

func (f *gormRepositoryFactory) Orders() repository.OrderRepository {
	return NewOrderRepository(f.tx)
}

func (f *gormRepositoryFactory) Products() repository.ProductRepository {
	return NewProductRepository(f.tx)
}

func (f *gormRepositoryFactory) Inventories() repository.InventoryRepository {
	return NewInventoryRepository(f.tx)
}
