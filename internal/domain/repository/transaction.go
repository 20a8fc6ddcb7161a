package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction. If the function
	// returns an error, the transaction is rolled back; otherwise committed.
	// All repository operations within the function share the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so multi-step operations stay atomic.
type RepositoryFactory interface {
	// Orders returns an OrderRepository bound to the current transaction.
	Orders() OrderRepository

	// Products returns a ProductRepository bound to the current transaction.
	Products() ProductRepository

	// Inventories returns an InventoryRepository bound to the current transaction.
	Inventories() InventoryRepository
}
