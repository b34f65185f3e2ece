package repository

import "context"

// RepositoryFactory creates repository instances bound to a single
// transaction. Only the repositories involved in multi-step atomic writes
// are exposed here.
type RepositoryFactory interface {
	NewProductRepository() ProductRepository
	NewInventoryRepository() InventoryRepository
}

// TransactionManager runs a function within one database transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
