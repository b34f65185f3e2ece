package repository

import (
	"context"

	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrInventoryNotFound is returned when no inventory record exists for a product.
var ErrInventoryNotFound = errors.New("inventory not found")

// InventoryRepository defines persistence operations for inventory records.
type InventoryRepository interface {
	// CreateInventory persists a new inventory record for a product.
	CreateInventory(ctx context.Context, inventory *entity.Inventory) error

	// FindInventoryByProduct retrieves the inventory record for a product,
	// joined with the product.
	FindInventoryByProduct(ctx context.Context, productID uuid.UUID) (*entity.InventoryItem, error)

	// ListInventory retrieves all inventory records joined with their products.
	ListInventory(ctx context.Context) ([]*entity.InventoryItem, error)

	// SetStockLevel overwrites the on-hand stock for a product.
	SetStockLevel(ctx context.Context, productID uuid.UUID, quantity int) error

	// DecrementStock atomically decreases the on-hand stock for a product,
	// flooring the result at zero, and returns the new stock level. The
	// decrement must be a single conditional update so concurrent orders for
	// the same product never race.
	DecrementStock(ctx context.Context, productID uuid.UUID, amount int) (int, error)
}
