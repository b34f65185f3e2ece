package entity

import (
	"time"

	"github.com/google/uuid"
)

// Inventory holds the on-hand stock for exactly one product. The record is
// created with zero stock when the product is created.
type Inventory struct {
	ID           uuid.UUID `json:"id"`
	ProductID    uuid.UUID `json:"productId"`
	CurrentStock int       `json:"currentStock"` // Never negative.
	LastUpdated  time.Time `json:"lastUpdated"`
}

// InventoryItem is the inventory record joined with its product.
type InventoryItem struct {
	Inventory
	Product Product `json:"product"`
}

// IsLowStock reports whether the on-hand stock has reached the product's
// reorder threshold.
func (i *InventoryItem) IsLowStock() bool {
	return i.CurrentStock <= i.Product.ReorderThreshold
}
