package model

import (
	"time"

	"github.com/google/uuid"
)

// InventoryModel is the GORM-specific struct for the 'inventory' table.
// Exactly one row exists per product; current_stock never goes negative.
type InventoryModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CurrentStock int       `gorm:"not null;default:0;check:current_stock >= 0"`
	LastUpdated  time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (InventoryModel) TableName() string {
	return "inventory"
}
