package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderNumber string          `gorm:"type:text;not null;uniqueIndex"`
	RetailerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity    int             `gorm:"not null;check:quantity > 0"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status      string          `gorm:"type:text;not null;default:'pending'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Retailer *RetailerModel `gorm:"foreignKey:RetailerID"`
	Product  *ProductModel  `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
