package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name             string          `gorm:"type:text;not null"`
	Description      *string         `gorm:"type:text"`
	PricePerUnit     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	UnitsPerCase     int             `gorm:"not null;default:24"`
	ReorderThreshold int             `gorm:"not null;default:20"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
