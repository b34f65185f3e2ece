package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesTargetModel is the GORM-specific struct for the 'sales_targets'
// table. One row exists per (month, year) period.
type SalesTargetModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Month         int             `gorm:"not null;uniqueIndex:idx_sales_targets_period"`
	Year          int             `gorm:"not null;uniqueIndex:idx_sales_targets_period"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0.00"`
}

// TableName explicitly sets the table name for GORM.
func (SalesTargetModel) TableName() string {
	return "sales_targets"
}
