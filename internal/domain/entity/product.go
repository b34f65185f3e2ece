package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Defaults applied at product creation when the caller leaves the fields unset.
const (
	DefaultUnitsPerCase     = 24
	DefaultReorderThreshold = 20
)

// Product represents a distributed product line.
type Product struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Description      *string         `json:"description,omitempty"`
	PricePerUnit     decimal.Decimal `json:"pricePerUnit"`     // Unit price with 2 fractional digits.
	UnitsPerCase     int             `json:"unitsPerCase"`     // Positive; defaults to DefaultUnitsPerCase.
	ReorderThreshold int             `json:"reorderThreshold"` // Stock level at or below which the product is low-stock.
	CreatedAt        time.Time       `json:"createdAt"`
}
