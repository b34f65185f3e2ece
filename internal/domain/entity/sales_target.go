package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesTarget is the revenue accumulation bucket for one (month, year)
// period. The record is created lazily on the first order of the period.
type SalesTarget struct {
	ID            uuid.UUID       `json:"id"`
	Month         int             `json:"month"` // 1-12
	Year          int             `json:"year"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
}
