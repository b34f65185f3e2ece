package repository

import (
	"context"

	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrSalesTargetNotFound is returned when no target exists for a period.
var ErrSalesTargetNotFound = errors.New("sales target not found")

// SalesTargetRepository defines persistence operations for monthly sales targets.
type SalesTargetRepository interface {
	// FindSalesTarget retrieves the target for a (month, year) period.
	FindSalesTarget(ctx context.Context, month, year int) (*entity.SalesTarget, error)

	// AccumulateSales atomically adds amount to the period's current amount,
	// creating the period record with defaultTarget when absent, and returns
	// the updated record.
	AccumulateSales(ctx context.Context, month, year int, amount, defaultTarget decimal.Decimal) (*entity.SalesTarget, error)
}
