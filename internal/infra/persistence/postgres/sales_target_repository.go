package postgres

import (
	"context"

	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/entity"
	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/repository"
	"github.com/MelissaPascal/sulten-dms-ai/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// salesTargetRepository implements the repository.SalesTargetRepository interface.
type salesTargetRepository struct {
	db *gorm.DB
}

// NewSalesTargetRepository is the constructor for salesTargetRepository.
func NewSalesTargetRepository(db *gorm.DB) repository.SalesTargetRepository {
	return &salesTargetRepository{
		db: db,
	}
}

// FindSalesTarget retrieves the sales target record for a (month, year) period.
func (repo *salesTargetRepository) FindSalesTarget(ctx context.Context, month, year int) (*entity.SalesTarget, error) {
	var targetM model.SalesTargetModel

	if err := repo.db.WithContext(ctx).
		Where("month = ? AND year = ?", month, year).
		First(&targetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSalesTargetNotFound
		}

		return nil, errors.Wrap(err, "failed to find sales target")
	}

	return toSalesTargetDomain(&targetM), nil
}

// AccumulateSales atomically adds amount to the period's running total.
// The period row is created with defaultTarget on first use; concurrent
// accumulations for the same period serialize on the upsert.
func (repo *salesTargetRepository) AccumulateSales(ctx context.Context, month, year int, amount, defaultTarget decimal.Decimal) (*entity.SalesTarget, error) {
	var targetM model.SalesTargetModel

	err := repo.db.WithContext(ctx).Raw(`
		INSERT INTO sales_targets (id, month, year, target_amount, current_amount)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (month, year) DO UPDATE
		SET current_amount = sales_targets.current_amount + EXCLUDED.current_amount
		RETURNING id, month, year, target_amount, current_amount`,
		uuid.New(), month, year, defaultTarget, amount,
	).Scan(&targetM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to accumulate sales")
	}

	return toSalesTargetDomain(&targetM), nil
}

// --- Mapper Functions ---

// toSalesTargetDomain converts a GORM SalesTargetModel to a domain SalesTarget entity.
func toSalesTargetDomain(data *model.SalesTargetModel) *entity.SalesTarget {
	return &entity.SalesTarget{
		ID:            data.ID,
		Month:         data.Month,
		Year:          data.Year,
		TargetAmount:  data.TargetAmount,
		CurrentAmount: data.CurrentAmount,
	}
}
