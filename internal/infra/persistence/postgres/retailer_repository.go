package postgres

import (
	"context"

	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/entity"
	domainerrors "github.com/MelissaPascal/sulten-dms-ai/internal/domain/errors"
	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/repository"
	"github.com/MelissaPascal/sulten-dms-ai/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// retailerRepository implements the repository.RetailerRepository interface.
type retailerRepository struct {
	db *gorm.DB
}

// NewRetailerRepository is the constructor for retailerRepository.
func NewRetailerRepository(db *gorm.DB) repository.RetailerRepository {
	return &retailerRepository{
		db: db,
	}
}

// CreateRetailer persists a new retailer.
func (repo *retailerRepository) CreateRetailer(ctx context.Context, retailer *entity.Retailer) error {
	retailerM := fromRetailerDomain(retailer)

	if err := repo.db.WithContext(ctx).Create(retailerM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create retailer")
	}

	retailer.ID = retailerM.ID
	retailer.CreatedAt = retailerM.CreatedAt

	return nil
}

// FindRetailerByID retrieves a retailer by its unique ID.
func (repo *retailerRepository) FindRetailerByID(ctx context.Context, id uuid.UUID) (*entity.Retailer, error) {
	var retailerM model.RetailerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&retailerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRetailerNotFound
		}

		return nil, errors.Wrap(err, "failed to find retailer by ID")
	}

	return toRetailerDomain(&retailerM), nil
}

// ListRetailers retrieves all retailers, newest first.
func (repo *retailerRepository) ListRetailers(ctx context.Context) ([]*entity.Retailer, error) {
	var retailerModels []*model.RetailerModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&retailerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list retailers")
	}

	retailers := make([]*entity.Retailer, 0, len(retailerModels))
	for _, retailerM := range retailerModels {
		retailers = append(retailers, toRetailerDomain(retailerM))
	}

	return retailers, nil
}

// --- Mapper Functions ---

// toRetailerDomain converts a GORM RetailerModel to a domain Retailer entity.
func toRetailerDomain(data *model.RetailerModel) *entity.Retailer {
	return &entity.Retailer{
		ID:            data.ID,
		Name:          data.Name,
		Location:      data.Location,
		ContactNumber: data.ContactNumber,
		Email:         data.Email,
		CreatedAt:     data.CreatedAt,
	}
}

// fromRetailerDomain converts a domain Retailer entity to a GORM RetailerModel.
func fromRetailerDomain(retailer *entity.Retailer) *model.RetailerModel {
	return &model.RetailerModel{
		ID:            retailer.ID,
		Name:          retailer.Name,
		Location:      retailer.Location,
		ContactNumber: retailer.ContactNumber,
		Email:         retailer.Email,
		CreatedAt:     retailer.CreatedAt,
	}
}
