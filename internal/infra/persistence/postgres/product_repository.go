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

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// CreateProduct persists a new product.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt

	return nil
}

// FindProductByID retrieves a product by its unique ID.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// ListProducts retrieves all products, newest first.
func (repo *productRepository) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:               data.ID,
		Name:             data.Name,
		Description:      data.Description,
		PricePerUnit:     data.PricePerUnit,
		UnitsPerCase:     data.UnitsPerCase,
		ReorderThreshold: data.ReorderThreshold,
		CreatedAt:        data.CreatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:               product.ID,
		Name:             product.Name,
		Description:      product.Description,
		PricePerUnit:     product.PricePerUnit,
		UnitsPerCase:     product.UnitsPerCase,
		ReorderThreshold: product.ReorderThreshold,
		CreatedAt:        product.CreatedAt,
	}
}
