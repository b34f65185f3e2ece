package impl

import (
	"context"
	"fmt"
	"time"

	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/entity"
	domainerrors "github.com/MelissaPascal/sulten-dms-ai/internal/domain/errors"
	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/repository"
	"github.com/MelissaPascal/sulten-dms-ai/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type catalogService struct {
	retailerRepo    repository.RetailerRepository
	productRepo     repository.ProductRepository
	inventoryRepo   repository.InventoryRepository
	salesTargetRepo repository.SalesTargetRepository
	txManager       repository.TransactionManager
}

// NewCatalogService creates the retailer/product administration service.
func NewCatalogService(
	retailerRepo repository.RetailerRepository,
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	salesTargetRepo repository.SalesTargetRepository,
	txManager repository.TransactionManager,
) usecase.CatalogUsecase {
	return &catalogService{
		retailerRepo:    retailerRepo,
		productRepo:     productRepo,
		inventoryRepo:   inventoryRepo,
		salesTargetRepo: salesTargetRepo,
		txManager:       txManager,
	}
}

// CreateRetailer registers a new retail outlet.
func (s *catalogService) CreateRetailer(ctx context.Context, input usecase.CreateRetailerInput) (*entity.Retailer, error) {
	retailer := &entity.Retailer{
		ID:            uuid.New(),
		Name:          input.Name,
		Location:      input.Location,
		ContactNumber: input.ContactNumber,
		Email:         input.Email,
		CreatedAt:     time.Now(),
	}

	if err := s.retailerRepo.CreateRetailer(ctx, retailer); err != nil {
		return nil, errors.Wrap(err, "failed to create retailer")
	}

	return retailer, nil
}

// ListRetailers retrieves all retailers.
func (s *catalogService) ListRetailers(ctx context.Context) ([]*entity.Retailer, error) {
	retailers, err := s.retailerRepo.ListRetailers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list retailers")
	}

	return retailers, nil
}

// CreateProduct registers a product and its zero-stock inventory record in
// one transaction, keeping the product/inventory 1:1 invariant.
func (s *catalogService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	price, err := decimal.NewFromString(input.PricePerUnit)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("pricePerUnit is not a valid decimal")
	}
	if price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("pricePerUnit must not be negative")
	}

	unitsPerCase := input.UnitsPerCase
	if unitsPerCase == 0 {
		unitsPerCase = entity.DefaultUnitsPerCase
	}
	reorderThreshold := input.ReorderThreshold
	if reorderThreshold == 0 {
		reorderThreshold = entity.DefaultReorderThreshold
	}

	now := time.Now()
	product := &entity.Product{
		ID:               uuid.New(),
		Name:             input.Name,
		Description:      input.Description,
		PricePerUnit:     price,
		UnitsPerCase:     unitsPerCase,
		ReorderThreshold: reorderThreshold,
		CreatedAt:        now,
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewProductRepository().CreateProduct(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		inventory := &entity.Inventory{
			ID:          uuid.New(),
			ProductID:   product.ID,
			LastUpdated: now,
		}

		return errors.Wrap(repoFactory.NewInventoryRepository().CreateInventory(ctx, inventory), "failed to create inventory")
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// ListProducts retrieves all products.
func (s *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// ListInventory retrieves all inventory records joined with their products.
func (s *catalogService) ListInventory(ctx context.Context) ([]*entity.InventoryItem, error) {
	inventory, err := s.inventoryRepo.ListInventory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory")
	}

	return inventory, nil
}

// SetStockLevel overwrites the on-hand stock for a product, used by manual
// stock administration rather than the order workflow.
func (s *catalogService) SetStockLevel(ctx context.Context, productID uuid.UUID, quantity int) error {
	if quantity < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("quantity must not be negative")
	}

	if err := s.inventoryRepo.SetStockLevel(ctx, productID, quantity); err != nil {
		if errors.Is(err, repository.ErrInventoryNotFound) {
			return domainerrors.ErrInventoryNotFound.WithDetails(fmt.Sprintf("product %s", productID))
		}

		return errors.Wrap(err, "failed to set stock level")
	}

	return nil
}

// GetSalesTarget retrieves the sales target for one period.
func (s *catalogService) GetSalesTarget(ctx context.Context, month, year int) (*entity.SalesTarget, error) {
	if month < 1 || month > 12 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("month must be between 1 and 12")
	}

	target, err := s.salesTargetRepo.FindSalesTarget(ctx, month, year)
	if err != nil {
		if errors.Is(err, repository.ErrSalesTargetNotFound) {
			return nil, domainerrors.ErrSalesTargetNotFound.WithDetails(fmt.Sprintf("%d-%d", month, year))
		}

		return nil, errors.Wrap(err, "failed to find sales target")
	}

	return target, nil
}
