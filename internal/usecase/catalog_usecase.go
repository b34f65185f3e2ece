package usecase

import (
	"context"

	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRetailerInput carries the fields for registering a retailer.
type CreateRetailerInput struct {
	Name          string  `json:"name" validate:"required"`
	Location      string  `json:"location" validate:"required"`
	ContactNumber *string `json:"contactNumber,omitempty"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
}

// CreateProductInput carries the fields for registering a product. Zero
// values for UnitsPerCase and ReorderThreshold fall back to the defaults.
type CreateProductInput struct {
	Name             string  `json:"name" validate:"required"`
	Description      *string `json:"description,omitempty"`
	PricePerUnit     string  `json:"pricePerUnit" validate:"required"`
	UnitsPerCase     int     `json:"unitsPerCase,omitempty" validate:"omitempty,gt=0"`
	ReorderThreshold int     `json:"reorderThreshold,omitempty" validate:"omitempty,gt=0"`
}

// CatalogUsecase covers retailer and product administration plus the
// inventory and sales-target read paths.
type CatalogUsecase interface {
	CreateRetailer(ctx context.Context, input CreateRetailerInput) (*entity.Retailer, error)
	ListRetailers(ctx context.Context) ([]*entity.Retailer, error)

	// CreateProduct persists the product together with its zero-stock
	// inventory record in one transaction.
	CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	ListInventory(ctx context.Context) ([]*entity.InventoryItem, error)
	SetStockLevel(ctx context.Context, productID uuid.UUID, quantity int) error

	GetSalesTarget(ctx context.Context, month, year int) (*entity.SalesTarget, error)
}
