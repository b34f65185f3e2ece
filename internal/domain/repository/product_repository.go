package repository

import (
	"context"

	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProductNotFound is returned when a product lookup yields no record.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	// CreateProduct persists a new product.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product by its unique ID.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListProducts retrieves all products, newest first.
	ListProducts(ctx context.Context) ([]*entity.Product, error)
}
