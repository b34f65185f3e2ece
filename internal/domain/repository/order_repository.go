package repository

import (
	"context"

	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrOrderNotFound is returned when an order lookup yields no record.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrderNumber is returned when an insert violates the unique
	// order number index. Callers regenerate the number and retry.
	ErrDuplicateOrderNumber = errors.New("duplicate order number")
)

// OrderRepository defines persistence operations for purchase orders.
type OrderRepository interface {
	// CreateOrder persists a new order. Returns ErrDuplicateOrderNumber when
	// the generated order number is already taken.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order by its internal ID, joined with its
	// retailer and product.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.OrderDetails, error)

	// FindOrderByNumber retrieves an order by its human-readable order number.
	FindOrderByNumber(ctx context.Context, orderNumber string) (*entity.OrderDetails, error)

	// ListOrders retrieves all orders joined with retailer and product,
	// newest first.
	ListOrders(ctx context.Context) ([]*entity.OrderDetails, error)

	// UpdateOrderStatus updates the status of the order with the given
	// internal ID and refreshes its update timestamp.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// UpdateOrderStatusByNumber updates the status of the order with the
	// given order number and refreshes its update timestamp.
	UpdateOrderStatusByNumber(ctx context.Context, orderNumber string, status entity.OrderStatus) error
}
