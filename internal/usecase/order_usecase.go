// Package usecase defines the inbound operation surface of the application
// core, independent of any transport.
package usecase

import (
	"context"

	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrderInput carries the caller-supplied fields for a new order.
type CreateOrderInput struct {
	RetailerID uuid.UUID `json:"retailerId" validate:"required"`
	ProductID  uuid.UUID `json:"productId" validate:"required"`
	Quantity   int       `json:"quantity" validate:"required,gt=0"`

	// TotalAmount is optional. The workflow always derives the authoritative
	// total from quantity and the product's unit price; when the caller
	// supplies a value it must match the derived total.
	TotalAmount string `json:"totalAmount,omitempty"`

	// Status is optional and defaults to pending.
	Status entity.OrderStatus `json:"status,omitempty"`
}

// CreateOrderResult is the outcome of a successful order creation. The order
// itself is durably stored and the inventory decrement applied exactly once;
// the notification reports describe best-effort side effects.
type CreateOrderResult struct {
	Order *entity.OrderDetails `json:"order"`

	// NewStock is the post-decrement stock level for the ordered product.
	NewStock int `json:"newStock"`

	// Notifications holds the per-recipient delivery outcome for every alert
	// the policy fired. Failures here never fail the order.
	Notifications []AlertDelivery `json:"notifications,omitempty"`
}

// OrderUsecase is the order workflow engine's public contract.
type OrderUsecase interface {
	// CreateOrder validates, persists and post-processes a new order:
	// referenced retailer and product must exist before any mutation, the
	// inventory decrement is atomic and floored at zero, the monthly sales
	// target accumulates the order total, and the alert policy decides which
	// notifications fan out. Not idempotent.
	CreateOrder(ctx context.Context, input CreateOrderInput) (*CreateOrderResult, error)

	// UpdateOrderStatus updates the status of the order matching identifier,
	// which may be the internal ID or the order number. It never re-triggers
	// inventory or alert side effects.
	UpdateOrderStatus(ctx context.Context, identifier string, status entity.OrderStatus) error

	// GetOrder retrieves one order by internal ID or order number.
	GetOrder(ctx context.Context, identifier string) (*entity.OrderDetails, error)

	// ListOrders retrieves all orders, newest first.
	ListOrders(ctx context.Context) ([]*entity.OrderDetails, error)
}
