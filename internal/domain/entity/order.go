package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of a purchase order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}

	return false
}

// Order represents a retailer purchase order for a single product.
type Order struct {
	ID          uuid.UUID       `json:"id"`
	OrderNumber string          `json:"orderNumber"` // Human-readable, unique, format ORD-<year>-<4 digits>.
	RetailerID  uuid.UUID       `json:"retailerId"`
	ProductID   uuid.UUID       `json:"productId"`
	Quantity    int             `json:"quantity"`    // Positive number of cases.
	TotalAmount decimal.Decimal `json:"totalAmount"` // Quantity x unit price at order time.
	Status      OrderStatus     `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// OrderDetails is the order joined with its retailer and product.
type OrderDetails struct {
	Order
	Retailer Retailer `json:"retailer"`
	Product  Product  `json:"product"`
}
