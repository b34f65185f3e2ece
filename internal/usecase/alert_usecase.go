package usecase

import (
	"context"

	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/entity"
)

// AlertKind identifies which policy rule triggered a notification.
type AlertKind string

const (
	AlertKindPurchaseOrder AlertKind = "purchase_order"
	AlertKindLowStock      AlertKind = "low_stock"
)

// AlertDelivery is the per-recipient outcome of one dispatched alert.
type AlertDelivery struct {
	Kind      AlertKind `json:"kind"`
	Recipient string    `json:"recipient"`
	Delivered bool      `json:"delivered"`
	Error     string    `json:"error,omitempty"`
}

// AlertUsecase owns the process-wide alert configuration and the decision
// and dispatch logic for order notifications.
type AlertUsecase interface {
	// GetConfig returns a snapshot of the current configuration.
	GetConfig() entity.AlertConfig

	// UpdateConfig replaces the configuration wholesale. Duplicate
	// recipients are rejected.
	UpdateConfig(cfg entity.AlertConfig) error

	// NotifyOrderCreated evaluates the alert policy for a freshly created
	// order and fans out every triggered alert to all configured recipients
	// concurrently. It reports per-recipient outcomes and never fails.
	NotifyOrderCreated(ctx context.Context, order *entity.OrderDetails, newStock int) []AlertDelivery
}
