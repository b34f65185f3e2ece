package usecase

import (
	"context"

	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/entity"
)

// DashboardMetrics are the computed, read-only aggregates shown on the
// dashboard. Orders and inventory are read in one pass each; consistency
// across the two reads is best effort.
type DashboardMetrics struct {
	TotalOrders     int                     `json:"totalOrders"`
	ItemsInStock    int                     `json:"itemsInStock"`    // Sum of on-hand stock across all inventory.
	ActiveRetailers int                     `json:"activeRetailers"` // Distinct retailers with at least one order.
	AvgOrderValue   int                     `json:"avgOrderValue"`   // Mean order total, rounded to nearest integer.
	LowStockItems   []*entity.InventoryItem `json:"lowStockItems"`
}

// DashboardUsecase computes dashboard aggregates.
type DashboardUsecase interface {
	GetMetrics(ctx context.Context) (*DashboardMetrics, error)
}
