package impl

import (
	"context"
	"math"

	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/entity"
	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/repository"
	"github.com/MelissaPascal/sulten-dms-ai/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type dashboardService struct {
	orderRepo     repository.OrderRepository
	inventoryRepo repository.InventoryRepository
}

// NewDashboardService creates the read-only dashboard aggregator.
func NewDashboardService(orderRepo repository.OrderRepository, inventoryRepo repository.InventoryRepository) usecase.DashboardUsecase {
	return &dashboardService{
		orderRepo:     orderRepo,
		inventoryRepo: inventoryRepo,
	}
}

// GetMetrics computes all aggregates from one orders read and one inventory
// read. The two reads are not snapshot-consistent with each other; metrics
// are best effort across them.
func (s *dashboardService) GetMetrics(ctx context.Context) (*usecase.DashboardMetrics, error) {
	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	inventory, err := s.inventoryRepo.ListInventory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory")
	}

	retailers := make(map[uuid.UUID]struct{})
	totalValue := 0.0
	for _, order := range orders {
		retailers[order.RetailerID] = struct{}{}
		totalValue += order.TotalAmount.InexactFloat64()
	}

	avgOrderValue := 0
	if len(orders) > 0 {
		avgOrderValue = int(math.Round(totalValue / float64(len(orders))))
	}

	itemsInStock := 0
	lowStock := make([]*entity.InventoryItem, 0)
	for _, item := range inventory {
		itemsInStock += item.CurrentStock
		if item.IsLowStock() {
			lowStock = append(lowStock, item)
		}
	}

	return &usecase.DashboardMetrics{
		TotalOrders:     len(orders),
		ItemsInStock:    itemsInStock,
		ActiveRetailers: len(retailers),
		AvgOrderValue:   avgOrderValue,
		LowStockItems:   lowStock,
	}, nil
}
