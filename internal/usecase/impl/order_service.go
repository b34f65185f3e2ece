package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/entity"
	domainerrors "github.com/MelissaPascal/sulten-dms-ai/internal/domain/errors"
	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/repository"
	"github.com/MelissaPascal/sulten-dms-ai/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// orderNumberAttempts bounds the retries on an order number collision
// before the call fails with a conflict.
const orderNumberAttempts = 5

type orderService struct {
	logger          *slog.Logger
	retailerRepo    repository.RetailerRepository
	productRepo     repository.ProductRepository
	orderRepo       repository.OrderRepository
	inventoryRepo   repository.InventoryRepository
	salesTargetRepo repository.SalesTargetRepository
	alerts          usecase.AlertUsecase
	defaultTarget   decimal.Decimal
}

// NewOrderService creates the order workflow engine. defaultTarget is the
// target amount assigned to a sales period created lazily by its first order.
func NewOrderService(
	logger *slog.Logger,
	retailerRepo repository.RetailerRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	inventoryRepo repository.InventoryRepository,
	salesTargetRepo repository.SalesTargetRepository,
	alerts usecase.AlertUsecase,
	defaultTarget decimal.Decimal,
) usecase.OrderUsecase {
	return &orderService{
		logger:          logger,
		retailerRepo:    retailerRepo,
		productRepo:     productRepo,
		orderRepo:       orderRepo,
		inventoryRepo:   inventoryRepo,
		salesTargetRepo: salesTargetRepo,
		alerts:          alerts,
		defaultTarget:   defaultTarget,
	}
}

// CreateOrder runs the order creation workflow. Validation and entity
// resolution happen before any mutation. Once the order row is committed it
// is never rolled back: a failed inventory decrement or sales accumulation
// surfaces as an error without undoing the order, and notification failures
// are reported on the result instead of failing the call.
func (s *orderService) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*usecase.CreateOrderResult, error) {
	if input.Quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be a positive integer")
	}

	status := input.Status
	if status == "" {
		status = entity.OrderStatusPending
	}
	if !status.Valid() {
		return nil, domainerrors.ErrInvalidOrderStatus.WithDetails(string(status))
	}

	retailer, err := s.retailerRepo.FindRetailerByID(ctx, input.RetailerID)
	if err != nil {
		if errors.Is(err, repository.ErrRetailerNotFound) {
			return nil, domainerrors.ErrRetailerNotFound.WithDetails(fmt.Sprintf("retailer %s", input.RetailerID))
		}

		return nil, errors.Wrap(err, "failed to find retailer")
	}

	product, err := s.productRepo.FindProductByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WithDetails(fmt.Sprintf("product %s", input.ProductID))
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	total, err := deriveTotal(product, input.Quantity, input.TotalAmount)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.Order{
		ID:          uuid.New(),
		RetailerID:  retailer.ID,
		ProductID:   product.ID,
		Quantity:    input.Quantity,
		TotalAmount: total,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.persistWithUniqueNumber(ctx, order, now); err != nil {
		return nil, err
	}

	// The order row is committed from here on. Decrement and accumulation
	// failures surface to the caller but leave the order in place.
	newStock, err := s.inventoryRepo.DecrementStock(ctx, product.ID, input.Quantity)
	if err != nil {
		return nil, errors.Wrapf(err, "order %s created but inventory decrement failed", order.OrderNumber)
	}

	if _, err := s.salesTargetRepo.AccumulateSales(ctx, int(now.Month()), now.Year(), total, s.defaultTarget); err != nil {
		return nil, errors.Wrapf(err, "order %s created but sales target accumulation failed", order.OrderNumber)
	}

	details := &entity.OrderDetails{
		Order:    *order,
		Retailer: *retailer,
		Product:  *product,
	}

	deliveries := s.alerts.NotifyOrderCreated(ctx, details, newStock)
	for _, delivery := range deliveries {
		if !delivery.Delivered {
			s.logger.Warn("Alert delivery failed",
				slog.String("orderNumber", order.OrderNumber),
				slog.String("kind", string(delivery.Kind)),
				slog.String("recipient", delivery.Recipient),
				slog.String("error", delivery.Error),
			)
		}
	}

	return &usecase.CreateOrderResult{
		Order:         details,
		NewStock:      newStock,
		Notifications: deliveries,
	}, nil
}

// persistWithUniqueNumber inserts the order, regenerating the order number
// on a uniqueness collision up to orderNumberAttempts times.
func (s *orderService) persistWithUniqueNumber(ctx context.Context, order *entity.Order, now time.Time) error {
	for attempt := 1; attempt <= orderNumberAttempts; attempt++ {
		order.OrderNumber = newOrderNumber(now)

		err := s.orderRepo.CreateOrder(ctx, order)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrDuplicateOrderNumber) {
			return errors.Wrap(err, "failed to create order")
		}

		s.logger.Debug("Order number collision, regenerating",
			slog.String("orderNumber", order.OrderNumber),
			slog.Int("attempt", attempt),
		)
	}

	return domainerrors.ErrOrderNumberConflict.WithDetails(
		fmt.Sprintf("exhausted %d attempts", orderNumberAttempts))
}

// UpdateOrderStatus resolves identifier as an internal ID first and falls
// back to the order number. Status changes never re-trigger inventory or
// alert side effects.
func (s *orderService) UpdateOrderStatus(ctx context.Context, identifier string, status entity.OrderStatus) error {
	if !status.Valid() {
		return domainerrors.ErrInvalidOrderStatus.WithDetails(string(status))
	}

	if id, parseErr := uuid.Parse(identifier); parseErr == nil {
		err := s.orderRepo.UpdateOrderStatus(ctx, id, status)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrOrderNotFound) {
			return errors.Wrap(err, "failed to update order status")
		}
	}

	err := s.orderRepo.UpdateOrderStatusByNumber(ctx, identifier, status)
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrOrderNotFound) {
		return domainerrors.ErrOrderNotFound.WithDetails(identifier)
	}

	return errors.Wrap(err, "failed to update order status by number")
}

// GetOrder resolves identifier as an internal ID first and falls back to
// the order number.
func (s *orderService) GetOrder(ctx context.Context, identifier string) (*entity.OrderDetails, error) {
	if id, parseErr := uuid.Parse(identifier); parseErr == nil {
		order, err := s.orderRepo.FindOrderByID(ctx, id)
		if err == nil {
			return order, nil
		}
		if !errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(err, "failed to find order by ID")
		}
	}

	order, err := s.orderRepo.FindOrderByNumber(ctx, identifier)
	if err == nil {
		return order, nil
	}
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound.WithDetails(identifier)
	}

	return nil, errors.Wrap(err, "failed to find order by number")
}

// ListOrders retrieves all orders joined with retailer and product.
func (s *orderService) ListOrders(ctx context.Context) ([]*entity.OrderDetails, error) {
	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// deriveTotal computes the authoritative order total from the product's
// unit price. A caller-declared total must parse as a non-negative decimal
// with at most two fractional digits and equal the derived value.
func deriveTotal(product *entity.Product, quantity int, declared string) (decimal.Decimal, error) {
	total := product.PricePerUnit.Mul(decimal.NewFromInt(int64(quantity)))

	if declared == "" {
		return total, nil
	}

	declaredAmount, err := decimal.NewFromString(declared)
	if err != nil {
		return decimal.Zero, domainerrors.ErrValidationFailed.WithDetails("totalAmount is not a valid decimal")
	}
	if declaredAmount.IsNegative() {
		return decimal.Zero, domainerrors.ErrValidationFailed.WithDetails("totalAmount must not be negative")
	}
	if declaredAmount.Exponent() < -2 {
		return decimal.Zero, domainerrors.ErrValidationFailed.WithDetails("totalAmount must have at most 2 fractional digits")
	}
	if !declaredAmount.Equal(total) {
		return decimal.Zero, domainerrors.ErrAmountMismatch.WithDetails(
			fmt.Sprintf("declared %s, derived %s", declaredAmount.StringFixed(2), total.StringFixed(2)))
	}

	return total, nil
}

// newOrderNumber generates a human-readable order number with a random
// 4-digit suffix. Uniqueness is enforced by the store's unique index; on a
// collision the workflow regenerates and retries.
func newOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%d-%04d", now.Year(), rand.IntN(10000))
}
