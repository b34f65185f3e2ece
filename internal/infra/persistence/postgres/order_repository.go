package postgres

import (
	"context"
	"time"

	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/entity"
	domainerrors "github.com/MelissaPascal/sulten-dms-ai/internal/domain/errors"
	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/repository"
	"github.com/MelissaPascal/sulten-dms-ai/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists a new order. A unique index violation on the order
// number surfaces as repository.ErrDuplicateOrderNumber so the workflow can
// regenerate and retry.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrderNumber
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid retailer or product reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindOrderByID retrieves an order by its internal ID, joined with its
// retailer and product.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.OrderDetails, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Retailer").
		Preload("Product").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDetailsDomain(&orderM), nil
}

// FindOrderByNumber retrieves an order by its human-readable order number.
func (repo *orderRepository) FindOrderByNumber(ctx context.Context, orderNumber string) (*entity.OrderDetails, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Retailer").
		Preload("Product").
		Where("order_number = ?", orderNumber).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by number")
	}

	return toOrderDetailsDomain(&orderM), nil
}

// ListOrders retrieves all orders joined with retailer and product, newest first.
func (repo *orderRepository) ListOrders(ctx context.Context) ([]*entity.OrderDetails, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Retailer").
		Preload("Product").
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.OrderDetails, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDetailsDomain(orderM))
	}

	return orders, nil
}

// UpdateOrderStatus updates the status of the order with the given internal ID.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	return repo.updateStatus(ctx, "id = ?", id, status)
}

// UpdateOrderStatusByNumber updates the status of the order with the given order number.
func (repo *orderRepository) UpdateOrderStatusByNumber(ctx context.Context, orderNumber string, status entity.OrderStatus) error {
	return repo.updateStatus(ctx, "order_number = ?", orderNumber, status)
}

func (repo *orderRepository) updateStatus(ctx context.Context, query string, arg any, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where(query, arg).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDetailsDomain converts a GORM OrderModel with its preloaded
// retailer and product to a domain OrderDetails.
func toOrderDetailsDomain(data *model.OrderModel) *entity.OrderDetails {
	details := &entity.OrderDetails{
		Order: entity.Order{
			ID:          data.ID,
			OrderNumber: data.OrderNumber,
			RetailerID:  data.RetailerID,
			ProductID:   data.ProductID,
			Quantity:    data.Quantity,
			TotalAmount: data.TotalAmount,
			Status:      entity.OrderStatus(data.Status),
			CreatedAt:   data.CreatedAt,
			UpdatedAt:   data.UpdatedAt,
		},
	}

	if data.Retailer != nil {
		details.Retailer = *toRetailerDomain(data.Retailer)
	}
	if data.Product != nil {
		details.Product = *toProductDomain(data.Product)
	}

	return details
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(order *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		RetailerID:  order.RetailerID,
		ProductID:   order.ProductID,
		Quantity:    order.Quantity,
		TotalAmount: order.TotalAmount,
		Status:      string(order.Status),
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}
