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

// inventoryRepository implements the repository.InventoryRepository interface.
type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository is the constructor for inventoryRepository.
func NewInventoryRepository(db *gorm.DB) repository.InventoryRepository {
	return &inventoryRepository{
		db: db,
	}
}

// CreateInventory persists a new inventory record for a product.
func (repo *inventoryRepository) CreateInventory(ctx context.Context, inventory *entity.Inventory) error {
	inventoryM := &model.InventoryModel{
		ID:           inventory.ID,
		ProductID:    inventory.ProductID,
		CurrentStock: inventory.CurrentStock,
		LastUpdated:  inventory.LastUpdated,
	}

	if err := repo.db.WithContext(ctx).Create(inventoryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create inventory")
	}

	inventory.ID = inventoryM.ID

	return nil
}

// FindInventoryByProduct retrieves the inventory record for a product,
// joined with the product.
func (repo *inventoryRepository) FindInventoryByProduct(ctx context.Context, productID uuid.UUID) (*entity.InventoryItem, error) {
	var inventoryM model.InventoryModel

	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("product_id = ?", productID).
		First(&inventoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInventoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find inventory by product")
	}

	return toInventoryItemDomain(&inventoryM), nil
}

// ListInventory retrieves all inventory records joined with their products.
func (repo *inventoryRepository) ListInventory(ctx context.Context) ([]*entity.InventoryItem, error) {
	var inventoryModels []*model.InventoryModel

	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Order("last_updated DESC").
		Find(&inventoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list inventory")
	}

	items := make([]*entity.InventoryItem, 0, len(inventoryModels))
	for _, inventoryM := range inventoryModels {
		items = append(items, toInventoryItemDomain(inventoryM))
	}

	return items, nil
}

// SetStockLevel overwrites the on-hand stock for a product.
func (repo *inventoryRepository) SetStockLevel(ctx context.Context, productID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InventoryModel{}).
		Where("product_id = ?", productID).
		Updates(map[string]any{
			"current_stock": quantity,
			"last_updated":  time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set stock level")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInventoryNotFound
	}

	return nil
}

// DecrementStock atomically decreases the on-hand stock for a product,
// flooring the result at zero. The arithmetic happens inside a single UPDATE
// so concurrent orders for the same product never produce a lost update or
// a negative stock level.
func (repo *inventoryRepository) DecrementStock(ctx context.Context, productID uuid.UUID, amount int) (int, error) {
	var newStock []int

	result := repo.db.WithContext(ctx).Raw(`
		UPDATE inventory
		SET current_stock = GREATEST(current_stock - ?, 0),
		    last_updated = NOW()
		WHERE product_id = ?
		RETURNING current_stock
	`, amount, productID).Scan(&newStock)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to decrement stock")
	}

	if len(newStock) == 0 {
		return 0, repository.ErrInventoryNotFound
	}

	return newStock[0], nil
}

// --- Mapper Functions ---

// toInventoryItemDomain converts a GORM InventoryModel with its preloaded
// product to a domain InventoryItem.
func toInventoryItemDomain(data *model.InventoryModel) *entity.InventoryItem {
	item := &entity.InventoryItem{
		Inventory: entity.Inventory{
			ID:           data.ID,
			ProductID:    data.ProductID,
			CurrentStock: data.CurrentStock,
			LastUpdated:  data.LastUpdated,
		},
	}

	if data.Product != nil {
		item.Product = *toProductDomain(data.Product)
	}

	return item
}
