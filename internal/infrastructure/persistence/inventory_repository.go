package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stayhub/backend/internal/domain/inventory"
	"github.com/stayhub/backend/internal/domain/shared"
)

// GormInventoryRepository implements inventory.Repository using GORM
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GormInventoryRepository
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// FindByID finds an item by its ID
func (r *GormInventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Item, error) {
	var item inventory.Item
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAll lists items with filtering, search and pagination
func (r *GormInventoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Item, error) {
	var items []inventory.Item
	query := r.buildQuery(ctx, filter)
	if err := applyFilter(query, filter).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByCategory lists items in a category
func (r *GormInventoryRepository) FindByCategory(ctx context.Context, category inventory.Category, filter shared.Filter) ([]inventory.Item, error) {
	var items []inventory.Item
	query := r.buildQuery(ctx, filter).Where("category = ?", category)
	if err := applyFilter(query, filter).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindLowStock lists items at or below their reorder threshold
func (r *GormInventoryRepository) FindLowStock(ctx context.Context) ([]inventory.Item, error) {
	var items []inventory.Item
	err := r.db.WithContext(ctx).Model(&inventory.Item{}).
		Where("current_stock <= CASE WHEN reorder_level > 0 THEN reorder_level ELSE min_stock END").
		Order("current_stock ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Save persists an item, creating or updating as needed
func (r *GormInventoryRepository) Save(ctx context.Context, item *inventory.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// ApplyMovement runs the stock change against a row-locked load of
// the item so concurrent movements serialize on the database
func (r *GormInventoryRepository) ApplyMovement(ctx context.Context, itemID uuid.UUID, apply func(*inventory.Item) (*inventory.Movement, error)) (*inventory.Item, *inventory.Movement, error) {
	var (
		item     inventory.Item
		movement *inventory.Movement
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&item, "id = ?", itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		mv, err := apply(&item)
		if err != nil {
			return err
		}
		movement = mv
		if err := tx.Save(&item).Error; err != nil {
			return err
		}
		return tx.Create(movement).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &item, movement, nil
}

// Delete removes an item by ID
func (r *GormInventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&inventory.Item{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts items matching the filter
func (r *GormInventoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.buildQuery(ctx, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormInventoryRepository) buildQuery(ctx context.Context, filter shared.Filter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&inventory.Item{})
	if category, ok := filter.Filters["category"]; ok {
		query = query.Where("category = ?", category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR item_number ILIKE ?", pattern, pattern)
	}
	return query
}

// GormMovementRepository implements inventory.MovementRepository
type GormMovementRepository struct {
	db *gorm.DB
}

// NewGormMovementRepository creates a new GormMovementRepository
func NewGormMovementRepository(db *gorm.DB) *GormMovementRepository {
	return &GormMovementRepository{db: db}
}

// FindByItem lists the movement ledger for a single item
func (r *GormMovementRepository) FindByItem(ctx context.Context, itemID uuid.UUID, filter shared.Filter) ([]inventory.Movement, error) {
	var movements []inventory.Movement
	query := r.db.WithContext(ctx).Model(&inventory.Movement{}).Where("item_id = ?", itemID)
	if err := applyFilter(query, filter).Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// FindAll lists all movements
func (r *GormMovementRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Movement, error) {
	var movements []inventory.Movement
	query := r.db.WithContext(ctx).Model(&inventory.Movement{})
	if err := applyFilter(query, filter).Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// Save appends a movement ledger entry
func (r *GormMovementRepository) Save(ctx context.Context, movement *inventory.Movement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

// Count counts movements matching the filter
func (r *GormMovementRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&inventory.Movement{})
	if itemID, ok := filter.Filters["item_id"]; ok {
		query = query.Where("item_id = ?", itemID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
