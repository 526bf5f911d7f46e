package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stayhub/backend/internal/domain/shared"
	"github.com/stayhub/backend/internal/domain/vendor"
)

// GormVendorOrderRepository implements vendor.Repository using GORM
type GormVendorOrderRepository struct {
	db *gorm.DB
}

// NewGormVendorOrderRepository creates a new GormVendorOrderRepository
func NewGormVendorOrderRepository(db *gorm.DB) *GormVendorOrderRepository {
	return &GormVendorOrderRepository{db: db}
}

// FindByID finds an order with its lines by ID
func (r *GormVendorOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*vendor.Order, error) {
	var o vendor.Order
	if err := r.db.WithContext(ctx).Preload("Items").First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// FindByOrderNumber finds an order by its human-readable number
func (r *GormVendorOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*vendor.Order, error) {
	var o vendor.Order
	if err := r.db.WithContext(ctx).Preload("Items").First(&o, "order_number = ?", orderNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// FindByPaymentRef finds an order by the gateway payment reference
func (r *GormVendorOrderRepository) FindByPaymentRef(ctx context.Context, ref string) (*vendor.Order, error) {
	var o vendor.Order
	if err := r.db.WithContext(ctx).Preload("Items").First(&o, "payment_ref = ?", ref).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// FindAll lists orders with filtering and pagination
func (r *GormVendorOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]vendor.Order, error) {
	var orders []vendor.Order
	query := r.buildQuery(ctx, filter).Preload("Items")
	if err := applyFilter(query, filter).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByBuyer lists orders placed by a buyer
func (r *GormVendorOrderRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID, filter shared.Filter) ([]vendor.Order, error) {
	var orders []vendor.Order
	query := r.buildQuery(ctx, filter).Preload("Items").Where("buyer_id = ?", buyerID)
	if err := applyFilter(query, filter).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save persists an order and its lines
func (r *GormVendorOrderRepository) Save(ctx context.Context, o *vendor.Order) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(o).Error
}

// Delete removes an order by ID
func (r *GormVendorOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&vendor.Order{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts orders matching the filter
func (r *GormVendorOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.buildQuery(ctx, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormVendorOrderRepository) buildQuery(ctx context.Context, filter shared.Filter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&vendor.Order{})
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("vendor_name ILIKE ? OR order_number ILIKE ?", pattern, pattern)
	}
	return query
}
