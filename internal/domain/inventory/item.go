package inventory

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/stayhub/backend/internal/domain/shared"
	"github.com/stayhub/backend/internal/domain/shared/valueobject"
)

// Category classifies an inventory item
type Category string

const (
	CategoryLinen       Category = "linen"
	CategoryToiletries  Category = "toiletries"
	CategoryKitchen     Category = "kitchen"
	CategoryElectronics Category = "electronics"
	CategoryFurniture   Category = "furniture"
	CategoryCleaning    Category = "cleaning"
	CategoryOther       Category = "other"
)

var validCategories = map[Category]bool{
	CategoryLinen:       true,
	CategoryToiletries:  true,
	CategoryKitchen:     true,
	CategoryElectronics: true,
	CategoryFurniture:   true,
	CategoryCleaning:    true,
	CategoryOther:       true,
}

// IsValid reports whether the category is one of the known values
func (c Category) IsValid() bool {
	return validCategories[c]
}

// Status describes the stock level of an item. Except for on_order it
// is always derived from the stock levels, never stored independently.
type Status string

const (
	StatusInStock    Status = "in_stock"
	StatusLowStock   Status = "low_stock"
	StatusOutOfStock Status = "out_of_stock"
	StatusOnOrder    Status = "on_order"
)

// Item is the inventory item aggregate root
type Item struct {
	shared.BaseAggregateRoot
	ItemNumber   string            `gorm:"not null;size:32;uniqueIndex"`
	Name         string            `gorm:"not null;size:255"`
	Category     Category          `gorm:"not null;size:32;index"`
	CurrentStock int               `gorm:"not null;default:0"`
	MinStock     int               `gorm:"not null;default:0"`
	ReorderLevel int               `gorm:"not null;default:0"`
	OnOrder      bool              `gorm:"not null;default:false"`
	Unit         string            `gorm:"size:32"`
	UnitCost     valueobject.Money `gorm:"type:decimal(20,4)"`
	Currency     string            `gorm:"size:3;default:'NGN'"`
	Location     string            `gorm:"size:255"`
	Supplier     string            `gorm:"size:255"`
	Notes        string            `gorm:"size:1000"`
	Barcode      string            `gorm:"size:64;index"`
}

// TableName returns the database table name
func (Item) TableName() string {
	return "inventory_items"
}

// NewItemParams carries the attributes for creating an item
type NewItemParams struct {
	ItemNumber   string
	Name         string
	Category     Category
	CurrentStock int
	MinStock     int
	ReorderLevel int
	Unit         string
	UnitCost     valueobject.Money
	Location     string
	Supplier     string
	Notes        string
	Barcode      string
}

// NewItem creates a new inventory item. When ItemNumber is empty a
// unique one is generated.
func NewItem(p NewItemParams) (*Item, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return nil, shared.NewDomainError("INVALID_ITEM_NAME", "item name cannot be empty")
	}
	if !p.Category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", fmt.Sprintf("unknown category: %s", p.Category))
	}
	if p.CurrentStock < 0 || p.MinStock < 0 || p.ReorderLevel < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "stock levels cannot be negative")
	}
	if p.UnitCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "unit cost cannot be negative")
	}

	base := shared.NewBaseAggregateRoot()
	number := strings.TrimSpace(p.ItemNumber)
	if number == "" {
		number = generateItemNumber(base.ID)
	}

	item := &Item{
		BaseAggregateRoot: base,
		ItemNumber:        number,
		Name:              p.Name,
		Category:          p.Category,
		CurrentStock:      p.CurrentStock,
		MinStock:          p.MinStock,
		ReorderLevel:      p.ReorderLevel,
		Unit:              p.Unit,
		UnitCost:          p.UnitCost,
		Currency:          p.UnitCost.Currency(),
		Location:          p.Location,
		Supplier:          p.Supplier,
		Notes:             p.Notes,
		Barcode:           p.Barcode,
	}
	item.AddDomainEvent(NewItemCreatedEvent(item))
	return item, nil
}

func generateItemNumber(id uuid.UUID) string {
	return "INV-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:10])
}

// reorderThreshold is the level at or below which stock counts as low.
// ReorderLevel takes precedence when set; MinStock is the fallback.
func (i *Item) reorderThreshold() int {
	if i.ReorderLevel > 0 {
		return i.ReorderLevel
	}
	return i.MinStock
}

// Status derives the stock status from the current levels.
// Zero stock is out of stock even when the threshold is also zero.
func (i *Item) Status() Status {
	switch {
	case i.OnOrder:
		return StatusOnOrder
	case i.CurrentStock == 0:
		return StatusOutOfStock
	case i.CurrentStock <= i.reorderThreshold():
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// IsBelowThreshold reports whether stock is at or below the reorder threshold
func (i *Item) IsBelowThreshold() bool {
	return i.CurrentStock <= i.reorderThreshold()
}

// TotalValue returns the value of the current stock
func (i *Item) TotalValue() valueobject.Money {
	return i.UnitCost.MulInt(int64(i.CurrentStock))
}

// ReceiveStock increases the current stock level and returns the
// ledger entry recording the change.
func (i *Item) ReceiveStock(quantity int, reason string, performedBy uuid.UUID) (*Movement, error) {
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "quantity must be positive")
	}
	prev := i.CurrentStock
	i.CurrentStock += quantity
	i.OnOrder = false
	i.IncrementVersion()
	i.AddDomainEvent(NewStockChangedEvent(i, MovementIn, quantity))
	return newMovement(i.ID, MovementIn, quantity, reason, prev, i.CurrentStock, performedBy)
}

// WithdrawStock decreases the current stock level. The caller observes
// ErrInsufficientStock when the requested quantity exceeds what is on
// hand; stock never goes negative. Withdrawing the exact remaining
// quantity succeeds.
func (i *Item) WithdrawStock(quantity int, reason string, performedBy uuid.UUID) (*Movement, error) {
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "quantity must be positive")
	}
	if quantity > i.CurrentStock {
		return nil, shared.ErrInsufficientStock
	}
	prev := i.CurrentStock
	i.CurrentStock -= quantity
	i.IncrementVersion()
	i.AddDomainEvent(NewStockChangedEvent(i, MovementOut, quantity))
	if i.IsBelowThreshold() {
		i.AddDomainEvent(NewLowStockEvent(i))
	}
	return newMovement(i.ID, MovementOut, quantity, reason, prev, i.CurrentStock, performedBy)
}

// AdjustStock sets the stock to an absolute quantity, recording the
// delta as an adjustment entry. Used for cycle counts.
func (i *Item) AdjustStock(newQuantity int, reason string, performedBy uuid.UUID) (*Movement, error) {
	if newQuantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "stock cannot be adjusted below zero")
	}
	if newQuantity == i.CurrentStock {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "adjustment must change the stock level")
	}
	prev := i.CurrentStock
	delta := newQuantity - prev
	if delta < 0 {
		delta = -delta
	}
	i.CurrentStock = newQuantity
	i.IncrementVersion()
	i.AddDomainEvent(NewStockChangedEvent(i, MovementAdjustment, delta))
	if i.CurrentStock > 0 && i.IsBelowThreshold() {
		i.AddDomainEvent(NewLowStockEvent(i))
	}
	return newMovement(i.ID, MovementAdjustment, delta, reason, prev, i.CurrentStock, performedBy)
}

// MarkOnOrder flags the item as having a replenishment order placed
func (i *Item) MarkOnOrder() {
	i.OnOrder = true
	i.IncrementVersion()
}

// UpdateDetails updates the descriptive fields of the item
func (i *Item) UpdateDetails(p NewItemParams) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return shared.NewDomainError("INVALID_ITEM_NAME", "item name cannot be empty")
	}
	if !p.Category.IsValid() {
		return shared.NewDomainError("INVALID_CATEGORY", fmt.Sprintf("unknown category: %s", p.Category))
	}
	if p.MinStock < 0 || p.ReorderLevel < 0 {
		return shared.NewDomainError("INVALID_STOCK", "stock levels cannot be negative")
	}
	if p.UnitCost.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "unit cost cannot be negative")
	}
	i.Name = p.Name
	i.Category = p.Category
	i.MinStock = p.MinStock
	i.ReorderLevel = p.ReorderLevel
	i.Unit = p.Unit
	i.UnitCost = p.UnitCost
	i.Currency = p.UnitCost.Currency()
	i.Location = p.Location
	i.Supplier = p.Supplier
	i.Notes = p.Notes
	i.Barcode = p.Barcode
	i.IncrementVersion()
	return nil
}
