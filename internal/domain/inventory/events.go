package inventory

import (
	"github.com/stayhub/backend/internal/domain/shared"
)

// Event types for the inventory aggregate
const (
	EventItemCreated  = "inventory.item.created"
	EventStockChanged = "inventory.stock.changed"
	EventLowStock     = "inventory.stock.low"
	EventItemDeleted  = "inventory.item.deleted"
)

const aggregateType = "InventoryItem"

// ItemCreatedEvent is raised when a new item enters the catalog
type ItemCreatedEvent struct {
	shared.BaseDomainEvent
	Name     string   `json:"name"`
	Category Category `json:"category"`
}

// NewItemCreatedEvent creates an ItemCreatedEvent
func NewItemCreatedEvent(item *Item) *ItemCreatedEvent {
	return &ItemCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventItemCreated, aggregateType, item.ID),
		Name:            item.Name,
		Category:        item.Category,
	}
}

// StockChangedEvent is raised whenever stock is restocked or used
type StockChangedEvent struct {
	shared.BaseDomainEvent
	Name         string       `json:"name"`
	Movement     MovementType `json:"movement"`
	Quantity     int          `json:"quantity"`
	CurrentStock int          `json:"current_stock"`
}

// NewStockChangedEvent creates a StockChangedEvent
func NewStockChangedEvent(item *Item, movement MovementType, quantity int) *StockChangedEvent {
	return &StockChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventStockChanged, aggregateType, item.ID),
		Name:            item.Name,
		Movement:        movement,
		Quantity:        quantity,
		CurrentStock:    item.CurrentStock,
	}
}

// LowStockEvent is raised when a deduction leaves an item at or below
// its minimum stock level
type LowStockEvent struct {
	shared.BaseDomainEvent
	Name         string `json:"name"`
	CurrentStock int    `json:"current_stock"`
	MinimumStock int    `json:"minimum_stock"`
}

// NewLowStockEvent creates a LowStockEvent
func NewLowStockEvent(item *Item) *LowStockEvent {
	return &LowStockEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventLowStock, aggregateType, item.ID),
		Name:            item.Name,
		CurrentStock:    item.CurrentStock,
		MinimumStock:    item.MinStock,
	}
}

// ItemDeletedEvent is raised when an item is removed from the catalog
type ItemDeletedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewItemDeletedEvent creates an ItemDeletedEvent
func NewItemDeletedEvent(item *Item) *ItemDeletedEvent {
	return &ItemDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventItemDeleted, aggregateType, item.ID),
		Name:            item.Name,
	}
}
