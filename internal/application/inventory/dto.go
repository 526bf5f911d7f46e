package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stayhub/backend/internal/domain/inventory"
)

// ItemDTO is the API representation of an inventory item
type ItemDTO struct {
	ID           uuid.UUID `json:"id"`
	ItemNumber   string    `json:"item_number"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	CurrentStock int       `json:"current_stock"`
	MinStock     int       `json:"min_stock"`
	ReorderLevel int       `json:"reorder_level"`
	Unit         string    `json:"unit"`
	UnitCost     string    `json:"unit_cost"`
	Currency     string    `json:"currency"`
	Status       string    `json:"status"`
	Location     string    `json:"location,omitempty"`
	Supplier     string    `json:"supplier,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	Barcode      string    `json:"barcode,omitempty"`
	TotalValue   string    `json:"total_value"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MovementDTO is the API representation of a stock movement
type MovementDTO struct {
	ID            uuid.UUID `json:"id"`
	ItemID        uuid.UUID `json:"item_id"`
	Type          string    `json:"type"`
	Quantity      int       `json:"quantity"`
	Reason        string    `json:"reason,omitempty"`
	PreviousStock int       `json:"previous_stock"`
	NewStock      int       `json:"new_stock"`
	PerformedBy   uuid.UUID `json:"performed_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// StatsDTO summarizes the inventory
type StatsDTO struct {
	TotalItems      int64  `json:"total_items"`
	LowStockCount   int    `json:"low_stock_count"`
	OutOfStockCount int    `json:"out_of_stock_count"`
	TotalValue      string `json:"total_value"`
	Currency        string `json:"currency"`
}

// CreateItemRequest creates a new inventory item
type CreateItemRequest struct {
	ItemNumber   string  `json:"item_number"`
	Name         string  `json:"name" binding:"required"`
	Category     string  `json:"category" binding:"required,category"`
	CurrentStock int     `json:"current_stock" binding:"gte=0"`
	MinStock     int     `json:"min_stock" binding:"gte=0"`
	ReorderLevel int     `json:"reorder_level" binding:"gte=0"`
	Unit         string  `json:"unit"`
	UnitCost     float64 `json:"unit_cost" binding:"gte=0"`
	Currency     string  `json:"currency"`
	Location     string  `json:"location"`
	Supplier     string  `json:"supplier"`
	Notes        string  `json:"notes"`
	Barcode      string  `json:"barcode"`
}

// RecordMovementRequest records a stock movement against an item
type RecordMovementRequest struct {
	Type     string `json:"type" binding:"required,oneof=in out adjustment"`
	Quantity int    `json:"quantity" binding:"required"`
	Reason   string `json:"reason" binding:"required"`
}

// ListQuery carries the list filter parameters
type ListQuery struct {
	Category string `form:"category"`
	Status   string `form:"status"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

func toItemDTO(item *inventory.Item) ItemDTO {
	return ItemDTO{
		ID:           item.ID,
		ItemNumber:   item.ItemNumber,
		Name:         item.Name,
		Category:     string(item.Category),
		CurrentStock: item.CurrentStock,
		MinStock:     item.MinStock,
		ReorderLevel: item.ReorderLevel,
		Unit:         item.Unit,
		UnitCost:     item.UnitCost.Amount().StringFixed(2),
		Currency:     item.Currency,
		Status:       string(item.Status()),
		Location:     item.Location,
		Supplier:     item.Supplier,
		Notes:        item.Notes,
		Barcode:      item.Barcode,
		TotalValue:   item.TotalValue().Amount().StringFixed(2),
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

func toMovementDTO(mv *inventory.Movement) MovementDTO {
	return MovementDTO{
		ID:            mv.ID,
		ItemID:        mv.ItemID,
		Type:          string(mv.Type),
		Quantity:      mv.Quantity,
		Reason:        mv.Reason,
		PreviousStock: mv.PreviousStock,
		NewStock:      mv.NewStock,
		PerformedBy:   mv.PerformedBy,
		CreatedAt:     mv.CreatedAt,
	}
}

func sumValue(items []inventory.Item) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].TotalValue().Amount())
	}
	return total
}
