package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
)

// ListItemsOptions filters a ListItems call. Zero values are omitted;
// FilterAll is treated like an empty filter.
type ListItemsOptions struct {
	Category string
	Status   string
	Search   string
	Page     int
	PageSize int
}

func (o ListItemsOptions) query() url.Values {
	q := url.Values{}
	if o.Category != "" && o.Category != FilterAll {
		q.Set("category", o.Category)
	}
	if o.Status != "" && o.Status != FilterAll {
		q.Set("status", o.Status)
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(o.PageSize))
	}
	return q
}

// ListItems fetches a page of inventory items
func (c *Client) ListItems(ctx context.Context, opts ListItemsOptions) ([]InventoryItem, *Meta, error) {
	var items []InventoryItem
	meta, err := c.get(ctx, "/api/v1/inventory/items", opts.query(), &items)
	if err != nil {
		return nil, nil, err
	}
	if items == nil {
		items = []InventoryItem{}
	}
	return items, meta, nil
}

// GetItem fetches a single inventory item
func (c *Client) GetItem(ctx context.Context, id string) (*InventoryItem, error) {
	var item InventoryItem
	if _, err := c.get(ctx, "/api/v1/inventory/items/"+id, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// GetInventoryStats fetches the inventory summary
func (c *Client) GetInventoryStats(ctx context.Context) (*InventoryStats, error) {
	var stats InventoryStats
	if _, err := c.get(ctx, "/api/v1/inventory/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ListLowStockItems fetches the items at or below their reorder level
func (c *Client) ListLowStockItems(ctx context.Context) ([]InventoryItem, error) {
	var items []InventoryItem
	if _, err := c.get(ctx, "/api/v1/inventory/items/alerts/low-stock", nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []InventoryItem{}
	}
	return items, nil
}

// CreateItemRequest is the payload for CreateItem
type CreateItemRequest struct {
	ItemNumber   string  `json:"item_number,omitempty"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	CurrentStock int     `json:"current_stock"`
	MinStock     int     `json:"min_stock"`
	ReorderLevel int     `json:"reorder_level"`
	Unit         string  `json:"unit,omitempty"`
	UnitCost     float64 `json:"unit_cost"`
	Currency     string  `json:"currency,omitempty"`
	Location     string  `json:"location,omitempty"`
	Supplier     string  `json:"supplier,omitempty"`
	Notes        string  `json:"notes,omitempty"`
	Barcode      string  `json:"barcode,omitempty"`
}

// CreateItem creates a new inventory item
func (c *Client) CreateItem(ctx context.Context, req CreateItemRequest) (*InventoryItem, error) {
	var item InventoryItem
	if _, err := c.post(ctx, "/api/v1/inventory/items", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem removes an inventory item
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/v1/inventory/items/"+id)
}

// RecordMovementRequest is the payload for a stock movement
type RecordMovementRequest struct {
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason,omitempty"`
}

// RecordMovement records a stock movement against an item
func (c *Client) RecordMovement(ctx context.Context, itemID string, req RecordMovementRequest) (*StockMovement, error) {
	var movement StockMovement
	if _, err := c.post(ctx, "/api/v1/inventory/items/"+itemID+"/movements", req, &movement); err != nil {
		return nil, err
	}
	return &movement, nil
}

// ListMovements fetches the movement ledger for an item
func (c *Client) ListMovements(ctx context.Context, itemID string, page, pageSize int) ([]StockMovement, *Meta, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		q.Set("page_size", strconv.Itoa(pageSize))
	}
	var movements []StockMovement
	meta, err := c.get(ctx, "/api/v1/inventory/items/"+itemID+"/movements", q, &movements)
	if err != nil {
		return nil, nil, err
	}
	if movements == nil {
		movements = []StockMovement{}
	}
	return movements, meta, nil
}

// InventoryView is the inventory screen state: the item collection
// plus summary stats, loaded together
type InventoryView struct {
	api *Client

	Items *ListView[InventoryItem]

	mu    sync.RWMutex
	stats InventoryStats
}

// NewInventoryView creates the inventory view bound to the client
func NewInventoryView(api *Client) *InventoryView {
	v := &InventoryView{api: api}
	v.Items = NewListView(func(ctx context.Context) ([]InventoryItem, error) {
		return v.loadAll(ctx)
	})
	return v
}

// loadAll fetches items and stats concurrently; items drive the list,
// a stats failure only leaves the previous summary in place
func (v *InventoryView) loadAll(ctx context.Context) ([]InventoryItem, error) {
	var (
		wg       sync.WaitGroup
		items    []InventoryItem
		itemsErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		items, _, itemsErr = v.api.ListItems(ctx, ListItemsOptions{})
	}()
	go func() {
		defer wg.Done()
		stats, err := v.api.GetInventoryStats(ctx)
		if err != nil {
			return
		}
		v.mu.Lock()
		v.stats = *stats
		v.mu.Unlock()
	}()
	wg.Wait()
	return items, itemsErr
}

// Stats returns the most recently loaded summary
func (v *InventoryView) Stats() InventoryStats {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.stats
}

// RecordMovement validates the movement against the locally loaded
// item, records it, and refreshes the view once on success. Invalid
// movements are rejected without any API call.
func (v *InventoryView) RecordMovement(ctx context.Context, itemID string, req RecordMovementRequest) error {
	switch req.Type {
	case MovementIn, MovementOut, MovementAdjustment:
	default:
		return &APIError{Code: "ERR_VALIDATION", Message: "Please select a movement type."}
	}
	if req.Quantity <= 0 {
		return &APIError{Code: "ERR_VALIDATION", Message: "Quantity must be greater than zero."}
	}
	if strings.TrimSpace(req.Reason) == "" {
		return &APIError{Code: "ERR_VALIDATION", Message: "Please provide a reason for the movement."}
	}
	if req.Type == MovementOut {
		if item, ok := v.Items.find(func(i InventoryItem) bool { return i.ID == itemID }); ok {
			if req.Quantity > item.CurrentStock {
				return &APIError{
					Code:    "ERR_INSUFFICIENT_STOCK",
					Message: fmt.Sprintf("Cannot remove %d units. Only %d in stock.", req.Quantity, item.CurrentStock),
				}
			}
		}
	}

	if _, err := v.api.RecordMovement(ctx, itemID, req); err != nil {
		return &APIError{
			Code:    "ERR_MOVEMENT_FAILED",
			Message: errorMessage(err, "Unable to record the stock movement. Please try again."),
		}
	}
	return v.Items.Refresh(ctx)
}

// CreateItem creates an item and refreshes the view once on success
func (v *InventoryView) CreateItem(ctx context.Context, req CreateItemRequest) error {
	if req.Name == "" {
		return &APIError{Code: "ERR_VALIDATION", Message: "Item name is required."}
	}
	if req.Category == "" {
		return &APIError{Code: "ERR_VALIDATION", Message: "Please select a category."}
	}
	if _, err := v.api.CreateItem(ctx, req); err != nil {
		return &APIError{
			Code:    "ERR_CREATE_FAILED",
			Message: errorMessage(err, "Unable to create the item. Please try again."),
		}
	}
	return v.Items.Refresh(ctx)
}

// DeleteItem removes an item and refreshes the view once on success
func (v *InventoryView) DeleteItem(ctx context.Context, itemID string) error {
	if itemID == "" {
		return &APIError{Code: "ERR_VALIDATION", Message: "No item selected."}
	}
	if err := v.api.DeleteItem(ctx, itemID); err != nil {
		return &APIError{
			Code:    "ERR_DELETE_FAILED",
			Message: errorMessage(err, "Unable to delete the item. Please try again."),
		}
	}
	return v.Items.Refresh(ctx)
}
