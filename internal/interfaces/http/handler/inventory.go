package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	inventoryapp "github.com/stayhub/backend/internal/application/inventory"
	"github.com/stayhub/backend/internal/interfaces/http/dto"
)

// InventoryHandler handles inventory endpoints
type InventoryHandler struct {
	BaseHandler
	inventory *inventoryapp.Service
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventory *inventoryapp.Service) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

// List returns inventory items filtered by category, status and search
func (h *InventoryHandler) List(c *gin.Context) {
	var q inventoryapp.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.inventory.List(c.Request.Context(), q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Get returns a single inventory item
func (h *InventoryHandler) Get(c *gin.Context) {
	id, ok := h.itemID(c)
	if !ok {
		return
	}

	item, err := h.inventory.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Create adds a new inventory item
func (h *InventoryHandler) Create(c *gin.Context) {
	var req inventoryapp.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.inventory.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

// RecordMovement records a stock movement against an item
func (h *InventoryHandler) RecordMovement(c *gin.Context) {
	id, ok := h.itemID(c)
	if !ok {
		return
	}
	actorID, err := currentUserID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var req inventoryapp.RecordMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	movement, err := h.inventory.RecordMovement(c.Request.Context(), id, actorID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, movement)
}

// Movements returns the movement history of an item
func (h *InventoryHandler) Movements(c *gin.Context) {
	id, ok := h.itemID(c)
	if !ok {
		return
	}

	var q struct {
		Page     int `form:"page"`
		PageSize int `form:"page_size"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.inventory.Movements(c.Request.Context(), id, q.Page, q.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Delete removes an inventory item
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := h.itemID(c)
	if !ok {
		return
	}

	if err := h.inventory.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Stats returns aggregate inventory counts and value
func (h *InventoryHandler) Stats(c *gin.Context) {
	stats, err := h.inventory.Stats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}

// LowStock returns items at or below their reorder threshold
func (h *InventoryHandler) LowStock(c *gin.Context) {
	items, err := h.inventory.LowStock(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

func (h *InventoryHandler) itemID(c *gin.Context) (uuid.UUID, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "invalid item id")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "invalid item id")
		return uuid.Nil, false
	}
	return id, true
}
