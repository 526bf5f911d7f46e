package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	vendorapp "github.com/stayhub/backend/internal/application/vendor"
	"github.com/stayhub/backend/internal/interfaces/http/dto"
	"github.com/stayhub/backend/internal/interfaces/http/middleware"
)

// VendorOrderHandler handles vendor order endpoints
type VendorOrderHandler struct {
	BaseHandler
	orders *vendorapp.Service
}

// NewVendorOrderHandler creates a new VendorOrderHandler
func NewVendorOrderHandler(orders *vendorapp.Service) *VendorOrderHandler {
	return &VendorOrderHandler{orders: orders}
}

// List returns the buyer's vendor orders
func (h *VendorOrderHandler) List(c *gin.Context) {
	buyerID, err := currentUserID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var q vendorapp.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.orders.List(c.Request.Context(), buyerID, q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Get returns one of the buyer's orders
func (h *VendorOrderHandler) Get(c *gin.Context) {
	buyerID, err := currentUserID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	o, err := h.orders.Get(c.Request.Context(), buyerID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, o)
}

// InitializePayment starts a gateway checkout for an order
func (h *VendorOrderHandler) InitializePayment(c *gin.Context) {
	buyerID, err := currentUserID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	init, err := h.orders.InitializePayment(c.Request.Context(), buyerID, middleware.GetEmail(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, init)
}

// VerifyPayment confirms a gateway payment and settles the order
func (h *VendorOrderHandler) VerifyPayment(c *gin.Context) {
	buyerID, err := currentUserID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	var req vendorapp.PaymentVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	o, err := h.orders.VerifyPayment(c.Request.Context(), buyerID, id, req.Reference)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, o)
}

func (h *VendorOrderHandler) orderID(c *gin.Context) (uuid.UUID, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "invalid order id")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "invalid order id")
		return uuid.Nil, false
	}
	return id, true
}
