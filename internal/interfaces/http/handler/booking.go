package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	bookingapp "github.com/stayhub/backend/internal/application/booking"
	"github.com/stayhub/backend/internal/interfaces/http/dto"
)

// BookingHandler handles guest booking endpoints
type BookingHandler struct {
	BaseHandler
	bookings *bookingapp.Service
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookings *bookingapp.Service) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// List returns the guest's bookings bucketed by view
func (h *BookingHandler) List(c *gin.Context) {
	guestID, err := currentUserID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var q bookingapp.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.bookings.List(c.Request.Context(), guestID, q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Get returns one of the guest's bookings
func (h *BookingHandler) Get(c *gin.Context) {
	guestID, err := currentUserID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	b, err := h.bookings.Get(c.Request.Context(), guestID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, b)
}

// Cancel cancels an upcoming booking with a reason
func (h *BookingHandler) Cancel(c *gin.Context) {
	guestID, err := currentUserID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req bookingapp.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	b, err := h.bookings.Cancel(c.Request.Context(), guestID, id, req.Reason)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, b)
}

func (h *BookingHandler) bookingID(c *gin.Context) (uuid.UUID, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "invalid booking id")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "invalid booking id")
		return uuid.Nil, false
	}
	return id, true
}
