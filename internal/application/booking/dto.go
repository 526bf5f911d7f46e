package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/stayhub/backend/internal/domain/booking"
)

// BookingDTO is the API representation of a booking
type BookingDTO struct {
	ID            uuid.UUID                     `json:"id"`
	Reference     string                        `json:"reference"`
	GuestName     string                        `json:"guest_name"`
	Property      PropertyDTO                   `json:"property"`
	CheckIn       string                        `json:"check_in"`
	CheckOut      string                        `json:"check_out"`
	Guests        int                           `json:"guests"`
	TotalAmount   string                        `json:"total_amount"`
	ServiceFee    string                        `json:"service_fee"`
	Currency      string                        `json:"currency"`
	Status        string                        `json:"status"`
	PaymentStatus string                        `json:"payment_status"`
	PaymentMethod string                        `json:"payment_method"`
	BankTransfer  *booking.BankTransferDetails  `json:"bank_transfer,omitempty"`
	OnsitePayment *booking.OnsitePaymentDetails `json:"onsite_payment,omitempty"`
	AccessPass    *booking.AccessPass           `json:"access_pass,omitempty"`
	CancelReason  string                        `json:"cancel_reason,omitempty"`
	Upcoming      bool                          `json:"upcoming"`
	CreatedAt     time.Time                     `json:"created_at"`
}

// PropertyDTO is the property snapshot inside a booking
type PropertyDTO struct {
	PropertyID uuid.UUID `json:"property_id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	ImageURL   string    `json:"image_url,omitempty"`
}

// ListQuery carries the booking list parameters
type ListQuery struct {
	View     string `form:"view"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// CancelRequest carries the cancellation reason
type CancelRequest struct {
	Reason string `json:"reason" binding:"required"`
}

const dateLayout = "2006-01-02"

func toBookingDTO(b *booking.Booking, upcoming bool) BookingDTO {
	return BookingDTO{
		ID:        b.ID,
		Reference: b.Reference,
		GuestName: b.GuestName,
		Property: PropertyDTO{
			PropertyID: b.Property.PropertyID,
			Name:       b.Property.Name,
			Address:    b.Property.Address,
			ImageURL:   b.Property.ImageURL,
		},
		CheckIn:       b.CheckIn.Format(dateLayout),
		CheckOut:      b.CheckOut.Format(dateLayout),
		Guests:        b.Guests,
		TotalAmount:   b.TotalAmount.Amount().StringFixed(2),
		ServiceFee:    b.ServiceFee.Amount().StringFixed(2),
		Currency:      b.Currency,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		PaymentMethod: string(b.PaymentMethod),
		BankTransfer:  b.BankTransfer,
		OnsitePayment: b.OnsitePayment,
		AccessPass:    b.AccessPass,
		CancelReason:  b.CancelReason,
		Upcoming:      upcoming,
		CreatedAt:     b.CreatedAt,
	}
}
