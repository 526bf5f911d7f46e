package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stayhub/backend/internal/domain/shared"
	"github.com/stayhub/backend/internal/domain/shared/valueobject"
)

// Status is the lifecycle status of a booking
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// PaymentStatus is the payment state of a booking
type PaymentStatus string

const (
	PaymentPaid     PaymentStatus = "paid"
	PaymentPending  PaymentStatus = "pending"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// PaymentMethod is how the guest pays
type PaymentMethod string

const (
	MethodPaystack     PaymentMethod = "paystack"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodOnsite       PaymentMethod = "onsite"
)

// PropertySnapshot captures the booked property at booking time.
// Later edits to the listing never rewrite history.
type PropertySnapshot struct {
	PropertyID uuid.UUID `gorm:"type:uuid;not null;index" json:"property_id"`
	Name       string    `gorm:"not null;size:255" json:"name"`
	Address    string    `gorm:"size:500" json:"address"`
	ImageURL   string    `gorm:"size:500" json:"image_url"`
}

// BankTransferDetails holds the account to pay into when the guest
// chose bank transfer
type BankTransferDetails struct {
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	Reference     string `json:"reference"`
}

// OnsitePaymentDetails holds instructions for paying at check-in
type OnsitePaymentDetails struct {
	Instructions string `json:"instructions"`
	Deadline     string `json:"deadline"`
}

// AccessPass is the entry credential issued for a paid booking
type AccessPass struct {
	Code      string    `json:"code"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Booking is the booking aggregate root
type Booking struct {
	shared.BaseAggregateRoot
	Reference     string                `gorm:"not null;size:32;uniqueIndex"`
	GuestID       uuid.UUID             `gorm:"type:uuid;not null;index"`
	GuestName     string                `gorm:"not null;size:255"`
	Property      PropertySnapshot      `gorm:"embedded;embeddedPrefix:property_"`
	CheckIn       time.Time             `gorm:"not null;index"`
	CheckOut      time.Time             `gorm:"not null;index"`
	Guests        int                   `gorm:"not null;default:1"`
	TotalAmount   valueobject.Money     `gorm:"type:decimal(20,4)"`
	ServiceFee    valueobject.Money     `gorm:"type:decimal(20,4)"`
	Currency      string                `gorm:"size:3;default:'NGN'"`
	Status        Status                `gorm:"not null;size:16;index"`
	PaymentStatus PaymentStatus         `gorm:"not null;size:16"`
	PaymentMethod PaymentMethod         `gorm:"not null;size:16"`
	BankTransfer  *BankTransferDetails  `gorm:"serializer:json"`
	OnsitePayment *OnsitePaymentDetails `gorm:"serializer:json"`
	AccessPass    *AccessPass           `gorm:"serializer:json"`
	CancelReason  string                `gorm:"size:500"`
	CancelledAt   *time.Time
}

// TableName returns the database table name
func (Booking) TableName() string {
	return "bookings"
}

// NewBookingParams carries the attributes for creating a booking
type NewBookingParams struct {
	Reference     string
	GuestID       uuid.UUID
	GuestName     string
	Property      PropertySnapshot
	CheckIn       time.Time
	CheckOut      time.Time
	Guests        int
	TotalAmount   valueobject.Money
	ServiceFee    valueobject.Money
	PaymentMethod PaymentMethod
}

// NewBooking creates a new booking in pending state
func NewBooking(p NewBookingParams) (*Booking, error) {
	if p.GuestID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_GUEST", "guest id is required")
	}
	if strings.TrimSpace(p.Property.Name) == "" {
		return nil, shared.NewDomainError("INVALID_PROPERTY", "property name is required")
	}
	if !p.CheckOut.After(p.CheckIn) {
		return nil, shared.NewDomainError("INVALID_DATES", "check-out must be after check-in")
	}
	if p.Guests < 1 {
		return nil, shared.NewDomainError("INVALID_GUESTS", "at least one guest is required")
	}
	switch p.PaymentMethod {
	case MethodPaystack, MethodBankTransfer, MethodOnsite:
	default:
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "unknown payment method")
	}

	base := shared.NewBaseAggregateRoot()
	ref := strings.TrimSpace(p.Reference)
	if ref == "" {
		ref = "BK-" + strings.ToUpper(strings.ReplaceAll(base.ID.String(), "-", "")[:10])
	}

	b := &Booking{
		BaseAggregateRoot: base,
		Reference:         ref,
		GuestID:           p.GuestID,
		GuestName:         strings.TrimSpace(p.GuestName),
		Property:          p.Property,
		CheckIn:           p.CheckIn,
		CheckOut:          p.CheckOut,
		Guests:            p.Guests,
		TotalAmount:       p.TotalAmount,
		ServiceFee:        p.ServiceFee,
		Currency:          p.TotalAmount.Currency(),
		Status:            StatusPending,
		PaymentStatus:     PaymentPending,
		PaymentMethod:     p.PaymentMethod,
	}
	b.AddDomainEvent(NewBookingCreatedEvent(b))
	return b, nil
}

// IsUpcoming reports whether the stay has not yet ended relative to
// the given date. A booking checking out today is still upcoming.
func (b *Booking) IsUpcoming(today time.Time) bool {
	if b.Status == StatusCancelled {
		return false
	}
	y1, m1, d1 := b.CheckOut.Date()
	y2, m2, d2 := today.Date()
	checkout := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	now := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return !checkout.Before(now)
}

// Confirm moves a pending booking to confirmed
func (b *Booking) Confirm() error {
	if b.Status != StatusPending {
		return shared.ErrInvalidState
	}
	b.Status = StatusConfirmed
	b.IncrementVersion()
	b.AddDomainEvent(NewBookingConfirmedEvent(b))
	return nil
}

// Cancel cancels the booking. Only upcoming bookings that are not
// already cancelled or completed may be cancelled, and a reason is
// required.
func (b *Booking) Cancel(reason string, today time.Time) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return shared.NewDomainError("CANCEL_REASON_REQUIRED", "a cancellation reason is required")
	}
	if b.Status == StatusCancelled || b.Status == StatusCompleted {
		return shared.ErrInvalidState
	}
	if !b.IsUpcoming(today) {
		return shared.NewDomainError("BOOKING_NOT_UPCOMING", "past bookings cannot be cancelled")
	}
	now := time.Now()
	b.Status = StatusCancelled
	b.CancelReason = reason
	b.CancelledAt = &now
	b.AccessPass = nil
	b.IncrementVersion()
	b.AddDomainEvent(NewBookingCancelledEvent(b, reason))
	return nil
}

// Complete marks a confirmed booking as completed after checkout
func (b *Booking) Complete() error {
	if b.Status != StatusConfirmed {
		return shared.ErrInvalidState
	}
	b.Status = StatusCompleted
	b.IncrementVersion()
	return nil
}

// MarkPaid records a successful payment and issues the access pass
func (b *Booking) MarkPaid(passCode string) error {
	if b.Status == StatusCancelled {
		return shared.ErrInvalidState
	}
	b.PaymentStatus = PaymentPaid
	if passCode != "" {
		b.AccessPass = &AccessPass{
			Code:      passCode,
			IssuedAt:  time.Now(),
			ExpiresAt: b.CheckOut.Add(24 * time.Hour),
		}
	}
	b.IncrementVersion()
	return nil
}

// MarkPaymentFailed records a failed payment attempt
func (b *Booking) MarkPaymentFailed() {
	b.PaymentStatus = PaymentFailed
	b.IncrementVersion()
}

// MarkRefunded records a refund for a cancelled booking
func (b *Booking) MarkRefunded() error {
	if b.PaymentStatus != PaymentPaid {
		return shared.ErrInvalidState
	}
	b.PaymentStatus = PaymentRefunded
	b.IncrementVersion()
	return nil
}
