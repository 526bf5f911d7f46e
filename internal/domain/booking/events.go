package booking

import (
	"github.com/stayhub/backend/internal/domain/shared"
)

// Event types for the booking aggregate
const (
	EventBookingCreated   = "booking.created"
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
)

const aggregateType = "Booking"

// BookingCreatedEvent is raised when a booking is created
type BookingCreatedEvent struct {
	shared.BaseDomainEvent
	Reference    string `json:"reference"`
	PropertyName string `json:"property_name"`
}

// NewBookingCreatedEvent creates a BookingCreatedEvent
func NewBookingCreatedEvent(b *Booking) *BookingCreatedEvent {
	return &BookingCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventBookingCreated, aggregateType, b.ID),
		Reference:       b.Reference,
		PropertyName:    b.Property.Name,
	}
}

// BookingConfirmedEvent is raised when a booking is confirmed
type BookingConfirmedEvent struct {
	shared.BaseDomainEvent
	Reference string `json:"reference"`
}

// NewBookingConfirmedEvent creates a BookingConfirmedEvent
func NewBookingConfirmedEvent(b *Booking) *BookingConfirmedEvent {
	return &BookingConfirmedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventBookingConfirmed, aggregateType, b.ID),
		Reference:       b.Reference,
	}
}

// BookingCancelledEvent is raised when a booking is cancelled
type BookingCancelledEvent struct {
	shared.BaseDomainEvent
	Reference string `json:"reference"`
	Reason    string `json:"reason"`
}

// NewBookingCancelledEvent creates a BookingCancelledEvent
func NewBookingCancelledEvent(b *Booking, reason string) *BookingCancelledEvent {
	return &BookingCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventBookingCancelled, aggregateType, b.ID),
		Reference:       b.Reference,
		Reason:          reason,
	}
}
