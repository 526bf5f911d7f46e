package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/stayhub/backend/internal/domain/shared"
)

// Repository persists bookings
type Repository interface {
	shared.Repository[Booking]
	FindByGuest(ctx context.Context, guestID uuid.UUID, filter shared.Filter) ([]Booking, error)
	FindByReference(ctx context.Context, reference string) (*Booking, error)
}
