package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stayhub/backend/internal/domain/booking"
	"github.com/stayhub/backend/internal/domain/shared"
	"github.com/stayhub/backend/internal/infrastructure/telemetry"
)

// Service orchestrates booking use cases
type Service struct {
	bookings booking.Repository
	events   shared.EventPublisher
	metrics  *telemetry.BusinessMetrics
	log      *zap.Logger
	now      func() time.Time
}

// NewService creates the booking application service
func NewService(bookings booking.Repository, events shared.EventPublisher, metrics *telemetry.BusinessMetrics, log *zap.Logger) *Service {
	return &Service{
		bookings: bookings,
		events:   events,
		metrics:  metrics,
		log:      log,
		now:      time.Now,
	}
}

// List returns the guest's bookings bucketed by view. The view keys
// off the checkout date: a stay checking out today is still upcoming,
// and cancelled bookings never are.
func (s *Service) List(ctx context.Context, guestID uuid.UUID, q ListQuery) (*shared.Paginated[BookingDTO], error) {
	filter := shared.DefaultFilter()
	filter.Search = q.Search
	filter.PageSize = 0

	bookings, err := s.bookings.FindByGuest(ctx, guestID, filter)
	if err != nil {
		return nil, err
	}

	today := s.now()
	dtos := make([]BookingDTO, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		upcoming := b.IsUpcoming(today)
		switch q.View {
		case "upcoming":
			if !upcoming {
				continue
			}
		case "past":
			if upcoming {
				continue
			}
		}
		dtos = append(dtos, toBookingDTO(b, upcoming))
	}

	page, size := q.Page, q.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}
	total := int64(len(dtos))
	start := (page - 1) * size
	if start > len(dtos) {
		start = len(dtos)
	}
	end := start + size
	if end > len(dtos) {
		end = len(dtos)
	}
	result := shared.NewPaginated(dtos[start:end], total, page, size)
	return &result, nil
}

// Get returns one of the guest's bookings
func (s *Service) Get(ctx context.Context, guestID, bookingID uuid.UUID) (*BookingDTO, error) {
	b, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.GuestID != guestID {
		return nil, shared.ErrForbidden
	}
	dto := toBookingDTO(b, b.IsUpcoming(s.now()))
	return &dto, nil
}

// Cancel cancels one of the guest's upcoming bookings
func (s *Service) Cancel(ctx context.Context, guestID, bookingID uuid.UUID, reason string) (*BookingDTO, error) {
	b, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.GuestID != guestID {
		return nil, shared.ErrForbidden
	}
	if err := b.Cancel(reason, s.now()); err != nil {
		return nil, err
	}
	if err := s.bookings.Save(ctx, b); err != nil {
		return nil, err
	}

	events := b.GetDomainEvents()
	if len(events) > 0 {
		if err := s.events.Publish(ctx, events...); err != nil {
			s.log.Warn("publish booking events", zap.Error(err))
		}
		b.ClearDomainEvents()
	}
	if s.metrics != nil {
		s.metrics.BookingsCancelled.Add(ctx, 1)
	}
	s.log.Info("booking cancelled",
		zap.String("booking_id", b.ID.String()),
		zap.String("reference", b.Reference),
	)

	dto := toBookingDTO(b, false)
	return &dto, nil
}
