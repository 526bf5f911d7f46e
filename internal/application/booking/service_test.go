package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stayhub/backend/internal/domain/booking"
	"github.com/stayhub/backend/internal/domain/shared"
	"github.com/stayhub/backend/internal/domain/shared/valueobject"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *mockBookingRepo) FindByReference(ctx context.Context, reference string) (*booking.Booking, error) {
	args := m.Called(ctx, reference)
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *mockBookingRepo) FindAll(ctx context.Context, filter shared.Filter) ([]booking.Booking, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]booking.Booking), args.Error(1)
}

func (m *mockBookingRepo) FindByGuest(ctx context.Context, guestID uuid.UUID, filter shared.Filter) ([]booking.Booking, error) {
	args := m.Called(ctx, guestID, filter)
	return args.Get(0).([]booking.Booking), args.Error(1)
}

func (m *mockBookingRepo) Save(ctx context.Context, b *booking.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBookingRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

var today = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newBooking(t *testing.T, guestID uuid.UUID, property string, checkIn, checkOut time.Time) booking.Booking {
	t.Helper()
	total, err := valueobject.NewMoneyFromFloat(50000, "NGN")
	require.NoError(t, err)
	b, err := booking.NewBooking(booking.NewBookingParams{
		GuestID:       guestID,
		GuestName:     "Adaeze Obi",
		Property:      booking.PropertySnapshot{PropertyID: uuid.New(), Name: property},
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Guests:        2,
		TotalAmount:   total,
		ServiceFee:    valueobject.Zero("NGN"),
		PaymentMethod: booking.MethodPaystack,
	})
	require.NoError(t, err)
	b.ClearDomainEvents()
	return *b
}

func newService(repo *mockBookingRepo, pub *mockPublisher) *Service {
	svc := NewService(repo, pub, nil, zap.NewNop())
	svc.now = func() time.Time { return today }
	return svc
}

func TestListViews(t *testing.T) {
	ctx := context.Background()
	guestID := uuid.New()
	repo := new(mockBookingRepo)

	all := []booking.Booking{
		newBooking(t, guestID, "Lekki Seaview", today.AddDate(0, 0, 2), today.AddDate(0, 0, 5)),
		newBooking(t, guestID, "Ikoyi Loft", today.AddDate(0, 0, -3), today),
		newBooking(t, guestID, "Abuja Villa", today.AddDate(0, 0, -10), today.AddDate(0, 0, -7)),
	}
	repo.On("FindByGuest", ctx, guestID, mock.Anything).Return(all, nil)

	svc := newService(repo, new(mockPublisher))

	t.Run("upcoming includes checkout today", func(t *testing.T) {
		page, err := svc.List(ctx, guestID, ListQuery{View: "upcoming"})
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		names := []string{page.Items[0].Property.Name, page.Items[1].Property.Name}
		assert.Contains(t, names, "Lekki Seaview")
		assert.Contains(t, names, "Ikoyi Loft")
	})

	t.Run("past is strictly before today", func(t *testing.T) {
		page, err := svc.List(ctx, guestID, ListQuery{View: "past"})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Abuja Villa", page.Items[0].Property.Name)
	})

	t.Run("all returns everything", func(t *testing.T) {
		page, err := svc.List(ctx, guestID, ListQuery{View: "all"})
		require.NoError(t, err)
		assert.Len(t, page.Items, 3)
	})
}

func TestListCancelledNeverUpcoming(t *testing.T) {
	ctx := context.Background()
	guestID := uuid.New()
	repo := new(mockBookingRepo)

	cancelled := newBooking(t, guestID, "Lekki Seaview", today.AddDate(0, 0, 2), today.AddDate(0, 0, 5))
	require.NoError(t, cancelled.Cancel("plans changed", today))
	cancelled.ClearDomainEvents()
	repo.On("FindByGuest", ctx, guestID, mock.Anything).Return([]booking.Booking{cancelled}, nil)

	svc := newService(repo, new(mockPublisher))
	page, err := svc.List(ctx, guestID, ListQuery{View: "upcoming"})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	guestID := uuid.New()

	t.Run("success publishes event", func(t *testing.T) {
		repo := new(mockBookingRepo)
		pub := new(mockPublisher)
		b := newBooking(t, guestID, "Lekki Seaview", today.AddDate(0, 0, 2), today.AddDate(0, 0, 5))
		repo.On("FindByID", ctx, b.ID).Return(&b, nil)
		repo.On("Save", ctx, &b).Return(nil)
		pub.On("Publish", ctx, mock.MatchedBy(func(events []shared.DomainEvent) bool {
			return len(events) == 1 && events[0].EventType() == booking.EventBookingCancelled
		})).Return(nil)

		svc := newService(repo, pub)
		dto, err := svc.Cancel(ctx, guestID, b.ID, "travel plans changed")
		require.NoError(t, err)
		assert.Equal(t, "cancelled", dto.Status)
		pub.AssertExpectations(t)
	})

	t.Run("foreign booking is forbidden", func(t *testing.T) {
		repo := new(mockBookingRepo)
		b := newBooking(t, uuid.New(), "Lekki Seaview", today.AddDate(0, 0, 2), today.AddDate(0, 0, 5))
		repo.On("FindByID", ctx, b.ID).Return(&b, nil)

		svc := newService(repo, new(mockPublisher))
		_, err := svc.Cancel(ctx, guestID, b.ID, "reason")
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})

	t.Run("missing reason is rejected", func(t *testing.T) {
		repo := new(mockBookingRepo)
		b := newBooking(t, guestID, "Lekki Seaview", today.AddDate(0, 0, 2), today.AddDate(0, 0, 5))
		repo.On("FindByID", ctx, b.ID).Return(&b, nil)

		svc := newService(repo, new(mockPublisher))
		_, err := svc.Cancel(ctx, guestID, b.ID, "  ")
		assert.Error(t, err)
	})
}
