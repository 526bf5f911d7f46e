package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/stayhub/backend/internal/domain/booking"
	"github.com/stayhub/backend/internal/domain/shared"
	"github.com/stayhub/backend/internal/domain/shared/valueobject"
)

// newSQLiteDB opens an in-memory database for tests that need real SQL
// without a running PostgreSQL
func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&booking.Booking{}))

	t.Cleanup(func() {
		db.Exec("DELETE FROM bookings")
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func testBooking(t *testing.T, guestID uuid.UUID, checkIn time.Time) *booking.Booking {
	t.Helper()
	total, err := valueobject.NewMoneyFromFloat(180000, "NGN")
	require.NoError(t, err)
	b, err := booking.NewBooking(booking.NewBookingParams{
		GuestID:   guestID,
		GuestName: "Ada Obi",
		Property: booking.PropertySnapshot{
			PropertyID: uuid.New(),
			Name:       "Lekki Loft",
			Address:    "12 Admiralty Way, Lekki",
		},
		CheckIn:       checkIn,
		CheckOut:      checkIn.AddDate(0, 0, 3),
		Guests:        2,
		TotalAmount:   total,
		ServiceFee:    valueobject.Zero("NGN"),
		PaymentMethod: booking.MethodBankTransfer,
	})
	require.NoError(t, err)
	b.ClearDomainEvents()
	return b
}

func TestBookingRepositoryRoundTrip(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewGormBookingRepository(db)
	ctx := context.Background()
	guestID := uuid.New()
	checkIn := time.Now().UTC().AddDate(0, 0, 10).Truncate(24 * time.Hour)

	b := testBooking(t, guestID, checkIn)
	require.NoError(t, repo.Save(ctx, b))

	t.Run("find by id restores the aggregate", func(t *testing.T) {
		loaded, err := repo.FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.Reference, loaded.Reference)
		assert.Equal(t, "Lekki Loft", loaded.Property.Name)
		assert.Equal(t, booking.StatusPending, loaded.Status)
		assert.True(t, loaded.TotalAmount.Equals(b.TotalAmount))
	})

	t.Run("find by reference", func(t *testing.T) {
		loaded, err := repo.FindByReference(ctx, b.Reference)
		require.NoError(t, err)
		assert.Equal(t, b.ID, loaded.ID)
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("cancellation round-trips", func(t *testing.T) {
		loaded, err := repo.FindByID(ctx, b.ID)
		require.NoError(t, err)
		require.NoError(t, loaded.Cancel("change of plans", time.Now().UTC()))
		loaded.ClearDomainEvents()
		require.NoError(t, repo.Save(ctx, loaded))

		again, err := repo.FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, again.Status)
		assert.Equal(t, "change of plans", again.CancelReason)
		require.NotNil(t, again.CancelledAt)
	})
}

func TestBookingRepositoryFindByGuest(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewGormBookingRepository(db)
	ctx := context.Background()
	guestID := uuid.New()
	checkIn := time.Now().UTC().AddDate(0, 0, 10).Truncate(24 * time.Hour)

	mine := testBooking(t, guestID, checkIn)
	other := testBooking(t, uuid.New(), checkIn)
	require.NoError(t, repo.Save(ctx, mine))
	require.NoError(t, repo.Save(ctx, other))

	bookings, err := repo.FindByGuest(ctx, guestID, shared.DefaultFilter())
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, mine.ID, bookings[0].ID)

	count, err := repo.Count(ctx, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestBookingRepositoryStatusFilter(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewGormBookingRepository(db)
	ctx := context.Background()
	checkIn := time.Now().UTC().AddDate(0, 0, 10).Truncate(24 * time.Hour)

	open := testBooking(t, uuid.New(), checkIn)
	cancelled := testBooking(t, uuid.New(), checkIn)
	require.NoError(t, cancelled.Cancel("no longer needed", time.Now().UTC()))
	cancelled.ClearDomainEvents()
	require.NoError(t, repo.Save(ctx, open))
	require.NoError(t, repo.Save(ctx, cancelled))

	filter := shared.DefaultFilter()
	filter.Filters = map[string]interface{}{"status": string(booking.StatusCancelled)}
	bookings, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, cancelled.ID, bookings[0].ID)
}
