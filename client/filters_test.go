package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sampleItems() []InventoryItem {
	return []InventoryItem{
		{ID: "1", ItemNumber: "INV-0001", Name: "Bath Towels", Category: "linen", Status: StatusInStock, CurrentStock: 40},
		{ID: "2", ItemNumber: "INV-0002", Name: "Hand Soap", Category: "toiletries", Status: StatusLowStock, CurrentStock: 3},
		{ID: "3", ItemNumber: "INV-0003", Name: "Bed Sheets", Category: "linen", Status: StatusOutOfStock, CurrentStock: 0},
		{ID: "4", ItemNumber: "INV-0004", Name: "Kettle", Category: "kitchen", Status: StatusOnOrder, CurrentStock: 2},
	}
}

func TestFilterByCategory(t *testing.T) {
	items := sampleItems()

	t.Run("matches only the requested category", func(t *testing.T) {
		got := FilterByCategory(items, "linen")
		assert.Len(t, got, 2)
		for _, item := range got {
			assert.Equal(t, "linen", item.Category)
		}
	})

	t.Run("result is a subset of the input", func(t *testing.T) {
		got := FilterByCategory(items, "kitchen")
		ids := map[string]bool{}
		for _, item := range items {
			ids[item.ID] = true
		}
		for _, item := range got {
			assert.True(t, ids[item.ID], "filter fabricated item %s", item.ID)
		}
	})

	t.Run("all sentinel returns input unchanged in order", func(t *testing.T) {
		got := FilterByCategory(items, FilterAll)
		assert.Equal(t, items, got)
	})

	t.Run("empty category returns input unchanged", func(t *testing.T) {
		assert.Equal(t, items, FilterByCategory(items, ""))
	})

	t.Run("no match yields empty non-nil slice", func(t *testing.T) {
		got := FilterByCategory(items, "furniture")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestFilterByStatus(t *testing.T) {
	items := sampleItems()

	got := FilterByStatus(items, StatusLowStock)
	assert.Len(t, got, 1)
	assert.Equal(t, "Hand Soap", got[0].Name)

	assert.Equal(t, items, FilterByStatus(items, FilterAll))
	assert.Equal(t, items, FilterByStatus(items, ""))
}

func TestSearchItems(t *testing.T) {
	items := sampleItems()

	t.Run("partial lowercase query matches mixed-case name", func(t *testing.T) {
		got := SearchItems(items, "tow")
		assert.Len(t, got, 1)
		assert.Equal(t, "Bath Towels", got[0].Name)
	})

	t.Run("matches item number", func(t *testing.T) {
		got := SearchItems(items, "inv-0004")
		assert.Len(t, got, 1)
		assert.Equal(t, "Kettle", got[0].Name)
	})

	t.Run("empty query returns input unchanged in order", func(t *testing.T) {
		assert.Equal(t, items, SearchItems(items, ""))
		assert.Equal(t, items, SearchItems(items, "   "))
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		before := sampleItems()
		SearchItems(items, "towel")
		assert.Equal(t, before, items)
	})
}

func TestBucketBookings(t *testing.T) {
	today := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	bookings := []Booking{
		{ID: "future", Status: BookingConfirmed, CheckOut: "2026-03-20"},
		{ID: "today", Status: BookingConfirmed, CheckOut: "2026-03-15"},
		{ID: "yesterday", Status: BookingCompleted, CheckOut: "2026-03-14"},
		{ID: "cancelled-future", Status: BookingCancelled, CheckOut: "2026-03-25"},
	}

	t.Run("checkout today is still upcoming", func(t *testing.T) {
		got := BucketBookings(bookings, ViewUpcoming, today)
		ids := make([]string, 0, len(got))
		for _, b := range got {
			ids = append(ids, b.ID)
		}
		assert.Equal(t, []string{"future", "today"}, ids)
	})

	t.Run("checkout strictly before today is past", func(t *testing.T) {
		got := BucketBookings(bookings, ViewPast, today)
		ids := make([]string, 0, len(got))
		for _, b := range got {
			ids = append(ids, b.ID)
		}
		assert.Equal(t, []string{"yesterday", "cancelled-future"}, ids)
	})

	t.Run("cancelled booking is never upcoming", func(t *testing.T) {
		got := BucketBookings(bookings, ViewUpcoming, today)
		for _, b := range got {
			assert.NotEqual(t, BookingCancelled, b.Status)
		}
	})

	t.Run("every booking lands in exactly one bucket", func(t *testing.T) {
		upcoming := BucketBookings(bookings, ViewUpcoming, today)
		past := BucketBookings(bookings, ViewPast, today)
		assert.Equal(t, len(bookings), len(upcoming)+len(past))
	})

	t.Run("unknown view returns input unchanged", func(t *testing.T) {
		assert.Equal(t, bookings, BucketBookings(bookings, "whatever", today))
		assert.Equal(t, bookings, BucketBookings(bookings, ViewAll, today))
	})

	t.Run("bucketing follows the caller's calendar day", func(t *testing.T) {
		// 00:30 on March 15 in Lagos is still March 14 in UTC; the
		// booking that checked out on the 14th must already be past.
		lagos := time.FixedZone("WAT", 60*60)
		localToday := time.Date(2026, 3, 15, 0, 30, 0, 0, lagos)
		checkedOut := []Booking{{ID: "gone", Status: BookingCompleted, CheckOut: "2026-03-14"}}

		assert.Empty(t, BucketBookings(checkedOut, ViewUpcoming, localToday))
		assert.Len(t, BucketBookings(checkedOut, ViewPast, localToday), 1)

		stillHere := []Booking{{ID: "here", Status: BookingConfirmed, CheckOut: "2026-03-15"}}
		assert.Len(t, BucketBookings(stillHere, ViewUpcoming, localToday), 1)
	})

	t.Run("unparseable checkout is treated as past", func(t *testing.T) {
		odd := []Booking{{ID: "bad", Status: BookingConfirmed, CheckOut: "not a date"}}
		assert.Empty(t, BucketBookings(odd, ViewUpcoming, today))
		assert.Len(t, BucketBookings(odd, ViewPast, today), 1)
	})
}

func TestSearchBookings(t *testing.T) {
	bookings := []Booking{
		{ID: "1", GuestName: "Ada Obi", Reference: "BK-1001", Property: Property{Name: "Lekki Loft"}},
		{ID: "2", GuestName: "Tunde Bello", Reference: "BK-1002", Property: Property{Name: "Ikoyi Suites"}},
	}

	got := SearchBookings(bookings, "lekki")
	assert.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	got = SearchBookings(bookings, "bk-1002")
	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	assert.Equal(t, bookings, SearchBookings(bookings, ""))
}

func TestFilterOrdersByStatus(t *testing.T) {
	orders := []VendorOrder{
		{ID: "1", OrderNumber: "ORD-1", Status: "delivered", Vendor: Vendor{Name: "Lagos Linen Co"}},
		{ID: "2", OrderNumber: "ORD-2", Status: "preparing", Vendor: Vendor{Name: "CleanPro Supplies"}},
	}

	got := FilterOrdersByStatus(orders, "delivered")
	assert.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	assert.Equal(t, orders, FilterOrdersByStatus(orders, FilterAll))

	found := SearchOrders(orders, "cleanpro")
	assert.Len(t, found, 1)
	assert.Equal(t, "2", found[0].ID)
}
