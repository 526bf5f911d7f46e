package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingStub struct {
	mu     sync.Mutex
	counts map[string]int

	bookings []Booking
}

func (s *bookingStub) count(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[key]
}

func (s *bookingStub) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.counts {
		n += c
	}
	return n
}

func (s *bookingStub) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts = map[string]int{}
}

func (s *bookingStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.counts[r.Method+" "+r.URL.Path]++
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/v1/bookings":
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": s.bookings})
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/cancel"):
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["reason"] == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"error":   map[string]string{"code": "ERR_VALIDATION", "message": "reason is required"},
			})
			return
		}
		cancelled := s.bookings[0]
		cancelled.Status = BookingCancelled
		cancelled.CancelReason = body["reason"]
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": cancelled})
	default:
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   map[string]string{"code": "ERR_NOT_FOUND", "message": "not found"},
		})
	}
}

func loadedBookingsView(t *testing.T) (*BookingsView, *bookingStub) {
	t.Helper()
	stub := &bookingStub{
		counts: map[string]int{},
		bookings: []Booking{
			{ID: "bk-1", Reference: "BK-1001", Status: BookingConfirmed, CheckIn: "2099-01-01", CheckOut: "2099-01-05"},
		},
	}
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)

	view := NewBookingsView(New(srv.URL))
	require.NoError(t, view.Bookings.Refresh(context.Background()))
	stub.reset()
	return view, stub
}

func TestCancelBooking(t *testing.T) {
	t.Run("blank reason rejected without any request", func(t *testing.T) {
		view, stub := loadedBookingsView(t)

		err := view.Cancel(context.Background(), "bk-1", "   ")
		require.Error(t, err)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "ERR_VALIDATION", apiErr.Code)
		assert.Zero(t, stub.total())
	})

	t.Run("cancel refetches the collection once", func(t *testing.T) {
		view, stub := loadedBookingsView(t)

		err := view.Cancel(context.Background(), "bk-1", "change of plans")
		require.NoError(t, err)
		assert.Equal(t, 1, stub.count("POST /api/v1/bookings/bk-1/cancel"))
		assert.Equal(t, 1, stub.count("GET /api/v1/bookings"))
	})
}

func TestBookingsViewBuckets(t *testing.T) {
	view, _ := loadedBookingsView(t)

	assert.Len(t, view.Upcoming(), 1)
	assert.Empty(t, view.Past())
}
