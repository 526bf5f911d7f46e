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

// apiStub is a fake backend that counts every request it receives
type apiStub struct {
	mu     sync.Mutex
	counts map[string]int

	items           []InventoryItem
	stats           InventoryStats
	movementOK      bool
	movementErrCode string
	movementErrMsg  string
}

func newAPIStub(items []InventoryItem) *apiStub {
	return &apiStub{
		counts:     map[string]int{},
		items:      items,
		stats:      InventoryStats{TotalItems: int64(len(items)), Currency: "NGN"},
		movementOK: true,
	}
}

func (s *apiStub) count(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[key]
}

func (s *apiStub) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.counts {
		n += c
	}
	return n
}

func (s *apiStub) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts = map[string]int{}
}

func (s *apiStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	s.mu.Lock()
	s.counts[key]++
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	write := func(status int, body interface{}) {
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/v1/inventory/items":
		write(http.StatusOK, map[string]interface{}{"success": true, "data": s.items})
	case r.Method == http.MethodGet && r.URL.Path == "/api/v1/inventory/stats":
		write(http.StatusOK, map[string]interface{}{"success": true, "data": s.stats})
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/movements"):
		if !s.movementOK {
			write(http.StatusUnprocessableEntity, map[string]interface{}{
				"success": false,
				"error":   map[string]string{"code": s.movementErrCode, "message": s.movementErrMsg},
			})
			return
		}
		write(http.StatusCreated, map[string]interface{}{
			"success": true,
			"data":    StockMovement{ID: "mv-1"},
		})
	default:
		write(http.StatusNotFound, map[string]interface{}{
			"success": false,
			"error":   map[string]string{"code": "ERR_NOT_FOUND", "message": "not found"},
		})
	}
}

func inventoryFixture() []InventoryItem {
	return []InventoryItem{
		{ID: "item-1", ItemNumber: "INV-0001", Name: "Bath Towels", Category: "linen", CurrentStock: 10, Status: StatusInStock},
	}
}

func loadedInventoryView(t *testing.T, stub *apiStub) *InventoryView {
	t.Helper()
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)

	view := NewInventoryView(New(srv.URL))
	require.NoError(t, view.Items.Refresh(context.Background()))
	stub.reset()
	return view
}

func TestInventoryViewLoad(t *testing.T) {
	stub := newAPIStub(inventoryFixture())
	view := loadedInventoryView(t, stub)

	items := view.Items.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Bath Towels", items[0].Name)
	assert.Equal(t, int64(1), view.Stats().TotalItems)
	assert.False(t, view.Items.Loading())
	assert.Empty(t, view.Items.LastError())
}

func TestRecordMovementPreCheck(t *testing.T) {
	t.Run("removing more than current stock is rejected without any request", func(t *testing.T) {
		stub := newAPIStub(inventoryFixture())
		view := loadedInventoryView(t, stub)

		err := view.RecordMovement(context.Background(), "item-1", RecordMovementRequest{
			Type:     MovementOut,
			Quantity: 11,
			Reason:   "damaged",
		})

		require.Error(t, err)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "ERR_INSUFFICIENT_STOCK", apiErr.Code)
		assert.Contains(t, apiErr.Message, "Only 10 in stock")
		assert.Zero(t, stub.total(), "rejection must not reach the network")
	})

	t.Run("removing exactly the current stock is accepted", func(t *testing.T) {
		stub := newAPIStub(inventoryFixture())
		view := loadedInventoryView(t, stub)

		err := view.RecordMovement(context.Background(), "item-1", RecordMovementRequest{
			Type:     MovementOut,
			Quantity: 10,
			Reason:   "deep clean",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, stub.count("POST /api/v1/inventory/items/item-1/movements"))
	})

	t.Run("invalid type rejected without any request", func(t *testing.T) {
		stub := newAPIStub(inventoryFixture())
		view := loadedInventoryView(t, stub)

		err := view.RecordMovement(context.Background(), "item-1", RecordMovementRequest{Type: "sideways", Quantity: 1, Reason: "restock"})
		require.Error(t, err)
		assert.Zero(t, stub.total())
	})

	t.Run("zero quantity rejected without any request", func(t *testing.T) {
		stub := newAPIStub(inventoryFixture())
		view := loadedInventoryView(t, stub)

		err := view.RecordMovement(context.Background(), "item-1", RecordMovementRequest{Type: MovementIn, Quantity: 0, Reason: "restock"})
		require.Error(t, err)
		assert.Zero(t, stub.total())
	})

	t.Run("blank reason rejected without any request", func(t *testing.T) {
		stub := newAPIStub(inventoryFixture())
		view := loadedInventoryView(t, stub)

		err := view.RecordMovement(context.Background(), "item-1", RecordMovementRequest{
			Type:     MovementOut,
			Quantity: 2,
			Reason:   "   ",
		})

		require.Error(t, err)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "ERR_VALIDATION", apiErr.Code)
		assert.Zero(t, stub.total(), "rejection must not reach the network")
	})
}

func TestRecordMovementRefetchesOnce(t *testing.T) {
	stub := newAPIStub(inventoryFixture())
	view := loadedInventoryView(t, stub)

	err := view.RecordMovement(context.Background(), "item-1", RecordMovementRequest{
		Type:     MovementIn,
		Quantity: 5,
		Reason:   "restock",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, stub.count("GET /api/v1/inventory/items"), "exactly one refetch of the collection")
}

func TestRecordMovementServerRejection(t *testing.T) {
	stub := newAPIStub(inventoryFixture())
	stub.movementOK = false
	stub.movementErrCode = "ERR_INSUFFICIENT_STOCK"
	stub.movementErrMsg = "insufficient stock: have 4, requested 8"
	view := loadedInventoryView(t, stub)

	err := view.RecordMovement(context.Background(), "item-1", RecordMovementRequest{
		Type:     MovementOut,
		Quantity: 8,
		Reason:   "housekeeping",
	})

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "insufficient stock: have 4, requested 8", apiErr.Message)
	assert.Zero(t, stub.count("GET /api/v1/inventory/items"), "no refetch after a failed mutation")
}

func TestListViewErrorKeepsItems(t *testing.T) {
	stub := newAPIStub(inventoryFixture())
	srv := httptest.NewServer(stub)

	view := NewInventoryView(New(srv.URL))
	require.NoError(t, view.Items.Refresh(context.Background()))
	require.Len(t, view.Items.Items(), 1)

	srv.Close()

	err := view.Items.Refresh(context.Background())
	require.Error(t, err)
	assert.NotEmpty(t, view.Items.LastError())
	assert.False(t, view.Items.Loading())
	assert.Len(t, view.Items.Items(), 1, "previous items survive a failed refresh")
}
