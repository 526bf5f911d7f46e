package client

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/search"
)

var searchMatcher = search.New(language.English, search.IgnoreCase, search.IgnoreDiacritics)

// containsFold reports whether s contains substr, ignoring case and
// diacritics
func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	start, _ := searchMatcher.IndexString(s, substr)
	return start >= 0
}

// FilterByCategory returns the items in the given category. An empty
// category or FilterAll returns the input unchanged.
func FilterByCategory(items []InventoryItem, category string) []InventoryItem {
	if category == "" || category == FilterAll {
		return items
	}
	out := make([]InventoryItem, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// FilterByStatus returns the items with the given status. An empty
// status or FilterAll returns the input unchanged.
func FilterByStatus(items []InventoryItem, status string) []InventoryItem {
	if status == "" || status == FilterAll {
		return items
	}
	out := make([]InventoryItem, 0, len(items))
	for _, item := range items {
		if item.Status == status {
			out = append(out, item)
		}
	}
	return out
}

// SearchItems returns the items whose name or item number contains the
// query, ignoring case. An empty query returns the input unchanged.
func SearchItems(items []InventoryItem, query string) []InventoryItem {
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}
	out := make([]InventoryItem, 0, len(items))
	for _, item := range items {
		if containsFold(item.Name, query) || containsFold(item.ItemNumber, query) {
			out = append(out, item)
		}
	}
	return out
}

// Booking view names accepted by BucketBookings
const (
	ViewUpcoming = "upcoming"
	ViewPast     = "past"
	ViewAll      = "all"
)

// isUpcoming reports whether a booking still counts as upcoming on the
// given day. A stay checking out today is still upcoming; a cancelled
// booking never is.
func isUpcoming(b Booking, today time.Time) bool {
	if b.Status == BookingCancelled {
		return false
	}
	checkout := b.checkOutDate()
	if checkout.IsZero() {
		return false
	}
	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return !checkout.Before(day)
}

// BucketBookings returns the bookings matching the given view relative
// to today. Unknown views behave like ViewAll.
func BucketBookings(bookings []Booking, view string, today time.Time) []Booking {
	switch view {
	case ViewUpcoming:
		out := make([]Booking, 0, len(bookings))
		for _, b := range bookings {
			if isUpcoming(b, today) {
				out = append(out, b)
			}
		}
		return out
	case ViewPast:
		out := make([]Booking, 0, len(bookings))
		for _, b := range bookings {
			if !isUpcoming(b, today) {
				out = append(out, b)
			}
		}
		return out
	default:
		return bookings
	}
}

// SearchBookings returns the bookings whose guest name, property name
// or reference contains the query, ignoring case
func SearchBookings(bookings []Booking, query string) []Booking {
	query = strings.TrimSpace(query)
	if query == "" {
		return bookings
	}
	out := make([]Booking, 0, len(bookings))
	for _, b := range bookings {
		if containsFold(b.GuestName, query) || containsFold(b.Property.Name, query) || containsFold(b.Reference, query) {
			out = append(out, b)
		}
	}
	return out
}

// FilterOrdersByStatus returns the orders with the given status. An
// empty status or FilterAll returns the input unchanged.
func FilterOrdersByStatus(orders []VendorOrder, status string) []VendorOrder {
	if status == "" || status == FilterAll {
		return orders
	}
	out := make([]VendorOrder, 0, len(orders))
	for _, o := range orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// SearchOrders returns the orders whose order number or vendor name
// contains the query, ignoring case
func SearchOrders(orders []VendorOrder, query string) []VendorOrder {
	query = strings.TrimSpace(query)
	if query == "" {
		return orders
	}
	out := make([]VendorOrder, 0, len(orders))
	for _, o := range orders {
		if containsFold(o.OrderNumber, query) || containsFold(o.Vendor.Name, query) {
			out = append(out, o)
		}
	}
	return out
}
