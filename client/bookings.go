package client

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ListBookingsOptions filters a ListBookings call
type ListBookingsOptions struct {
	View     string
	Search   string
	Page     int
	PageSize int
}

func (o ListBookingsOptions) query() url.Values {
	q := url.Values{}
	if o.View != "" && o.View != ViewAll {
		q.Set("view", o.View)
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(o.PageSize))
	}
	return q
}

// ListBookings fetches a page of bookings
func (c *Client) ListBookings(ctx context.Context, opts ListBookingsOptions) ([]Booking, *Meta, error) {
	var bookings []Booking
	meta, err := c.get(ctx, "/api/v1/bookings", opts.query(), &bookings)
	if err != nil {
		return nil, nil, err
	}
	if bookings == nil {
		bookings = []Booking{}
	}
	return bookings, meta, nil
}

// GetBooking fetches a single booking
func (c *Client) GetBooking(ctx context.Context, id string) (*Booking, error) {
	var b Booking
	if _, err := c.get(ctx, "/api/v1/bookings/"+id, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// CancelBooking cancels a booking with the given reason
func (c *Client) CancelBooking(ctx context.Context, id, reason string) (*Booking, error) {
	var b Booking
	body := map[string]string{"reason": reason}
	if _, err := c.post(ctx, "/api/v1/bookings/"+id+"/cancel", body, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// BookingsView is the bookings screen state
type BookingsView struct {
	api *Client

	Bookings *ListView[Booking]
}

// NewBookingsView creates the bookings view bound to the client
func NewBookingsView(api *Client) *BookingsView {
	v := &BookingsView{api: api}
	v.Bookings = NewListView(func(ctx context.Context) ([]Booking, error) {
		bookings, _, err := api.ListBookings(ctx, ListBookingsOptions{})
		return bookings, err
	})
	return v
}

// Upcoming returns the loaded bookings still checking out today or
// later, excluding cancelled ones
func (v *BookingsView) Upcoming() []Booking {
	return BucketBookings(v.Bookings.Items(), ViewUpcoming, time.Now().UTC())
}

// Past returns the loaded bookings that have checked out or were
// cancelled
func (v *BookingsView) Past() []Booking {
	return BucketBookings(v.Bookings.Items(), ViewPast, time.Now().UTC())
}

// Cancel cancels a booking and refreshes the view once on success. A
// blank reason is rejected without any API call.
func (v *BookingsView) Cancel(ctx context.Context, bookingID, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return &APIError{Code: "ERR_VALIDATION", Message: "Please provide a cancellation reason."}
	}
	if _, err := v.api.CancelBooking(ctx, bookingID, reason); err != nil {
		return &APIError{
			Code:    "ERR_CANCEL_FAILED",
			Message: errorMessage(err, "Unable to cancel the booking. Please try again."),
		}
	}
	return v.Bookings.Refresh(ctx)
}
