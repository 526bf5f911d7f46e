package client

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// ListOrdersOptions filters a ListOrders call
type ListOrdersOptions struct {
	Status   string
	Search   string
	Page     int
	PageSize int
}

func (o ListOrdersOptions) query() url.Values {
	q := url.Values{}
	if o.Status != "" && o.Status != FilterAll {
		q.Set("status", o.Status)
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

// ListOrders fetches a page of vendor orders
func (c *Client) ListOrders(ctx context.Context, opts ListOrdersOptions) ([]VendorOrder, *Meta, error) {
	var orders []VendorOrder
	meta, err := c.get(ctx, "/api/v1/vendor/orders", opts.query(), &orders)
	if err != nil {
		return nil, nil, err
	}
	if orders == nil {
		orders = []VendorOrder{}
	}
	for i := range orders {
		orders[i].normalize()
	}
	return orders, meta, nil
}

// GetOrder fetches a single vendor order
func (c *Client) GetOrder(ctx context.Context, id string) (*VendorOrder, error) {
	var o VendorOrder
	if _, err := c.get(ctx, "/api/v1/vendor/orders/"+id, nil, &o); err != nil {
		return nil, err
	}
	o.normalize()
	return &o, nil
}

// InitializePayment starts a gateway checkout for an order
func (c *Client) InitializePayment(ctx context.Context, orderID string) (*PaymentInit, error) {
	var init PaymentInit
	if _, err := c.post(ctx, "/api/v1/vendor/orders/"+orderID+"/payment/initialize", nil, &init); err != nil {
		return nil, err
	}
	return &init, nil
}

// VerifyPayment confirms a gateway payment by reference
func (c *Client) VerifyPayment(ctx context.Context, orderID, reference string) (*VendorOrder, error) {
	var o VendorOrder
	body := map[string]string{"reference": reference}
	if _, err := c.post(ctx, "/api/v1/vendor/orders/"+orderID+"/payment/verify", body, &o); err != nil {
		return nil, err
	}
	o.normalize()
	return &o, nil
}

// OrdersView is the vendor orders screen state
type OrdersView struct {
	api *Client

	Orders *ListView[VendorOrder]
}

// NewOrdersView creates the orders view bound to the client
func NewOrdersView(api *Client) *OrdersView {
	v := &OrdersView{api: api}
	v.Orders = NewListView(func(ctx context.Context) ([]VendorOrder, error) {
		orders, _, err := api.ListOrders(ctx, ListOrdersOptions{})
		return orders, err
	})
	return v
}

// PayOrder starts a checkout for an order and returns the gateway
// redirect handle. No refetch happens here: payment completes out of
// band and VerifyOrderPayment re-reads the order afterwards.
func (v *OrdersView) PayOrder(ctx context.Context, orderID string) (*PaymentInit, error) {
	if orderID == "" {
		return nil, &APIError{Code: "ERR_VALIDATION", Message: "No order selected."}
	}
	init, err := v.api.InitializePayment(ctx, orderID)
	if err != nil {
		return nil, &APIError{
			Code:    "ERR_PAYMENT_FAILED",
			Message: errorMessage(err, "Unable to start the payment. Please try again."),
		}
	}
	return init, nil
}

// VerifyOrderPayment confirms a completed checkout and refreshes the
// view once on success
func (v *OrdersView) VerifyOrderPayment(ctx context.Context, orderID, reference string) error {
	if strings.TrimSpace(reference) == "" {
		return &APIError{Code: "ERR_VALIDATION", Message: "Missing payment reference."}
	}
	if _, err := v.api.VerifyPayment(ctx, orderID, reference); err != nil {
		return &APIError{
			Code:    "ERR_PAYMENT_FAILED",
			Message: errorMessage(err, "Unable to verify the payment. Please contact support."),
		}
	}
	return v.Orders.Refresh(ctx)
}
