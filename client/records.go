package client

import "time"

// Sentinel filter value matching every category or status
const FilterAll = "all"

// PlaceholderContact fills a missing vendor contact person so callers
// never render an empty field
const PlaceholderContact = "Not provided"

// Inventory status values
const (
	StatusInStock    = "in_stock"
	StatusLowStock   = "low_stock"
	StatusOutOfStock = "out_of_stock"
	StatusOnOrder    = "on_order"
)

// Movement types
const (
	MovementIn         = "in"
	MovementOut        = "out"
	MovementAdjustment = "adjustment"
)

// Booking status values
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// InventoryItem is an inventory record as returned by the API
type InventoryItem struct {
	ID           string    `json:"id"`
	ItemNumber   string    `json:"item_number"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	CurrentStock int       `json:"current_stock"`
	MinStock     int       `json:"min_stock"`
	ReorderLevel int       `json:"reorder_level"`
	Unit         string    `json:"unit"`
	UnitCost     string    `json:"unit_cost"`
	Currency     string    `json:"currency"`
	Status       string    `json:"status"`
	Location     string    `json:"location"`
	Supplier     string    `json:"supplier"`
	Notes        string    `json:"notes"`
	Barcode      string    `json:"barcode"`
	TotalValue   string    `json:"total_value"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StockMovement is one immutable ledger entry
type StockMovement struct {
	ID            string    `json:"id"`
	ItemID        string    `json:"item_id"`
	Type          string    `json:"type"`
	Quantity      int       `json:"quantity"`
	Reason        string    `json:"reason"`
	PreviousStock int       `json:"previous_stock"`
	NewStock      int       `json:"new_stock"`
	PerformedBy   string    `json:"performed_by"`
	CreatedAt     time.Time `json:"created_at"`
}

// InventoryStats summarizes the inventory collection
type InventoryStats struct {
	TotalItems      int64  `json:"total_items"`
	LowStockCount   int    `json:"low_stock_count"`
	OutOfStockCount int    `json:"out_of_stock_count"`
	TotalValue      string `json:"total_value"`
	Currency        string `json:"currency"`
}

// Property is the property snapshot embedded in a booking
type Property struct {
	PropertyID string `json:"property_id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	ImageURL   string `json:"image_url"`
}

// BankTransferDetails carries bank transfer payment info
type BankTransferDetails struct {
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	Reference     string `json:"reference"`
}

// OnsitePaymentDetails carries pay-on-arrival info
type OnsitePaymentDetails struct {
	Instructions string `json:"instructions"`
	Deadline     string `json:"deadline"`
}

// AccessPass grants property access for a paid booking
type AccessPass struct {
	Code      string    `json:"code"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Booking is a stay reservation as returned by the API
type Booking struct {
	ID            string                `json:"id"`
	Reference     string                `json:"reference"`
	GuestName     string                `json:"guest_name"`
	Property      Property              `json:"property"`
	CheckIn       string                `json:"check_in"`
	CheckOut      string                `json:"check_out"`
	Guests        int                   `json:"guests"`
	TotalAmount   string                `json:"total_amount"`
	ServiceFee    string                `json:"service_fee"`
	Currency      string                `json:"currency"`
	Status        string                `json:"status"`
	PaymentStatus string                `json:"payment_status"`
	PaymentMethod string                `json:"payment_method"`
	BankTransfer  *BankTransferDetails  `json:"bank_transfer"`
	OnsitePayment *OnsitePaymentDetails `json:"onsite_payment"`
	AccessPass    *AccessPass           `json:"access_pass"`
	CancelReason  string                `json:"cancel_reason"`
	Upcoming      bool                  `json:"upcoming"`
	CreatedAt     time.Time             `json:"created_at"`
}

// checkOutDate parses the checkout date, zero time on failure
func (b Booking) checkOutDate() time.Time {
	t, err := time.Parse("2006-01-02", b.CheckOut)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Vendor is the vendor snapshot inside an order
type Vendor struct {
	VendorID      string `json:"vendor_id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
}

// OrderItem is a line inside a vendor order
type OrderItem struct {
	ProductID   string   `json:"product_id"`
	ProductName string   `json:"product_name"`
	Quantity    int      `json:"quantity"`
	UnitPrice   string   `json:"unit_price"`
	LineTotal   string   `json:"line_total"`
	Images      []string `json:"images"`
}

// VendorOrder is a supply order as returned by the API
type VendorOrder struct {
	ID            string      `json:"id"`
	OrderNumber   string      `json:"order_number"`
	Vendor        Vendor      `json:"vendor"`
	Items         []OrderItem `json:"items"`
	Subtotal      string      `json:"subtotal"`
	ServiceFee    string      `json:"service_fee"`
	DeliveryFee   string      `json:"delivery_fee"`
	TotalAmount   string      `json:"total_amount"`
	Currency      string      `json:"currency"`
	Status        string      `json:"status"`
	PaymentStatus string      `json:"payment_status"`
	CreatedAt     time.Time   `json:"created_at"`
}

// normalize defaults optional fields so callers never nil-check
func (o *VendorOrder) normalize() {
	if o.Vendor.ContactPerson == "" {
		o.Vendor.ContactPerson = PlaceholderContact
	}
	if o.Items == nil {
		o.Items = []OrderItem{}
	}
	for i := range o.Items {
		if o.Items[i].Images == nil {
			o.Items[i].Images = []string{}
		}
	}
}

// Document is an identity document on a profile
type Document struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	FileName   string    `json:"file_name"`
	Status     string    `json:"status"`
	ReviewNote string    `json:"review_note"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Profile is a user profile as returned by the API
type Profile struct {
	ID                 string     `json:"id"`
	Email              string     `json:"email"`
	FirstName          string     `json:"first_name"`
	LastName           string     `json:"last_name"`
	Phone              string     `json:"phone"`
	Address            string     `json:"address"`
	City               string     `json:"city"`
	Country            string     `json:"country"`
	VerificationStatus string     `json:"verification_status"`
	Documents          []Document `json:"documents"`
	CreatedAt          time.Time  `json:"created_at"`
}

func (p *Profile) normalize() {
	if p.Documents == nil {
		p.Documents = []Document{}
	}
}

// TokenPair is an access/refresh token pair
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// PaymentInit is the gateway checkout handle for an order
type PaymentInit struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}
