package client

// StatusBadge is a display mapping for an enum value
type StatusBadge struct {
	Label string
	Color string
}

// neutralBadge is returned for values no mapping knows about
var neutralBadge = StatusBadge{Label: "Unknown", Color: "gray"}

var inventoryStatusBadges = map[string]StatusBadge{
	StatusInStock:    {Label: "In Stock", Color: "green"},
	StatusLowStock:   {Label: "Low Stock", Color: "yellow"},
	StatusOutOfStock: {Label: "Out of Stock", Color: "red"},
	StatusOnOrder:    {Label: "On Order", Color: "blue"},
}

var bookingStatusBadges = map[string]StatusBadge{
	BookingPending:   {Label: "Pending", Color: "yellow"},
	BookingConfirmed: {Label: "Confirmed", Color: "green"},
	BookingCancelled: {Label: "Cancelled", Color: "red"},
	BookingCompleted: {Label: "Completed", Color: "gray"},
}

var paymentStatusBadges = map[string]StatusBadge{
	"paid":     {Label: "Paid", Color: "green"},
	"pending":  {Label: "Payment Pending", Color: "yellow"},
	"failed":   {Label: "Payment Failed", Color: "red"},
	"refunded": {Label: "Refunded", Color: "blue"},
}

var paymentMethodBadges = map[string]StatusBadge{
	"paystack":      {Label: "Card Payment", Color: "blue"},
	"bank_transfer": {Label: "Bank Transfer", Color: "purple"},
	"onsite":        {Label: "Pay on Arrival", Color: "gray"},
}

var orderStatusBadges = map[string]StatusBadge{
	"confirmed":        {Label: "Confirmed", Color: "blue"},
	"preparing":        {Label: "Preparing", Color: "yellow"},
	"out_for_delivery": {Label: "Out for Delivery", Color: "orange"},
	"delivered":        {Label: "Delivered", Color: "green"},
	"cancelled":        {Label: "Cancelled", Color: "red"},
}

var verificationBadges = map[string]StatusBadge{
	"unverified": {Label: "Unverified", Color: "gray"},
	"pending":    {Label: "Verification Pending", Color: "yellow"},
	"verified":   {Label: "Verified", Color: "green"},
	"rejected":   {Label: "Rejected", Color: "red"},
}

var documentStatusBadges = map[string]StatusBadge{
	"pending":  {Label: "Under Review", Color: "yellow"},
	"approved": {Label: "Approved", Color: "green"},
	"rejected": {Label: "Rejected", Color: "red"},
}

var movementTypeBadges = map[string]StatusBadge{
	MovementIn:         {Label: "Stock In", Color: "green"},
	MovementOut:        {Label: "Stock Out", Color: "red"},
	MovementAdjustment: {Label: "Adjustment", Color: "blue"},
}

func lookupBadge(m map[string]StatusBadge, value string) StatusBadge {
	if badge, ok := m[value]; ok {
		return badge
	}
	return neutralBadge
}

// InventoryStatusBadge maps an inventory status to its badge
func InventoryStatusBadge(status string) StatusBadge {
	return lookupBadge(inventoryStatusBadges, status)
}

// BookingStatusBadge maps a booking status to its badge
func BookingStatusBadge(status string) StatusBadge {
	return lookupBadge(bookingStatusBadges, status)
}

// PaymentStatusBadge maps a payment status to its badge
func PaymentStatusBadge(status string) StatusBadge {
	return lookupBadge(paymentStatusBadges, status)
}

// PaymentMethodBadge maps a payment method to its badge
func PaymentMethodBadge(method string) StatusBadge {
	return lookupBadge(paymentMethodBadges, method)
}

// OrderStatusBadge maps a vendor order status to its badge
func OrderStatusBadge(status string) StatusBadge {
	return lookupBadge(orderStatusBadges, status)
}

// VerificationBadge maps a profile verification status to its badge
func VerificationBadge(status string) StatusBadge {
	return lookupBadge(verificationBadges, status)
}

// DocumentStatusBadge maps a document status to its badge
func DocumentStatusBadge(status string) StatusBadge {
	return lookupBadge(documentStatusBadges, status)
}

// MovementTypeBadge maps a stock movement type to its badge
func MovementTypeBadge(movementType string) StatusBadge {
	return lookupBadge(movementTypeBadges, movementType)
}
