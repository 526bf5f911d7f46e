package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	vendorapp "github.com/stayhub/backend/internal/application/vendor"
	"github.com/stayhub/backend/internal/infrastructure/payment"
)

// PaystackSignatureHeader carries the HMAC-SHA512 signature of the
// webhook body
const PaystackSignatureHeader = "x-paystack-signature"

// PaymentCallbackHandler handles payment gateway webhooks. These
// endpoints are called by Paystack and do not require authentication;
// the signature header authenticates the sender.
type PaymentCallbackHandler struct {
	BaseHandler
	orders  *vendorapp.Service
	gateway payment.Gateway
	log     *zap.Logger
}

// NewPaymentCallbackHandler creates a new PaymentCallbackHandler
func NewPaymentCallbackHandler(orders *vendorapp.Service, gateway payment.Gateway, log *zap.Logger) *PaymentCallbackHandler {
	return &PaymentCallbackHandler{orders: orders, gateway: gateway, log: log}
}

type paystackWebhookEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
		Status    string `json:"status"`
	} `json:"data"`
}

// HandlePaystackWebhook verifies and processes a Paystack event
func (h *PaymentCallbackHandler) HandlePaystackWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	signature := c.GetHeader(PaystackSignatureHeader)
	if !h.gateway.ValidateWebhookSignature(body, signature) {
		h.log.Warn("webhook signature mismatch")
		c.Status(http.StatusUnauthorized)
		return
	}

	var event paystackWebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	switch event.Event {
	case "charge.success":
		err = h.orders.SettleByReference(c.Request.Context(), event.Data.Reference, true)
	case "charge.failed":
		err = h.orders.SettleByReference(c.Request.Context(), event.Data.Reference, false)
	default:
		// unhandled event types are acknowledged so Paystack stops retrying
		h.log.Debug("ignoring webhook event", zap.String("event", event.Event))
	}
	if err != nil {
		h.log.Error("webhook settlement failed",
			zap.String("event", event.Event),
			zap.String("reference", event.Data.Reference),
			zap.Error(err),
		)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}
