package handler

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	vendorapp "github.com/stayhub/backend/internal/application/vendor"
	"github.com/stayhub/backend/internal/domain/shared"
	"github.com/stayhub/backend/internal/domain/shared/valueobject"
	"github.com/stayhub/backend/internal/domain/vendor"
	"github.com/stayhub/backend/internal/infrastructure/config"
	"github.com/stayhub/backend/internal/infrastructure/payment"
)

const webhookSecret = "sk_test_webhook"

type stubOrderRepo struct {
	byRef map[string]*vendor.Order
	saved []*vendor.Order
}

func (r *stubOrderRepo) FindByID(context.Context, uuid.UUID) (*vendor.Order, error) {
	return nil, shared.ErrNotFound
}

func (r *stubOrderRepo) FindByOrderNumber(context.Context, string) (*vendor.Order, error) {
	return nil, shared.ErrNotFound
}

func (r *stubOrderRepo) FindByPaymentRef(_ context.Context, ref string) (*vendor.Order, error) {
	if o, ok := r.byRef[ref]; ok {
		return o, nil
	}
	return nil, shared.ErrNotFound
}

func (r *stubOrderRepo) FindAll(context.Context, shared.Filter) ([]vendor.Order, error) {
	return nil, nil
}

func (r *stubOrderRepo) FindByBuyer(context.Context, uuid.UUID, shared.Filter) ([]vendor.Order, error) {
	return nil, nil
}

func (r *stubOrderRepo) Save(_ context.Context, o *vendor.Order) error {
	r.saved = append(r.saved, o)
	return nil
}

func (r *stubOrderRepo) Delete(context.Context, uuid.UUID) error { return nil }

func (r *stubOrderRepo) Count(context.Context, shared.Filter) (int64, error) { return 0, nil }

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, ...shared.DomainEvent) error { return nil }

func sign(body []byte) string {
	mac := hmac.New(sha512.New, []byte(webhookSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func webhookRouter(t *testing.T, repo *stubOrderRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gateway := payment.NewPaystackGateway(config.PaymentConfig{
		PaystackSecretKey: webhookSecret,
		PaystackBaseURL:   "http://paystack.invalid",
	})
	svc := vendorapp.NewService(repo, gateway, nopPublisher{}, nil, zap.NewNop())
	h := NewPaymentCallbackHandler(svc, gateway, zap.NewNop())

	r := gin.New()
	r.POST("/api/v1/payment/callback/paystack", h.HandlePaystackWebhook)
	return r
}

func pendingOrder(t *testing.T, ref string) *vendor.Order {
	t.Helper()
	price, err := valueobject.NewMoneyFromFloat(12000, "NGN")
	require.NoError(t, err)
	o, err := vendor.NewOrder(vendor.NewOrderParams{
		BuyerID: uuid.New(),
		Vendor:  vendor.VendorSnapshot{VendorID: uuid.New(), Name: "Lagos Linen Co"},
		Items: []vendor.OrderItem{
			{ProductID: uuid.New(), ProductName: "Queen Sheets", Quantity: 1, UnitPrice: price},
		},
		ServiceFee:  valueobject.Zero("NGN"),
		DeliveryFee: valueobject.Zero("NGN"),
	})
	require.NoError(t, err)
	require.NoError(t, o.AttachPaymentRef(ref))
	o.ClearDomainEvents()
	return o
}

func TestHandlePaystackWebhook(t *testing.T) {
	t.Run("charge.success settles the order", func(t *testing.T) {
		o := pendingOrder(t, "REF-OK")
		repo := &stubOrderRepo{byRef: map[string]*vendor.Order{"REF-OK": o}}
		r := webhookRouter(t, repo)

		body := []byte(`{"event":"charge.success","data":{"reference":"REF-OK","status":"success"}}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/payment/callback/paystack", bytes.NewReader(body))
		req.Header.Set(PaystackSignatureHeader, sign(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, vendor.PaymentPaid, o.PaymentStatus)
		assert.Len(t, repo.saved, 1)
	})

	t.Run("bad signature rejected without touching orders", func(t *testing.T) {
		o := pendingOrder(t, "REF-SIG")
		repo := &stubOrderRepo{byRef: map[string]*vendor.Order{"REF-SIG": o}}
		r := webhookRouter(t, repo)

		body := []byte(`{"event":"charge.success","data":{"reference":"REF-SIG","status":"success"}}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/payment/callback/paystack", bytes.NewReader(body))
		req.Header.Set(PaystackSignatureHeader, "forged")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, repo.saved)
	})

	t.Run("unknown reference acknowledged", func(t *testing.T) {
		repo := &stubOrderRepo{byRef: map[string]*vendor.Order{}}
		r := webhookRouter(t, repo)

		body := []byte(`{"event":"charge.success","data":{"reference":"ghost","status":"success"}}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/payment/callback/paystack", bytes.NewReader(body))
		req.Header.Set(PaystackSignatureHeader, sign(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unhandled event acknowledged", func(t *testing.T) {
		repo := &stubOrderRepo{byRef: map[string]*vendor.Order{}}
		r := webhookRouter(t, repo)

		body := []byte(`{"event":"transfer.success","data":{"reference":"x"}}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/payment/callback/paystack", bytes.NewReader(body))
		req.Header.Set(PaystackSignatureHeader, sign(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
