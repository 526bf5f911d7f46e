package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/stayhub/backend/internal/domain/shared"
	"github.com/stayhub/backend/internal/domain/shared/valueobject"
	"github.com/stayhub/backend/internal/infrastructure/config"
)

// Gateway initializes and verifies payments with an external provider
type Gateway interface {
	Initialize(ctx context.Context, req InitializeRequest) (*InitializeResponse, error)
	Verify(ctx context.Context, reference string) (*VerifyResponse, error)
	ValidateWebhookSignature(payload []byte, signature string) bool
}

// InitializeRequest starts a payment for an order
type InitializeRequest struct {
	Email     string
	Amount    valueobject.Money
	Reference string
	Metadata  map[string]string
}

// InitializeResponse carries the checkout URL for the customer
type InitializeResponse struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

// VerifyResponse is the settled state of a payment
type VerifyResponse struct {
	Reference string
	Status    string
	Amount    valueobject.Money
	PaidAt    string
	Channel   string
}

// Succeeded reports whether the gateway settled the payment
func (r *VerifyResponse) Succeeded() bool {
	return r.Status == "success"
}

// PaystackGateway is the Paystack HTTP API adapter
type PaystackGateway struct {
	secretKey string
	baseURL   string
	client    *http.Client
}

// NewPaystackGateway creates a Paystack gateway from configuration
func NewPaystackGateway(cfg config.PaymentConfig) *PaystackGateway {
	return &PaystackGateway{
		secretKey: cfg.PaystackSecretKey,
		baseURL:   cfg.PaystackBaseURL,
		client:    &http.Client{Timeout: cfg.RequestTimeout},
	}
}

type paystackEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type paystackInitData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type paystackVerifyData struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	PaidAt    string `json:"paid_at"`
	Channel   string `json:"channel"`
}

// Initialize creates a Paystack transaction. Amounts are sent in the
// currency's minor unit (kobo for NGN).
func (g *PaystackGateway) Initialize(ctx context.Context, req InitializeRequest) (*InitializeResponse, error) {
	minor := req.Amount.Amount().Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	body := map[string]interface{}{
		"email":     req.Email,
		"amount":    minor,
		"currency":  req.Amount.Currency(),
		"reference": req.Reference,
	}
	if len(req.Metadata) > 0 {
		body["metadata"] = req.Metadata
	}

	var data paystackInitData
	if err := g.post(ctx, "/transaction/initialize", body, &data); err != nil {
		return nil, err
	}
	return &InitializeResponse{
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
		Reference:        data.Reference,
	}, nil
}

// Verify fetches the settled state of a transaction by reference
func (g *PaystackGateway) Verify(ctx context.Context, reference string) (*VerifyResponse, error) {
	var data paystackVerifyData
	if err := g.get(ctx, "/transaction/verify/"+reference, &data); err != nil {
		return nil, err
	}
	amount, err := valueobject.NewMoney(decimal.NewFromInt(data.Amount).Div(decimal.NewFromInt(100)), data.Currency)
	if err != nil {
		return nil, err
	}
	return &VerifyResponse{
		Reference: data.Reference,
		Status:    data.Status,
		Amount:    amount,
		PaidAt:    data.PaidAt,
		Channel:   data.Channel,
	}, nil
}

// ValidateWebhookSignature checks the x-paystack-signature header,
// an HMAC-SHA512 of the raw body keyed with the secret key
func (g *PaystackGateway) ValidateWebhookSignature(payload []byte, signature string) bool {
	mac := hmac.New(sha512.New, []byte(g.secretKey))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (g *PaystackGateway) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return g.do(req, out)
}

func (g *PaystackGateway) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return err
	}
	return g.do(req, out)
}

func (g *PaystackGateway) do(req *http.Request, out interface{}) error {
	req.Header.Set("Authorization", "Bearer "+g.secretKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("paystack request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("paystack response: %w", err)
	}

	var envelope paystackEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("paystack decode: %w", err)
	}
	if resp.StatusCode >= 400 || !envelope.Status {
		msg := envelope.Message
		if msg == "" {
			msg = "payment gateway rejected the request"
		}
		return shared.NewDomainError("PAYMENT_GATEWAY_ERROR", msg)
	}
	return json.Unmarshal(envelope.Data, out)
}
