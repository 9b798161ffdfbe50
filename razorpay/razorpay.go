package razorpay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// GatewayOrder is the gateway's order record, returned verbatim.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Client talks to the Razorpay orders API. Stateless; construct once at
// startup and inject.
type Client struct {
	KeyID      string
	KeySecret  string
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient() *Client {
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	if keyID == "" {
		keyID = "rzp_test_demo"
	}
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")
	if keySecret == "" {
		keySecret = "demo_secret"
	}
	return &Client{
		KeyID:      keyID,
		KeySecret:  keySecret,
		BaseURL:    "https://api.razorpay.com",
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// CreateOrder registers a gateway order for the given amount in major
// currency units. The amount is converted to minor units by integer
// truncation. Remote failure is returned as-is; the caller surfaces it.
func (c *Client) CreateOrder(ctx context.Context, amount float64, currency string) (*GatewayOrder, error) {
	if currency == "" {
		currency = "INR"
	}

	payload := map[string]any{
		"amount":          int64(amount * 100),
		"currency":        currency,
		"payment_capture": 1,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.KeyID, c.KeySecret)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway order create failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gateway order create failed: status %d", resp.StatusCode)
	}

	var order GatewayOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("gateway order decode failed: %w", err)
	}
	return &order, nil
}

// VerifySignature recomputes the HMAC-SHA256 of "orderID|paymentID" keyed by
// the gateway secret and compares it to the supplied signature in constant
// time. A well-formed mismatch returns false, never an error.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	h := hmac.New(sha256.New, []byte(c.KeySecret))
	fmt.Fprintf(h, "%s|%s", orderID, paymentID)
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
