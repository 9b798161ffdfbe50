package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(baseURL string) *Client {
	return &Client{
		KeyID:      "rzp_test_key",
		KeySecret:  "test_secret",
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 2 * time.Second},
	}
}

func sign(secret, orderID, paymentID string) string {
	h := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(h, "%s|%s", orderID, paymentID)
	return hex.EncodeToString(h.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	c := testClient("")

	good := sign("test_secret", "order_123", "pay_456")
	if !c.VerifySignature("order_123", "pay_456", good) {
		t.Fatal("valid signature rejected")
	}
}

func TestVerifySignatureTampered(t *testing.T) {
	c := testClient("")

	good := sign("test_secret", "order_123", "pay_456")

	if c.VerifySignature("order_999", "pay_456", good) {
		t.Fatal("signature accepted for wrong order id")
	}
	if c.VerifySignature("order_123", "pay_456", good[:len(good)-1]+"0") {
		t.Fatal("mangled signature accepted")
	}
	if c.VerifySignature("order_123", "pay_456", "") {
		t.Fatal("empty signature accepted")
	}
	if c.VerifySignature("order_123", "pay_456", "not-hex") {
		t.Fatal("garbage signature accepted")
	}
}

func TestCreateOrder(t *testing.T) {
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/orders" {
			t.Errorf("path = %s, want /v1/orders", r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "rzp_test_key" || pass != "test_secret" {
			t.Error("missing or wrong basic auth")
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(GatewayOrder{ID: "order_abc", Amount: 149975, Currency: "INR"})
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	order, err := c.CreateOrder(context.Background(), 1499.75, "INR")
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.ID != "order_abc" {
		t.Fatalf("order id = %s", order.ID)
	}
	// major units convert to paise
	if gotBody["amount"].(float64) != 149975 {
		t.Fatalf("amount = %v, want 149975", gotBody["amount"])
	}
	if gotBody["payment_capture"].(float64) != 1 {
		t.Fatalf("payment_capture = %v, want 1", gotBody["payment_capture"])
	}
}

func TestCreateOrderGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	if _, err := c.CreateOrder(context.Background(), 100, "INR"); err == nil {
		t.Fatal("expected error on non-2xx response")
	}
}
