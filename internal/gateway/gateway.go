package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/avdeev/domainpro/internal/config"
	"github.com/avdeev/domainpro/pkg/clients"
	"go.uber.org/zap"
)

type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type ClientI interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type Client struct {
	url       string
	keyID     string
	keySecret string
	client    clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:       cfg.GatewayAddress,
		keyID:     cfg.GatewayKeyID,
		keySecret: cfg.GatewaySecret,
		client:    client,
	}
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// CreateOrder registers a charge intent with the gateway and returns the
// gateway-assigned order. The returned order id is what the client-side
// checkout flow later confirms a payment against.
func (c *Client) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*Order, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	body, err := json.Marshal(createOrderRequest{
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode order request: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.keyID+":"+c.keySecret)))

	statusCode, respBody, _, err := c.client.Post(c.url+"/v1/orders", headers, body)
	if err != nil {
		return nil, fmt.Errorf("gateway order creation failed: %w", err)
	}
	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		zap.L().Error("unexpected gateway status code", zap.Int("status", statusCode))
		return nil, fmt.Errorf("gateway order creation returned status %d", statusCode)
	}

	var order Order
	if err := json.Unmarshal(respBody, &order); err != nil {
		return nil, fmt.Errorf("failed to parse gateway response: %w", err)
	}
	return &order, nil
}

// VerifySignature checks the checkout callback signature: an HMAC-SHA256
// of "<orderID>|<paymentID>" keyed with the gateway secret.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
