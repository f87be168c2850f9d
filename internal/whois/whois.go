package whois

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/avdeev/domainpro/internal/config"
	"github.com/avdeev/domainpro/pkg/clients"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	cacheTTL       = time.Hour
	cacheSweep     = 10 * time.Minute
	requestsPerSec = 1
	requestBurst   = 2
)

type Record struct {
	Registrar  *string    `json:"registrar"`
	ExpiryDate *time.Time `json:"expiryDate"`
}

type ClientI interface {
	Lookup(ctx context.Context, domainName string) (*Record, error)
}

type Client struct {
	url     string
	apiKey  string
	client  clients.HTTPClientI
	limiter *rate.Limiter
	cache   *cache.Cache
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:     cfg.WhoisAddress,
		apiKey:  cfg.WhoisAPIKey,
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSec), requestBurst),
		cache:   cache.New(cacheTTL, cacheSweep),
	}
}

type lookupResponse struct {
	Registrar      string `json:"registrar"`
	ExpirationDate int64  `json:"expiration_date"`
}

// Lookup queries the upstream WHOIS API for registrar and expiry data.
// Responses are cached for an hour; the upstream allows roughly one
// request per second, enforced by the limiter.
func (c *Client) Lookup(ctx context.Context, domainName string) (*Record, error) {
	if v, ok := c.cache.Get(domainName); ok {
		record := v.(Record)
		return &record, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	headers := http.Header{}
	headers.Set("X-Api-Key", c.apiKey)

	lookupURL := c.url + "/v1/whois?domain=" + url.QueryEscape(domainName)
	statusCode, respBody, _, err := c.client.Get(lookupURL, headers)
	if err != nil {
		return nil, fmt.Errorf("whois lookup for %s failed: %w", domainName, err)
	}
	if statusCode != http.StatusOK {
		zap.L().Warn("unexpected whois status code", zap.Int("status", statusCode), zap.String("domain", domainName))
		return nil, fmt.Errorf("whois lookup for %s returned status %d", domainName, statusCode)
	}

	var resp lookupResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse whois response: %w", err)
	}

	record := Record{}
	if resp.Registrar != "" {
		record.Registrar = &resp.Registrar
	}
	if resp.ExpirationDate > 0 {
		expiry := time.Unix(resp.ExpirationDate, 0).UTC()
		record.ExpiryDate = &expiry
	}

	c.cache.SetDefault(domainName, record)
	return &record, nil
}
