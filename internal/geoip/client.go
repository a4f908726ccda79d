// Package geoip resolves a source address to a two-letter country code
// through the ip-api.com JSON endpoint.
package geoip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto"

	"guestbook/internal/metrics"
	"guestbook/internal/network"
	"guestbook/pkg/logger"
)

// ErrLookupFailed is returned for every failed lookup: transport errors,
// non-200 responses, undecodable bodies and unsuccessful statuses alike.
var ErrLookupFailed = errors.New("geo lookup failed")

const (
	DefaultBaseURL = "http://ip-api.com"
	defaultTimeout = 5 * time.Second
	maxBodyBytes   = 64 << 10
)

// Config configures a Client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// CacheSizePow2 bounds the cache at 2^n bytes. Zero uses 2^20.
	CacheSizePow2 int
}

type lookupResponse struct {
	Status      string `json:"status"`
	CountryCode string `json:"countryCode"`
	Message     string `json:"message"`
}

// Client looks up country codes and caches successful answers.
type Client struct {
	baseURL string
	// httpClient is built once so lookups share one connection pool.
	httpClient *http.Client
	cache      *ristretto.Cache
}

// NewClient creates a Client. A nil factory uses direct connections.
func NewClient(cfg Config, clients *network.ClientFactory) (*Client, error) {
	if clients == nil {
		clients = network.NewClientFactory(nil)
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	sizePow2 := cfg.CacheSizePow2
	if sizePow2 <= 0 {
		sizePow2 = 20
	}

	maxCost := int64(1) << sizePow2
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: max(1, maxCost/10),
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create geo cache: %w", err)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: clients.NewHTTPClient(context.Background(), timeout),
		cache:      cache,
	}, nil
}

// Lookup returns the lowercase country code for ip.
func (c *Client) Lookup(ctx context.Context, ip string) (string, error) {
	ip = strings.TrimSpace(ip)
	if ip == "" {
		metrics.ObserveGeoLookup("failure")
		return "", fmt.Errorf("%w: empty address", ErrLookupFailed)
	}

	if cached, ok := c.cache.Get(ip); ok {
		metrics.ObserveGeoLookup("hit")
		return cached.(string), nil
	}

	code, err := c.fetch(ctx, ip)
	if err != nil {
		metrics.ObserveGeoLookup("failure")
		return "", err
	}

	c.cache.Set(ip, code, int64(len(ip)+len(code)))
	c.cache.Wait()
	metrics.ObserveGeoLookup("success")
	return code, nil
}

func (c *Client) fetch(ctx context.Context, ip string) (string, error) {
	endpoint := c.baseURL + "/json/" + url.PathEscape(ip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	defer func() {
		// drain so the connection goes back to the pool
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrLookupFailed, resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: decode: %v", ErrLookupFailed, err)
	}
	if body.Status != "success" {
		logger.Debug("geo lookup unsuccessful",
			"module", "geoip",
			"action", "lookup",
			"resource", "country",
			"result", "failed",
			"message", body.Message,
		)
		return "", fmt.Errorf("%w: status %q", ErrLookupFailed, body.Status)
	}

	code := strings.ToLower(strings.TrimSpace(body.CountryCode))
	if !isCountryCode(code) {
		return "", fmt.Errorf("%w: malformed country code %q", ErrLookupFailed, body.CountryCode)
	}
	return code, nil
}

// Close drops idle connections and releases the cache.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
	c.cache.Close()
}

func isCountryCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for _, r := range code {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
