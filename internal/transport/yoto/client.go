// Package yoto fetches the product catalog from the storefront API.
package yoto

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/justthetip/yoto-discovery/internal/domain"
)

// maxFeedBytes caps the feed body read; the full catalog is a few MB.
const maxFeedBytes = 64 << 20

// Client talks to the storefront products API.
type Client struct {
	http    *http.Client
	baseURL string
	region  string
	token   string
	logger  *zap.Logger
}

// Config holds the storefront connection settings.
type Config struct {
	BaseURL string // e.g. https://api.yotoplay.com
	Region  string // e.g. uk
	Token   string // storefront API token
	Timeout time.Duration
	Logger  *zap.Logger
}

// NewClient creates a storefront API client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: cfg.BaseURL,
		region:  cfg.Region,
		token:   cfg.Token,
		logger:  logger,
	}
}

// FetchCatalog downloads the raw feed JSON for a collection. The body is
// returned verbatim so the caller can persist the dump as served.
func (c *Client) FetchCatalog(ctx context.Context, collection string) ([]byte, error) {
	u := fmt.Sprintf("%s/products/v2/%s?collection=%s",
		c.baseURL, url.PathEscape(c.region), url.QueryEscape(collection))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}
	// The storefront API only serves the product feed to the web client.
	req.Header.Set("X-Render-Context", "csr")
	req.Header.Set("X-Route", "/collections/"+collection)
	req.Header.Set("X-Page-Context", "plp")
	req.Header.Set("X-Client", "web-storefront")
	req.Header.Set("Accept", "*/*")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %v: %w", u, err, domain.ErrUpstreamFetch)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d: %w", u, resp.StatusCode, domain.ErrUpstreamFetch)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, fmt.Errorf("read feed body: %v: %w", err, domain.ErrUpstreamFetch)
	}

	c.logger.Info("catalog feed fetched",
		zap.String("collection", collection),
		zap.Int("bytes", len(body)),
		zap.Duration("latency", time.Since(start)),
	)
	return body, nil
}
