// Package sparql talks to the remote triple store and models its
// query results.
package sparql

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/ayuwidi/gaung/internal/version"
)

// Client executes SPARQL queries against a single configured endpoint.
// It is safe for concurrent use; the underlying http.Client pools
// connections to the store.
type Client struct {
	client   *http.Client
	limiter  *rate.Limiter
	logger   *slog.Logger
	metrics  *Metrics
	endpoint string
}

// NewClient creates a store client for the given endpoint. A nil
// metrics value disables instrumentation.
func NewClient(endpoint string, logger *slog.Logger, metrics *Metrics) *Client {
	return &Client{
		client:   &http.Client{Timeout: 15 * time.Second},
		limiter:  rate.NewLimiter(rate.Limit(20), 5),
		logger:   logger.With(slog.String("component", "store")),
		metrics:  metrics,
		endpoint: strings.TrimRight(endpoint, "/"),
	}
}

// Endpoint returns the configured store endpoint URL.
func (c *Client) Endpoint() string { return c.endpoint }

// Select executes a SELECT query and decodes the store's JSON result.
// It does not retry and does not reinterpret store errors.
func (c *Client) Select(ctx context.Context, query string) (*Result, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &ErrStoreUnavailable{Endpoint: c.endpoint, Cause: fmt.Errorf("rate limiter: %w", err)}
	}

	form := url.Values{"query": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/sparql-results+json")
	req.Header.Set("User-Agent", "Gaung/"+version.Version)

	c.logger.Debug("executing SPARQL query", slog.Int("bytes", len(query)))

	start := time.Now()
	resp, err := c.client.Do(req)
	if c.metrics != nil {
		c.metrics.queriesTotal.Inc()
		c.metrics.queryDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		c.countError()
		return nil, &ErrStoreUnavailable{Endpoint: c.endpoint, Cause: err}
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.countError()
		return nil, fmt.Errorf("reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusBadRequest:
		c.countError()
		return nil, &ErrQueryRejected{Message: strings.TrimSpace(string(body))}
	default:
		c.countError()
		return nil, &ErrStoreUnavailable{
			Endpoint: c.endpoint,
			Cause:    fmt.Errorf("HTTP %d", resp.StatusCode),
		}
	}

	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		c.countError()
		return nil, fmt.Errorf("parsing SPARQL response: %w", err)
	}
	return &result, nil
}

func (c *Client) countError() {
	if c.metrics != nil {
		c.metrics.queryErrors.Inc()
	}
}
