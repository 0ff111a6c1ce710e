package awards

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrFeedUnavailable marks any failure to obtain a usable nomination feed:
// transport errors, non-2xx responses, and malformed documents. It is a
// batch-wide condition; no categories can be computed without the feed.
var ErrFeedUnavailable = errors.New("nomination feed unavailable")

// FeedClient fetches the nomination feed document.
type FeedClient struct {
	url        string
	httpClient *http.Client
}

// FeedOption configures a FeedClient.
type FeedOption func(*FeedClient)

// WithFeedHTTPClient overrides the default HTTP client.
func WithFeedHTTPClient(client *http.Client) FeedOption {
	return func(c *FeedClient) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithFeedTimeout overrides the default request timeout.
func WithFeedTimeout(timeout time.Duration) FeedOption {
	return func(c *FeedClient) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewFeedClient creates a client for the nomination feed at the given URL.
func NewFeedClient(url string, opts ...FeedOption) (*FeedClient, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, errors.New("feed url required")
	}
	client := &FeedClient{
		url:        url,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Fetch retrieves and decodes the full nomination set. The document is an
// array of nomination records; any transport, status, or decode failure is
// reported as ErrFeedUnavailable.
func (c *FeedClient) Fetch(ctx context.Context) ([]NominationRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("%w: execute request (latency=%v): %w", ErrFeedUnavailable, latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: feed returned %d (latency=%v)", ErrFeedUnavailable, resp.StatusCode, latency)
	}

	var records []NominationRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decode feed: %w", ErrFeedUnavailable, err)
	}
	return records, nil
}
