package drive

import (
	"context"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	// DefaultBaseURL is the Google Drive API endpoint.
	DefaultBaseURL = "https://www.googleapis.com"

	// DefaultPageSize bounds each files.list request.
	DefaultPageSize = 50
)

// TokenSource supplies a bearer token for API requests. Implementations live
// in the auth package; a source returning an error aborts the request before
// anything is sent.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client is a minimal Google Drive v3 read-only client.
type Client struct {
	httpClient *nethttp.Client
	baseURL    string
	tokens     TokenSource
	pageSize   int
}

// Option customizes the Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used by tests to point the client
// at a local server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *nethttp.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithPageSize overrides the listing page size.
func WithPageSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// NewClient creates a Drive client authenticating every request through
// tokens. Transport-level failures are retried with backoff; API-level
// failures are surfaced to the caller unretried.
func NewClient(tokens TokenSource, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.RetryWaitMin = 1 * time.Second
	retryClient.RetryWaitMax = 10 * time.Second
	retryClient.Logger = nil

	c := &Client{
		httpClient: retryClient.StandardClient(),
		baseURL:    DefaultBaseURL,
		tokens:     tokens,
		pageSize:   DefaultPageSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doRequest performs an authenticated GET against path with query.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) (*nethttp.Response, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}

// readError drains up to a few KB of an error response body for messages.
func readError(resp *nethttp.Response) string {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return strings.TrimSpace(string(body))
}
