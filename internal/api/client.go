// Package api provides the HTTP client for the fantasy-cricket backend.
package api

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/cricketai/internal/errors"
	"github.com/diogo/cricketai/internal/models"
)

// HTTPDoer is the subset of tls_client.HttpClient the client needs.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientInterface is what the widget controller and commands depend on.
type ClientInterface interface {
	Chat(ctx context.Context, message string) (*ChatReply, error)
	QuickAction(ctx context.Context, id models.QuickActionID) (*QuickActionReply, error)
	LiveStats(ctx context.Context) (*LiveStatsReply, error)
	MatchAnalysis(ctx context.Context) (*MatchAnalysisReply, error)
	Matches(ctx context.Context) (*MatchesReply, error)
	Health(ctx context.Context) (*models.Health, error)
	BaseURL() string
	Close()
}

// Ensure Client implements ClientInterface
var _ ClientInterface = (*Client)(nil)

// Client talks to the cricket backend over HTTP
type Client struct {
	httpClient HTTPDoer
	baseURL    string
	timeout    time.Duration
	mu         sync.RWMutex
	closed     bool
}

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithBaseURL sets the API root, e.g. http://localhost:5000/api
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout bounds every request. Zero disables the bound.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the transport, mainly for tests.
func WithHTTPClient(doer HTTPDoer) ClientOption {
	return func(c *Client) {
		c.httpClient = doer
	}
}

// NewClient creates a new Client
func NewClient(opts ...ClientOption) (*Client, error) {
	client := &Client{
		baseURL: models.DefaultBaseURL,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(int(client.timeout / time.Second)),
			tls_client.WithClientProfile(profiles.Chrome_120),
		}

		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// BaseURL returns the API root the client targets
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close marks the client closed; later calls fail fast.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// IsClosed returns whether the client is closed
func (c *Client) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

// do performs a request and returns the parsed JSON body.
//
// A JSON body is returned even for non-2xx statuses: the backend reports
// failures as {"error": ...}, which callers see as a missing field.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (gjson.Result, int, error) {
	if c.IsClosed() {
		return gjson.Result{}, 0, apierrors.ErrClientClosed
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return gjson.Result{}, 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return gjson.Result{}, 0, apierrors.NewNetworkError(path, err)
	}
	defer func() {
		if resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, resp.StatusCode, apierrors.NewNetworkError(path, err)
	}

	if !gjson.ValidBytes(data) {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return gjson.Result{}, resp.StatusCode, apierrors.NewAPIError(resp.StatusCode, path, snippet(data))
		}
		return gjson.Result{}, resp.StatusCode, apierrors.NewParseError("response body is not JSON", path)
	}

	return gjson.ParseBytes(data), resp.StatusCode, nil
}

func (c *Client) get(ctx context.Context, path string) (gjson.Result, int, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// snippet trims an error body for display
func snippet(data []byte) string {
	s := strings.TrimSpace(string(data))
	if r := []rune(s); len(r) > 200 {
		s = string(r[:200]) + "..."
	}
	if s == "" {
		return "empty response"
	}
	return s
}
