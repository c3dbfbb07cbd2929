package nextrows

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/nextrows/nextrows-go/pkg/api"
)

const (
	// DefaultBaseURL is the production NextRows API endpoint.
	DefaultBaseURL = "https://api.nextrows.com"
	// DefaultTimeout bounds each request unless overridden with WithTimeout.
	DefaultTimeout = 30 * time.Second
)

type config struct {
	apiKey     string
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// Option configures a Client or AsyncClient at construction time.
// Configuration is immutable afterwards, which is what makes a single
// client instance safe for concurrent calls.
type Option func(*config)

// WithBaseURL overrides the API endpoint, e.g. for a staging deployment.
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) {
		c.timeout = timeout
	}
}

// WithHTTPClient supplies the underlying *http.Client, e.g. to reuse a
// connection pool or install a proxy. The client is copied, not
// mutated.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) {
		c.httpClient = client
	}
}

// Client is the blocking NextRows client. Every method runs to
// completion on the calling goroutine and returns either a fully typed
// response or a typed error, never both.
type Client struct {
	tr transport
}

// NewClient creates a Client authenticated with apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	cfg := &config{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Client{tr: newHTTPTransport(cfg)}
}

// Extract extracts structured data from the request's URLs or text.
// The request's schema, if any, is normalized to a canonical JSON
// Schema document before the call.
func (c *Client) Extract(ctx context.Context, req api.ExtractRequest) (*api.ExtractResponse, error) {
	payload, err := buildExtractPayload(req)
	if err != nil {
		return nil, err
	}

	raw, err := c.tr.do(ctx, http.MethodPost, extractPath, payload)
	if err != nil {
		return nil, err
	}

	return decode[api.ExtractResponse](raw)
}

// RunAppJSON runs a hosted app and returns its output as rows of
// column-name-to-cell-value mappings. Use RunAppRowsAs for a
// caller-chosen row type.
func (c *Client) RunAppJSON(ctx context.Context, req api.RunAppRequest) (*api.RunAppJSONResponse, error) {
	raw, err := c.tr.do(ctx, http.MethodPost, runAppJSONPath, req)
	if err != nil {
		return nil, err
	}

	return decode[api.RunAppJSONResponse](raw)
}

// RunAppTable runs a hosted app and returns its output in column/row
// table form.
func (c *Client) RunAppTable(ctx context.Context, req api.RunAppRequest) (*api.RunAppTableResponse, error) {
	raw, err := c.tr.do(ctx, http.MethodPost, runAppTablePath, req)
	if err != nil {
		return nil, err
	}

	return decode[api.RunAppTableResponse](raw)
}

// GetCredits fetches the remaining account credit balance.
func (c *Client) GetCredits(ctx context.Context) (*api.GetCreditsResponse, error) {
	raw, err := c.tr.do(ctx, http.MethodGet, creditsPath, nil)
	if err != nil {
		return nil, err
	}

	return decode[api.GetCreditsResponse](raw)
}

// Close releases pooled connections. The client remains usable; a
// subsequent call will dial again.
func (c *Client) Close() {
	if t, ok := c.tr.(*httpTransport); ok {
		t.closeIdle()
	}
}

// decode structurally parses a response body. Unknown fields are
// ignored and an absent data field is tolerated; the success flag
// governs whether callers should expect data.
func decode[T any](raw json.RawMessage) (*T, error) {
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}
