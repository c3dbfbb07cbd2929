package nextrows

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nextrows/nextrows-go/pkg/api"
)

// transport is the contract shared by every public operation: send one
// request, return the raw JSON body of a 2xx response or a typed error.
// Implementations never retry.
type transport interface {
	do(ctx context.Context, method, path string, body any) (json.RawMessage, error)
}

// headerRoundTripper wraps an http.RoundTripper and adds fixed headers
// to every request. If base is nil, http.DefaultTransport is used.
type headerRoundTripper struct {
	headers map[string]string
	base    http.RoundTripper
}

func (h *headerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	for key, value := range h.headers {
		req.Header.Set(key, value)
	}

	base := h.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

// httpTransport sends requests over net/http with the authorization
// header and timeout applied uniformly.
type httpTransport struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
}

var _ transport = &httpTransport{}

func newHTTPTransport(cfg *config) *httpTransport {
	base := http.Client{}
	if cfg.httpClient != nil {
		// Copy so the caller's client is never mutated.
		base = *cfg.httpClient
	}
	base.Transport = &headerRoundTripper{
		headers: map[string]string{
			"Authorization": "Bearer " + cfg.apiKey,
			"Content-Type":  "application/json",
		},
		base: base.Transport,
	}

	return &httpTransport{
		baseURL: strings.TrimRight(cfg.baseURL, "/"),
		timeout: cfg.timeout,
		client:  &base,
	}
}

func (t *httpTransport) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, t.classify(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, t.classify(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &api.APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	return data, nil
}

// classify maps a raw transport failure to the typed taxonomy. Caller
// cancellation is passed through untouched so errors.Is(err,
// context.Canceled) keeps working.
func (t *httpTransport) classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &api.TimeoutError{Timeout: t.timeout}
	}
	if errors.Is(err, context.Canceled) {
		return context.Canceled
	}
	return &api.NetworkError{Err: err}
}

// closeIdle releases pooled connections held by the transport.
func (t *httpTransport) closeIdle() {
	t.client.CloseIdleConnections()
}
