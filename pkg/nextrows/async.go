package nextrows

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/nextrows/nextrows-go/pkg/api"
)

// Call is an in-flight API call started by an AsyncClient method. It
// resolves exactly once.
type Call[T any] struct {
	done   chan struct{}
	result *T
	err    error
}

func newCall[T any](run func() (*T, error)) *Call[T] {
	c := &Call[T]{done: make(chan struct{})}
	go func() {
		defer close(c.done)
		c.result, c.err = run()
	}()
	return c
}

// Await blocks until the call resolves or ctx is done. When ctx is
// done first, Await returns ctx.Err(); the underlying request is
// aborted through the context the call was started with.
func (c *Call[T]) Await(ctx context.Context) (*T, error) {
	select {
	case <-c.done:
		return c.result, c.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// AsyncClient exposes the same four operations as Client, each
// returning immediately with a Call to await. Calls issued concurrently
// are independent and unordered; nothing here serializes them. Any
// required ordering is the caller's responsibility.
type AsyncClient struct {
	c *Client
}

// NewAsyncClient creates an AsyncClient authenticated with apiKey. It
// accepts the same options as NewClient.
func NewAsyncClient(apiKey string, opts ...Option) *AsyncClient {
	return &AsyncClient{c: NewClient(apiKey, opts...)}
}

// Extract starts an extract call. Cancelling ctx aborts the in-flight
// request without leaking its connection slot.
func (a *AsyncClient) Extract(ctx context.Context, req api.ExtractRequest) *Call[api.ExtractResponse] {
	return newCall(func() (*api.ExtractResponse, error) {
		return a.c.Extract(ctx, req)
	})
}

// RunAppJSON starts a row-based app run.
func (a *AsyncClient) RunAppJSON(ctx context.Context, req api.RunAppRequest) *Call[api.RunAppJSONResponse] {
	return newCall(func() (*api.RunAppJSONResponse, error) {
		return a.c.RunAppJSON(ctx, req)
	})
}

// RunAppTable starts a table-based app run.
func (a *AsyncClient) RunAppTable(ctx context.Context, req api.RunAppRequest) *Call[api.RunAppTableResponse] {
	return newCall(func() (*api.RunAppTableResponse, error) {
		return a.c.RunAppTable(ctx, req)
	})
}

// GetCredits starts a credit balance fetch.
func (a *AsyncClient) GetCredits(ctx context.Context) *Call[api.GetCreditsResponse] {
	return newCall(func() (*api.GetCreditsResponse, error) {
		return a.c.GetCredits(ctx)
	})
}

// ExtractBatch issues one extract per request concurrently and returns
// the responses in request order. The first failure cancels the
// remaining in-flight calls and is returned.
func (a *AsyncClient) ExtractBatch(ctx context.Context, reqs []api.ExtractRequest) ([]*api.ExtractResponse, error) {
	g, gctx := errgroup.WithContext(ctx)

	out := make([]*api.ExtractResponse, len(reqs))
	for i, req := range reqs {
		g.Go(func() error {
			resp, err := a.c.Extract(gctx, req)
			if err != nil {
				return err
			}
			out[i] = resp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Close releases pooled connections, including after failed calls.
// Callers should defer it as soon as the client is constructed.
func (a *AsyncClient) Close() {
	a.c.Close()
}
