package nextrows

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextrows/nextrows-go/pkg/api"
)

func newAsyncTestClient(t *testing.T, s *stubServer) *AsyncClient {
	t.Helper()

	client := NewAsyncClient("test-key", WithBaseURL(s.URL))
	t.Cleanup(client.Close)

	return client
}

func TestAsyncClient_MatchesBlockingClient(t *testing.T) {
	response := `{"success":true,"data":[{"Name":"A","Price":29.99}],"runId":"run_1","elapsedTime":100}`
	req := api.RunAppRequest{
		AppID:  "abc123xyz",
		Inputs: []api.AppInput{{Key: "url", Value: "https://example.com"}},
	}

	s := newStubServer(t, http.StatusOK, response)

	blocking := newTestClient(t, s)
	fromBlocking, err := blocking.RunAppJSON(context.Background(), req)
	require.NoError(t, err)

	async := newAsyncTestClient(t, s)
	fromAsync, err := async.RunAppJSON(context.Background(), req).Await(context.Background())
	require.NoError(t, err)

	assert.Equal(t, fromBlocking, fromAsync)
}

func TestAsyncClient_Extract(t *testing.T) {
	s := newStubServer(t, http.StatusOK, `{"success":true,"data":{"title":"Example"}}`)
	client := newAsyncTestClient(t, s)

	call := client.Extract(context.Background(), api.ExtractRequest{
		Type: api.ExtractTypeURL,
		Data: []string{"https://example.com"},
	})

	resp, err := call.Await(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, map[string]any{"title": "Example"}, resp.Data)
}

func TestAsyncClient_ValidationBeforeDispatch(t *testing.T) {
	rec := &recordingTransport{}
	client := &AsyncClient{c: &Client{tr: rec}}

	call := client.Extract(context.Background(), api.ExtractRequest{Type: api.ExtractTypeURL})

	_, err := call.Await(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrValidation)
	assert.Equal(t, 0, rec.calls)
}

func TestAsyncClient_ConcurrentCallsIndependent(t *testing.T) {
	var inFlight, peak atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			old := peak.Load()
			if n <= old || peak.CompareAndSwap(old, n) {
				break
			}
		}
		time.Sleep(50 * time.Millisecond)
		_, _ = w.Write([]byte(`{"success":true,"data":{"credits":1}}`))
	}))
	t.Cleanup(server.Close)

	client := NewAsyncClient("test-key", WithBaseURL(server.URL))
	t.Cleanup(client.Close)

	calls := make([]*Call[api.GetCreditsResponse], 4)
	for i := range calls {
		calls[i] = client.GetCredits(context.Background())
	}
	for _, call := range calls {
		resp, err := call.Await(context.Background())
		require.NoError(t, err)
		assert.True(t, resp.Success)
	}

	assert.Greater(t, peak.Load(), int32(1), "calls must not be serialized")
}

func TestAsyncClient_AwaitCancellation(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	client := NewAsyncClient("test-key", WithBaseURL(server.URL))
	t.Cleanup(client.Close)

	call := client.GetCredits(context.Background())
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := call.Await(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAsyncClient_ExtractBatch(t *testing.T) {
	s := newStubServer(t, http.StatusOK, `{"success":true,"data":"ok"}`)
	client := newAsyncTestClient(t, s)

	reqs := []api.ExtractRequest{
		{Type: api.ExtractTypeURL, Data: []string{"https://example.com"}},
		{Type: api.ExtractTypeText, Data: []string{"Acme anvil, $49"}},
	}

	resps, err := client.ExtractBatch(context.Background(), reqs)
	require.NoError(t, err)

	require.Len(t, resps, 2)
	for _, resp := range resps {
		assert.True(t, resp.Success)
	}
}

func TestAsyncClient_ExtractBatch_FirstErrorWins(t *testing.T) {
	s := newStubServer(t, http.StatusOK, `{"success":true}`)
	client := newAsyncTestClient(t, s)

	reqs := []api.ExtractRequest{
		{Type: api.ExtractTypeURL, Data: []string{"https://example.com"}},
		{Type: api.ExtractTypeURL}, // invalid: empty data
	}

	_, err := client.ExtractBatch(context.Background(), reqs)
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrValidation)
}
