// Package nextrows provides the Go client for the NextRows structured
// extraction and app-execution API.
//
// # Clients
//
// [NewClient] builds the blocking client: every method runs on the
// calling goroutine until the response arrives or the configured
// timeout elapses. [NewAsyncClient] builds the non-blocking variant,
// whose methods return a [Call] immediately; both share the same
// request builders and transport, so identical requests produce
// identical wire bytes and identical typed results.
//
// A client holds only immutable configuration plus an HTTP connection
// pool, so one instance is safe for concurrent use. Defer Close to
// release pooled connections.
//
// # Errors
//
// Failed calls return typed errors. Match coarsely with errors.Is
// against the sentinels ([ErrValidation], [ErrAuth],
// [ErrPaymentRequired], [ErrNotFound]) or recover detail with
// errors.As:
//
//	resp, err := client.RunAppJSON(ctx, req)
//	if errors.Is(err, nextrows.ErrNotFound) {
//	    // unknown app id
//	}
//
// Timeouts surface as *[TimeoutError], unreachable-service failures as
// *[NetworkError]. Nothing is retried; a single failed attempt is
// surfaced immediately.
//
// # Schemas
//
// ExtractRequest.Schema accepts a canonical JSON Schema document
// (map[string]any), a jsonschema.Schema from
// github.com/google/jsonschema-go, or any type implementing
// schema.Provider. It is normalized to the canonical wire form before
// the request is sent; see the schema package.
package nextrows

import "github.com/nextrows/nextrows-go/pkg/api"

// Wire types re-exported from pkg/api so callers need one import.
type (
	ExtractRequest      = api.ExtractRequest
	ExtractResponse     = api.ExtractResponse
	AppInput            = api.AppInput
	RunAppRequest       = api.RunAppRequest
	RunAppJSONResponse  = api.RunAppJSONResponse
	RunAppTableResponse = api.RunAppTableResponse
	AppTableData        = api.AppTableData
	GetCreditsResponse  = api.GetCreditsResponse
	CreditsData         = api.CreditsData
	Row                 = api.Row
	JSONSchema          = api.JSONSchema
	ExtractType         = api.ExtractType

	ValidationError = api.ValidationError
	SchemaError     = api.SchemaError
	APIError        = api.APIError
	TimeoutError    = api.TimeoutError
	NetworkError    = api.NetworkError
)

// RunAppRowsResponse is the generic row response returned by
// [RunAppRowsAs].
type RunAppRowsResponse[T any] = api.RunAppRowsResponse[T]

const (
	ExtractTypeURL  = api.ExtractTypeURL
	ExtractTypeText = api.ExtractTypeText

	MaxDataEntries  = api.MaxDataEntries
	MaxPromptLength = api.MaxPromptLength
)

var (
	ErrValidation      = api.ErrValidation
	ErrAuth            = api.ErrAuth
	ErrPaymentRequired = api.ErrPaymentRequired
	ErrNotFound        = api.ErrNotFound
)
