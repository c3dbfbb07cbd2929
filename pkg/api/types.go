package api

import "fmt"

// ExtractType selects how the entries in ExtractRequest.Data are
// interpreted by the service.
type ExtractType string

const (
	// ExtractTypeURL treats each data entry as a URL to fetch and extract from.
	ExtractTypeURL ExtractType = "url"
	// ExtractTypeText treats each data entry as raw text to extract from.
	ExtractTypeText ExtractType = "text"
)

// Limits enforced locally before a request is dispatched.
const (
	MaxDataEntries  = 20
	MaxPromptLength = 2000
)

// JSONSchema is the canonical wire-level schema representation: a plain
// nested mapping conforming to JSON Schema vocabulary.
type JSONSchema = map[string]any

// ExtractRequest is sent to POST /v1/extract.
//
// Schema may be any representation accepted by the schema package; it is
// normalized to a JSONSchema document before the request is sent.
type ExtractRequest struct {
	Type   ExtractType `json:"type"`
	Data   []string    `json:"data"`
	Prompt string      `json:"prompt,omitempty"`
	Schema any         `json:"schema,omitempty"`
}

// ExtractResponse is returned from POST /v1/extract. Data is left as an
// opaque JSON value because its shape depends on the schema (or on
// server-side inference when no schema was given).
type ExtractResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// AppInput is one key/value input for a hosted app run. Value must be a
// string, number, or boolean.
type AppInput struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// RunAppRequest is sent to POST /v1/apps/run/json and
// POST /v1/apps/run/table. Input order is preserved on the wire and
// duplicate keys are passed through as-is.
type RunAppRequest struct {
	AppID  string     `json:"appId"`
	Inputs []AppInput `json:"inputs"`
}

// Row is one row of app output: column name to cell value. Cell values
// are scalars (string, number, boolean) or nil, never nested structures.
type Row = map[string]any

// RunAppRowsResponse is returned from POST /v1/apps/run/json with rows
// decoded into a caller-chosen element type T.
type RunAppRowsResponse[T any] struct {
	Success     bool   `json:"success"`
	Data        []T    `json:"data,omitempty"`
	RunID       string `json:"runId,omitempty"`
	ElapsedTime int64  `json:"elapsedTime,omitempty"`
	Error       string `json:"error,omitempty"`
}

// RunAppJSONResponse is the default row-based response shape, with each
// row an open column-name-to-cell-value mapping.
type RunAppJSONResponse = RunAppRowsResponse[Row]

// AppTableData is the column/row payload of a table response.
type AppTableData struct {
	Columns   []string `json:"columns"`
	TableData [][]any  `json:"tableData"`
}

// Validate checks that every row has exactly one cell per column.
func (d *AppTableData) Validate() error {
	for i, row := range d.TableData {
		if len(row) != len(d.Columns) {
			return fmt.Errorf("table row %d has %d cells, want %d (one per column)", i, len(row), len(d.Columns))
		}
	}
	return nil
}

// RunAppTableResponse is returned from POST /v1/apps/run/table.
type RunAppTableResponse struct {
	Success     bool          `json:"success"`
	Data        *AppTableData `json:"data,omitempty"`
	RunID       string        `json:"runId,omitempty"`
	ElapsedTime int64         `json:"elapsedTime,omitempty"`
	Error       string        `json:"error,omitempty"`
}

// CreditsData holds the remaining account credit balance.
type CreditsData struct {
	Credits float64 `json:"credits"`
}

// GetCreditsResponse is returned from GET /v1/credits.
type GetCreditsResponse struct {
	Success bool         `json:"success"`
	Data    *CreditsData `json:"data,omitempty"`
	Error   string       `json:"error,omitempty"`
}
