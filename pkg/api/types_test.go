package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppTableData_Validate(t *testing.T) {
	tt := map[string]struct {
		data      *AppTableData
		expectErr bool
	}{
		"rows match columns": {
			data: &AppTableData{
				Columns:   []string{"Name", "Price"},
				TableData: [][]any{{"A", 1.5}, {"B", nil}},
			},
			expectErr: false,
		},
		"empty table": {
			data:      &AppTableData{Columns: []string{"Name"}},
			expectErr: false,
		},
		"short row": {
			data: &AppTableData{
				Columns:   []string{"Name", "Price"},
				TableData: [][]any{{"A"}},
			},
			expectErr: true,
		},
		"long row": {
			data: &AppTableData{
				Columns:   []string{"Name"},
				TableData: [][]any{{"A", "extra"}},
			},
			expectErr: true,
		},
	}

	for tn, tc := range tt {
		t.Run(tn, func(t *testing.T) {
			err := tc.data.Validate()
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRunAppJSONResponse_DecodeTolerant(t *testing.T) {
	// Unknown fields are ignored and absent data is fine; the success
	// flag governs whether callers expect data.
	raw := `{"success":false,"error":"app crashed","someNewField":123}`

	var resp RunAppJSONResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))

	assert.False(t, resp.Success)
	assert.Equal(t, "app crashed", resp.Error)
	assert.Nil(t, resp.Data)
}

func TestExtractRequest_OmitsAbsentOptionals(t *testing.T) {
	data, err := json.Marshal(ExtractRequest{
		Type: ExtractTypeURL,
		Data: []string{"https://example.com"},
	})
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(data, &wire))

	assert.Equal(t, []string{"type", "data"}, keysOf(wire))
}

func keysOf(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for _, k := range []string{"type", "data", "prompt", "schema"} {
		if _, ok := m[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}
