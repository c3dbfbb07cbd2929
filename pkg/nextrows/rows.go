package nextrows

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nextrows/nextrows-go/pkg/api"
)

// RunAppRowsAs runs a hosted app and decodes its rows into T. The wire
// request is byte-for-byte the same as Client.RunAppJSON; only the
// static shape of the decoded rows changes. No runtime check is made
// that the rows actually fit T beyond ordinary JSON decoding.
func RunAppRowsAs[T any](ctx context.Context, c *Client, req api.RunAppRequest) (*api.RunAppRowsResponse[T], error) {
	raw, err := c.tr.do(ctx, http.MethodPost, runAppJSONPath, req)
	if err != nil {
		return nil, err
	}

	return decode[api.RunAppRowsResponse[T]](raw)
}

// RowsAs converts already-received open rows into a typed slice by a
// JSON round trip. Useful when the element type is only known after
// inspecting the response.
func RowsAs[T any](rows []api.Row) ([]T, error) {
	data, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rows: %w", err)
	}

	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rows: %w", err)
	}

	return out, nil
}
