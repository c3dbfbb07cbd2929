package nextrows

import (
	"fmt"
	"unicode/utf8"

	"github.com/nextrows/nextrows-go/pkg/api"
	"github.com/nextrows/nextrows-go/pkg/schema"
)

// Routes for the four public operations.
const (
	extractPath     = "/v1/extract"
	runAppJSONPath  = "/v1/apps/run/json"
	runAppTablePath = "/v1/apps/run/table"
	creditsPath     = "/v1/credits"
)

// buildExtractPayload checks the documented local constraints and
// returns the wire payload with the schema replaced by its canonical
// form. It never touches the network, so a rejected request costs no
// round trip.
func buildExtractPayload(req api.ExtractRequest) (api.ExtractRequest, error) {
	if len(req.Data) == 0 {
		return api.ExtractRequest{}, &api.ValidationError{Reason: "data must contain at least one entry"}
	}
	if len(req.Data) > api.MaxDataEntries {
		return api.ExtractRequest{}, &api.ValidationError{
			Reason: fmt.Sprintf("data must contain at most %d entries, got %d", api.MaxDataEntries, len(req.Data)),
		}
	}
	if n := utf8.RuneCountInString(req.Prompt); n > api.MaxPromptLength {
		return api.ExtractRequest{}, &api.ValidationError{
			Reason: fmt.Sprintf("prompt must be at most %d characters, got %d", api.MaxPromptLength, n),
		}
	}

	if req.Schema != nil {
		doc, err := schema.Normalize(req.Schema)
		if err != nil {
			return api.ExtractRequest{}, err
		}
		req.Schema = doc
	}

	return req, nil
}
