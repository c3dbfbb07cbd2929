package cli

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nextrows/nextrows-go/pkg/api"
)

// NewExtractCmd creates the extract command
func NewExtractCmd(opts *clientOptions) *cobra.Command {
	var (
		extractType string
		prompt      string
		schemaFile  string
		requestFile string
	)

	cmd := &cobra.Command{
		Use:   "extract [data...]",
		Short: "Extract structured data from URLs or raw text",
		Long: `Extract structured data from up to 20 URLs or text snippets.
The request can be given entirely as flags and arguments, or loaded from
a YAML/JSON file with --request.`,
		Example: `  nextrows extract --type url --prompt "Extract names and prices" https://example.com
  nextrows extract --type text --schema product-schema.yaml "Acme anvil, $49"
  nextrows extract --request extract-request.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req api.ExtractRequest
			if requestFile != "" {
				if len(args) > 0 || schemaFile != "" {
					return fmt.Errorf("--request cannot be combined with data arguments or --schema")
				}
				if err := loadRequestFile(requestFile, &req); err != nil {
					return fmt.Errorf("failed to load request: %w", err)
				}
			} else {
				req = api.ExtractRequest{
					Type:   api.ExtractType(extractType),
					Data:   args,
					Prompt: prompt,
				}
				if schemaFile != "" {
					var doc api.JSONSchema
					if err := loadRequestFile(schemaFile, &doc); err != nil {
						return fmt.Errorf("failed to load schema: %w", err)
					}
					req.Schema = doc
				}
			}

			client, err := opts.newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.Extract(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("extract failed: %w", err)
			}

			if !resp.Success {
				color.New(color.FgRed).Fprintln(cmd.OutOrStdout(), "✗ Extraction unsuccessful")
				return nil
			}

			out, err := json.MarshalIndent(resp.Data, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to render result: %w", err)
			}

			color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "✓ Extraction complete")
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&extractType, "type", string(api.ExtractTypeURL), "How to interpret the data arguments (url, text)")
	cmd.Flags().StringVar(&prompt, "prompt", "", "Natural-language description of what to extract")
	cmd.Flags().StringVar(&schemaFile, "schema", "", "YAML or JSON file holding the JSON Schema for the result")
	cmd.Flags().StringVar(&requestFile, "request", "", "YAML or JSON file holding the full extract request")

	return cmd
}
