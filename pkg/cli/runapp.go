package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nextrows/nextrows-go/pkg/api"
)

// NewRunAppCmd creates the run-app command
func NewRunAppCmd(opts *clientOptions) *cobra.Command {
	var (
		inputs []string
		table  bool
	)

	cmd := &cobra.Command{
		Use:   "run-app [app-id]",
		Short: "Run a hosted app",
		Long: `Run a hosted NextRows app. Inputs are key=value pairs; values that
parse as numbers or booleans are sent typed, everything else is sent as
a string. Duplicate keys are allowed and passed through in order.`,
		Example: `  nextrows run-app abc123xyz --input url=https://example.com
  nextrows run-app abc123xyz --input query=anvils --input limit=10 --table`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := api.RunAppRequest{
				AppID:  args[0],
				Inputs: parseAppInputs(inputs),
			}

			client, err := opts.newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			if table {
				resp, err := client.RunAppTable(cmd.Context(), req)
				if err != nil {
					return fmt.Errorf("app run failed: %w", err)
				}
				return printTableResponse(cmd, resp)
			}

			resp, err := client.RunAppJSON(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}
			return printRowsResponse(cmd, resp)
		},
	}

	cmd.Flags().StringArrayVar(&inputs, "input", nil, "App input as key=value (repeatable)")
	cmd.Flags().BoolVar(&table, "table", false, "Return column/row table output instead of row objects")

	return cmd
}

// parseAppInputs converts key=value strings into typed app inputs.
// Values that look like numbers or booleans are sent as such.
func parseAppInputs(raw []string) []api.AppInput {
	inputs := make([]api.AppInput, 0, len(raw))
	for _, r := range raw {
		key, value, found := strings.Cut(r, "=")
		if !found {
			inputs = append(inputs, api.AppInput{Key: r, Value: ""})
			continue
		}
		inputs = append(inputs, api.AppInput{Key: key, Value: parseInputValue(value)})
	}
	return inputs
}

func parseInputValue(s string) any {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n
	}
	return s
}

func printRowsResponse(cmd *cobra.Command, resp *api.RunAppJSONResponse) error {
	if !resp.Success {
		color.New(color.FgRed).Fprintf(cmd.OutOrStdout(), "✗ App run failed: %s\n", resp.Error)
		return nil
	}

	out, err := json.MarshalIndent(resp.Data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render rows: %w", err)
	}

	printRunSummary(cmd, resp.RunID, resp.ElapsedTime)
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func printTableResponse(cmd *cobra.Command, resp *api.RunAppTableResponse) error {
	if !resp.Success {
		color.New(color.FgRed).Fprintf(cmd.OutOrStdout(), "✗ App run failed: %s\n", resp.Error)
		return nil
	}

	printRunSummary(cmd, resp.RunID, resp.ElapsedTime)

	if resp.Data == nil {
		return nil
	}
	if err := resp.Data.Validate(); err != nil {
		return fmt.Errorf("malformed table in response: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(resp.Data.Columns, "\t"))
	for _, row := range resp.Data.TableData {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprintf("%v", cell)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	return w.Flush()
}

func printRunSummary(cmd *cobra.Command, runID string, elapsed int64) {
	green := color.New(color.FgGreen)
	if runID != "" {
		green.Fprintf(cmd.OutOrStdout(), "✓ Run %s completed in %s\n", runID, (time.Duration(elapsed) * time.Millisecond).String())
	} else {
		green.Fprintln(cmd.OutOrStdout(), "✓ Run completed")
	}
}
