package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewCreditsCmd creates the credits command
func NewCreditsCmd(opts *clientOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "credits",
		Short: "Show the remaining account credit balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.GetCredits(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch credits: %w", err)
			}

			if !resp.Success || resp.Data == nil {
				color.New(color.FgRed).Fprintf(cmd.OutOrStdout(), "✗ Could not fetch credits: %s\n", resp.Error)
				return nil
			}

			color.New(color.FgCyan).Fprintf(cmd.OutOrStdout(), "Credits remaining: %g\n", resp.Data.Credits)
			return nil
		},
	}
}
