package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nextrows/nextrows-go/pkg/nextrows"
)

// NewRootCmd creates the root nextrows command
func NewRootCmd() *cobra.Command {
	opts := &clientOptions{}

	rootCmd := &cobra.Command{
		Use:   "nextrows",
		Short: "NextRows structured extraction client",
		Long: `nextrows is a command-line client for the NextRows API.
It extracts structured data from URLs or raw text, runs hosted apps,
and reports the remaining account credit balance.`,
	}

	opts.register(rootCmd)

	rootCmd.AddCommand(NewExtractCmd(opts))
	rootCmd.AddCommand(NewRunAppCmd(opts))
	rootCmd.AddCommand(NewCreditsCmd(opts))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// clientOptions holds the connection flags shared by every subcommand.
type clientOptions struct {
	apiKey  string
	baseURL string
	timeout time.Duration
}

func (o *clientOptions) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&o.apiKey, "api-key", os.Getenv("NEXTROWS_API_KEY"), "NextRows API key (defaults to NEXTROWS_API_KEY)")
	cmd.PersistentFlags().StringVar(&o.baseURL, "base-url", nextrows.DefaultBaseURL, "API base URL")
	cmd.PersistentFlags().DurationVar(&o.timeout, "timeout", nextrows.DefaultTimeout, "Per-request timeout")
}

func (o *clientOptions) newClient() (*nextrows.Client, error) {
	if o.apiKey == "" {
		return nil, fmt.Errorf("an API key must be provided via --api-key or the NEXTROWS_API_KEY environment variable")
	}

	return nextrows.NewClient(o.apiKey,
		nextrows.WithBaseURL(o.baseURL),
		nextrows.WithTimeout(o.timeout),
	), nil
}
