package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the tradesense CLI and
// wires up logging and the journal, stats, and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var cleanup func() error

	cmd := &cobra.Command{
		Use:     "tradesense",
		Short:   "Terminal trading journal",
		Long:    "TradeSense: record trades in a local journal and browse them interactively",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c, err := setupLogging(cmd)
			if err != nil {
				return err
			}
			cleanup = c
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if cleanup != nil {
				return cleanup()
			}
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("account", "", "journal account to operate on (default: all accounts for reads)")
	cmd.AddCommand(newJournalCmd(), newStatsCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Record a closed trade
  tradesense journal add --symbol AAPL --side long --quantity 100 \
      --entry 187.20 --exit 191.05 --fees 1.50

  # Browse the journal interactively
  tradesense journal browse

  # List the 20 most profitable trades
  tradesense journal list --sort pnl:desc --limit 20

  # Show performance statistics
  tradesense stats

  # Initialize configuration
  tradesense config init

  # Set configuration values
  tradesense config set output.format json`
