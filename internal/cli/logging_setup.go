package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tarigelamin1997/tradesense-sub009/internal/config"
	"github.com/tarigelamin1997/tradesense-sub009/internal/logging"
)

// setupLogging configures logging from config file, environment, and CLI
// flags, attaches the logger to the command context, and returns the
// cleanup function for PersistentPostRunE.
func setupLogging(cmd *cobra.Command) (func() error, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logCfg := logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	}

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		logCfg.Level = "debug"
		logCfg.Format = "console"
		logCfg.File = ""
	}

	result, err := logging.New(logCfg)
	if err != nil {
		// Fall back to the stderr logger inside result; warn and continue.
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v, logging to stderr\n", err)
	}

	logger = logging.ComponentLogger(result.Logger, "cli")
	cmd.SetContext(logging.WithContext(cmd.Context(), result.Logger))

	logger.Debug().Str("command", cmd.Name()).Msg("command started")

	return result.Close, nil
}
