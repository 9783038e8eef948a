package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tarigelamin1997/tradesense-sub009/internal/tui"
)

// errNotATerminal is returned when browse runs without an interactive
// terminal; the list command is the piped alternative.
var errNotATerminal = errors.New("journal browse requires an interactive terminal (use 'journal list' instead)")

// newJournalBrowseCmd creates the 'journal browse' command: the
// interactive, virtualized journal view.
func newJournalBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the journal interactively",
		Long: "Browse the journal in a full-screen terminal UI. The view renders only\n" +
			"the visible rows, so journals with tens of thousands of trades scroll\n" +
			"smoothly.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if tui.DetectOutputMode(false, false) != tui.OutputModeInteractive {
				return errNotATerminal
			}

			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			trades := tradesFor(cmd, store)

			model, err := tui.NewJournalModel(trades)
			if err != nil {
				return err
			}
			defer model.Close()

			logger.Debug().Int("trades", len(trades)).Msg("starting journal browser")

			program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("running journal browser: %w", err)
			}
			return nil
		},
	}
}
