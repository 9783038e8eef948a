package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tarigelamin1997/tradesense-sub009/internal/tui"
)

// showDetailWidth is the render width for non-interactive detail output.
const showDetailWidth = 80

// newJournalShowCmd creates the 'journal show' command.
func newJournalShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <trade-id>",
		Short: "Show one journal entry in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}

			trade, err := store.Get(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderTradeDetail(trade, showDetailWidth))
			return nil
		},
	}
}
