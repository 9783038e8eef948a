package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tarigelamin1997/tradesense-sub009/internal/config"
	"github.com/tarigelamin1997/tradesense-sub009/internal/journal"
)

// newJournalCmd creates the journal command group.
func newJournalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Trade journal commands",
	}
	cmd.AddCommand(
		newJournalAddCmd(), newJournalListCmd(), newJournalShowCmd(),
		newJournalDeleteCmd(), newJournalBrowseCmd(),
	)
	return cmd
}

// openStore opens the journal store at the configured directory.
func openStore(ctx context.Context) (*journal.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return journal.Open(ctx, cfg.Journal.Dir)
}

// tradesFor returns trades scoped by the persistent --account flag, or
// every account's trades when the flag is unset.
func tradesFor(cmd *cobra.Command, store *journal.Store) []journal.Trade {
	account, _ := cmd.Flags().GetString("account")
	if account == "" {
		return store.List()
	}
	return store.ListAccount(account)
}
