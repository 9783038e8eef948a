package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newJournalDeleteCmd creates the 'journal delete' command.
func newJournalDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <trade-id>",
		Short: "Delete a journal entry",
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

			if !force {
				fmt.Fprintf(cmd.OutOrStdout(), "Delete %s %s trade %s? [y/N]: ",
					trade.Direction, trade.Symbol, trade.ID)
				reader := bufio.NewReader(cmd.InOrStdin())
				answer, _ := reader.ReadString('\n')
				if !strings.EqualFold(strings.TrimSpace(answer), "y") {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			if err := store.Delete(trade.ID); err != nil {
				return err
			}

			logger.Info().Str("trade_id", trade.ID).Msg("trade deleted")
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted trade %s\n", trade.ID)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "delete without confirmation")
	return cmd
}
