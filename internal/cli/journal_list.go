package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tarigelamin1997/tradesense-sub009/internal/cli/pagination"
	"github.com/tarigelamin1997/tradesense-sub009/internal/config"
	"github.com/tarigelamin1997/tradesense-sub009/internal/journal"
	"github.com/tarigelamin1997/tradesense-sub009/internal/tui"
)

// newJournalListCmd creates the 'journal list' command.
func newJournalListCmd() *cobra.Command {
	var sortExpr string
	var output string
	var params *pagination.Params

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			field, order, err := pagination.ParseSort(sortExpr)
			if err != nil {
				return err
			}
			params.SortField = field
			params.SortOrder = order

			if err := params.Validate(); err != nil {
				return err
			}

			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}

			trades := tradesFor(cmd, store)
			trades, err = pagination.SortTrades(trades, params.SortField, params.SortOrder)
			if err != nil {
				return err
			}

			start, end := params.Slice(len(trades))
			page := trades[start:end]
			summary := pagination.NewRangeSummary(*params, start, end, len(trades))

			format := output
			if format == "" {
				cfg, cfgErr := config.Load()
				if cfgErr != nil {
					return cfgErr
				}
				format = cfg.Output.Format
			}

			if format == "json" {
				return writeTradesJSON(cmd.OutOrStdout(), page)
			}
			return writeTradesTable(cmd.OutOrStdout(), page, summary)
		},
	}

	params = pagination.AddFlags(cmd)
	cmd.Flags().StringVar(&sortExpr, "sort", "", "sort by field[:order], e.g. 'pnl:desc' (fields: date, symbol, quantity, pnl, fees)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table or json (default from config)")

	return cmd
}

func writeTradesJSON(w io.Writer, trades []journal.Trade) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(trades)
}

func writeTradesTable(w io.Writer, trades []journal.Trade, summary pagination.RangeSummary) error {
	fmt.Fprintf(w, "%-27s %-12s %-8s %-5s %10s %12s %12s\n",
		"ID", "Date", "Symbol", "Side", "Quantity", "Entry", "P&L")

	for _, t := range trades {
		fmt.Fprintf(w, "%-27s %-12s %-8s %-5s %10s %12s %12s\n",
			t.ID,
			t.EntryTime.Format("2006-01-02"),
			t.Symbol,
			t.Direction,
			tui.FormatQuantity(t.Quantity),
			tui.FormatMoney(t.EntryPrice),
			tui.FormatPnL(t),
		)
	}

	fmt.Fprintln(w, summary)
	return nil
}
