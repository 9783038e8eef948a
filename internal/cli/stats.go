package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tarigelamin1997/tradesense-sub009/internal/journal"
	"github.com/tarigelamin1997/tradesense-sub009/internal/tui"
)

// statsSymbolLimit bounds the per-symbol breakdown.
const statsSymbolLimit = 10

// newStatsCmd creates the 'stats' command.
func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show journal performance statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}

			summary := journal.Summarize(tradesFor(cmd, store))
			fmt.Fprintln(cmd.OutOrStdout(), renderStats(summary))
			return nil
		},
	}
}

func renderStats(s journal.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Trades:     %d (%d open)\n", s.TotalTrades, s.OpenTrades)
	fmt.Fprintf(&b, "Wins:       %d\n", s.Wins)
	fmt.Fprintf(&b, "Losses:     %d\n", s.Losses)
	fmt.Fprintf(&b, "Win rate:   %s%%\n", s.WinRate)
	fmt.Fprintf(&b, "Net P&L:    %s\n", tui.FormatMoney(s.NetPnL))
	fmt.Fprintf(&b, "Total fees: %s\n", tui.FormatMoney(s.TotalFees))

	if len(s.BySymbol) > 0 {
		b.WriteString("\nBy symbol:\n")
		symbols := s.BySymbol
		if len(symbols) > statsSymbolLimit {
			symbols = symbols[:statsSymbolLimit]
		}
		for _, sym := range symbols {
			fmt.Fprintf(&b, "  %-8s %4d trades %12s\n", sym.Symbol, sym.Trades, tui.FormatMoney(sym.NetPnL))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
