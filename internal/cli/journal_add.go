package cli

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tarigelamin1997/tradesense-sub009/internal/config"
	"github.com/tarigelamin1997/tradesense-sub009/internal/journal"
)

// addFlags holds the raw string flags of 'journal add' before parsing.
type addFlags struct {
	symbol    string
	side      string
	quantity  string
	entry     string
	exit      string
	fees      string
	entryTime string
	exitTime  string
	notes     string
	tags      []string
}

// newJournalAddCmd creates the 'journal add' command.
func newJournalAddCmd() *cobra.Command {
	var flags addFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a trade",
		Long: "Record a trade in the journal. Omitting --exit records an open position;\n" +
			"times default to now and accept RFC 3339 or '2006-01-02 15:04'.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			trade, err := flags.toTrade()
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			account, _ := cmd.Flags().GetString("account")
			if account == "" {
				account = cfg.Journal.DefaultAccount
			}
			trade.Account = account

			store, err := journal.Open(cmd.Context(), cfg.Journal.Dir)
			if err != nil {
				return err
			}

			saved, err := store.Add(trade)
			if err != nil {
				return err
			}

			logger.Info().Str("trade_id", saved.ID).Str("symbol", saved.Symbol).Msg("trade recorded")
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded trade %s (%s %s %s)\n",
				saved.ID, saved.Direction, saved.Quantity, saved.Symbol)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.symbol, "symbol", "", "instrument symbol (required)")
	cmd.Flags().StringVar(&flags.side, "side", "long", "trade direction: long or short")
	cmd.Flags().StringVar(&flags.quantity, "quantity", "", "position size (required)")
	cmd.Flags().StringVar(&flags.entry, "entry", "", "entry price (required)")
	cmd.Flags().StringVar(&flags.exit, "exit", "", "exit price (omit for an open position)")
	cmd.Flags().StringVar(&flags.fees, "fees", "0", "total fees")
	cmd.Flags().StringVar(&flags.entryTime, "entry-time", "", "entry time (default: now)")
	cmd.Flags().StringVar(&flags.exitTime, "exit-time", "", "exit time (default: now when --exit is set)")
	cmd.Flags().StringVar(&flags.notes, "notes", "", "markdown notes")
	cmd.Flags().StringSliceVar(&flags.tags, "tags", nil, "comma-separated tags")

	_ = cmd.MarkFlagRequired("symbol")
	_ = cmd.MarkFlagRequired("quantity")
	_ = cmd.MarkFlagRequired("entry")

	return cmd
}

func (f addFlags) toTrade() (journal.Trade, error) {
	direction, err := journal.ParseDirection(f.side)
	if err != nil {
		return journal.Trade{}, err
	}

	quantity, err := decimal.NewFromString(f.quantity)
	if err != nil {
		return journal.Trade{}, fmt.Errorf("parsing quantity %q: %w", f.quantity, err)
	}
	entryPrice, err := decimal.NewFromString(f.entry)
	if err != nil {
		return journal.Trade{}, fmt.Errorf("parsing entry price %q: %w", f.entry, err)
	}
	fees, err := decimal.NewFromString(f.fees)
	if err != nil {
		return journal.Trade{}, fmt.Errorf("parsing fees %q: %w", f.fees, err)
	}

	entryTime := time.Now()
	if f.entryTime != "" {
		entryTime, err = parseTime(f.entryTime)
		if err != nil {
			return journal.Trade{}, err
		}
	}

	trade := journal.Trade{
		Symbol:     f.symbol,
		Direction:  direction,
		Quantity:   quantity,
		EntryPrice: entryPrice,
		EntryTime:  entryTime,
		Fees:       fees,
		Notes:      f.notes,
		Tags:       f.tags,
	}

	if f.exit != "" {
		exitPrice, err := decimal.NewFromString(f.exit)
		if err != nil {
			return journal.Trade{}, fmt.Errorf("parsing exit price %q: %w", f.exit, err)
		}
		exitTime := time.Now()
		if f.exitTime != "" {
			exitTime, err = parseTime(f.exitTime)
			if err != nil {
				return journal.Trade{}, err
			}
		}
		trade.ExitPrice = &exitPrice
		trade.ExitTime = &exitTime
	}

	return trade, nil
}

// timeLayouts are accepted by the --entry-time/--exit-time flags.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q (use RFC 3339 or '2006-01-02 15:04')", s)
}
