package journal_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarigelamin1997/tradesense-sub009/internal/journal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func closedTrade(direction journal.Direction, qty, entry, exit, fees string) journal.Trade {
	exitPrice := dec(exit)
	entryTime := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	exitTime := entryTime.Add(2 * time.Hour)
	return journal.Trade{
		ID:         journal.NewTradeID(),
		Symbol:     "AAPL",
		Direction:  direction,
		Quantity:   dec(qty),
		EntryPrice: dec(entry),
		EntryTime:  entryTime,
		ExitPrice:  &exitPrice,
		ExitTime:   &exitTime,
		Fees:       dec(fees),
	}
}

func TestTrade_PnL(t *testing.T) {
	tests := []struct {
		name  string
		trade journal.Trade
		want  string
	}{
		{
			name:  "long win",
			trade: closedTrade(journal.DirectionLong, "100", "187.20", "191.05", "1.50"),
			want:  "383.5", // (191.05-187.20)*100 - 1.50
		},
		{
			name:  "long loss",
			trade: closedTrade(journal.DirectionLong, "10", "50", "48.25", "0"),
			want:  "-17.5",
		},
		{
			name:  "short win",
			trade: closedTrade(journal.DirectionShort, "10", "50", "48", "1"),
			want:  "19",
		},
		{
			name:  "short loss",
			trade: closedTrade(journal.DirectionShort, "10", "50", "52", "0"),
			want:  "-20",
		},
		{
			name:  "fees can flip a flat trade negative",
			trade: closedTrade(journal.DirectionLong, "100", "50", "50", "2.50"),
			want:  "-2.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.trade.PnL().Equal(dec(tt.want)),
				"got %s, want %s", tt.trade.PnL(), tt.want)
		})
	}
}

func TestTrade_OpenPosition(t *testing.T) {
	trade := journal.Trade{
		ID:         journal.NewTradeID(),
		Symbol:     "ES",
		Direction:  journal.DirectionLong,
		Quantity:   dec("2"),
		EntryPrice: dec("5000"),
		EntryTime:  time.Now(),
	}

	assert.False(t, trade.Closed())
	assert.True(t, trade.PnL().IsZero())
	assert.False(t, trade.Win())
	require.NoError(t, trade.Validate())
}

func TestTrade_Validate(t *testing.T) {
	valid := closedTrade(journal.DirectionLong, "100", "187.20", "191.05", "1.50")
	require.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(*journal.Trade)
		wantErr error
	}{
		{
			name:    "empty symbol",
			mutate:  func(t *journal.Trade) { t.Symbol = "  " },
			wantErr: journal.ErrEmptySymbol,
		},
		{
			name:    "bad direction",
			mutate:  func(t *journal.Trade) { t.Direction = "sideways" },
			wantErr: journal.ErrInvalidDirection,
		},
		{
			name:    "zero quantity",
			mutate:  func(t *journal.Trade) { t.Quantity = decimal.Zero },
			wantErr: journal.ErrInvalidQuantity,
		},
		{
			name:    "negative entry price",
			mutate:  func(t *journal.Trade) { t.EntryPrice = dec("-1") },
			wantErr: journal.ErrInvalidPrice,
		},
		{
			name: "exit before entry",
			mutate: func(t *journal.Trade) {
				early := t.EntryTime.Add(-time.Hour)
				t.ExitTime = &early
			},
			wantErr: journal.ErrExitBeforeEntry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trade := closedTrade(journal.DirectionLong, "100", "187.20", "191.05", "1.50")
			tt.mutate(&trade)
			assert.ErrorIs(t, trade.Validate(), tt.wantErr)
		})
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input   string
		want    journal.Direction
		wantErr bool
	}{
		{input: "long", want: journal.DirectionLong},
		{input: "SHORT", want: journal.DirectionShort},
		{input: " Long ", want: journal.DirectionLong},
		{input: "buy", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := journal.ParseDirection(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, journal.ErrInvalidDirection)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTradeID_Sortable(t *testing.T) {
	first := journal.NewTradeID()
	second := journal.NewTradeID()

	assert.Len(t, first, 26)
	assert.NotEqual(t, first, second)
	// ULIDs generated later never sort before earlier ones.
	assert.LessOrEqual(t, first, second)
}
