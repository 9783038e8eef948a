package journal

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Summary aggregates realized performance across a set of trades.
type Summary struct {
	TotalTrades int
	OpenTrades  int
	Wins        int
	Losses      int

	// WinRate is wins / closed trades as a percentage, zero when no trade
	// has closed yet.
	WinRate decimal.Decimal

	// NetPnL is the sum of realized P&L over closed trades.
	NetPnL decimal.Decimal

	// TotalFees is the sum of fees across all trades, open or closed.
	TotalFees decimal.Decimal

	// BySymbol is per-symbol performance, sorted by descending net P&L.
	BySymbol []SymbolSummary
}

// SymbolSummary is the per-symbol slice of a Summary.
type SymbolSummary struct {
	Symbol string
	Trades int
	NetPnL decimal.Decimal
}

// hundred converts win ratios to percentages.
var hundred = decimal.NewFromInt(100)

// Summarize computes realized performance over trades. Open trades count
// toward totals and fees but not toward win rate or P&L.
func Summarize(trades []Trade) Summary {
	s := Summary{TotalTrades: len(trades)}
	bySymbol := make(map[string]*SymbolSummary)

	closed := 0
	for _, t := range trades {
		s.TotalFees = s.TotalFees.Add(t.Fees)

		sym, ok := bySymbol[t.Symbol]
		if !ok {
			sym = &SymbolSummary{Symbol: t.Symbol}
			bySymbol[t.Symbol] = sym
		}
		sym.Trades++

		if !t.Closed() {
			s.OpenTrades++
			continue
		}

		closed++
		pnl := t.PnL()
		s.NetPnL = s.NetPnL.Add(pnl)
		sym.NetPnL = sym.NetPnL.Add(pnl)

		if pnl.IsPositive() {
			s.Wins++
		} else {
			s.Losses++
		}
	}

	if closed > 0 {
		s.WinRate = decimal.NewFromInt(int64(s.Wins)).
			Div(decimal.NewFromInt(int64(closed))).
			Mul(hundred).
			Round(1)
	}

	s.BySymbol = make([]SymbolSummary, 0, len(bySymbol))
	for _, sym := range bySymbol {
		s.BySymbol = append(s.BySymbol, *sym)
	}
	sort.Slice(s.BySymbol, func(i, j int) bool {
		if s.BySymbol[i].NetPnL.Equal(s.BySymbol[j].NetPnL) {
			return s.BySymbol[i].Symbol < s.BySymbol[j].Symbol
		}
		return s.BySymbol[i].NetPnL.GreaterThan(s.BySymbol[j].NetPnL)
	})

	return s
}
