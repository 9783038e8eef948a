package tui

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/tarigelamin1997/tradesense-sub009/internal/journal"
)

// moneyPrinter renders grouped decimal numbers ("12,345.67").
var moneyPrinter = message.NewPrinter(language.English)

// FormatMoney renders a decimal amount as a signed dollar string with
// thousands grouping, e.g. "-$1,234.50".
func FormatMoney(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	f, _ := d.Float64()
	return sign + "$" + moneyPrinter.Sprintf("%v",
		number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatPnL renders a trade's realized P&L, or a dash while it is open.
func FormatPnL(t journal.Trade) string {
	if !t.Closed() {
		return "-"
	}
	return FormatMoney(t.PnL())
}

// FormatQuantity renders a quantity without trailing zeros.
func FormatQuantity(d decimal.Decimal) string {
	return d.String()
}
