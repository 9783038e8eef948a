package pagination

import (
	"fmt"
	"sort"

	"github.com/tarigelamin1997/tradesense-sub009/internal/journal"
)

// Sortable trade fields.
var validTradeFields = map[string]bool{
	"date":     true,
	"symbol":   true,
	"quantity": true,
	"pnl":      true,
	"fees":     true,
}

// ValidTradeFields returns the sortable field names in a consistent order.
func ValidTradeFields() []string {
	fields := make([]string, 0, len(validTradeFields))
	for field := range validTradeFields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// IsValidTradeField reports whether trades can sort by field.
func IsValidTradeField(field string) bool {
	return validTradeFields[field]
}

// SortTrades returns a copy of trades sorted by field and order. An
// unknown field is an error rather than a silent no-op so typos surface
// immediately at the CLI.
func SortTrades(trades []journal.Trade, field, order string) ([]journal.Trade, error) {
	if field == "" {
		return trades, nil
	}
	if !IsValidTradeField(field) {
		return nil, fmt.Errorf("invalid sort field %q (valid: %v)", field, ValidTradeFields())
	}

	sorted := make([]journal.Trade, len(trades))
	copy(sorted, trades)

	sort.SliceStable(sorted, func(i, j int) bool {
		// Swapping the operands keeps the sort stable in descending order.
		if order == SortOrderDesc {
			i, j = j, i
		}

		switch field {
		case "date":
			return sorted[i].EntryTime.Before(sorted[j].EntryTime)
		case "symbol":
			return sorted[i].Symbol < sorted[j].Symbol
		case "quantity":
			return sorted[i].Quantity.LessThan(sorted[j].Quantity)
		case "pnl":
			return sorted[i].PnL().LessThan(sorted[j].PnL())
		case "fees":
			return sorted[i].Fees.LessThan(sorted[j].Fees)
		default:
			return false
		}
	})

	return sorted, nil
}
