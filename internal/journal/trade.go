package journal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Direction is the side of a trade.
type Direction string

// Trade directions.
const (
	DirectionLong  Direction = "long"
	DirectionShort Direction = "short"
)

// Validation errors.
var (
	ErrEmptySymbol      = errors.New("symbol cannot be empty")
	ErrInvalidDirection = errors.New("direction must be 'long' or 'short'")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrInvalidPrice     = errors.New("price cannot be negative")
	ErrExitBeforeEntry  = errors.New("exit time cannot precede entry time")
)

// Trade is a single journal entry. Monetary fields are decimals to keep
// P&L arithmetic exact; profit is always computed, never stored.
type Trade struct {
	// ID is a ULID, sortable by creation time.
	ID        string          `json:"id"`
	Symbol    string          `json:"symbol"`
	Direction Direction       `json:"direction"`
	Quantity  decimal.Decimal `json:"quantity"`

	EntryPrice decimal.Decimal `json:"entry_price"`
	EntryTime  time.Time       `json:"entry_time"`

	// ExitPrice and ExitTime are unset while the position is open.
	ExitPrice *decimal.Decimal `json:"exit_price,omitempty"`
	ExitTime  *time.Time       `json:"exit_time,omitempty"`

	Fees decimal.Decimal `json:"fees"`

	// Notes is free-form markdown shown in the detail view.
	Notes string   `json:"notes,omitempty"`
	Tags  []string `json:"tags,omitempty"`

	Account string `json:"account,omitempty"`
}

// NewTradeID generates a fresh ULID string.
func NewTradeID() string {
	return ulid.Make().String()
}

// ParseDirection normalizes a user-supplied direction string.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case DirectionLong:
		return DirectionLong, nil
	case DirectionShort:
		return DirectionShort, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidDirection, s)
	}
}

// Closed reports whether the trade has an exit fill.
func (t Trade) Closed() bool {
	return t.ExitPrice != nil
}

// PnL returns the realized profit and loss: (exit - entry) * quantity for
// longs, inverted for shorts, minus fees. Open trades report zero.
func (t Trade) PnL() decimal.Decimal {
	if !t.Closed() {
		return decimal.Zero
	}

	perUnit := t.ExitPrice.Sub(t.EntryPrice)
	if t.Direction == DirectionShort {
		perUnit = perUnit.Neg()
	}

	return perUnit.Mul(t.Quantity).Sub(t.Fees)
}

// Win reports whether the trade closed with a positive P&L.
func (t Trade) Win() bool {
	return t.Closed() && t.PnL().IsPositive()
}

// Validate checks the trade's internal consistency.
func (t Trade) Validate() error {
	if strings.TrimSpace(t.Symbol) == "" {
		return ErrEmptySymbol
	}
	if t.Direction != DirectionLong && t.Direction != DirectionShort {
		return fmt.Errorf("%w: got %q", ErrInvalidDirection, t.Direction)
	}
	if !t.Quantity.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidQuantity, t.Quantity)
	}
	if t.EntryPrice.IsNegative() {
		return fmt.Errorf("%w: entry %s", ErrInvalidPrice, t.EntryPrice)
	}
	if t.ExitPrice != nil && t.ExitPrice.IsNegative() {
		return fmt.Errorf("%w: exit %s", ErrInvalidPrice, t.ExitPrice)
	}
	if t.ExitTime != nil && t.ExitTime.Before(t.EntryTime) {
		return ErrExitBeforeEntry
	}
	return nil
}
