package pagination

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Pagination modes and validation limits.
const (
	DefaultLimit = 100
	MaxLimit     = 10000
	MaxPageSize  = 1000

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// Common validation errors.
var (
	ErrInvalidLimit         = errors.New("limit must be between 0 and 10000")
	ErrInvalidPageSize      = errors.New("page-size must be between 1 and 1000")
	ErrNegativeOffset       = errors.New("offset cannot be negative")
	ErrInvalidSortOrder     = errors.New("sort order must be 'asc' or 'desc'")
	ErrMixedPaginationModes = errors.New("cannot use both offset-based (--offset) and page-based (--page) pagination")
	ErrPageSizeWithoutPage  = errors.New("--page-size requires --page to be set")
	ErrInvalidSortFormat    = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'pnl:desc')")
)

// Params holds the parsed pagination flags.
type Params struct {
	// Limit is the maximum number of results to return (offset mode).
	// Zero means unlimited.
	Limit int

	// Offset is the number of results to skip (offset mode).
	Offset int

	// Page is the 1-based page number (page mode, 0 when inactive).
	Page int

	// PageSize is the number of results per page (page mode).
	PageSize int

	// SortField is the field to sort by; empty keeps the source order.
	SortField string

	// SortOrder is "asc" or "desc".
	SortOrder string
}

// AddFlags registers the shared pagination flags on cmd and returns the
// Params they populate.
func AddFlags(cmd *cobra.Command) *Params {
	p := &Params{Limit: DefaultLimit, SortOrder: SortOrderAsc}

	cmd.Flags().IntVar(&p.Limit, "limit", DefaultLimit, "maximum number of results (0 = all)")
	cmd.Flags().IntVar(&p.Offset, "offset", 0, "number of results to skip")
	cmd.Flags().IntVar(&p.Page, "page", 0, "1-based page number (mutually exclusive with --offset)")
	cmd.Flags().IntVar(&p.PageSize, "page-size", 0, "results per page (requires --page)")

	return p
}

// Validate checks bounds and mode consistency.
func (p Params) Validate() error {
	if p.Limit < 0 || p.Limit > MaxLimit {
		return fmt.Errorf("%w: got %d", ErrInvalidLimit, p.Limit)
	}
	if p.Offset < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeOffset, p.Offset)
	}
	if p.Page > 0 && p.Offset > 0 {
		return ErrMixedPaginationModes
	}
	if p.PageSize > 0 && p.Page == 0 {
		return ErrPageSizeWithoutPage
	}
	if p.Page > 0 {
		if p.PageSize < 1 || p.PageSize > MaxPageSize {
			return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
		}
	}
	if p.SortOrder != SortOrderAsc && p.SortOrder != SortOrderDesc {
		return fmt.Errorf("%w: got %q", ErrInvalidSortOrder, p.SortOrder)
	}
	return nil
}

// IsPageBased reports whether page-based pagination is active.
func (p Params) IsPageBased() bool {
	return p.Page > 0
}

// EffectiveOffsetLimit resolves both modes to a single (offset, limit)
// pair. A zero limit means "to the end".
func (p Params) EffectiveOffsetLimit() (int, int) {
	if p.IsPageBased() {
		return (p.Page - 1) * p.PageSize, p.PageSize
	}
	return p.Offset, p.Limit
}

// Slice applies the effective offset and limit to a slice of n items and
// returns the [start, end) range to keep. An offset beyond the end yields
// an empty range.
func (p Params) Slice(n int) (int, int) {
	offset, limit := p.EffectiveOffsetLimit()
	if offset >= n {
		return n, n
	}
	end := n
	if limit > 0 && offset+limit < n {
		end = offset + limit
	}
	return offset, end
}

// TotalPages returns the page count for n items in page mode, zero in
// offset mode.
func (p Params) TotalPages(n int) int {
	if !p.IsPageBased() || n == 0 {
		return 0
	}
	pages := n / p.PageSize
	if n%p.PageSize > 0 {
		pages++
	}
	return pages
}

// ParseSort parses "field" or "field:order" into its parts. An empty
// string keeps the defaults (no sort field, ascending).
func ParseSort(sortStr string) (string, string, error) {
	if sortStr == "" {
		return "", SortOrderAsc, nil
	}

	parts := strings.SplitN(sortStr, ":", 3)
	if len(parts) > 2 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	field := strings.TrimSpace(parts[0])
	if field == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	order := SortOrderAsc
	if len(parts) == 2 {
		order = strings.ToLower(strings.TrimSpace(parts[1]))
		if order != SortOrderAsc && order != SortOrderDesc {
			return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
		}
	}

	return field, order, nil
}
