package pagination_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarigelamin1997/tradesense-sub009/internal/cli/pagination"
	"github.com/tarigelamin1997/tradesense-sub009/internal/journal"
)

func TestAddFlags_Defaults(t *testing.T) {
	cmd := &cobra.Command{Use: "list"}
	p := pagination.AddFlags(cmd)

	require.NoError(t, cmd.ParseFlags(nil))
	assert.Equal(t, pagination.DefaultLimit, p.Limit)
	assert.Equal(t, 0, p.Offset)
	assert.Equal(t, 0, p.Page)
	assert.Equal(t, pagination.SortOrderAsc, p.SortOrder)
	assert.False(t, p.IsPageBased())
}

func TestAddFlags_ParsesValues(t *testing.T) {
	cmd := &cobra.Command{Use: "list"}
	p := pagination.AddFlags(cmd)

	require.NoError(t, cmd.ParseFlags([]string{"--page", "2", "--page-size", "25"}))
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 25, p.PageSize)
	assert.True(t, p.IsPageBased())
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  pagination.Params
		wantErr error
	}{
		{
			name:   "defaults are valid",
			params: pagination.Params{Limit: pagination.DefaultLimit, SortOrder: pagination.SortOrderAsc},
		},
		{
			name:   "offset mode",
			params: pagination.Params{Limit: 50, Offset: 100, SortOrder: pagination.SortOrderAsc},
		},
		{
			name:   "page mode",
			params: pagination.Params{Limit: pagination.DefaultLimit, Page: 3, PageSize: 20, SortOrder: pagination.SortOrderDesc},
		},
		{
			name:    "negative limit",
			params:  pagination.Params{Limit: -1, SortOrder: pagination.SortOrderAsc},
			wantErr: pagination.ErrInvalidLimit,
		},
		{
			name:    "limit above cap",
			params:  pagination.Params{Limit: pagination.MaxLimit + 1, SortOrder: pagination.SortOrderAsc},
			wantErr: pagination.ErrInvalidLimit,
		},
		{
			name:    "negative offset",
			params:  pagination.Params{Limit: 10, Offset: -5, SortOrder: pagination.SortOrderAsc},
			wantErr: pagination.ErrNegativeOffset,
		},
		{
			name:    "mixed modes",
			params:  pagination.Params{Limit: 10, Offset: 5, Page: 2, PageSize: 10, SortOrder: pagination.SortOrderAsc},
			wantErr: pagination.ErrMixedPaginationModes,
		},
		{
			name:    "page-size without page",
			params:  pagination.Params{Limit: 10, PageSize: 10, SortOrder: pagination.SortOrderAsc},
			wantErr: pagination.ErrPageSizeWithoutPage,
		},
		{
			name:    "page without page-size",
			params:  pagination.Params{Limit: 10, Page: 2, SortOrder: pagination.SortOrderAsc},
			wantErr: pagination.ErrInvalidPageSize,
		},
		{
			name:    "page-size above cap",
			params:  pagination.Params{Limit: 10, Page: 1, PageSize: pagination.MaxPageSize + 1, SortOrder: pagination.SortOrderAsc},
			wantErr: pagination.ErrInvalidPageSize,
		},
		{
			name:    "bad sort order",
			params:  pagination.Params{Limit: 10, SortOrder: "sideways"},
			wantErr: pagination.ErrInvalidSortOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestEffectiveOffsetLimit(t *testing.T) {
	offsetMode := pagination.Params{Limit: 20, Offset: 40}
	off, lim := offsetMode.EffectiveOffsetLimit()
	assert.Equal(t, 40, off)
	assert.Equal(t, 20, lim)

	pageMode := pagination.Params{Page: 3, PageSize: 25}
	off, lim = pageMode.EffectiveOffsetLimit()
	assert.Equal(t, 50, off)
	assert.Equal(t, 25, lim)
}

func TestSlice(t *testing.T) {
	tests := []struct {
		name      string
		params    pagination.Params
		n         int
		wantStart int
		wantEnd   int
	}{
		{name: "unlimited", params: pagination.Params{Limit: 0}, n: 7, wantStart: 0, wantEnd: 7},
		{name: "limit within", params: pagination.Params{Limit: 3}, n: 7, wantStart: 0, wantEnd: 3},
		{name: "limit beyond end", params: pagination.Params{Limit: 50}, n: 7, wantStart: 0, wantEnd: 7},
		{name: "offset and limit", params: pagination.Params{Limit: 3, Offset: 2}, n: 7, wantStart: 2, wantEnd: 5},
		{name: "offset past end", params: pagination.Params{Limit: 3, Offset: 10}, n: 7, wantStart: 7, wantEnd: 7},
		{name: "page mode middle", params: pagination.Params{Page: 2, PageSize: 3}, n: 7, wantStart: 3, wantEnd: 6},
		{name: "page mode last partial", params: pagination.Params{Page: 3, PageSize: 3}, n: 7, wantStart: 6, wantEnd: 7},
		{name: "empty input", params: pagination.Params{Limit: 10}, n: 0, wantStart: 0, wantEnd: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.params.Slice(tt.n)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestTotalPages(t *testing.T) {
	p := pagination.Params{Page: 1, PageSize: 10}
	assert.Equal(t, 5, p.TotalPages(50))
	assert.Equal(t, 6, p.TotalPages(51))
	assert.Equal(t, 1, p.TotalPages(1))
	assert.Equal(t, 0, p.TotalPages(0))

	offsetMode := pagination.Params{Limit: 10}
	assert.Equal(t, 0, offsetMode.TotalPages(50))
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantField string
		wantOrder string
		wantErr   error
	}{
		{name: "empty", input: "", wantField: "", wantOrder: pagination.SortOrderAsc},
		{name: "field only", input: "pnl", wantField: "pnl", wantOrder: pagination.SortOrderAsc},
		{name: "field and order", input: "date:desc", wantField: "date", wantOrder: pagination.SortOrderDesc},
		{name: "order case-insensitive", input: "symbol:ASC", wantField: "symbol", wantOrder: pagination.SortOrderAsc},
		{name: "too many parts", input: "a:b:c", wantErr: pagination.ErrInvalidSortFormat},
		{name: "missing field", input: ":desc", wantErr: pagination.ErrInvalidSortFormat},
		{name: "bad order", input: "pnl:down", wantErr: pagination.ErrInvalidSortOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, order, err := pagination.ParseSort(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func sortFixture() []journal.Trade {
	exit := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}
	at := func(t time.Time) *time.Time { return &t }
	base := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	return []journal.Trade{
		{
			ID: "01", Symbol: "MSFT", Direction: journal.DirectionLong,
			Quantity:   decimal.RequireFromString("10"),
			EntryPrice: decimal.RequireFromString("400"), ExitPrice: exit("410"),
			EntryTime: base.Add(48 * time.Hour), ExitTime: at(base.Add(49 * time.Hour)),
			Fees: decimal.RequireFromString("2"),
		},
		{
			ID: "02", Symbol: "AAPL", Direction: journal.DirectionShort,
			Quantity:   decimal.RequireFromString("5"),
			EntryPrice: decimal.RequireFromString("180"), ExitPrice: exit("190"),
			EntryTime: base, ExitTime: at(base.Add(time.Hour)),
			Fees: decimal.RequireFromString("1"),
		},
		{
			ID: "03", Symbol: "NVDA", Direction: journal.DirectionLong,
			Quantity:   decimal.RequireFromString("2"),
			EntryPrice: decimal.RequireFromString("900"), ExitPrice: exit("950"),
			EntryTime: base.Add(24 * time.Hour), ExitTime: at(base.Add(25 * time.Hour)),
			Fees: decimal.RequireFromString("3"),
		},
	}
}

func symbols(trades []journal.Trade) []string {
	out := make([]string, len(trades))
	for i, tr := range trades {
		out[i] = tr.Symbol
	}
	return out
}

func TestSortTrades(t *testing.T) {
	trades := sortFixture()

	byDate, err := pagination.SortTrades(trades, "date", pagination.SortOrderAsc)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "NVDA", "MSFT"}, symbols(byDate))

	bySymbolDesc, err := pagination.SortTrades(trades, "symbol", pagination.SortOrderDesc)
	require.NoError(t, err)
	assert.Equal(t, []string{"NVDA", "MSFT", "AAPL"}, symbols(bySymbolDesc))

	// MSFT +98, AAPL -51, NVDA +97.
	byPnL, err := pagination.SortTrades(trades, "pnl", pagination.SortOrderDesc)
	require.NoError(t, err)
	assert.Equal(t, []string{"MSFT", "NVDA", "AAPL"}, symbols(byPnL))

	byQuantity, err := pagination.SortTrades(trades, "quantity", pagination.SortOrderAsc)
	require.NoError(t, err)
	assert.Equal(t, []string{"NVDA", "AAPL", "MSFT"}, symbols(byQuantity))
}

func TestSortTrades_DoesNotMutateInput(t *testing.T) {
	trades := sortFixture()
	_, err := pagination.SortTrades(trades, "symbol", pagination.SortOrderAsc)
	require.NoError(t, err)
	assert.Equal(t, []string{"MSFT", "AAPL", "NVDA"}, symbols(trades))
}

func TestSortTrades_UnknownField(t *testing.T) {
	_, err := pagination.SortTrades(sortFixture(), "colour", pagination.SortOrderAsc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sort field")
}

func TestSortTrades_EmptyFieldKeepsOrder(t *testing.T) {
	trades := sortFixture()
	got, err := pagination.SortTrades(trades, "", pagination.SortOrderAsc)
	require.NoError(t, err)
	assert.Equal(t, symbols(trades), symbols(got))
}

func TestValidTradeFields(t *testing.T) {
	fields := pagination.ValidTradeFields()
	assert.Equal(t, []string{"date", "fees", "pnl", "quantity", "symbol"}, fields)
	assert.True(t, pagination.IsValidTradeField("pnl"))
	assert.False(t, pagination.IsValidTradeField("colour"))
}

func TestRangeSummary(t *testing.T) {
	tests := []struct {
		name   string
		params pagination.Params
		start  int
		end    int
		total  int
		want   string
	}{
		{
			name:   "offset mode",
			params: pagination.Params{Limit: 10, Offset: 20},
			start:  20, end: 30, total: 95,
			want: "Showing 21-30 of 95",
		},
		{
			name:   "page mode",
			params: pagination.Params{Page: 2, PageSize: 10},
			start:  10, end: 20, total: 95,
			want: "Showing 11-20 of 95 (page 2/10)",
		},
		{
			name:   "empty range",
			params: pagination.Params{Limit: 10, Offset: 200},
			start:  95, end: 95, total: 95,
			want: "No results (of 95 total)",
		},
		{
			name:   "empty result set",
			params: pagination.Params{Limit: 10},
			start:  0, end: 0, total: 0,
			want: "No results (of 0 total)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := pagination.NewRangeSummary(tt.params, tt.start, tt.end, tt.total)
			assert.Equal(t, tt.want, s.String())
		})
	}
}
