package pagination

import "fmt"

// RangeSummary describes the slice of a result set a command printed.
type RangeSummary struct {
	// Start and End are the 1-based inclusive bounds of the printed range;
	// both are zero for an empty result.
	Start int
	End   int
	Total int

	// Page and TotalPages are set in page mode only.
	Page       int
	TotalPages int
}

// NewRangeSummary builds the summary for n total items sliced to
// [start, end) by p.
func NewRangeSummary(p Params, start, end, total int) RangeSummary {
	s := RangeSummary{Total: total}
	if end > start {
		s.Start = start + 1
		s.End = end
	}
	if p.IsPageBased() {
		s.Page = p.Page
		s.TotalPages = p.TotalPages(total)
	}
	return s
}

// String renders the footer line printed under paginated output.
func (s RangeSummary) String() string {
	if s.Total == 0 || s.End == 0 {
		return fmt.Sprintf("No results (of %d total)", s.Total)
	}
	if s.Page > 0 {
		return fmt.Sprintf("Showing %d-%d of %d (page %d/%d)", s.Start, s.End, s.Total, s.Page, s.TotalPages)
	}
	return fmt.Sprintf("Showing %d-%d of %d", s.Start, s.End, s.Total)
}
