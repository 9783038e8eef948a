package virtual

// Window is a contiguous index range of the source collection to render,
// plus the row translation that visually aligns the rendered slice inside
// the full-height scroll surface.
type Window struct {
	// Start is the first rendered item index (inclusive).
	Start int

	// End is the last rendered item index (exclusive).
	End int

	// RenderOffset is Start * itemHeight: the number of rows between the top
	// of the virtual surface and the top of the rendered slice.
	RenderOffset int
}

// Len returns the number of items covered by the window.
func (w Window) Len() int {
	return w.End - w.Start
}

// Contains reports whether the absolute item index falls inside the window.
func (w Window) Contains(index int) bool {
	return index >= w.Start && index < w.End
}

// ComputeWindow maps the current viewport onto an index range of the source
// collection. It is a pure function: identical inputs always produce an
// identical Window, which is what lets callers skip re-rendering when
// nothing actually moved.
//
// All quantities are in rows. itemHeight must be positive; totalItems of
// zero collapses to the empty window. A zero viewportHeight (container not
// yet laid out) yields at most the buffer rows rather than failing.
func ComputeWindow(scrollOffset, viewportHeight, itemHeight, bufferCount, totalItems int) Window {
	if itemHeight <= 0 || totalItems <= 0 {
		return Window{}
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}
	if viewportHeight < 0 {
		viewportHeight = 0
	}
	if bufferCount < 0 {
		bufferCount = 0
	}

	visibleCount := ceilDiv(viewportHeight, itemHeight) + 2*bufferCount
	rawStart := scrollOffset/itemHeight - bufferCount

	start := clamp(rawStart, 0, totalItems)
	end := clamp(start+visibleCount, start, totalItems)

	return Window{
		Start:        start,
		End:          end,
		RenderOffset: start * itemHeight,
	}
}

// ceilDiv returns ceil(a/b) for non-negative a and positive b.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// clamp restricts v to the closed interval [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
