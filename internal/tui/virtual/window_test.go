package virtual_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarigelamin1997/tradesense-sub009/internal/tui/virtual"
)

// TestComputeWindow_Scenarios pins the window math against hand-computed
// cases, including the boundary clamps.
func TestComputeWindow_Scenarios(t *testing.T) {
	tests := []struct {
		name           string
		scrollOffset   int
		viewportHeight int
		itemHeight     int
		bufferCount    int
		totalItems     int
		want           virtual.Window
	}{
		{
			name:           "mid-list window with buffer",
			scrollOffset:   500,
			viewportHeight: 210,
			itemHeight:     50,
			bufferCount:    2,
			totalItems:     1000,
			// floor(500/50)-2 = 8, ceil(210/50)+4 = 9 items -> [8,17)
			want: virtual.Window{Start: 8, End: 17, RenderOffset: 400},
		},
		{
			name:           "short list never expands beyond collection",
			scrollOffset:   0,
			viewportHeight: 1000,
			itemHeight:     50,
			bufferCount:    3,
			totalItems:     5,
			want:           virtual.Window{Start: 0, End: 5, RenderOffset: 0},
		},
		{
			name:           "top of list clamps buffer",
			scrollOffset:   0,
			viewportHeight: 100,
			itemHeight:     10,
			bufferCount:    5,
			totalItems:     100,
			want:           virtual.Window{Start: 0, End: 20, RenderOffset: 0},
		},
		{
			name:           "bottom of list clamps end",
			scrollOffset:   990,
			viewportHeight: 100,
			itemHeight:     10,
			bufferCount:    2,
			totalItems:     100,
			want:           virtual.Window{Start: 97, End: 100, RenderOffset: 970},
		},
		{
			name:           "empty collection collapses",
			scrollOffset:   120,
			viewportHeight: 80,
			itemHeight:     10,
			bufferCount:    2,
			totalItems:     0,
			want:           virtual.Window{},
		},
		{
			name:           "zero viewport degrades to buffer rows",
			scrollOffset:   100,
			viewportHeight: 0,
			itemHeight:     10,
			bufferCount:    2,
			totalItems:     100,
			want:           virtual.Window{Start: 8, End: 12, RenderOffset: 80},
		},
		{
			name:           "zero viewport zero buffer is empty",
			scrollOffset:   100,
			viewportHeight: 0,
			itemHeight:     10,
			bufferCount:    0,
			totalItems:     100,
			want:           virtual.Window{Start: 10, End: 10, RenderOffset: 100},
		},
		{
			name:           "negative offset treated as top",
			scrollOffset:   -40,
			viewportHeight: 30,
			itemHeight:     10,
			bufferCount:    0,
			totalItems:     10,
			want:           virtual.Window{Start: 0, End: 3, RenderOffset: 0},
		},
		{
			name:           "item height of one row",
			scrollOffset:   7,
			viewportHeight: 5,
			itemHeight:     1,
			bufferCount:    1,
			totalItems:     50,
			want:           virtual.Window{Start: 6, End: 13, RenderOffset: 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := virtual.ComputeWindow(
				tt.scrollOffset, tt.viewportHeight,
				tt.itemHeight, tt.bufferCount, tt.totalItems,
			)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestComputeWindow_RangeValidity sweeps a grid of inputs and checks the
// range is always a valid sub-range of [0, totalItems] with the offset
// invariant intact.
func TestComputeWindow_RangeValidity(t *testing.T) {
	for _, total := range []int{0, 1, 5, 100, 10000} {
		for _, itemHeight := range []int{1, 3, 50} {
			for _, viewport := range []int{0, 1, 45, 210} {
				for _, buffer := range []int{0, 2, 7} {
					for _, offset := range []int{0, 1, 49, 500, total * itemHeight, total*itemHeight + 999} {
						w := virtual.ComputeWindow(offset, viewport, itemHeight, buffer, total)

						assert.GreaterOrEqual(t, w.Start, 0)
						assert.LessOrEqual(t, w.Start, w.End)
						assert.LessOrEqual(t, w.End, total)
						assert.Equal(t, w.Start*itemHeight, w.RenderOffset)
					}
				}
			}
		}
	}
}

// TestComputeWindow_Deterministic verifies identical inputs give identical
// output, the property that makes skip-rendering safe.
func TestComputeWindow_Deterministic(t *testing.T) {
	first := virtual.ComputeWindow(1234, 210, 50, 3, 9999)
	second := virtual.ComputeWindow(1234, 210, 50, 3, 9999)
	assert.Equal(t, first, second)
}

// TestComputeWindow_MonotonicStep verifies that scrolling down by exactly
// one item height shifts the window start by exactly one when not clamped
// at either boundary.
func TestComputeWindow_MonotonicStep(t *testing.T) {
	const (
		itemHeight = 50
		viewport   = 210
		buffer     = 2
		total      = 1000
	)

	for offset := itemHeight * (buffer + 1); offset < itemHeight*(total-20); offset += itemHeight {
		cur := virtual.ComputeWindow(offset, viewport, itemHeight, buffer, total)
		next := virtual.ComputeWindow(offset+itemHeight, viewport, itemHeight, buffer, total)
		assert.Equal(t, cur.Start+1, next.Start, "offset %d", offset)
	}
}

func TestWindow_Helpers(t *testing.T) {
	w := virtual.Window{Start: 8, End: 17, RenderOffset: 400}

	assert.Equal(t, 9, w.Len())
	assert.True(t, w.Contains(8))
	assert.True(t, w.Contains(16))
	assert.False(t, w.Contains(17))
	assert.False(t, w.Contains(7))
}
