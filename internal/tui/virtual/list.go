package virtual

import (
	"errors"
	"fmt"
)

// DefaultBufferCount is the overscan used by callers that have no opinion:
// extra items rendered above/below the viewport to mask latency during fast
// scrolling.
const DefaultBufferCount = 5

// ErrInvalidItemHeight is returned by NewList when the configured item
// height is not positive. The window math divides by it.
var ErrInvalidItemHeight = errors.New("virtual: item height must be positive")

// RenderFunc produces the display content for a single item at its absolute
// index in the collection. The list treats it as pure: it is invoked once
// per item entering the window and the result is cached under the item's key
// until the item leaves the window again.
type RenderFunc[T any] func(item T, index int) string

// KeyFunc extracts the stable identity of an item. Keys must be unique
// across the collection; they are what keeps per-item state alive while the
// window slides underneath it.
type KeyFunc[T any, K comparable] func(item T) K

// Config carries the construction-time configuration of a List.
type Config[T any, K comparable] struct {
	// Items is the caller-owned source collection. The list only ever reads
	// sub-slices of it; replacing the collection goes through SetItems.
	Items []T

	// ItemHeight is the fixed height of every item, in rows. Must be > 0.
	ItemHeight int

	// BufferCount is the number of extra items rendered on each side of the
	// viewport. Negative values are clamped to zero; zero means no overscan.
	BufferCount int

	// Key extracts the stable identity of an item. Required.
	Key KeyFunc[T, K]

	// Render produces a row's content. Required.
	Render RenderFunc[T]

	// Announce, if non-nil, receives the accessibility status line
	// ("Showing items X to Y of Z") after every recompute.
	Announce func(status string)
}

// Row is one published entry of the rendered window.
type Row[K comparable] struct {
	// Key is the item's stable identity.
	Key K

	// Index is the item's absolute position in the source collection.
	Index int

	// Content is the cached output of the render callback.
	Content string
}

// Position identifies a scroll position in item terms: which item sits at
// the top of the viewport and how many rows into it the viewport starts.
type Position struct {
	Index  int
	Offset int
}

// List materializes a bounded window of a large collection. It wires a
// Tracker (viewport observation) to ComputeWindow (pure range math) and
// owns the diff-and-publish step: the rendered row slice only changes when
// the computed index range changes.
//
// List is not safe for concurrent use; like Tracker it expects a
// single-goroutine event loop.
type List[T any, K comparable] struct {
	items       []T
	itemHeight  int
	bufferCount int
	keyFn       KeyFunc[T, K]
	renderFn    RenderFunc[T]
	announce    func(string)

	tracker *Tracker
	window  Window
	rows    []Row[K]
	cache   map[K]string
	status  string

	// primed flips on the first recompute so the initial (possibly empty)
	// window still publishes.
	primed bool
}

// NewList validates cfg and returns a detached list. The initial window is
// computed from a zero viewport, so Rows is usable immediately.
func NewList[T any, K comparable](cfg Config[T, K]) (*List[T, K], error) {
	if cfg.ItemHeight <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidItemHeight, cfg.ItemHeight)
	}
	if cfg.Key == nil {
		return nil, errors.New("virtual: key extractor is required")
	}
	if cfg.Render == nil {
		return nil, errors.New("virtual: render callback is required")
	}

	buffer := cfg.BufferCount
	if buffer < 0 {
		buffer = 0
	}

	l := &List[T, K]{
		items:       cfg.Items,
		itemHeight:  cfg.ItemHeight,
		bufferCount: buffer,
		keyFn:       cfg.Key,
		renderFn:    cfg.Render,
		announce:    cfg.Announce,
		cache:       make(map[K]string),
	}
	l.tracker = NewTracker(func(ViewportState) { l.Recompute() })
	l.Recompute()
	return l, nil
}

// Attach begins observing the container; every scroll or resize event flows
// into a recompute. Safe to call again after Detach.
func (l *List[T, K]) Attach(c Container) {
	l.tracker.Attach(c)
	l.Recompute()
}

// Detach deregisters all container listeners. Mandatory on teardown.
func (l *List[T, K]) Detach() {
	l.tracker.Detach()
}

// SetItems replaces the source collection and forces a full recompute,
// discarding every cached row. This is the only supported way to mutate the
// collection while a window is live.
func (l *List[T, K]) SetItems(items []T) {
	l.items = items
	l.cache = make(map[K]string)
	l.primed = false
	l.Recompute()
}

// Len returns the size of the source collection.
func (l *List[T, K]) Len() int {
	return len(l.items)
}

// ItemHeight returns the fixed per-item height in rows.
func (l *List[T, K]) ItemHeight() int {
	return l.itemHeight
}

// TotalHeight returns the full virtual height: collection length times item
// height, independent of how many rows are actually materialized.
func (l *List[T, K]) TotalHeight() int {
	return len(l.items) * l.itemHeight
}

// Window returns the currently published index range.
func (l *List[T, K]) Window() Window {
	return l.window
}

// Rows returns the currently rendered slice. The returned slice is owned by
// the list and valid until the next recompute that moves the window.
func (l *List[T, K]) Rows() []Row[K] {
	return l.rows
}

// RenderOffset returns the row translation of the published slice.
func (l *List[T, K]) RenderOffset() int {
	return l.window.RenderOffset
}

// Status returns the latest accessibility announcement.
func (l *List[T, K]) Status() string {
	return l.status
}

// Viewport returns the last observed viewport state.
func (l *List[T, K]) Viewport() ViewportState {
	return l.tracker.Read()
}

// Recompute re-derives the window from the current viewport state. The
// arithmetic runs on every call; slicing and re-rendering only happen when
// the index range moved. The status announcement refreshes unconditionally.
func (l *List[T, K]) Recompute() {
	state := l.tracker.Read()
	next := ComputeWindow(
		state.ScrollOffset, state.ViewportHeight,
		l.itemHeight, l.bufferCount, len(l.items),
	)

	if !l.primed || next != l.window {
		l.publish(next)
		l.primed = true
	}

	l.status = fmt.Sprintf("Showing items %d to %d of %d", l.window.Start+1, l.window.End, len(l.items))
	if l.announce != nil {
		l.announce(l.status)
	}
}

// publish slices the collection and rebuilds the row set, reusing cached
// content for every key that was already inside the previous window.
func (l *List[T, K]) publish(next Window) {
	rows := make([]Row[K], 0, next.Len())
	seen := make(map[K]struct{}, next.Len())

	for i := next.Start; i < next.End; i++ {
		item := l.items[i]
		key := l.keyFn(item)
		content, ok := l.cache[key]
		if !ok {
			content = l.renderFn(item, i)
			l.cache[key] = content
		}
		seen[key] = struct{}{}
		rows = append(rows, Row[K]{Key: key, Index: i, Content: content})
	}

	// Evict keys that slid out of the window so memory stays bounded by the
	// window size, not the collection size.
	for key := range l.cache {
		if _, ok := seen[key]; !ok {
			delete(l.cache, key)
		}
	}

	l.window = next
	l.rows = rows
}

// Invalidate drops the cached content for a single key, forcing a re-render
// of that item on the next window move that includes it. Items currently in
// the window are re-rendered immediately.
func (l *List[T, K]) Invalidate(key K) {
	if _, ok := l.cache[key]; !ok {
		return
	}
	delete(l.cache, key)
	for ri, row := range l.rows {
		if row.Key == key {
			content := l.renderFn(l.items[row.Index], row.Index)
			l.cache[key] = content
			l.rows[ri].Content = content
			return
		}
	}
}

// ScrollToItem jumps so that the item at index sits at the top of the
// viewport. Out-of-range indexes are clamped, never rejected: this is a
// UI-facing control and robustness beats strictness. The jump goes through
// the container's normal scroll path, so the follow-up recompute is
// identical to a user-driven scroll.
func (l *List[T, K]) ScrollToItem(index int) {
	if len(l.items) == 0 {
		index = 0
	} else {
		index = clamp(index, 0, len(l.items)-1)
	}
	l.tracker.ScrollTo(index * l.itemHeight)
}

// ScrollPosition reports which item is at the top of the viewport and how
// many rows the viewport has scrolled into it. Useful for persisting and
// restoring position across navigation.
func (l *List[T, K]) ScrollPosition() Position {
	offset := l.tracker.Read().ScrollOffset
	return Position{
		Index:  offset / l.itemHeight,
		Offset: offset % l.itemHeight,
	}
}
