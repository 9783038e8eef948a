package virtual

// Container is the scrollable surface a Tracker observes. Implementations
// wrap whatever event source drives scrolling (terminal input, a test
// harness) and must deliver programmatic ScrollTo jumps back through the
// registered scroll listeners, so that imperative and user-driven scrolling
// share one recompute path.
//
// Both registration methods return a cancel function that removes the
// listener. Trackers call every cancel on Detach; skipping Detach leaks
// listeners bound to a dead tracker.
type Container interface {
	// OnScroll registers fn to receive the new scroll offset (in rows)
	// every time the container scrolls.
	OnScroll(fn func(offset int)) (cancel func())

	// OnResize registers fn to receive the new viewport height (in rows)
	// every time the container is resized.
	OnResize(fn func(height int)) (cancel func())

	// ScrollTo sets the container's scroll offset. The container clamps the
	// offset to its content bounds and notifies scroll listeners.
	ScrollTo(offset int)

	// ScrollOffset returns the container's current scroll offset.
	ScrollOffset() int

	// ViewportHeight returns the container's current visible height. Zero
	// means the container has not been laid out yet.
	ViewportHeight() int
}

// ViewportState is the live (scrollOffset, viewportHeight) pair produced by
// a Tracker, in rows.
type ViewportState struct {
	ScrollOffset   int
	ViewportHeight int
}

// Tracker observes a Container and keeps a synchronously readable copy of
// its viewport state. It owns nothing beyond its listener registrations.
//
// Tracker is not safe for concurrent use; it is designed for a
// single-goroutine event loop.
type Tracker struct {
	state     ViewportState
	container Container
	cancels   []func()
	onChange  func(ViewportState)
}

// NewTracker creates a detached tracker. onChange, if non-nil, fires after
// every observed scroll or resize with the updated state.
func NewTracker(onChange func(ViewportState)) *Tracker {
	return &Tracker{onChange: onChange}
}

// Attach begins observing c. Calling Attach while already attached first
// detaches from the previous container, so repeated calls never stack
// listeners. The tracker seeds its state from the container immediately, so
// Read is valid before the first event arrives.
func (t *Tracker) Attach(c Container) {
	t.Detach()
	t.container = c
	t.state = ViewportState{
		ScrollOffset:   c.ScrollOffset(),
		ViewportHeight: c.ViewportHeight(),
	}

	t.cancels = append(t.cancels,
		c.OnScroll(func(offset int) {
			if offset < 0 {
				offset = 0
			}
			t.state.ScrollOffset = offset
			t.notify()
		}),
		c.OnResize(func(height int) {
			if height < 0 {
				height = 0
			}
			t.state.ViewportHeight = height
			t.notify()
		}),
	)
}

// Detach removes all listener registrations. It must be called on teardown;
// it is a no-op when already detached.
func (t *Tracker) Detach() {
	for _, cancel := range t.cancels {
		cancel()
	}
	t.cancels = nil
	t.container = nil
}

// Attached reports whether the tracker currently observes a container.
func (t *Tracker) Attached() bool {
	return t.container != nil
}

// Read returns the current viewport state. The value is as fresh as the
// last observed event; there is no additional caching layer.
func (t *Tracker) Read() ViewportState {
	return t.state
}

// ScrollTo drives the attached container to the given offset. The resulting
// state change arrives through the normal scroll listener, not a side
// channel. Detached trackers record the offset directly so imperative
// positioning still works before Attach.
func (t *Tracker) ScrollTo(offset int) {
	if offset < 0 {
		offset = 0
	}
	if t.container == nil {
		t.state.ScrollOffset = offset
		t.notify()
		return
	}
	t.container.ScrollTo(offset)
}

func (t *Tracker) notify() {
	if t.onChange != nil {
		t.onChange(t.state)
	}
}
