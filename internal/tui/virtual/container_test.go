package virtual_test

// stubContainer is a minimal scrollable surface for exercising trackers and
// lists without a terminal. ScrollTo clamps to non-negative offsets and
// synchronously notifies scroll listeners, mirroring the contract real
// adapters implement.
type stubContainer struct {
	offset int
	height int

	nextID    int
	scrollFns map[int]func(int)
	resizeFns map[int]func(int)
}

func newStubContainer(height int) *stubContainer {
	return &stubContainer{
		height:    height,
		scrollFns: make(map[int]func(int)),
		resizeFns: make(map[int]func(int)),
	}
}

func (c *stubContainer) OnScroll(fn func(int)) func() {
	id := c.nextID
	c.nextID++
	c.scrollFns[id] = fn
	return func() { delete(c.scrollFns, id) }
}

func (c *stubContainer) OnResize(fn func(int)) func() {
	id := c.nextID
	c.nextID++
	c.resizeFns[id] = fn
	return func() { delete(c.resizeFns, id) }
}

func (c *stubContainer) ScrollTo(offset int) {
	if offset < 0 {
		offset = 0
	}
	c.offset = offset
	for _, fn := range c.scrollFns {
		fn(offset)
	}
}

func (c *stubContainer) Resize(height int) {
	c.height = height
	for _, fn := range c.resizeFns {
		fn(height)
	}
}

func (c *stubContainer) ScrollOffset() int   { return c.offset }
func (c *stubContainer) ViewportHeight() int { return c.height }

func (c *stubContainer) listenerCount() int {
	return len(c.scrollFns) + len(c.resizeFns)
}
