package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tarigelamin1997/tradesense-sub009/internal/journal"
	"github.com/tarigelamin1997/tradesense-sub009/internal/tui/virtual"
)

// ViewState is the journal browser's top-level state.
type ViewState int

// Browser states.
const (
	ViewStateList ViewState = iota
	ViewStateDetail
	ViewStateQuitting
)

// Layout constants (rows).
const (
	headerRows = 2
	footerRows = 1

	defaultWidth  = 100
	defaultHeight = 30

	// wheelStep is the scroll distance of one mouse-wheel tick.
	wheelStep = 3
)

// JournalModel is the Bubble Tea model for browsing the trade journal. It
// adapts terminal events onto the virtual list's Container interface: key
// and wheel input become scroll offsets, window resizes become viewport
// height changes, and the published window is what View prints.
//
// The model is the container. Registered listeners are the virtual list's
// tracker callbacks; they must survive Bubble Tea's message loop, so all
// methods use pointer receivers.
type JournalModel struct {
	state ViewState

	allTrades []journal.Trade
	trades    []journal.Trade
	summary   journal.Summary

	list         *virtual.List[journal.Trade, string]
	announcement string

	width    int
	height   int
	offset   int
	viewRows int

	nextListener int
	scrollFns    map[int]func(int)
	resizeFns    map[int]func(int)

	selected   int
	showFilter bool
	textInput  textinput.Model
	keys       keyMap

	err error
}

// newFilterInput builds the filter text input.
func newFilterInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "symbol, tag, or account"
	ti.CharLimit = 64
	ti.Width = 32
	return ti
}

// NewJournalModel creates the browser over the given trades.
func NewJournalModel(trades []journal.Trade) (*JournalModel, error) {
	m := &JournalModel{
		state:     ViewStateList,
		allTrades: trades,
		trades:    trades,
		summary:   journal.Summarize(trades),
		width:     defaultWidth,
		height:    defaultHeight,
		scrollFns: make(map[int]func(int)),
		resizeFns: make(map[int]func(int)),
		textInput: newFilterInput(),
		keys:      defaultKeyMap(),
	}
	m.viewRows = m.contentRows()

	list, err := virtual.NewList(virtual.Config[journal.Trade, string]{
		Items:       trades,
		ItemHeight:  1,
		BufferCount: virtual.DefaultBufferCount,
		Key:         func(t journal.Trade) string { return t.ID },
		Render:      m.renderRow,
		Announce:    func(status string) { m.announcement = status },
	})
	if err != nil {
		return nil, err
	}

	m.list = list
	m.list.Attach(m)
	return m, nil
}

// Container interface: the model is the scrollable surface.

// OnScroll registers a scroll listener and returns its cancel.
func (m *JournalModel) OnScroll(fn func(int)) func() {
	id := m.nextListener
	m.nextListener++
	m.scrollFns[id] = fn
	return func() { delete(m.scrollFns, id) }
}

// OnResize registers a resize listener and returns its cancel.
func (m *JournalModel) OnResize(fn func(int)) func() {
	id := m.nextListener
	m.nextListener++
	m.resizeFns[id] = fn
	return func() { delete(m.resizeFns, id) }
}

// ScrollTo clamps the offset to the content bounds and notifies listeners.
// Both user input and the list's ScrollToItem funnel through here, so there
// is exactly one scroll path.
func (m *JournalModel) ScrollTo(offset int) {
	max := m.maxScroll()
	if offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	m.offset = offset
	for _, fn := range m.scrollFns {
		fn(offset)
	}
}

// ScrollOffset returns the current scroll offset in rows.
func (m *JournalModel) ScrollOffset() int { return m.offset }

// ViewportHeight returns the rows available to the list body.
func (m *JournalModel) ViewportHeight() int { return m.viewRows }

// maxScroll keeps the last page flush with the bottom of the viewport.
func (m *JournalModel) maxScroll() int {
	if m.list == nil {
		return 0
	}
	max := m.list.TotalHeight() - m.viewRows
	if max < 0 {
		return 0
	}
	return max
}

func (m *JournalModel) contentRows() int {
	rows := m.height - headerRows - footerRows
	if m.showFilter {
		rows--
	}
	if rows < 0 {
		rows = 0
	}
	return rows
}

// Init implements tea.Model.
func (m *JournalModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// relayout recomputes the body height and pushes it through the resize
// listeners, then re-clamps the offset against the new bounds.
func (m *JournalModel) relayout() {
	m.viewRows = m.contentRows()
	for _, fn := range m.resizeFns {
		fn(m.viewRows)
	}
	m.ScrollTo(m.offset)
}

func (m *JournalModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.state != ViewStateList {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.ScrollTo(m.offset - wheelStep)
	case tea.MouseButtonWheelDown:
		m.ScrollTo(m.offset + wheelStep)
	default:
	}
	return m, nil
}

//nolint:gocognit // Key dispatch inherently branches per binding.
func (m *JournalModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showFilter {
		return m.handleFilterKey(msg)
	}

	if m.state == ViewStateDetail {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.state = ViewStateQuitting
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.state = ViewStateList
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.state = ViewStateQuitting
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)

	case key.Matches(msg, m.keys.PageUp):
		m.moveSelection(-m.viewRows)

	case key.Matches(msg, m.keys.PageDown):
		m.moveSelection(m.viewRows)

	case key.Matches(msg, m.keys.Home):
		m.selected = 0
		m.list.ScrollToItem(0)

	case key.Matches(msg, m.keys.End):
		m.selected = len(m.trades) - 1
		m.list.ScrollToItem(m.selected)

	case key.Matches(msg, m.keys.Filter):
		m.showFilter = true
		m.textInput.Focus()
		m.relayout()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Select):
		if m.selected >= 0 && m.selected < len(m.trades) {
			m.state = ViewStateDetail
		}

	case key.Matches(msg, m.keys.Back):
		if m.textInput.Value() != "" {
			m.textInput.SetValue("")
			m.applyFilter("")
		}
	}
	return m, nil
}

func (m *JournalModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.showFilter = false
		m.textInput.Blur()
		m.applyFilter(m.textInput.Value())
		m.relayout()
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// moveSelection shifts the cursor and scrolls just enough to keep it
// visible, the same follow behavior as a native list widget.
func (m *JournalModel) moveSelection(delta int) {
	if len(m.trades) == 0 {
		return
	}

	m.selected += delta
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected >= len(m.trades) {
		m.selected = len(m.trades) - 1
	}
	m.ensureVisible(m.selected)
}

func (m *JournalModel) ensureVisible(index int) {
	itemHeight := m.list.ItemHeight()
	top := index * itemHeight
	bottom := top + itemHeight

	switch {
	case top < m.offset:
		m.ScrollTo(top)
	case bottom > m.offset+m.viewRows:
		m.ScrollTo(bottom - m.viewRows)
	}
}

// applyFilter narrows the collection to trades matching the query and
// re-supplies the list with the new slice, which forces a full recompute.
func (m *JournalModel) applyFilter(query string) {
	m.trades = journal.Filter(m.allTrades, query)
	m.summary = journal.Summarize(m.trades)
	m.list.SetItems(m.trades)

	if m.selected >= len(m.trades) {
		m.selected = len(m.trades) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	m.ScrollTo(0)
}

// SelectedTrade returns the trade under the cursor, or nil when the
// filtered view is empty.
func (m *JournalModel) SelectedTrade() *journal.Trade {
	if m.selected < 0 || m.selected >= len(m.trades) {
		return nil
	}
	return &m.trades[m.selected]
}

// Announcement returns the list's latest accessibility status line.
func (m *JournalModel) Announcement() string {
	return m.announcement
}

// List exposes the underlying virtual list, mainly for tests.
func (m *JournalModel) List() *virtual.List[journal.Trade, string] {
	return m.list
}

// Close detaches the virtual list's listeners. Mandatory teardown.
func (m *JournalModel) Close() {
	m.list.Detach()
}

// renderRow formats one trade line. Selection highlighting is applied at
// view time, not here, so cached content stays valid as the cursor moves.
func (m *JournalModel) renderRow(t journal.Trade, index int) string {
	status := "open"
	if t.Closed() {
		status = "closed"
	}

	return fmt.Sprintf("%-12s %-8s %-5s %10s %12s %12s %7s",
		t.EntryTime.Format("2006-01-02"),
		truncate(t.Symbol, 8),
		t.Direction,
		FormatQuantity(t.Quantity),
		FormatMoney(t.EntryPrice),
		FormatPnL(t),
		status,
	)
}

// truncate shortens s to at most max runes. Counting runes rather than
// bytes keeps multi-byte symbols intact.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
