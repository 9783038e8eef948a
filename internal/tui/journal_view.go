package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// columnHeader labels the journal table columns; widths match renderRow.
const columnHeader = "Date         Symbol   Side    Quantity        Entry          P&L  Status"

// View implements tea.Model.
func (m *JournalModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateDetail:
		return m.renderDetailView()
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

func (m *JournalModel) renderListView() string {
	var sections []string

	sections = append(sections, m.renderHeader())
	sections = append(sections, StatusBarStyle.Render(columnHeader))
	sections = append(sections, m.renderBody())
	sections = append(sections, m.renderStatusBar())

	if m.showFilter {
		sections = append(sections, LabelStyle.Render("Filter: ")+m.textInput.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *JournalModel) renderHeader() string {
	title := fmt.Sprintf("Trade Journal — %d trades, net %s, win rate %s%%",
		m.summary.TotalTrades,
		FormatMoney(m.summary.NetPnL),
		m.summary.WinRate,
	)
	return HeaderStyle.Width(m.width).Render(title)
}

// renderBody prints the rows of the virtual window that intersect the
// viewport. The window starts renderOffset rows into the virtual surface,
// so the viewport's slice of it starts at offset-renderOffset.
func (m *JournalModel) renderBody() string {
	if len(m.trades) == 0 {
		return StatusBarStyle.Render("No trades recorded. Add one with 'tradesense journal add'.")
	}

	var lines []string
	for _, row := range m.list.Rows() {
		content := row.Content
		if row.Index == m.selected {
			content = SelectedRowStyle.Render(content)
		}
		lines = append(lines, content)
	}

	skip := m.offset - m.list.RenderOffset()
	if skip < 0 {
		skip = 0
	}
	if skip > len(lines) {
		skip = len(lines)
	}
	visible := lines[skip:]
	if len(visible) > m.viewRows {
		visible = visible[:m.viewRows]
	}

	return strings.Join(visible, "\n")
}

func (m *JournalModel) renderStatusBar() string {
	pos := m.list.ScrollPosition()
	left := m.announcement
	if filter := m.textInput.Value(); filter != "" {
		left += fmt.Sprintf("  [filter: %s]", filter)
	}

	right := fmt.Sprintf("top item %d  •  j/k scroll  /: filter  enter: details  q: quit", pos.Index+1)
	return StatusBarStyle.Width(m.width).Render(left + "  " + right)
}
