package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/tarigelamin1997/tradesense-sub009/internal/journal"
)

// notesWrapWidth bounds the rendered markdown column.
const notesWrapWidth = 80

func (m *JournalModel) renderDetailView() string {
	trade := m.SelectedTrade()
	if trade == nil {
		return ErrorStyle.Render("No trade selected.")
	}

	detail := RenderTradeDetail(*trade, m.width)
	footer := StatusBarStyle.Render("esc: back  q: quit")
	return lipgloss.JoinVertical(lipgloss.Left, detail, footer)
}

// RenderTradeDetail renders a single trade as a styled card, with the
// markdown notes rendered through glamour. Shared by the TUI detail view
// and the 'journal show' command.
func RenderTradeDetail(t journal.Trade, width int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s %s\n", LabelStyle.Render(t.Symbol), t.Direction, t.ID)
	fmt.Fprintf(&b, "Account:  %s\n", t.Account)
	fmt.Fprintf(&b, "Quantity: %s\n", FormatQuantity(t.Quantity))
	fmt.Fprintf(&b, "Entry:    %s @ %s\n", t.EntryTime.Format("2006-01-02 15:04"), FormatMoney(t.EntryPrice))

	if t.Closed() {
		exitTime := ""
		if t.ExitTime != nil {
			exitTime = t.ExitTime.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(&b, "Exit:     %s @ %s\n", exitTime, FormatMoney(*t.ExitPrice))

		pnl := FormatMoney(t.PnL())
		if t.PnL().IsNegative() {
			pnl = LossStyle.Render(pnl)
		} else {
			pnl = ProfitStyle.Render(pnl)
		}
		fmt.Fprintf(&b, "P&L:      %s (fees %s)\n", pnl, FormatMoney(t.Fees))
	} else {
		b.WriteString("Position: open\n")
	}

	if len(t.Tags) > 0 {
		fmt.Fprintf(&b, "Tags:     %s\n", strings.Join(t.Tags, ", "))
	}

	if notes := renderNotes(t.Notes, width); notes != "" {
		b.WriteString("\n")
		b.WriteString(notes)
	}

	return InfoStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// renderNotes runs the trade's markdown notes through glamour. Render
// failures degrade to the raw text; notes are display-only and must never
// take the view down.
func renderNotes(notes string, width int) string {
	if strings.TrimSpace(notes) == "" {
		return ""
	}

	if width <= 0 || width > notesWrapWidth {
		width = notesWrapWidth
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return notes
	}

	out, err := renderer.Render(notes)
	if err != nil {
		return notes
	}
	return strings.TrimRight(out, "\n")
}
