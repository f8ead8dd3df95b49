package tui

import (
	"fmt"
	"strings"
)

func (m model) viewNotifications() string {
	var b strings.Builder

	b.WriteString(m.headline())
	b.WriteString("\n\n")

	switch {
	case m.loading && len(m.inbox) == 0:
		b.WriteString(m.spinner.View() + " Loading notifications...")
	case len(m.inbox) == 0:
		b.WriteString("No notifications")
	}

	for i, n := range m.inbox {
		mark := " "
		if !n.IsRead {
			mark = "●"
		}
		line := fmt.Sprintf("%s %-14s %s  %s", mark, n.Type, fitText(n.Message, 60), n.Time.Format("2006-01-02 15:04"))
		if i == m.cursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	m.writeFooter(&b)
	return renderPage("KARDASH · NOTIFICATIONS", strings.TrimRight(b.String(), "\n"),
		"↑/↓: move │ enter: mark read │ a: mark all read │ r: refresh │ esc: back")
}
