package tui

import (
	"fmt"
	"strings"

	simstrings "github.com/joss/simpilot/internal/strings"
)

// View renders the REPL.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	if !m.ready {
		return fmt.Sprintf("\n  %s Starting...", m.spinner.View())
	}

	var b strings.Builder

	header := titleStyle.Render("simpilot") + "  " + dimStyle.Render("natural language simulator control")
	b.WriteString(header + "\n\n")

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	b.WriteString(m.renderSuggestions() + "\n")
	b.WriteString(m.renderStatus() + "\n")

	if m.busy {
		b.WriteString(fmt.Sprintf("  %s Running...", m.spinner.View()))
	} else {
		b.WriteString(inputBorderStyle.Width(m.width - 4).Render(m.input.View()))
	}

	return b.String()
}

func (m Model) renderSuggestions() string {
	if m.busy || len(m.completions) == 0 {
		return ""
	}
	shown := m.completions
	if len(shown) > 5 {
		shown = shown[:5]
	}
	line := "  " + suggestStyle.Render(strings.Join(shown, " · "))
	if m.width > 4 {
		line = simstrings.TruncateRunes(line, m.width-2)
	}
	return line
}

func (m Model) renderStatus() string {
	parts := []string{"enter: run", "tab: complete", "/help", "esc: quit"}

	if sess := m.client.CurrentSession(); sess != nil {
		parts = append([]string{fmt.Sprintf("session %s (%s)", sess.Name, simstrings.Truncate(sess.UDID, 12))}, parts...)
	}

	return statusStyle.Render(strings.Join(parts, " │ "))
}
