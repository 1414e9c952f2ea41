package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jianifeng/folio/internal/mode"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	current, err := m.Mode()
	if err != nil {
		return fmt.Sprintf("error: %v\n", err)
	}
	t := themeFor(current)

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		t.title.Render(m.catalog.Profile.Name),
		"  ",
		m.label(t, mode.Art, current),
		" / ",
		m.label(t, mode.Code, current),
	)

	if !m.ready {
		return header + "\n\nloading..."
	}

	footer := t.help.Render("tab switch mode • j/k select project • enter qr code • q quit")
	if m.err != nil {
		footer = t.help.Render("error: " + m.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.viewport.View(), footer)
}

func (m Model) label(t theme, which, current mode.Mode) string {
	if which == current {
		return t.active.Render(which.Label())
	}
	return t.inactive.Render(which.Label())
}
