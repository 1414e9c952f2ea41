package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jianifeng/folio/internal/mode"
)

// theme is everything that differs between the two modes in the terminal.
// The content written through it is the same for both.
type theme struct {
	glamourStyle string
	title        lipgloss.Style
	active       lipgloss.Style
	inactive     lipgloss.Style
	help         lipgloss.Style

	heading func(string) string
	item    func(number, title string) string
	tag     func(string) string
	quote   func(string) string
	link    func(label, url string) string
}

var themes = map[mode.Mode]theme{
	mode.Art: {
		glamourStyle: "pink",
		title:        lipgloss.NewStyle().Bold(true).Italic(true).Foreground(lipgloss.Color("137")),
		active:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("173")),
		inactive:     lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		help:         lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),

		heading: func(s string) string { return s },
		item: func(number, title string) string {
			if number == "" {
				return title
			}
			return number + " · " + title
		},
		tag:   func(s string) string { return "*" + s + "*" },
		quote: func(s string) string { return "“" + s + "”" },
		link:  func(label, url string) string { return fmt.Sprintf("[%s](%s)", label, url) },
	},
	mode.Code: {
		glamourStyle: "dracula",
		title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		active:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		inactive:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		help:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		heading: func(s string) string { return "$ " + s },
		item: func(number, title string) string {
			if number == "" {
				return title
			}
			return "[" + number + "] " + title
		},
		tag:   func(s string) string { return "`" + s + "`" },
		quote: func(s string) string { return "// " + s },
		link:  func(label, url string) string { return fmt.Sprintf("`%s` → <%s>", label, url) },
	},
}

func themeFor(m mode.Mode) theme {
	return themes[m]
}

func (t theme) tags(tags []string) string {
	out := make([]string, 0, len(tags))
	for _, s := range tags {
		out = append(out, t.tag(s))
	}
	return strings.Join(out, " ")
}
