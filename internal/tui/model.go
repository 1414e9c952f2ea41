// Package tui previews the portfolio in a terminal. It renders the same
// catalog as the web page and toggles the same mode provider.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/jianifeng/folio/internal/content"
	"github.com/jianifeng/folio/internal/mode"
)

const (
	headerHeight = 2
	footerHeight = 2
)

// Model is the bubbletea state of the preview. ctx carries the mode
// provider; the model itself never stores the mode.
type Model struct {
	ctx      context.Context
	catalog  *content.Catalog
	viewport viewport.Model
	ready    bool
	width    int

	focus    int
	qrOpen   bool
	quitting bool
	err      error
}

// NewModel returns a preview of c. ctx must be scoped to a mode provider.
func NewModel(ctx context.Context, c *content.Catalog) Model {
	return Model{ctx: ctx, catalog: c}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Mode reads the current mode from the provider.
func (m Model) Mode() (mode.Mode, error) {
	return mode.Get(m.ctx)
}

// Err is the last rendering or mode error, if any.
func (m Model) Err() error {
	return m.err
}

// Markdown is the document shown in the viewport before styling.
func (m Model) Markdown() (string, error) {
	current, err := m.Mode()
	if err != nil {
		return "", err
	}
	return document(themeFor(current), m.catalog, m.focus, m.qrOpen), nil
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}

	current, err := m.Mode()
	if err != nil {
		m.err = err
		return
	}

	md := document(themeFor(current), m.catalog, m.focus, m.qrOpen)
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(themeFor(current).glamourStyle),
		glamour.WithWordWrap(max(m.width-4, 20)),
	)
	if err != nil {
		m.err = err
		return
	}
	out, err := r.Render(md)
	if err != nil {
		m.err = err
		return
	}

	m.err = nil
	m.viewport.SetContent(out)
}
