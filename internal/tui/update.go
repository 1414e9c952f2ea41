package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jianifeng/folio/internal/mode"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		if handled, cmd := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	height := max(msg.Height-headerHeight-footerHeight, 1)
	if !m.ready {
		m.viewport = viewport.New(msg.Width, height)
		m.viewport.YPosition = headerHeight
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = height
	}
	m.width = msg.Width
	m.refresh()
	return *m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return true, tea.Quit

	case "tab":
		if _, err := mode.Toggle(m.ctx); err != nil {
			m.err = err
			return true, nil
		}
		m.refresh()
		return true, nil

	case "j":
		if m.focus < len(m.catalog.Work.Projects)-1 {
			m.focus++
			m.qrOpen = false
			m.refresh()
		}
		return true, nil

	case "k":
		if m.focus > 0 {
			m.focus--
			m.qrOpen = false
			m.refresh()
		}
		return true, nil

	case "enter":
		// QR reveal is local to the preview and leaves the mode alone
		if m.focus < len(m.catalog.Work.Projects) && m.catalog.Work.Projects[m.focus].HasQRCode() {
			m.qrOpen = !m.qrOpen
			m.refresh()
		}
		return true, nil
	}
	return false, nil
}
