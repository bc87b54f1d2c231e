package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/arcade-menu/internal/ui/render"
)

// View returns the frame painted by the most recent tick, centered in the
// terminal when the window is larger than the surface.
func (m *Model) View() string {
	if m.width <= render.Width && m.height <= render.Height {
		return m.frame
	}
	r := m.renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return r.Place(max(m.width, render.Width), max(m.height, render.Height), lipgloss.Center, lipgloss.Center, m.frame)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = size.Width
	m.height = size.Height
	return nil
}

func (m *Model) paint() {
	m.painter.Paint(m.surface, m.header, m.selection.Entries(), m.selection.Index())
	m.frame = m.surface.Render(m.renderer)
}
