package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/arcade-menu/internal/logging/events"
	"github.com/atomicstack/arcade-menu/internal/ui/command"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	return m.dispatch(keyMsg.String())
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouseMsg, ok := msg.(tea.MouseMsg)
	if !ok || !m.mouse {
		return nil
	}
	if !tea.MouseEvent(mouseMsg).IsWheel() || mouseMsg.Action != tea.MouseActionPress {
		return nil
	}
	return m.dispatch(mouseMsg.String())
}

func (m *Model) dispatch(raw string) tea.Cmd {
	cmd, ok := m.keys[raw]
	if !ok {
		return nil
	}
	switch cmd {
	case CommandUp, CommandAltUp:
		return m.moveUp(raw)
	case CommandDown, CommandAltDown:
		return m.moveDown(raw)
	case CommandActivate:
		return m.activate(raw)
	case CommandQuit:
		return m.quit(raw)
	default:
		return nil
	}
}

func (m *Model) moveUp(raw string) tea.Cmd {
	if !m.selection.MoveUp() {
		events.Menu.Ignored(m.session.ID, raw, m.selection.Phase().String())
		return nil
	}
	events.Menu.Cursor(m.session.ID, m.selection.Index())
	return nil
}

func (m *Model) moveDown(raw string) tea.Cmd {
	if !m.selection.MoveDown() {
		events.Menu.Ignored(m.session.ID, raw, m.selection.Phase().String())
		return nil
	}
	events.Menu.Cursor(m.session.ID, m.selection.Index())
	return nil
}

func (m *Model) activate(raw string) tea.Cmd {
	index := m.selection.Index()
	entry, ok := m.selection.Activate()
	if !ok {
		events.Menu.Ignored(m.session.ID, raw, m.selection.Phase().String())
		return nil
	}
	events.Menu.Activate(m.session.ID, entry.ID, index)
	return m.bus.Execute(command.Request{Session: m.session.ID, Kind: command.KindStart, Entry: entry})
}

func (m *Model) quit(raw string) tea.Cmd {
	if !m.selection.Quit() {
		events.Menu.Ignored(m.session.ID, raw, m.selection.Phase().String())
		return nil
	}
	events.Menu.Quit(m.session.ID)
	return m.bus.Execute(command.Request{Session: m.session.ID, Kind: command.KindTerminate})
}
