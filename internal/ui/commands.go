package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/arcade-menu/internal/logging"
	"github.com/atomicstack/arcade-menu/internal/ui/command"
)

type tickMsg time.Time

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) handleTickMsg(msg tea.Msg) tea.Cmd {
	if m.done {
		return nil
	}
	m.paint()
	return tickCmd(m.interval)
}

func (m *Model) handleResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.ResultMsg)
	if !ok {
		return nil
	}
	if result.Err != nil {
		logging.Error(result.Err)
	}
	m.done = true
	return tea.Quit
}
