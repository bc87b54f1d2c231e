package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives the UI model programmatically for tests. Timer commands are
// never run; Tick delivers a frame on demand instead.
type Harness struct {
	model *Model
	quit  bool
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	h.processCmd(h.update(msg))
}

// Tick delivers one frame tick. The follow-up timer is discarded.
func (h *Harness) Tick() {
	if h.model == nil {
		return
	}
	h.update(tickMsg(time.Now()))
}

func (h *Harness) update(msg tea.Msg) tea.Cmd {
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	return cmd
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			h.quit = true
			return
		}
		cmd = h.update(msg)
	}
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Lines returns the painted surface as plain text rows.
func (h *Harness) Lines() []string {
	if h.model == nil {
		return nil
	}
	return h.model.Surface().PlainLines()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
