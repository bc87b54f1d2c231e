package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/arcade-menu/internal/state"
	"github.com/atomicstack/arcade-menu/internal/testutil"
	uistate "github.com/atomicstack/arcade-menu/internal/ui/state"
)

func TestArrowKeysMoveSelection(t *testing.T) {
	h := NewHarness(newTestModel(testutil.Letters(4)))
	h.Send(keyDown)
	h.Send(keyDown)
	if got := h.Model().Selection().Index(); got != 2 {
		t.Fatalf("expected index 2, got %d", got)
	}
	h.Send(keyUp)
	if got := h.Model().Selection().Index(); got != 1 {
		t.Fatalf("expected index 1, got %d", got)
	}
}

func TestAlternateBindingsMoveSelection(t *testing.T) {
	h := NewHarness(newTestModel(testutil.Letters(4)))
	h.Send(runeKey("1"))
	h.Send(runeKey("s"))
	if got := h.Model().Selection().Index(); got != 2 {
		t.Fatalf("expected index 2, got %d", got)
	}
	h.Send(runeKey("8"))
	if got := h.Model().Selection().Index(); got != 1 {
		t.Fatalf("expected index 1, got %d", got)
	}
}

func TestMouseWheelMovesSelection(t *testing.T) {
	h := NewHarness(newTestModel(testutil.Letters(4)))
	h.Send(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if got := h.Model().Selection().Index(); got != 1 {
		t.Fatalf("expected index 1, got %d", got)
	}
	h.Send(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	h.Send(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	if got := h.Model().Selection().Index(); got != 0 {
		t.Fatalf("expected index 0, got %d", got)
	}
}

func TestMouseDisabledIgnoresWheel(t *testing.T) {
	m := NewModel(Options{Entries: testutil.Letters(3), Renderer: asciiRenderer()})
	h := NewHarness(m)
	h.Send(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if got := m.Selection().Index(); got != 0 {
		t.Fatalf("expected wheel to be ignored, got %d", got)
	}
}

func TestUnboundKeysAreIgnored(t *testing.T) {
	h := NewHarness(newTestModel(testutil.Letters(3)))
	for _, k := range []tea.KeyMsg{runeKey("x"), {Type: tea.KeyTab}, {Type: tea.KeyLeft}} {
		h.Send(k)
	}
	if got := h.Model().Selection().Index(); got != 0 {
		t.Fatalf("expected index 0, got %d", got)
	}
	if h.Quit() {
		t.Fatalf("expected no quit")
	}
}

func TestActivateStartsSelectedEntry(t *testing.T) {
	m := newTestModel(testutil.Entries("Snake", "Pong", "Tetris"))
	h := NewHarness(m)
	h.Send(keyDown)
	h.Send(keyEnter)
	if !h.Quit() {
		t.Fatalf("expected program to quit after activation")
	}
	out := m.Session().Outcome()
	if out.Kind != state.OutcomeStart || out.Entry.ID != "pong" {
		t.Fatalf("expected pong to be started, got %+v", out)
	}
	if m.Selection().Phase() != uistate.PhaseActivated {
		t.Fatalf("expected activated phase, got %s", m.Selection().Phase())
	}
}

func TestSpaceActivates(t *testing.T) {
	m := newTestModel(testutil.Letters(2))
	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeySpace})
	if got := m.Session().Outcome().Kind; got != state.OutcomeStart {
		t.Fatalf("expected start outcome, got %s", got)
	}
}

func TestQuitTerminatesSession(t *testing.T) {
	m := newTestModel(testutil.Letters(3))
	h := NewHarness(m)
	h.Send(keyDown)
	h.Send(keyEsc)
	if !h.Quit() {
		t.Fatalf("expected program to quit")
	}
	if got := m.Session().Outcome().Kind; got != state.OutcomeTerminate {
		t.Fatalf("expected terminate outcome, got %s", got)
	}
	if m.Selection().Index() != 1 || m.Selection().Len() != 3 {
		t.Fatalf("expected quit to leave the selection untouched")
	}
}

func TestInputAfterActivationIsIgnored(t *testing.T) {
	m := newTestModel(testutil.Letters(3))
	if cmd := m.handleKeyMsg(keyEnter); cmd == nil {
		t.Fatalf("expected start request")
	}
	if cmd := m.handleKeyMsg(keyDown); cmd != nil {
		t.Fatalf("expected navigation to be ignored")
	}
	if cmd := m.handleKeyMsg(keyEsc); cmd != nil {
		t.Fatalf("expected quit to be ignored after activation")
	}
	if m.Selection().Index() != 0 {
		t.Fatalf("expected index to stay at 0")
	}
}
