package ui

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/atomicstack/arcade-menu/internal/assets"
	"github.com/atomicstack/arcade-menu/internal/catalog"
	"github.com/atomicstack/arcade-menu/internal/logging"
	"github.com/atomicstack/arcade-menu/internal/state"
	"github.com/atomicstack/arcade-menu/internal/testutil"
	"github.com/atomicstack/arcade-menu/internal/ui/command"
	uistate "github.com/atomicstack/arcade-menu/internal/ui/state"
)

func asciiRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return r
}

func newTestModel(entries []catalog.Entry) *Model {
	return NewModel(Options{
		Session:  state.NewSession("tester", ""),
		Entries:  entries,
		Renderer: asciiRenderer(),
		Mouse:    true,
	})
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelPaintsFirstFrame(t *testing.T) {
	m := newTestModel(testutil.Letters(3))
	if m.Selection().Index() != 0 {
		t.Fatalf("expected first entry selected, got %d", m.Selection().Index())
	}
	if m.View() == "" {
		t.Fatalf("expected an initial frame")
	}
	if m.Init() == nil {
		t.Fatalf("expected Init to schedule a tick")
	}
}

func TestNewModelDefaultsTickRate(t *testing.T) {
	m := newTestModel(nil)
	if m.interval != 200*time.Millisecond {
		t.Fatalf("expected 200ms interval, got %s", m.interval)
	}
	fast := NewModel(Options{TPS: 20})
	if fast.interval != 50*time.Millisecond {
		t.Fatalf("expected 50ms interval, got %s", fast.interval)
	}
	if fast.Session() == nil {
		t.Fatalf("expected a session to be created")
	}
}

func TestTickStopsAfterDone(t *testing.T) {
	m := newTestModel(testutil.Letters(2))
	if cmd := m.handleTickMsg(tickMsg{}); cmd == nil {
		t.Fatalf("expected next tick to be scheduled")
	}
	m.done = true
	if cmd := m.handleTickMsg(tickMsg{}); cmd != nil {
		t.Fatalf("expected no tick after the session finished")
	}
}

func TestResultMsgQuits(t *testing.T) {
	m := newTestModel(testutil.Letters(2))
	_, cmd := m.Update(command.ResultMsg{Request: command.Request{Kind: command.KindTerminate}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if !m.Done() {
		t.Fatalf("expected model to be done")
	}
}

func TestUnknownMessagesAreIgnored(t *testing.T) {
	m := newTestModel(testutil.Letters(2))
	type custom struct{}
	if _, cmd := m.Update(custom{}); cmd != nil {
		t.Fatalf("expected no command for unknown messages")
	}
	if _, cmd := m.Update(nil); cmd != nil {
		t.Fatalf("expected no command for nil message")
	}
}

func TestHeaderFailureIsReportedAndSkipped(t *testing.T) {
	logging.Configure(filepath.Join(t.TempDir(), "ui.log"))
	t.Cleanup(func() { logging.Configure("") })

	reg := assets.NewRegistry(filepath.Join(t.TempDir(), "missing.png"), 25, 10)
	m := NewModel(Options{Entries: testutil.Letters(1), Assets: reg, Renderer: asciiRenderer()})
	if m.header != nil {
		t.Fatalf("expected no header")
	}
	if _, err := reg.Header(); err == nil {
		t.Fatalf("expected registry to keep reporting the failure")
	}
	if m.Selection().Phase() != uistate.PhaseSelecting {
		t.Fatalf("expected menu to keep working without a header")
	}
}

func TestHeaderIsDrawnFromRegistry(t *testing.T) {
	reg := assets.NewRegistry("", 25, 10)
	m := NewModel(Options{Entries: testutil.Letters(1), Assets: reg, Renderer: asciiRenderer()})
	if m.header == nil {
		t.Fatalf("expected built-in header")
	}
	shared, _ := reg.Header()
	if shared != m.header {
		t.Fatalf("expected session to share the registry header")
	}
}
