package ui

import (
	"reflect"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/arcade-menu/internal/assets"
	"github.com/atomicstack/arcade-menu/internal/catalog"
	"github.com/atomicstack/arcade-menu/internal/logging/events"
	"github.com/atomicstack/arcade-menu/internal/state"
	"github.com/atomicstack/arcade-menu/internal/theme"
	"github.com/atomicstack/arcade-menu/internal/ui/command"
	"github.com/atomicstack/arcade-menu/internal/ui/render"
	uistate "github.com/atomicstack/arcade-menu/internal/ui/state"
)

// DefaultTPS is the number of frames painted per second.
const DefaultTPS = 5

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a menu session.
type Options struct {
	Session  *state.Session
	Entries  []catalog.Entry
	Assets   *assets.Registry
	Styles   *theme.Styles
	Renderer *lipgloss.Renderer
	Keymap   *Keymap
	TPS      int
	Mouse    bool
}

// Model implements the Bubble Tea model for one viewer's menu.
type Model struct {
	session   *state.Session
	selection *uistate.Selection
	bus       *command.Bus

	keys     map[string]Command
	mouse    bool
	interval time.Duration

	surface  *render.Surface
	painter  *render.Painter
	header   *assets.Header
	renderer *lipgloss.Renderer
	frame    string
	width    int
	height   int
	done     bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the selection with the viewer's entries and paints the
// first frame.
func NewModel(opts Options) *Model {
	sess := opts.Session
	if sess == nil {
		sess = state.NewSession("", "")
	}
	keymap := DefaultKeymap()
	if opts.Keymap != nil {
		keymap = *opts.Keymap
	}
	tps := opts.TPS
	if tps <= 0 {
		tps = DefaultTPS
	}
	m := &Model{
		session:   sess,
		selection: uistate.NewSelection(),
		bus:       command.New(sess),
		keys:      keymap.Table(),
		mouse:     opts.Mouse,
		interval:  time.Second / time.Duration(tps),
		surface:   render.NewSurface(render.Width, render.Height),
		painter:   render.NewPainter(opts.Styles),
		renderer:  opts.Renderer,
	}
	m.selection.Initialize(opts.Entries)
	events.Session.Start(sess.ID, sess.Viewer, m.selection.Len())
	m.loadHeader(opts.Assets)
	m.registerHandlers()
	m.paint()
	return m
}

func (m *Model) loadHeader(reg *assets.Registry) {
	if reg == nil {
		return
	}
	header, err := reg.Header()
	if err != nil {
		events.Session.AssetMissing(m.session.ID, "header", err)
		return
	}
	m.header = header
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
		reflect.TypeOf(command.ResultMsg{}): m.handleResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// Selection exposes the session's selection state.
func (m *Model) Selection() *uistate.Selection {
	return m.selection
}

// Surface exposes the painted surface.
func (m *Model) Surface() *render.Surface {
	return m.surface
}

// Session returns the session context driving this model.
func (m *Model) Session() *state.Session {
	return m.session
}

// Done reports whether the menu has handed its outcome to the owner.
func (m *Model) Done() bool {
	return m.done
}
