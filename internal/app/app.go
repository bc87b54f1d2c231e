package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/arcade-menu/internal/assets"
	"github.com/atomicstack/arcade-menu/internal/catalog"
	"github.com/atomicstack/arcade-menu/internal/launch"
	"github.com/atomicstack/arcade-menu/internal/logging"
	"github.com/atomicstack/arcade-menu/internal/logging/events"
	"github.com/atomicstack/arcade-menu/internal/state"
	"github.com/atomicstack/arcade-menu/internal/ui"
	"github.com/atomicstack/arcade-menu/internal/ui/render"
)

// Config describes user-provided application options.
type Config struct {
	CatalogPath string
	Viewer      string
	LogoPath    string
	TPS         int
	Launcher    string
	SocketPath  string
	Mouse       bool
}

// Streams is the terminal a session runs on.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Environment holds the collaborators shared by every session of the
// process.
type Environment struct {
	Config   Config
	Assets   *assets.Registry
	Catalogs state.CatalogStore
	Sessions state.SessionStore
	Launcher launch.Launcher
}

// NewEnvironment loads the catalog and prepares the launcher. The header
// image is not decoded until the first session asks for it.
func NewEnvironment(cfg Config) (*Environment, error) {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	events.Catalog.Loaded(cfg.CatalogPath, cat.Len())

	socket := cfg.SocketPath
	if cfg.Launcher == launch.KindTmux {
		socket, err = launch.ResolveSocketPath(cfg.SocketPath)
		if err != nil {
			return nil, fmt.Errorf("resolve socket path: %w", err)
		}
	}
	launcher, err := launch.New(cfg.Launcher, socket)
	if err != nil {
		return nil, err
	}

	return &Environment{
		Config:   cfg,
		Assets:   assets.NewRegistry(cfg.LogoPath, render.HeaderWidth, render.HeaderHeight),
		Catalogs: state.NewCatalogStore(cat),
		Sessions: state.NewSessionStore(),
		Launcher: launcher,
	}, nil
}

// Available returns the entries offered to viewer by the current catalog.
func (e *Environment) Available(viewer string) []catalog.Entry {
	return e.Catalogs.Catalog().Available(viewer)
}

// NewModel creates the menu for sess. Its entries are fixed at this point.
func (e *Environment) NewModel(sess *state.Session, renderer *lipgloss.Renderer) *ui.Model {
	return ui.NewModel(ui.Options{
		Session:  sess,
		Entries:  e.Available(sess.Viewer),
		Assets:   e.Assets,
		Renderer: renderer,
		TPS:      e.Config.TPS,
		Mouse:    e.Config.Mouse,
	})
}

// ProgramOptions returns the Bubble Tea options shared by local and remote
// sessions.
func (e *Environment) ProgramOptions() []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if e.Config.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	return opts
}

// Finish acts on the outcome recorded by sess once its menu has exited.
func (e *Environment) Finish(ctx context.Context, sess *state.Session, streams Streams) error {
	outcome := sess.Outcome()
	events.Session.End(sess.ID, sess.Viewer, outcome.Kind.String(), sess.Elapsed())
	if outcome.Kind != state.OutcomeStart {
		return nil
	}
	return launch.Run(ctx, e.Launcher, launch.Request{
		Viewer: sess.Viewer,
		Entry:  outcome.Entry,
		Stdin:  streams.In,
		Stdout: streams.Out,
		Stderr: streams.Err,
	})
}

// Play launches the entry matching query without showing the menu.
func (e *Environment) Play(ctx context.Context, viewer, query string, streams Streams) error {
	entry, err := catalog.Find(e.Available(viewer), query)
	if err != nil {
		return err
	}
	return launch.Run(ctx, e.Launcher, launch.Request{
		Viewer: viewer,
		Entry:  entry,
		Stdin:  streams.In,
		Stdout: streams.Out,
		Stderr: streams.Err,
	})
}

// Run bootstraps and executes the menu on the local terminal, then starts the
// chosen entry.
func Run(ctx context.Context, cfg Config) error {
	env, err := NewEnvironment(cfg)
	if err != nil {
		return err
	}
	return env.RunLocal(ctx, Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
}

// RunLocal runs one session for the configured viewer on streams.
func (e *Environment) RunLocal(ctx context.Context, streams Streams) error {
	sess := state.NewSession(e.Config.Viewer, "local")
	e.Sessions.Add(sess)
	defer e.Sessions.Remove(sess.ID)

	opts := append(e.ProgramOptions(),
		tea.WithContext(ctx),
		tea.WithInput(streams.In),
		tea.WithOutput(streams.Out),
	)
	program := tea.NewProgram(e.NewModel(sess, nil), opts...)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		events.App.Exit("killed")
		return nil
	}
	if err != nil {
		return err
	}
	if err := e.Finish(ctx, sess, streams); err != nil {
		logging.Error(err)
		return err
	}
	return nil
}
