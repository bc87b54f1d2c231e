// Package launch starts the entry a viewer picked from the menu.
package launch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atomicstack/arcade-menu/internal/catalog"
	"github.com/atomicstack/arcade-menu/internal/logging/events"
)

var (
	// ErrNoCommand is returned for entries that have nothing to run.
	ErrNoCommand = errors.New("entry has no command")
	// ErrUnknownLauncher is returned by New for unsupported kinds.
	ErrUnknownLauncher = errors.New("unknown launcher")
)

// Launcher kinds accepted by New.
const (
	KindExec = "exec"
	KindTmux = "tmux"
	KindNone = "none"
)

// Kinds lists the supported launcher kinds.
func Kinds() []string {
	return []string{KindExec, KindTmux, KindNone}
}

// Request describes one start of an entry for a viewer. The streams are the
// viewer's terminal; launchers that do not attach to it ignore them.
type Request struct {
	Viewer string
	Entry  catalog.Entry
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Launcher starts entries.
type Launcher interface {
	Name() string
	Launch(ctx context.Context, req Request) error
}

// New returns the launcher for kind. socket is only used by the tmux launcher.
func New(kind, socket string) (Launcher, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindExec:
		return NewExec(), nil
	case KindTmux:
		return NewTmux(socket), nil
	case KindNone:
		return NewRecorder(), nil
	default:
		return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownLauncher, kind, strings.Join(Kinds(), ", "))
	}
}

// Run launches req with l and traces the start, failure and completion.
func Run(ctx context.Context, l Launcher, req Request) error {
	if len(req.Entry.Command) == 0 {
		events.Launch.Error(l.Name(), req.Entry.ID, ErrNoCommand)
		return fmt.Errorf("launch %s: %w", req.Entry.ID, ErrNoCommand)
	}
	events.Launch.Start(l.Name(), req.Viewer, req.Entry.ID, req.Entry.Command)
	started := time.Now()
	if err := l.Launch(ctx, req); err != nil {
		events.Launch.Error(l.Name(), req.Entry.ID, err)
		return fmt.Errorf("launch %s: %w", req.Entry.ID, err)
	}
	events.Launch.Done(l.Name(), req.Entry.ID, time.Since(started))
	return nil
}

func entryEnv(req Request) []string {
	return []string{
		"ARCADE_MENU_VIEWER=" + req.Viewer,
		"ARCADE_MENU_ENTRY=" + req.Entry.ID,
	}
}
