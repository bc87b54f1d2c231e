package events

import (
	"time"

	"github.com/atomicstack/arcade-menu/internal/logging"
)

type LaunchTracer struct{}

var Launch = LaunchTracer{}

func (LaunchTracer) Start(launcher, viewer, entryID string, argv []string) {
	logging.Trace("launch.start", map[string]any{
		"launcher": launcher,
		"viewer":   viewer,
		"entry":    entryID,
		"argv":     argv,
	})
}

func (LaunchTracer) Error(launcher, entryID string, err error) {
	if err == nil {
		return
	}
	logging.Trace("launch.error", map[string]any{"launcher": launcher, "entry": entryID, "error": err.Error()})
}

func (LaunchTracer) Done(launcher, entryID string, elapsed time.Duration) {
	logging.Trace("launch.done", map[string]any{"launcher": launcher, "entry": entryID, "elapsed": elapsed.String()})
}
