package events

import (
	"time"

	"github.com/atomicstack/arcade-menu/internal/logging"
)

type SessionTracer struct{}

var Session = SessionTracer{}

func (SessionTracer) Start(id, viewer string, entries int) {
	logging.Trace("session.start", map[string]any{"id": id, "viewer": viewer, "entries": entries})
}

func (SessionTracer) End(id, viewer, outcome string, elapsed time.Duration) {
	logging.Trace("session.end", map[string]any{
		"id":      id,
		"viewer":  viewer,
		"outcome": outcome,
		"elapsed": elapsed.String(),
	})
}

// AssetMissing is reported once per session when the shared header could not
// be built.
func (SessionTracer) AssetMissing(id, asset string, err error) {
	payload := map[string]any{"id": id, "asset": asset}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("session.asset.missing", payload)
}
