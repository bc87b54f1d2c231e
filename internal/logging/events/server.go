package events

import "github.com/atomicstack/arcade-menu/internal/logging"

type ServerTracer struct{}

var Server = ServerTracer{}

func (ServerTracer) Listen(addr string) {
	logging.Trace("server.listen", map[string]any{"addr": addr})
}

// Stop records the shutdown reason and the sessions still connected.
func (ServerTracer) Stop(reason string, live []string) {
	logging.Trace("server.stop", map[string]any{"reason": reason, "live": live})
}

func (ServerTracer) Connect(id, viewer, remote string, live int) {
	logging.Trace("server.connect", map[string]any{"id": id, "viewer": viewer, "remote": remote, "live": live})
}

func (ServerTracer) Disconnect(id, viewer string, live int) {
	logging.Trace("server.disconnect", map[string]any{"id": id, "viewer": viewer, "live": live})
}

func (ServerTracer) Reject(viewer, remote, reason string) {
	logging.Trace("server.reject", map[string]any{"viewer": viewer, "remote": remote, "reason": reason})
}
