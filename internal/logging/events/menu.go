package events

import "github.com/atomicstack/arcade-menu/internal/logging"

type MenuTracer struct{}

type CommandTracer struct{}

var (
	Menu    = MenuTracer{}
	Command = CommandTracer{}
)

func (MenuTracer) Cursor(session string, index int) {
	logging.Trace("menu.cursor", map[string]any{"session": session, "index": index})
}

func (MenuTracer) Activate(session, entryID string, index int) {
	logging.Trace("menu.activate", map[string]any{"session": session, "entry": entryID, "index": index})
}

func (MenuTracer) Quit(session string) {
	logging.Trace("menu.quit", map[string]any{"session": session})
}

func (MenuTracer) Ignored(session, key, phase string) {
	logging.Trace("menu.ignored", map[string]any{"session": session, "key": key, "phase": phase})
}

func (CommandTracer) Queue(session, kind string) {
	logging.Trace("command.queue", map[string]any{"session": session, "kind": kind})
}

func (CommandTracer) Result(session, kind string, err error) {
	payload := map[string]any{"session": session, "kind": kind}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}
