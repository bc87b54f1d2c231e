package command

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/arcade-menu/internal/catalog"
	"github.com/atomicstack/arcade-menu/internal/logging/events"
)

// Kind identifies the request a menu makes of its owner.
type Kind string

const (
	KindStart     Kind = "start"
	KindTerminate Kind = "terminate"
)

// Owner receives the requests of one menu session.
type Owner interface {
	Start(entry catalog.Entry) error
	Terminate() error
}

// Request encapsulates a start or terminate invocation.
type Request struct {
	Session string
	Kind    Kind
	Entry   catalog.Entry
}

// ResultMsg reports the outcome of a request back to the model.
type ResultMsg struct {
	Request Request
	Err     error
}

// Bus forwards menu requests to the session owner.
type Bus struct {
	owner Owner
}

// New initialises a command bus for owner. A nil owner accepts every request.
func New(owner Owner) *Bus {
	return &Bus{owner: owner}
}

// Execute wraps a request into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.Session, string(req.Kind))
	return func() tea.Msg {
		err := b.dispatch(req)
		events.Command.Result(req.Session, string(req.Kind), err)
		return ResultMsg{Request: req, Err: err}
	}
}

func (b *Bus) dispatch(req Request) error {
	if b.owner == nil {
		return nil
	}
	switch req.Kind {
	case KindStart:
		return b.owner.Start(req.Entry)
	case KindTerminate:
		return b.owner.Terminate()
	default:
		return nil
	}
}
