package state

import "github.com/atomicstack/arcade-menu/internal/catalog"

// Phase is the lifecycle stage of a selection.
type Phase int

const (
	// PhaseEmpty means no entries were offered; only quit has an effect.
	PhaseEmpty Phase = iota
	// PhaseSelecting means an entry is selected and navigation is live.
	PhaseSelecting
	// PhaseActivated is terminal: an entry was chosen for launch.
	PhaseActivated
	// PhaseQuit is terminal: the viewer left without choosing.
	PhaseQuit
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseSelecting:
		return "selecting"
	case PhaseActivated:
		return "activated"
	case PhaseQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Selection owns the ordered entries of one session and the selected index.
// Entries are fixed by Initialize and never reordered afterwards.
type Selection struct {
	entries     []catalog.Entry
	cursor      int
	phase       Phase
	initialized bool
}

// NewSelection returns a selection in the empty phase.
func NewSelection() *Selection {
	return &Selection{cursor: -1, phase: PhaseEmpty}
}

// Initialize populates the selection. Only the first call has an effect; it
// reports whether the entries were accepted.
func (s *Selection) Initialize(entries []catalog.Entry) bool {
	if s.initialized {
		return false
	}
	s.initialized = true
	s.entries = catalog.CloneEntries(entries)
	if len(s.entries) == 0 {
		s.cursor = -1
		s.phase = PhaseEmpty
		return true
	}
	s.cursor = 0
	s.phase = PhaseSelecting
	return true
}

// Entries returns a copy of the entries in display order.
func (s *Selection) Entries() []catalog.Entry {
	return catalog.CloneEntries(s.entries)
}

// Len reports the number of entries.
func (s *Selection) Len() int {
	return len(s.entries)
}

// Index returns the selected index, or -1 when there are no entries.
func (s *Selection) Index() int {
	if len(s.entries) == 0 {
		return -1
	}
	return s.cursor
}

// Phase returns the current lifecycle phase.
func (s *Selection) Phase() Phase {
	return s.phase
}

// Done reports whether the selection reached a terminal phase.
func (s *Selection) Done() bool {
	return s.phase == PhaseActivated || s.phase == PhaseQuit
}

// Current returns the selected entry.
func (s *Selection) Current() (catalog.Entry, bool) {
	if len(s.entries) == 0 {
		return catalog.Entry{}, false
	}
	return s.entries[s.cursor], true
}

// Activate returns the selected entry and moves to the activated phase. With
// no entries, or after the selection finished, it returns false and leaves
// the state untouched.
func (s *Selection) Activate() (catalog.Entry, bool) {
	if s.phase != PhaseSelecting {
		return catalog.Entry{}, false
	}
	entry, ok := s.Current()
	if !ok {
		return catalog.Entry{}, false
	}
	s.phase = PhaseActivated
	return entry, true
}

// Quit ends the selection. Entries and index are left as they are.
func (s *Selection) Quit() bool {
	if s.Done() {
		return false
	}
	s.phase = PhaseQuit
	return true
}
