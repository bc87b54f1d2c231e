package state

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/atomicstack/arcade-menu/internal/catalog"
)

// ErrSessionFinished is returned when a second outcome is recorded.
var ErrSessionFinished = errors.New("session already finished")

// OutcomeKind describes how a session ended.
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeStart
	OutcomeTerminate
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeStart:
		return "start"
	case OutcomeTerminate:
		return "terminate"
	default:
		return "none"
	}
}

// Outcome is the request a session hands back to its owner.
type Outcome struct {
	Kind  OutcomeKind
	Entry catalog.Entry
}

// Session is the per-viewer context. It records the first start or terminate
// request made by the menu; the owner acts on it after the menu exits.
type Session struct {
	ID        string
	Viewer    string
	Remote    string
	StartedAt time.Time

	mu      sync.Mutex
	outcome Outcome
}

// NewSession creates a session for viewer with a fresh identifier.
func NewSession(viewer, remote string) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Viewer:    viewer,
		Remote:    remote,
		StartedAt: time.Now(),
	}
}

// Start records that entry should be started for the viewer.
func (s *Session) Start(entry catalog.Entry) error {
	return s.finish(Outcome{Kind: OutcomeStart, Entry: entry})
}

// Terminate records that the viewer's session should end.
func (s *Session) Terminate() error {
	return s.finish(Outcome{Kind: OutcomeTerminate})
}

func (s *Session) finish(o Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.outcome.Kind != OutcomeNone {
		return ErrSessionFinished
	}
	s.outcome = o
	return nil
}

// Outcome returns the recorded outcome.
func (s *Session) Outcome() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

// Elapsed reports how long the session has been open.
func (s *Session) Elapsed() time.Duration {
	return time.Since(s.StartedAt)
}

// SessionInfo is a snapshot of a live session.
type SessionInfo struct {
	ID        string
	Viewer    string
	Remote    string
	StartedAt time.Time
}

// SessionStore tracks the sessions currently served by the process.
type SessionStore interface {
	Add(*Session)
	Remove(id string)
	Entries() []SessionInfo
	Len() int
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionStore() SessionStore {
	return &sessionStore{sessions: make(map[string]*Session)}
}

func (s *sessionStore) Add(sess *Session) {
	if sess == nil {
		return
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
}

func (s *sessionStore) Remove(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Entries returns the live sessions ordered by start time.
func (s *sessionStore) Entries() []SessionInfo {
	s.mu.Lock()
	out := make([]SessionInfo, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, SessionInfo{
			ID:        sess.ID,
			Viewer:    sess.Viewer,
			Remote:    sess.Remote,
			StartedAt: sess.StartedAt,
		})
	}
	s.mu.Unlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartedAt.Before(out[j].StartedAt)
	})
	return out
}

func (s *sessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
