package launch

import (
	"context"
	"sync"
)

// DefaultHistory is the number of requests a Recorder keeps.
const DefaultHistory = 32

// Recorder accepts every request without running anything. It backs the
// "none" launcher and tests, and keeps only the most recent requests.
type Recorder struct {
	mu       sync.Mutex
	limit    int
	requests []Request
}

func NewRecorder() *Recorder {
	return NewRecorderWithLimit(DefaultHistory)
}

// NewRecorderWithLimit returns a recorder holding at most limit requests.
func NewRecorderWithLimit(limit int) *Recorder {
	if limit <= 0 {
		limit = DefaultHistory
	}
	return &Recorder{limit: limit}
}

func (*Recorder) Name() string { return KindNone }

func (r *Recorder) Launch(_ context.Context, req Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	limit := r.limit
	if limit <= 0 {
		limit = DefaultHistory
	}
	if over := len(r.requests) - limit + 1; over > 0 {
		n := copy(r.requests, r.requests[over:])
		r.requests = r.requests[:n]
	}
	r.requests = append(r.requests, req)
	return nil
}

// Requests returns the retained requests in arrival order.
func (r *Recorder) Requests() []Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Request, len(r.requests))
	copy(out, r.requests)
	return out
}
