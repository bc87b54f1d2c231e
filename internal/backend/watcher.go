package backend

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/atomicstack/arcade-menu/internal/catalog"
)

// DefaultInterval is the catalog poll interval used when none is given.
const DefaultInterval = 2 * time.Second

// Event conveys a freshly loaded catalog or the error from loading it.
type Event struct {
	Path    string
	Catalog *catalog.Catalog
	Err     error
}

// Watcher polls the catalog file at a fixed interval and publishes an event
// whenever its modification time or size changes.
type Watcher struct {
	path     string
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup

	last    fingerprint
	seen    bool
	statErr string
}

type fingerprint struct {
	modTime time.Time
	size    int64
}

// NewWatcher creates a watcher for path. The first poll always emits so the
// consumer starts from the file's current contents.
func NewWatcher(parent context.Context, path string, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ctx, cancel := context.WithCancel(parent)
	w := &Watcher{
		path:     path,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}

	w.wg.Add(1)
	go w.poll()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of catalog events. It is closed after Stop.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current load
// completes; use Wait if a clean drain is required.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll() {
	defer w.wg.Done()

	emit := func(first bool) bool {
		evt, changed := w.check(first)
		if !changed {
			return true
		}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit(true) {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit(false) {
				return
			}
		}
	}
}

// check stats the file and loads it when it changed since the last poll. A
// failed load is reported once and retried only after the file changes; a
// repeated stat error stays quiet.
func (w *Watcher) check(first bool) (Event, bool) {
	info, err := os.Stat(w.path)
	if err != nil {
		if !first && err.Error() == w.statErr {
			return Event{}, false
		}
		w.statErr = err.Error()
		w.seen = false
		return Event{Path: w.path, Err: err}, true
	}
	w.statErr = ""
	fp := fingerprint{modTime: info.ModTime(), size: info.Size()}
	if !first && w.seen && fp == w.last {
		return Event{}, false
	}
	w.last = fp
	w.seen = true
	cat, err := catalog.Load(w.path)
	if err != nil {
		return Event{Path: w.path, Err: err}, true
	}
	return Event{Path: w.path, Catalog: cat}, true
}
