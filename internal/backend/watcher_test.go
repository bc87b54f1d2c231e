package backend

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const oneEntry = `
entries:
  - id: snake
    command: [snake]
`

const twoEntries = `
entries:
  - id: snake
    command: [snake]
  - id: pong
    command: [pong]
`

func next(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case evt, ok := <-w.Events():
		if !ok {
			t.Fatalf("events channel closed")
		}
		return evt
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for catalog event")
	}
	return Event{}
}

func TestWatcherEmitsInitialAndChangedCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(oneEntry), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w := NewWatcher(context.Background(), path, 10*time.Millisecond)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	evt := next(t, w)
	if evt.Err != nil || evt.Catalog.Len() != 1 {
		t.Fatalf("unexpected initial event %+v", evt)
	}

	later := time.Now().Add(time.Second)
	if err := os.WriteFile(path, []byte(twoEntries), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	evt = next(t, w)
	if evt.Err != nil || evt.Catalog.Len() != 2 {
		t.Fatalf("unexpected reload event %+v", evt)
	}
}

func TestWatcherSkipsUnchangedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(oneEntry), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w := &Watcher{path: path}
	if _, changed := w.check(true); !changed {
		t.Fatalf("expected first check to emit")
	}
	if _, changed := w.check(false); changed {
		t.Fatalf("expected unchanged file to be skipped")
	}
}

func TestWatcherReportsInvalidCatalogOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("entries: [{name: nameless}]"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w := &Watcher{path: path}
	evt, changed := w.check(true)
	if !changed || evt.Err == nil {
		t.Fatalf("expected error event, got %+v", evt)
	}
	for i := 0; i < 3; i++ {
		if _, changed := w.check(false); changed {
			t.Fatalf("expected unchanged invalid catalog to stay quiet on poll %d", i)
		}
	}

	later := time.Now().Add(time.Second)
	if err := os.WriteFile(path, []byte(oneEntry), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	evt, changed = w.check(false)
	if !changed || evt.Err != nil || evt.Catalog.Len() != 1 {
		t.Fatalf("expected fixed catalog to load, got %+v", evt)
	}
}

func TestWatcherEmitsOneErrorForUnchangedInvalidCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("entries: [{name: nameless}]"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w := NewWatcher(context.Background(), path, 10*time.Millisecond)
	if evt := next(t, w); evt.Err == nil {
		t.Fatalf("expected initial error event, got %+v", evt)
	}

	time.Sleep(200 * time.Millisecond)
	w.Stop()
	w.Wait()
	extra := 0
	for range w.Events() {
		extra++
	}
	if extra != 0 {
		t.Fatalf("expected one error event for an unchanged file, got %d more", extra)
	}
}

func TestWatcherReloadsAfterMissingFileReturns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	w := &Watcher{path: path}
	if evt, changed := w.check(true); !changed || evt.Err == nil {
		t.Fatalf("expected missing file error")
	}
	if err := os.WriteFile(path, []byte(oneEntry), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	evt, changed := w.check(false)
	if !changed || evt.Err != nil || evt.Catalog.Len() != 1 {
		t.Fatalf("expected catalog once the file appears, got %+v", evt)
	}
}

func TestWatcherMissingFileReportedOnce(t *testing.T) {
	w := &Watcher{path: filepath.Join(t.TempDir(), "missing.yaml")}
	if evt, changed := w.check(true); !changed || evt.Err == nil {
		t.Fatalf("expected missing file error")
	}
	if _, changed := w.check(false); changed {
		t.Fatalf("expected repeated missing file to stay quiet")
	}
}

func TestWatcherStopClosesEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := NewWatcher(ctx, filepath.Join(t.TempDir(), "missing.yaml"), time.Hour)
	cancel()
	w.Wait()
	for range w.Events() {
	}
}
