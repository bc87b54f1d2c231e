package state

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/atomicstack/arcade-menu/internal/catalog"
	"github.com/atomicstack/arcade-menu/internal/testutil"
)

func TestSessionRecordsFirstOutcome(t *testing.T) {
	sess := NewSession("alice", "127.0.0.1:5000")
	if sess.ID == "" {
		t.Fatalf("expected session id")
	}
	entry := testutil.Entries("Snake")[0]
	if err := sess.Start(entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sess.Terminate(); !errors.Is(err, ErrSessionFinished) {
		t.Fatalf("expected ErrSessionFinished, got %v", err)
	}
	out := sess.Outcome()
	if out.Kind != OutcomeStart || out.Entry.ID != "snake" {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if out.Kind.String() != "start" {
		t.Fatalf("unexpected kind string %q", out.Kind)
	}
}

func TestSessionIDsAreUnique(t *testing.T) {
	a := NewSession("bob", "")
	b := NewSession("bob", "")
	if a.ID == b.ID {
		t.Fatalf("expected distinct ids, got %q twice", a.ID)
	}
}

func TestSessionStoreOrdersByStart(t *testing.T) {
	store := NewSessionStore()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	late := &Session{ID: "late", Viewer: "bob", StartedAt: base.Add(time.Minute)}
	early := &Session{ID: "early", Viewer: "alice", StartedAt: base}
	store.Add(late)
	store.Add(early)
	store.Add(nil)

	entries := store.Entries()
	if len(entries) != 2 || entries[0].ID != "early" || entries[1].ID != "late" {
		t.Fatalf("unexpected entries %+v", entries)
	}
	store.Remove("early")
	if store.Len() != 1 {
		t.Fatalf("expected one session, got %d", store.Len())
	}
}

func TestSessionStoreConcurrentUse(t *testing.T) {
	store := NewSessionStore()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess := NewSession("viewer", "")
			store.Add(sess)
			_ = store.Entries()
			store.Remove(sess.ID)
		}()
	}
	wg.Wait()
	if store.Len() != 0 {
		t.Fatalf("expected store to drain, got %d", store.Len())
	}
}

func TestCatalogStoreSwap(t *testing.T) {
	store := NewCatalogStore(nil)
	if store.Catalog().Len() != 0 {
		t.Fatalf("expected empty initial catalog")
	}
	next := catalog.New(testutil.Entries("Snake", "Pong"), nil)
	store.SetCatalog(next)
	if store.Catalog() != next {
		t.Fatalf("expected swapped catalog")
	}
	if store.Version() != 1 {
		t.Fatalf("expected version 1, got %d", store.Version())
	}
}
