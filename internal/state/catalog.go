package state

import (
	"sync/atomic"

	"github.com/atomicstack/arcade-menu/internal/catalog"
)

// CatalogStore holds the catalog offered to new sessions. Running sessions
// keep the entries they were initialised with.
type CatalogStore interface {
	Catalog() *catalog.Catalog
	SetCatalog(*catalog.Catalog)
	Version() uint64
}

type catalogStore struct {
	current atomic.Pointer[catalog.Catalog]
	version atomic.Uint64
}

func NewCatalogStore(initial *catalog.Catalog) CatalogStore {
	s := &catalogStore{}
	if initial == nil {
		initial = catalog.Empty()
	}
	s.current.Store(initial)
	return s
}

func (s *catalogStore) Catalog() *catalog.Catalog {
	return s.current.Load()
}

func (s *catalogStore) SetCatalog(c *catalog.Catalog) {
	if c == nil {
		c = catalog.Empty()
	}
	s.current.Store(c)
	s.version.Add(1)
}

// Version counts catalog replacements.
func (s *catalogStore) Version() uint64 {
	return s.version.Load()
}
