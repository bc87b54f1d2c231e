package dispatcher

import (
	"context"
	"fmt"

	"github.com/atomicstack/arcade-menu/internal/backend"
	"github.com/atomicstack/arcade-menu/internal/logging"
	"github.com/atomicstack/arcade-menu/internal/logging/events"
	"github.com/atomicstack/arcade-menu/internal/state"
)

type Result struct {
	CatalogUpdated bool
	Entries        int
}

// Dispatcher applies watcher events to the catalog store. A failed reload
// keeps the previous catalog in place.
type Dispatcher struct {
	catalogs state.CatalogStore
}

func New(c state.CatalogStore) *Dispatcher {
	return &Dispatcher{catalogs: c}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		logging.Error(fmt.Errorf("reload catalog %s: %w", evt.Path, evt.Err))
		events.Catalog.Error(evt.Path, evt.Err)
		return res
	}
	if evt.Catalog == nil {
		return res
	}
	d.catalogs.SetCatalog(evt.Catalog)
	res.CatalogUpdated = true
	res.Entries = evt.Catalog.Len()
	events.Catalog.Loaded(evt.Path, res.Entries)
	return res
}

// Run handles events until the channel closes or ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context, evts <-chan backend.Event) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-evts:
			if !ok {
				return nil
			}
			d.Handle(evt)
		}
	}
}
