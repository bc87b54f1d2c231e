package assets

import (
	"sync"

	"github.com/atomicstack/arcade-menu/internal/logging"
	"github.com/atomicstack/arcade-menu/internal/logging/events"
)

// Registry owns the process-wide static assets. The header is built on the
// first request and shared read-only by every session afterwards; a build
// failure is logged once and returned to every caller.
type Registry struct {
	header func() (*Header, error)
}

// NewRegistry creates a registry that loads the header from path (or the
// built-in logo) at cols x rows cells.
func NewRegistry(path string, cols, rows int) *Registry {
	return newRegistry(path, func() (*Header, error) {
		return Load(path, cols, rows)
	})
}

func newRegistry(source string, build func() (*Header, error)) *Registry {
	return &Registry{
		header: sync.OnceValues(func() (*Header, error) {
			h, err := build()
			if err != nil {
				logging.Error(err)
				events.Asset.Error("header", source, err)
				return nil, err
			}
			cols, rows := h.Size()
			events.Asset.Built("header", source, cols, rows)
			return h, nil
		}),
	}
}

// Header returns the shared header, building it on first use.
func (r *Registry) Header() (*Header, error) {
	return r.header()
}
