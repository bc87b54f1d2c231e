package events

import "github.com/atomicstack/arcade-menu/internal/logging"

type CatalogTracer struct{}

type AssetTracer struct{}

var (
	Catalog = CatalogTracer{}
	Asset   = AssetTracer{}
)

func (CatalogTracer) Loaded(path string, entries int) {
	logging.Trace("catalog.loaded", map[string]any{"path": path, "entries": entries})
}

func (CatalogTracer) Error(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("catalog.error", map[string]any{"path": path, "error": err.Error()})
}

func (AssetTracer) Built(name, source string, cols, rows int) {
	logging.Trace("asset.built", map[string]any{"asset": name, "source": source, "cols": cols, "rows": rows})
}

func (AssetTracer) Error(name, source string, err error) {
	if err == nil {
		return
	}
	logging.Trace("asset.error", map[string]any{"asset": name, "source": source, "error": err.Error()})
}
