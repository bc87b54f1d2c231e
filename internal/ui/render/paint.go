package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/arcade-menu/internal/assets"
	"github.com/atomicstack/arcade-menu/internal/catalog"
	"github.com/atomicstack/arcade-menu/internal/theme"
)

// EmptyMessage is shown when the viewer has no entries.
const EmptyMessage = "No entries available"

const ellipsis = "…"

// Painter draws menu frames onto a surface.
type Painter struct {
	styles *theme.Styles
}

// NewPainter returns a painter using styles, or the default theme when nil.
func NewPainter(styles *theme.Styles) *Painter {
	if styles == nil {
		styles = theme.Default()
	}
	return &Painter{styles: styles}
}

// Paint draws one frame. Only the menu rows are cleared; the header is drawn
// over its region when present and otherwise left as it is.
func (p *Painter) Paint(s *Surface, header *assets.Header, entries []catalog.Entry, selected int) {
	s.Fill(0, MenuTop, Width, MenuRows, Blank)
	if header != nil {
		drawHeader(s, header)
	}

	if len(entries) == 0 {
		writeCentered(s, EmptyRow, EmptyMessage, Cell{Fg: p.styles.Message})
		return
	}
	for _, row := range Window(len(entries), selected) {
		tmpl := Cell{Fg: p.styles.Tier(int(row.Tier)), Bold: row.Tier == TierSelected}
		writeCentered(s, row.Y, Label(entries[row.Index]), tmpl)
	}
}

// Label is the upper-cased name of an entry, truncated to the surface width.
func Label(e catalog.Entry) string {
	name := strings.ToUpper(e.Name())
	if ansi.StringWidth(name) > Width {
		name = truncate.StringWithTail(name, Width, ellipsis)
	}
	return name
}

func writeCentered(s *Surface, y int, text string, tmpl Cell) {
	x := (Width - ansi.StringWidth(text)) / 2
	s.WriteString(x, y, text, tmpl)
}

func drawHeader(s *Surface, h *assets.Header) {
	cols, rows := h.Size()
	for y := 0; y < min(rows, HeaderHeight); y++ {
		for x := 0; x < min(cols, HeaderWidth); x++ {
			b := h.At(x, y)
			if b.Empty() {
				continue
			}
			switch {
			case b.TopOpaque && b.BottomOpaque:
				s.Set(x, y, Cell{Ch: '▀', Fg: hex(b.Top), Bg: hex(b.Bottom)})
			case b.TopOpaque:
				s.Set(x, y, Cell{Ch: '▀', Fg: hex(b.Top)})
			case b.BottomOpaque:
				s.Set(x, y, Cell{Ch: '▄', Fg: hex(b.Bottom)})
			}
		}
	}
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
