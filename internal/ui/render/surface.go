package render

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
)

// Cell is one character position. Ch is zero for the trailing half of a wide
// rune. Marks holds the zero-width runes that complete Ch's grapheme cluster,
// such as combining accents.
type Cell struct {
	Ch    rune
	Marks string
	Fg    string
	Bg    string
	Bold  bool
}

func (c Cell) text() string {
	if c.Ch == 0 {
		return ""
	}
	return string(c.Ch) + c.Marks
}

// Blank is a transparent space.
var Blank = Cell{Ch: ' '}

func (c Cell) sameStyle(o Cell) bool {
	return c.Fg == o.Fg && c.Bg == o.Bg && c.Bold == o.Bold
}

// Surface is a fixed-size grid of cells.
type Surface struct {
	width  int
	height int
	cells  []Cell
}

// NewSurface returns a blank surface of the given size.
func NewSurface(width, height int) *Surface {
	s := &Surface{width: width, height: height, cells: make([]Cell, width*height)}
	s.Fill(0, 0, width, height, Blank)
	return s
}

// Size returns the surface dimensions.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// InBounds reports whether (x, y) lies on the surface.
func (s *Surface) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.width && y < s.height
}

// Get returns the cell at (x, y), or Blank outside the surface.
func (s *Surface) Get(x, y int) Cell {
	if !s.InBounds(x, y) {
		return Blank
	}
	return s.cells[y*s.width+x]
}

// Set writes a cell; coordinates outside the surface are ignored.
func (s *Surface) Set(x, y int, c Cell) {
	if !s.InBounds(x, y) {
		return
	}
	s.cells[y*s.width+x] = c
}

// Fill sets every cell of the rectangle, clipped to the surface.
func (s *Surface) Fill(x, y, w, h int, c Cell) {
	for row := max(y, 0); row < min(y+h, s.height); row++ {
		for col := max(x, 0); col < min(x+w, s.width); col++ {
			s.cells[row*s.width+col] = c
		}
	}
}

// WriteString draws text starting at (x, y) with the style of tmpl, one
// grapheme cluster per cell. Clusters that would cross the right edge are
// dropped. It returns the column after the last written cell.
func (s *Surface) WriteString(x, y int, text string, tmpl Cell) int {
	if y < 0 || y >= s.height {
		return x
	}
	state := -1
	for text != "" {
		var cluster string
		var w int
		cluster, text, w, state = uniseg.FirstGraphemeClusterInString(text, state)
		if w == 0 {
			s.attachMarks(x-1, y, cluster)
			continue
		}
		if x+w > s.width {
			break
		}
		if x >= 0 {
			r, size := utf8.DecodeRuneInString(cluster)
			c := tmpl
			c.Ch = r
			c.Marks = cluster[size:]
			s.Set(x, y, c)
			for i := 1; i < w; i++ {
				cont := tmpl
				cont.Ch = 0
				cont.Marks = ""
				s.Set(x+i, y, cont)
			}
		}
		x += w
	}
	return x
}

// attachMarks appends zero-width runes to the cell that starts at or before
// column x.
func (s *Surface) attachMarks(x, y int, marks string) {
	for ; x >= 0 && s.InBounds(x, y); x-- {
		c := &s.cells[y*s.width+x]
		if c.Ch != 0 {
			c.Marks += marks
			return
		}
	}
}

// PlainLines returns the surface text without styling, one string per row.
func (s *Surface) PlainLines() []string {
	lines := make([]string, s.height)
	var b strings.Builder
	for y := 0; y < s.height; y++ {
		b.Reset()
		for x := 0; x < s.width; x++ {
			b.WriteString(s.cells[y*s.width+x].text())
		}
		lines[y] = b.String()
	}
	return lines
}

// Render converts the surface into styled terminal output. Adjacent cells
// sharing a style are rendered as one run. A nil renderer uses the Lip Gloss
// default.
func (s *Surface) Render(r *lipgloss.Renderer) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	var out strings.Builder
	var run strings.Builder
	for y := 0; y < s.height; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		row := s.cells[y*s.width : (y+1)*s.width]
		start := 0
		for start < len(row) {
			end := start + 1
			for end < len(row) && row[end].sameStyle(row[start]) {
				end++
			}
			run.Reset()
			for _, c := range row[start:end] {
				run.WriteString(c.text())
			}
			out.WriteString(styleFor(r, row[start]).Render(run.String()))
			start = end
		}
	}
	return out.String()
}

func styleFor(r *lipgloss.Renderer, c Cell) lipgloss.Style {
	style := r.NewStyle()
	if c.Fg != "" {
		style = style.Foreground(lipgloss.Color(c.Fg))
	}
	if c.Bg != "" {
		style = style.Background(lipgloss.Color(c.Bg))
	}
	if c.Bold {
		style = style.Bold(true)
	}
	return style
}
