package render

// Surface geometry, in character cells.
const (
	Width  = 25
	Height = 15

	HeaderWidth  = 25
	HeaderHeight = 10

	// MenuTop is the first cleared menu row. It overlaps the last header row.
	MenuTop  = 9
	MenuRows = 5

	SelectedRow = MenuTop + 2
	EmptyRow    = MenuTop + 3

	// Reach is the number of neighbours drawn on each side of the selection.
	Reach = 2
)

// Tier is the emphasis of a visible row. Larger tiers are dimmer.
type Tier int

const (
	TierSelected Tier = iota
	TierNear
	TierFar
)

// Row places one entry on the surface.
type Row struct {
	Y     int
	Index int
	Tier  Tier
}

// Window lays out the visible rows for a list of count entries with the given
// selection, top to bottom. Rows beyond either end of the list are omitted
// rather than padded, so the selected entry always sits on SelectedRow. An
// out of range selection is clamped.
func Window(count, selected int) []Row {
	if count <= 0 {
		return nil
	}
	selected = clamp(selected, 0, count-1)
	before := min(selected, Reach)
	after := min(count-1-selected, Reach)

	rows := make([]Row, 0, before+1+after)
	for d := before; d > 0; d-- {
		rows = append(rows, Row{Y: SelectedRow - d, Index: selected - d, Tier: Tier(d)})
	}
	rows = append(rows, Row{Y: SelectedRow, Index: selected, Tier: TierSelected})
	for d := 1; d <= after; d++ {
		rows = append(rows, Row{Y: SelectedRow + d, Index: selected + d, Tier: Tier(d)})
	}
	return rows
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
