package grid

// Cursor is a position in the display grid. It tracks cells, not byte
// offsets; the offset under the cursor is derived on demand from the
// cell, the view offset and the Layout.
type Cursor struct {
	X int
	Y int
}

// Move applies signed cell deltas and clamps each axis independently to
// the grid: X to [0, layout.MaxCellX()], Y to [0, maxRows-1]. Movement
// clamps at the edges, it never wraps.
//
// Inside the hex block the cursor rides the first digit of a byte, so
// after clamping, X snaps back to the byte's first-digit cell. Cells in
// the address gutter are reachable but resolve to no offset.
func (c *Cursor) Move(dx, dy int, l Layout, maxRows int) {
	x := clamp(c.X+dx, 0, l.MaxCellX())
	if x >= l.AddressColumnWidth {
		rel := x - l.AddressColumnWidth
		x = l.AddressColumnWidth + rel - rel%l.ColumnsPerByte
	}
	c.X = x

	maxY := maxRows - 1
	if maxY < 0 {
		maxY = 0
	}
	c.Y = clamp(c.Y+dy, 0, maxY)
}

// Clamp re-applies the grid bounds without moving. Called when the
// bounds themselves change, such as after a terminal resize.
func (c *Cursor) Clamp(l Layout, maxRows int) {
	c.Move(0, 0, l, maxRows)
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
