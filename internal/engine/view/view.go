// Package view tracks the viewport: which slice of the buffer is on
// screen. The view offset moves in whole-row increments and is
// reclamped whenever the buffer length or the visible row count
// changes, so a stale bound can never expose bytes past the end.
package view

import "github.com/dshills/hexstorm/internal/engine/grid"

// Direction is a scroll direction.
type Direction int8

const (
	// Backward scrolls toward offset zero.
	Backward Direction = iota
	// Forward scrolls toward the end of the buffer.
	Forward
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case Backward:
		return "backward"
	case Forward:
		return "forward"
	default:
		return "unknown"
	}
}

// View holds the scroll state for one buffer.
type View struct {
	layout      grid.Layout
	offset      int
	visibleRows int
	bufLen      int
}

// New creates a view at offset zero.
func New(l grid.Layout, visibleRows int) *View {
	if visibleRows < 1 {
		visibleRows = 1
	}
	return &View{
		layout:      l,
		visibleRows: visibleRows,
	}
}

// Offset returns the byte offset of the first visible row.
func (v *View) Offset() int {
	return v.offset
}

// VisibleRows returns the number of data rows on screen.
func (v *View) VisibleRows() int {
	return v.visibleRows
}

// MaxOffset returns the largest valid view offset for the current
// buffer length.
func (v *View) MaxOffset() int {
	max := v.bufLen - v.visibleRows*v.layout.RowWidth
	if max < 0 {
		return 0
	}
	return max
}

// SetBufferLen records a new buffer length and reclamps the offset.
// Must be called on every load so resolution against a shorter file
// cannot use stale bounds.
func (v *View) SetBufferLen(n int) {
	v.bufLen = n
	v.clampOffset()
}

// Resize records a new visible row count and reclamps the offset.
func (v *View) Resize(visibleRows int) {
	if visibleRows < 1 {
		visibleRows = 1
	}
	v.visibleRows = visibleRows
	v.clampOffset()
}

// Reset scrolls back to offset zero. Called on load.
func (v *View) Reset() {
	v.offset = 0
}

// Scroll moves the view one row in the given direction, clamping to
// [0, MaxOffset]. Scrolling never moves the cursor cell; the cursor is
// viewport-relative, so the same cell refers to a new offset afterward.
func (v *View) Scroll(d Direction) {
	v.ScrollRows(d, 1)
}

// ScrollPage moves the view a full page of rows in the given direction.
func (v *View) ScrollPage(d Direction) {
	v.ScrollRows(d, v.visibleRows)
}

// ScrollRows moves the view by n rows in the given direction.
func (v *View) ScrollRows(d Direction, n int) {
	if n < 0 {
		n = 0
	}
	delta := n * v.layout.RowWidth

	switch d {
	case Backward:
		v.offset -= delta
	case Forward:
		v.offset += delta
	}
	v.clampOffset()
}

func (v *View) clampOffset() {
	if v.offset > v.MaxOffset() {
		v.offset = v.MaxOffset()
	}
	if v.offset < 0 {
		v.offset = 0
	}
}
