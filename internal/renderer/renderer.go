// Package renderer draws the hex editor frame: header, address/hex/ASCII
// grid, and status line. All drawing goes through a backend so the full
// frame can be asserted in tests.
package renderer

import (
	"fmt"

	"github.com/dshills/hexstorm/internal/engine/grid"
	"github.com/dshills/hexstorm/internal/renderer/backend"
)

// headerRows is the number of fixed rows above the data grid: title,
// file info, separator, key help, separator, column header, separator.
const headerRows = 7

// statusRows is the number of fixed rows below the data grid.
const statusRows = 1

// Frame is everything the renderer needs to draw one frame.
type Frame struct {
	Data       []byte
	ViewOffset int
	Cursor     grid.Cursor
	Path       string
	Modified   bool
	ReadOnly   bool
	Status     Status
}

// Renderer draws frames onto a backend.
type Renderer struct {
	layout  grid.Layout
	backend backend.Backend
	width   int
	height  int
}

// New creates a renderer for the given backend, sized from the backend.
func New(b backend.Backend, l grid.Layout) *Renderer {
	w, h := b.Size()
	return &Renderer{
		layout:  l,
		backend: b,
		width:   w,
		height:  h,
	}
}

// Resize records new terminal dimensions.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// VisibleRows returns how many data rows fit in the current height.
// Never less than one so the coordinate model always has a valid range.
func (r *Renderer) VisibleRows() int {
	rows := r.height - headerRows - statusRows
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Render draws a complete frame and makes it visible.
func (r *Renderer) Render(f Frame) {
	r.backend.Clear()

	r.drawHeader(f)
	if len(f.Data) == 0 {
		r.drawText(0, headerRows, "No data to display. Press 'o' to open a file.", backend.StyleDefault)
	} else {
		r.drawGrid(f)
	}
	r.drawStatus(f.Status.Line(f))

	r.backend.Show()
}

// RenderPrompt redraws only the status line as a modal input prompt.
func (r *Renderer) RenderPrompt(prompt, input string) {
	r.clearRow(r.height - 1)
	r.drawText(0, r.height-1, prompt+input+"_", backend.StyleHeader)
	r.backend.Show()
}

func (r *Renderer) drawHeader(f Frame) {
	r.drawText(0, 0, "=== Hexstorm ===", backend.StyleHeader)

	info := "No file open"
	if f.Path != "" {
		info = fmt.Sprintf("File: %s (%d bytes)", f.Path, len(f.Data))
		if f.Modified {
			info += " [modified]"
		}
		if f.ReadOnly {
			info += " [read-only]"
		}
	}
	r.drawText(0, 1, info, backend.StyleDefault)

	r.drawSeparator(2)
	r.drawText(0, 3, "arrows: move  pgup/pgdn: scroll  enter: edit  o: open  s: save  x: transform  q: quit", backend.StyleDefault)
	r.drawSeparator(4)
	r.drawColumnHeader()
	r.drawSeparator(6)
}

func (r *Renderer) drawColumnHeader() {
	r.drawText(0, 5, "Offset", backend.StyleHeader)
	for i := 0; i < r.layout.RowWidth; i++ {
		x := r.layout.CellForByte(i)
		r.drawText(x, 5, fmt.Sprintf("%02X", i), backend.StyleHeader)
	}
	r.drawText(r.asciiStart(), 5, "ASCII", backend.StyleHeader)
}

func (r *Renderer) drawGrid(f Frame) {
	rows := r.VisibleRows()

	for row := 0; row < rows; row++ {
		rowStart := f.ViewOffset + row*r.layout.RowWidth
		if rowStart >= len(f.Data) {
			break
		}
		r.drawRow(f, row, rowStart)
	}
}

// drawRow draws one data row: address gutter, hex cells with the cursor
// byte in reverse video, and the ASCII column.
func (r *Renderer) drawRow(f Frame, row, rowStart int) {
	screenY := headerRows + row

	r.drawText(0, screenY, fmt.Sprintf("%08X", rowStart), backend.StyleDefault)

	rowEnd := rowStart + r.layout.RowWidth
	if rowEnd > len(f.Data) {
		rowEnd = len(f.Data)
	}

	for offset := rowStart; offset < rowEnd; offset++ {
		idx := offset - rowStart
		cellX := r.layout.CellForByte(idx)

		style := backend.StyleDefault
		if f.Cursor.X == cellX && f.Cursor.Y == row {
			style = backend.StyleCursor
		}

		r.drawText(cellX, screenY, fmt.Sprintf("%02X", f.Data[offset]), style)
	}

	r.drawText(r.asciiStart()-2, screenY, "|", backend.StyleDefault)
	for offset := rowStart; offset < rowEnd; offset++ {
		r.backend.SetCell(r.asciiStart()+(offset-rowStart), screenY, printable(f.Data[offset]), backend.StyleDefault)
	}
}

func (r *Renderer) drawStatus(line string) {
	r.clearRow(r.height - 1)
	r.drawText(0, r.height-1, line, backend.StyleHeader)
}

// asciiStart returns the screen column where the ASCII block begins.
func (r *Renderer) asciiStart() int {
	return r.layout.AddressColumnWidth + r.layout.HexRegionWidth() + 2
}

func (r *Renderer) drawText(x, y int, s string, style backend.Style) {
	for i, ch := range s {
		r.backend.SetCell(x+i, y, ch, style)
	}
}

func (r *Renderer) drawSeparator(y int) {
	for x := 0; x < r.width; x++ {
		r.backend.SetCell(x, y, '-', backend.StyleDefault)
	}
}

func (r *Renderer) clearRow(y int) {
	for x := 0; x < r.width; x++ {
		r.backend.SetCell(x, y, ' ', backend.StyleDefault)
	}
}

// printable maps a byte to its ASCII-column rune, using '.' for
// non-printable values.
func printable(b byte) rune {
	if b >= 0x20 && b <= 0x7E {
		return rune(b)
	}
	return '.'
}
