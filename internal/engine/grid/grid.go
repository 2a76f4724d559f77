// Package grid implements the display-grid coordinate model: the mapping
// between 2-D character cells and linear byte offsets, and the clamping
// rules that keep the cursor inside the grid.
package grid

// Layout holds the fixed column geometry of the hex display.
// All cell/offset arithmetic goes through one Layout value so the
// forward and inverse mappings cannot drift apart.
type Layout struct {
	// RowWidth is the number of bytes shown per display row.
	RowWidth int

	// ColumnsPerByte is the number of character cells each byte occupies
	// in the hex block: two digits plus one separator.
	ColumnsPerByte int

	// AddressColumnWidth is the width of the address gutter in cells.
	AddressColumnWidth int
}

// DefaultLayout returns the standard 16-bytes-per-row layout.
func DefaultLayout() Layout {
	return Layout{
		RowWidth:           16,
		ColumnsPerByte:     3,
		AddressColumnWidth: 10,
	}
}

// HexRegionWidth returns the width of the hex block in cells.
func (l Layout) HexRegionWidth() int {
	return l.RowWidth * l.ColumnsPerByte
}

// MaxCellX returns the largest valid cursor X coordinate.
func (l Layout) MaxCellX() int {
	return l.AddressColumnWidth + l.HexRegionWidth() - 1
}

// InHexRegion reports whether cellX lies on a byte cell: inside the hex
// block and not on a separator cell. Separator cells carry no byte.
func (l Layout) InHexRegion(cellX int) bool {
	if cellX < l.AddressColumnWidth || cellX >= l.AddressColumnWidth+l.HexRegionWidth() {
		return false
	}
	return (cellX-l.AddressColumnWidth)%l.ColumnsPerByte != l.ColumnsPerByte-1
}

// ByteIndexInRow returns the row-relative byte index for a cell in the
// hex region. The result is meaningless if InHexRegion(cellX) is false.
func (l Layout) ByteIndexInRow(cellX int) int {
	return (cellX - l.AddressColumnWidth) / l.ColumnsPerByte
}

// OffsetForCell resolves a cursor cell to an absolute byte offset.
// It returns ok=false when the cell is outside the hex region (address
// gutter, separator, ASCII column) or when the derived offset falls past
// the end of the buffer, including cells on a partial last row.
func (l Layout) OffsetForCell(cellX, cellY, viewOffset, bufLen int) (int, bool) {
	if !l.InHexRegion(cellX) {
		return 0, false
	}

	offset := viewOffset + cellY*l.RowWidth + l.ByteIndexInRow(cellX)
	if offset >= bufLen {
		return 0, false
	}

	return offset, true
}

// CellForByte returns the X coordinate of the first digit cell for a
// row-relative byte index. It is the inverse of ByteIndexInRow and is
// used by the renderer to test whether a displayed byte sits under the
// cursor.
func (l Layout) CellForByte(byteIndexInRow int) int {
	return l.AddressColumnWidth + byteIndexInRow*l.ColumnsPerByte
}
