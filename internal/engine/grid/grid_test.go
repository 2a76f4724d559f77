package grid

import (
	"testing"
)

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()

	if l.RowWidth != 16 {
		t.Errorf("expected row width 16, got %d", l.RowWidth)
	}
	if l.ColumnsPerByte != 3 {
		t.Errorf("expected 3 columns per byte, got %d", l.ColumnsPerByte)
	}
	if l.AddressColumnWidth != 10 {
		t.Errorf("expected address column width 10, got %d", l.AddressColumnWidth)
	}
	if l.MaxCellX() != 57 {
		t.Errorf("expected max cell X 57, got %d", l.MaxCellX())
	}
}

func TestInHexRegion(t *testing.T) {
	l := DefaultLayout()

	tests := []struct {
		name  string
		cellX int
		want  bool
	}{
		{"address gutter start", 0, false},
		{"address gutter end", 9, false},
		{"first byte first digit", 10, true},
		{"first byte second digit", 11, true},
		{"first separator", 12, false},
		{"second byte first digit", 13, true},
		{"last byte first digit", 55, true},
		{"last byte second digit", 56, true},
		{"trailing separator", 57, false},
		{"past hex block", 58, false},
		{"ascii column", 61, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.InHexRegion(tt.cellX); got != tt.want {
				t.Errorf("InHexRegion(%d) = %v, want %v", tt.cellX, got, tt.want)
			}
		})
	}
}

func TestOffsetForCell(t *testing.T) {
	l := DefaultLayout()

	tests := []struct {
		name       string
		cellX      int
		cellY      int
		viewOffset int
		bufLen     int
		wantOffset int
		wantOK     bool
	}{
		{"first byte row 0", 10, 0, 0, 20, 0, true},
		{"first byte row 1", 10, 1, 0, 20, 16, true},
		{"second digit resolves same byte", 11, 0, 0, 20, 0, true},
		{"fourth byte row 1", 10 + 3*3, 1, 0, 20, 19, true},
		{"fifth byte row 1 past end", 10 + 3*4, 1, 0, 20, 0, false},
		{"separator cell", 12, 0, 0, 20, 0, false},
		{"address gutter", 4, 0, 0, 20, 0, false},
		{"ascii column", 58, 0, 0, 20, 0, false},
		{"scrolled view", 10, 0, 32, 64, 32, true},
		{"scrolled view second row", 13, 1, 32, 64, 49, true},
		{"empty buffer", 10, 0, 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.OffsetForCell(tt.cellX, tt.cellY, tt.viewOffset, tt.bufLen)
			if ok != tt.wantOK {
				t.Fatalf("OffsetForCell(%d, %d, %d, %d) ok = %v, want %v",
					tt.cellX, tt.cellY, tt.viewOffset, tt.bufLen, ok, tt.wantOK)
			}
			if ok && got != tt.wantOffset {
				t.Errorf("OffsetForCell(%d, %d, %d, %d) = %d, want %d",
					tt.cellX, tt.cellY, tt.viewOffset, tt.bufLen, got, tt.wantOffset)
			}
		})
	}
}

// TestOffsetCellRoundTrip verifies that every resolvable first-digit cell
// maps to an offset that maps back to the same cell.
func TestOffsetCellRoundTrip(t *testing.T) {
	l := DefaultLayout()
	const bufLen = 256
	const viewOffset = 32

	for cellY := 0; cellY < 8; cellY++ {
		for idx := 0; idx < l.RowWidth; idx++ {
			cellX := l.CellForByte(idx)

			offset, ok := l.OffsetForCell(cellX, cellY, viewOffset, bufLen)
			if !ok {
				t.Fatalf("cell (%d,%d) should resolve", cellX, cellY)
			}

			rel := offset - viewOffset
			gotY := rel / l.RowWidth
			gotX := l.CellForByte(rel % l.RowWidth)
			if gotX != cellX || gotY != cellY {
				t.Errorf("round trip for (%d,%d): got (%d,%d)", cellX, cellY, gotX, gotY)
			}
		}
	}
}

func TestOffsetForCellEmptyBuffer(t *testing.T) {
	l := DefaultLayout()

	for cellX := 0; cellX <= l.MaxCellX()+5; cellX++ {
		for cellY := 0; cellY < 4; cellY++ {
			if _, ok := l.OffsetForCell(cellX, cellY, 0, 0); ok {
				t.Errorf("cell (%d,%d) resolved against empty buffer", cellX, cellY)
			}
		}
	}
}

func TestCellForByte(t *testing.T) {
	l := DefaultLayout()

	if got := l.CellForByte(0); got != 10 {
		t.Errorf("expected cell 10 for byte 0, got %d", got)
	}
	if got := l.CellForByte(4); got != 22 {
		t.Errorf("expected cell 22 for byte 4, got %d", got)
	}
	if got := l.CellForByte(15); got != 55 {
		t.Errorf("expected cell 55 for byte 15, got %d", got)
	}
}
