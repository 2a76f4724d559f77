package grid

import "testing"

func TestCursorMove(t *testing.T) {
	l := DefaultLayout()
	const rows = 24

	tests := []struct {
		name   string
		start  Cursor
		dx, dy int
		want   Cursor
	}{
		{"move right one byte", Cursor{10, 0}, 3, 0, Cursor{13, 0}},
		{"move down", Cursor{10, 0}, 0, 1, Cursor{10, 1}},
		{"clamp left", Cursor{0, 0}, -3, 0, Cursor{0, 0}},
		{"clamp top", Cursor{10, 0}, 0, -1, Cursor{10, 0}},
		{"clamp right on last byte", Cursor{55, 5}, 3, 0, Cursor{55, 5}},
		{"clamp bottom", Cursor{10, 23}, 0, 1, Cursor{10, 23}},
		{"gutter move stays in gutter", Cursor{3, 0}, 3, 0, Cursor{6, 0}},
		{"gutter exit snaps to first digit", Cursor{9, 0}, 3, 0, Cursor{10, 0}},
		{"huge positive delta clamps", Cursor{0, 0}, 1 << 20, 1 << 20, Cursor{55, 23}},
		{"huge negative delta clamps", Cursor{55, 23}, -(1 << 20), -(1 << 20), Cursor{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.start
			c.Move(tt.dx, tt.dy, l, rows)
			if c != tt.want {
				t.Errorf("Move(%d, %d) from %+v = %+v, want %+v", tt.dx, tt.dy, tt.start, c, tt.want)
			}
		})
	}
}

func TestCursorClampAfterShrink(t *testing.T) {
	l := DefaultLayout()

	c := Cursor{X: 40, Y: 20}
	c.Clamp(l, 10)

	if c.Y != 9 {
		t.Errorf("expected Y clamped to 9, got %d", c.Y)
	}
	if c.X != 40 {
		t.Errorf("expected X unchanged at 40, got %d", c.X)
	}
}

func TestCursorClampZeroRows(t *testing.T) {
	l := DefaultLayout()

	c := Cursor{X: 10, Y: 5}
	c.Clamp(l, 0)

	if c.Y != 0 {
		t.Errorf("expected Y clamped to 0 with no rows, got %d", c.Y)
	}
}
