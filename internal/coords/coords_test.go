package coords

import (
	"errors"
	"testing"

	"github.com/notnil/chess"
)

func TestRoundTrip(t *testing.T) {
	for col := uint(0); col < BoardSize; col++ {
		for row := uint(0); row < BoardSize; row++ {
			c := NewCell(col, row)
			sq, err := CellToSquare(c)
			if err != nil {
				t.Fatalf("CellToSquare(%s) failed: %v", c, err)
			}
			if got := SquareToCell(sq); got != c {
				t.Errorf("round trip of %s gave %s (via %s)", c, got, sq)
			}
		}
	}
}

func TestOrientation(t *testing.T) {
	tests := []struct {
		cell Cell
		want chess.Square
	}{
		{NewCell(0, 0), chess.A1},
		{NewCell(7, 0), chess.H1},
		{NewCell(0, 7), chess.A8},
		{NewCell(4, 1), chess.E2},
		{NewCell(6, 0), chess.G1},
		{NewCell(7, 7), chess.H8},
	}

	for _, tt := range tests {
		got, err := CellToSquare(tt.cell)
		if err != nil {
			t.Fatalf("CellToSquare(%s): %v", tt.cell, err)
		}
		if got != tt.want {
			t.Errorf("CellToSquare(%s) = %s, want %s", tt.cell, got, tt.want)
		}
	}
}

func TestOutOfBounds(t *testing.T) {
	for _, c := range []Cell{NewCell(8, 0), NewCell(9, 3), NewCell(100, 7), NewCell(0, 8)} {
		if _, err := CellToSquare(c); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("CellToSquare(%s) error = %v, want ErrOutOfBounds", c, err)
		}
	}
}

func TestPixelToCell(t *testing.T) {
	m := NewMapper(32)

	tests := []struct {
		name     string
		x, y     int
		want     Cell
		inBounds bool
	}{
		{"origin", 0, 0, NewCell(0, 0), true},
		{"inside first cell", 31, 31, NewCell(0, 0), true},
		{"cell edge", 32, 64, NewCell(1, 2), true},
		{"last cell", 255, 255, NewCell(7, 7), true},
		{"right of board", 256, 10, NewCell(8, 0), false},
		{"below board", 10, 300, NewCell(0, 9), false},
		{"negative", -5, 10, NewCell(BoardSize, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.PixelToCell(tt.x, tt.y)
			if got != tt.want {
				t.Errorf("PixelToCell(%d, %d) = %s, want %s", tt.x, tt.y, got, tt.want)
			}
			if got.InBounds() != tt.inBounds {
				t.Errorf("InBounds() = %v, want %v", got.InBounds(), tt.inBounds)
			}
		})
	}
}

func TestCellToRect(t *testing.T) {
	m := NewMapper(40)
	r := m.CellToRect(NewCell(3, 5))
	want := Rect{X: 120, Y: 200, Width: 40, Height: 40}
	if r != want {
		t.Errorf("CellToRect = %+v, want %+v", r, want)
	}

	cx, cy := r.Center()
	if got := m.PixelToCell(cx, cy); got != NewCell(3, 5) {
		t.Errorf("center of rect maps to %s", got)
	}
}

func TestNewMapperDefault(t *testing.T) {
	if m := NewMapper(0); m.CellSize != DefaultCellSize {
		t.Errorf("NewMapper(0).CellSize = %d, want %d", m.CellSize, DefaultCellSize)
	}
	w, h := NewMapper(32).ScreenSize()
	if w != 256 || h != 256 {
		t.Errorf("ScreenSize = %dx%d, want 256x256", w, h)
	}
}

func TestZeroMapper(t *testing.T) {
	var m Mapper
	if got := m.PixelToCell(DefaultCellSize+1, 0); got != NewCell(1, 0) {
		t.Errorf("PixelToCell on zero Mapper = %s, want (1,0)", got)
	}
	if r := m.CellToRect(NewCell(1, 1)); r.Width != DefaultCellSize || r.X != DefaultCellSize {
		t.Errorf("CellToRect on zero Mapper = %+v", r)
	}
	if w, _ := m.ScreenSize(); w != BoardSize*DefaultCellSize {
		t.Errorf("ScreenSize on zero Mapper = %d", w)
	}
}
