// Package coords converts between pixel space, grid cells and rules-engine squares.
package coords

import (
	"errors"
	"fmt"

	"github.com/notnil/chess"
)

// BoardSize is the number of cells along each edge of the board.
const BoardSize = 8

// DefaultCellSize is the default edge length of one cell in pixels.
const DefaultCellSize = 80

// ErrOutOfBounds is returned when a cell lies outside the board.
var ErrOutOfBounds = errors.New("cell out of bounds")

// Cell is a zero-based (column, row) index pair in layout order.
type Cell struct {
	Column uint
	Row    uint
}

// NewCell creates a cell from a column and row.
func NewCell(column, row uint) Cell {
	return Cell{Column: column, Row: row}
}

// InBounds returns true if both components are on the board.
func (c Cell) InBounds() bool {
	return c.Column < BoardSize && c.Row < BoardSize
}

// String returns the cell as "(column,row)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Column, c.Row)
}

// Rect is a rectangle in pixel space.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Center returns the pixel at the middle of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Mapper maps between pixels and cells for a fixed cell size.
type Mapper struct {
	CellSize int
}

// NewMapper creates a mapper. Non-positive sizes fall back to DefaultCellSize.
func NewMapper(cellSize int) Mapper {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return Mapper{CellSize: cellSize}
}

// size returns the cell size, DefaultCellSize for a zero Mapper.
func (m Mapper) size() int {
	if m.CellSize <= 0 {
		return DefaultCellSize
	}
	return m.CellSize
}

// PixelToCell integer-divides a pixel position by the cell size.
// Positions off the board are not clamped: the result has out-of-range
// components and callers must check InBounds before using it.
func (m Mapper) PixelToCell(x, y int) Cell {
	size := m.size()
	return Cell{Column: divide(x, size), Row: divide(y, size)}
}

// divide maps negative coordinates past the board so they never alias cell 0.
func divide(v, size int) uint {
	if v < 0 {
		return BoardSize
	}
	return uint(v / size)
}

// CellToRect returns the pixel rectangle covered by a cell.
func (m Mapper) CellToRect(c Cell) Rect {
	size := m.size()
	return Rect{
		X:      int(c.Column) * size,
		Y:      int(c.Row) * size,
		Width:  size,
		Height: size,
	}
}

// ScreenSize returns the pixel size of the whole board.
func (m Mapper) ScreenSize() (int, int) {
	return BoardSize * m.size(), BoardSize * m.size()
}

// CellToSquare converts a cell to a rules-engine square.
// Column 0 is file A and row 0 is rank 1, regardless of draw order.
func CellToSquare(c Cell) (chess.Square, error) {
	if !c.InBounds() {
		return chess.NoSquare, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	return chess.Square(c.Row*BoardSize + c.Column), nil
}

// SquareToCell converts a rules-engine square back to a cell.
func SquareToCell(sq chess.Square) Cell {
	return Cell{Column: uint(sq.File()), Row: uint(sq.Rank())}
}
