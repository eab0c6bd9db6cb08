// Package theme holds the board color schemes.
package theme

import "image/color"

// Theme defines the color scheme for the board.
type Theme struct {
	Name           string
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	DestSquare     color.RGBA
	DestMarker     color.RGBA
	LastMoveColor  color.RGBA
	CheckColor     color.RGBA
	Background     color.RGBA
	TextColor      color.RGBA
	WhitePiece     color.RGBA // snapshot discs
	BlackPiece     color.RGBA
}

// Classic returns the default tan and brown theme.
func Classic() *Theme {
	return &Theme{
		Name:           "classic",
		LightSquare:    color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:     color.RGBA{181, 136, 99, 255},  // Brown
		SelectedSquare: color.RGBA{247, 247, 105, 255},
		DestSquare:     color.RGBA{170, 200, 130, 255},
		DestMarker:     color.RGBA{100, 120, 80, 200},
		LastMoveColor:  color.RGBA{180, 190, 100, 90},
		CheckColor:     color.RGBA{255, 100, 100, 180},
		Background:     color.RGBA{40, 44, 52, 255},
		TextColor:      color.RGBA{220, 220, 220, 255},
		WhitePiece:     color.RGBA{250, 250, 250, 255},
		BlackPiece:     color.RGBA{30, 30, 30, 255},
	}
}

// Original returns the blue and white scheme with a green selection.
func Original() *Theme {
	return &Theme{
		Name:           "original",
		LightSquare:    color.RGBA{255, 255, 255, 255},
		DarkSquare:     color.RGBA{0, 0, 255, 255},
		SelectedSquare: color.RGBA{0, 255, 0, 255},
		DestSquare:     color.RGBA{255, 200, 0, 255},
		DestMarker:     color.RGBA{200, 60, 0, 200},
		LastMoveColor:  color.RGBA{120, 200, 255, 90},
		CheckColor:     color.RGBA{255, 0, 0, 160},
		Background:     color.RGBA{0, 0, 0, 255},
		TextColor:      color.RGBA{230, 230, 230, 255},
		WhitePiece:     color.RGBA{250, 250, 250, 255},
		BlackPiece:     color.RGBA{20, 20, 20, 255},
	}
}

// ByName returns the named theme, or Classic for unknown names.
func ByName(name string) *Theme {
	if name == "original" {
		return Original()
	}
	return Classic()
}

// SquareColor returns the base color of the cell at (column, row).
func (t *Theme) SquareColor(column, row uint) color.RGBA {
	if (column+row)%2 == 0 {
		return t.LightSquare
	}
	return t.DarkSquare
}

// CellFill returns the fill of a cell, with the selected square and preview
// destinations overriding the base color.
func (t *Theme) CellFill(column, row uint, selected, destination bool) color.RGBA {
	switch {
	case selected:
		return t.SelectedSquare
	case destination:
		return t.DestSquare
	}
	return t.SquareColor(column, row)
}
