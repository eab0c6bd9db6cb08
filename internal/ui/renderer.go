package ui

import (
	"image/color"

	"github.com/hailam/chessview/internal/coords"
	"github.com/hailam/chessview/internal/theme"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/notnil/chess"
)

// StatusHeight is the height of the status line under the board.
const StatusHeight = 28

// BoardView is what the renderer reads from the rules engine.
type BoardView interface {
	PieceAt(sq chess.Square) chess.Piece
}

// SelectionView is what the renderer reads from the selection controller.
type SelectionView interface {
	Selected() (chess.Square, bool)
	IsDestination(sq chess.Square) bool
}

// Renderer handles all drawing operations. It never mutates what it draws.
type Renderer struct {
	sprites *SpriteManager
	fonts   *Fonts // nil disables text
	theme   *theme.Theme
	mapper  coords.Mapper
}

// NewRenderer creates a new renderer.
func NewRenderer(mapper coords.Mapper, th *theme.Theme, sprites *SpriteManager, fonts *Fonts) *Renderer {
	return &Renderer{
		sprites: sprites,
		fonts:   fonts,
		theme:   th,
		mapper:  mapper,
	}
}

// DrawBoard fills every cell, overriding the selected square and the
// previewed destinations with highlight colors.
func (r *Renderer) DrawBoard(screen *ebiten.Image, sel SelectionView) {
	selected, hasSelection := sel.Selected()

	for col := uint(0); col < coords.BoardSize; col++ {
		for row := uint(0); row < coords.BoardSize; row++ {
			cell := coords.NewCell(col, row)
			sq, _ := coords.CellToSquare(cell)
			c := r.theme.CellFill(col, row, hasSelection && sq == selected, sel.IsDestination(sq))
			r.fillCell(screen, cell, c)
		}
	}
}

// DrawLastMove tints the from and to squares of the previous move.
func (r *Renderer) DrawLastMove(screen *ebiten.Image, from, to chess.Square) {
	r.fillCell(screen, coords.SquareToCell(from), r.theme.LastMoveColor)
	r.fillCell(screen, coords.SquareToCell(to), r.theme.LastMoveColor)
}

// DrawCheck highlights the king's square if in check.
func (r *Renderer) DrawCheck(screen *ebiten.Image, kingSq chess.Square) {
	if kingSq == chess.NoSquare {
		return
	}
	r.fillCell(screen, coords.SquareToCell(kingSq), r.theme.CheckColor)
}

// DrawDestinationMarkers draws a dot on every previewed destination so
// targets stay visible under a piece sprite.
func (r *Renderer) DrawDestinationMarkers(screen *ebiten.Image, dests []chess.Square) {
	for _, sq := range dests {
		rect := r.mapper.CellToRect(coords.SquareToCell(sq))
		cx, cy := rect.Center()
		radius := float32(rect.Width) * 0.12
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), radius, r.theme.DestMarker, true)
	}
}

// DrawPieces draws every piece at its cell's rectangle.
func (r *Renderer) DrawPieces(screen *ebiten.Image, b BoardView) {
	for col := uint(0); col < coords.BoardSize; col++ {
		for row := uint(0); row < coords.BoardSize; row++ {
			cell := coords.NewCell(col, row)
			sq, _ := coords.CellToSquare(cell)
			p := b.PieceAt(sq)
			if p == chess.NoPiece {
				continue
			}
			rect := r.mapper.CellToRect(cell)
			r.sprites.DrawPieceAt(screen, p, rect.X, rect.Y)
		}
	}
}

// DrawLabels writes file letters along row 0 and rank numbers along column 0.
func (r *Renderer) DrawLabels(screen *ebiten.Image) {
	if r.fonts == nil {
		return
	}
	for i := uint(0); i < coords.BoardSize; i++ {
		rect := r.mapper.CellToRect(coords.NewCell(i, 0))
		r.drawText(screen, string(rune('a'+i)), r.fonts.Label, rect.X+rect.Width-9, rect.Y+2, r.labelColor(i, 0))

		rect = r.mapper.CellToRect(coords.NewCell(0, i))
		r.drawText(screen, string(rune('1'+i)), r.fonts.Label, rect.X+2, rect.Y+2, r.labelColor(0, i))
	}
}

// labelColor picks the opposite square color so labels stay readable.
func (r *Renderer) labelColor(col, row uint) color.RGBA {
	if r.theme.SquareColor(col, row) == r.theme.LightSquare {
		return r.theme.DarkSquare
	}
	return r.theme.LightSquare
}

// DrawStatus writes a line of text in the strip under the board.
func (r *Renderer) DrawStatus(screen *ebiten.Image, status string) {
	w, h := r.mapper.ScreenSize()
	vector.DrawFilledRect(screen, 0, float32(h), float32(w), StatusHeight, r.theme.Background, false)
	if r.fonts == nil {
		return
	}
	r.drawText(screen, status, r.fonts.Status, 8, h+(StatusHeight-int(statusFontSize))/2-1, r.theme.TextColor)
}

func (r *Renderer) drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y int, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func (r *Renderer) fillCell(screen *ebiten.Image, cell coords.Cell, c color.RGBA) {
	rect := r.mapper.CellToRect(cell)
	vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height), c, false)
}

// Theme returns the current theme.
func (r *Renderer) Theme() *theme.Theme {
	return r.theme
}
