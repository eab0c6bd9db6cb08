// Package snapshot renders the board and selection to a PNG without a window.
package snapshot

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"
	"github.com/hailam/chessview/internal/coords"
	"github.com/hailam/chessview/internal/theme"
	"github.com/notnil/chess"
)

// Board is the read side of the rules engine.
type Board interface {
	PieceAt(sq chess.Square) chess.Piece
}

// Selection is the read side of the selection controller.
type Selection interface {
	Selected() (chess.Square, bool)
	IsDestination(sq chess.Square) bool
}

var pieceLetters = map[chess.PieceType]string{
	chess.King:   "K",
	chess.Queen:  "Q",
	chess.Rook:   "R",
	chess.Bishop: "B",
	chess.Knight: "N",
	chess.Pawn:   "P",
}

// Render draws the board in the same layout as the window: row 0 at the top.
func Render(b Board, sel Selection, m coords.Mapper, t *theme.Theme) image.Image {
	w, h := m.ScreenSize()
	dc := gg.NewContext(w, h)
	dc.SetColor(t.Background)
	dc.Clear()

	selected, hasSelection := sel.Selected()

	for col := uint(0); col < coords.BoardSize; col++ {
		for row := uint(0); row < coords.BoardSize; row++ {
			cell := coords.NewCell(col, row)
			sq, _ := coords.CellToSquare(cell)
			r := m.CellToRect(cell)

			isSel := hasSelection && sq == selected
			dc.SetColor(t.CellFill(col, row, isSel, sel.IsDestination(sq)))
			dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height))
			dc.Fill()

			drawPiece(dc, b.PieceAt(sq), r, t)
		}
	}

	return dc.Image()
}

func drawPiece(dc *gg.Context, p chess.Piece, r coords.Rect, t *theme.Theme) {
	if p == chess.NoPiece {
		return
	}
	fill, ink := t.WhitePiece, t.BlackPiece
	if p.Color() == chess.Black {
		fill, ink = t.BlackPiece, t.WhitePiece
	}

	cx, cy := r.Center()
	radius := float64(r.Width) * 0.35
	dc.SetColor(fill)
	dc.DrawCircle(float64(cx), float64(cy), radius)
	dc.FillPreserve()
	dc.SetColor(ink)
	dc.SetLineWidth(1.5)
	dc.Stroke()
	dc.DrawStringAnchored(pieceLetters[p.Type()], float64(cx), float64(cy), 0.5, 0.35)
}

// WritePNG renders the board and encodes it as PNG to w.
func WritePNG(w io.Writer, b Board, sel Selection, m coords.Mapper, t *theme.Theme) error {
	img := Render(b, sel, m, t)
	dc := gg.NewContextForImage(img)
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// SavePNG renders the board to a PNG file.
func SavePNG(path string, b Board, sel Selection, m coords.Mapper, t *theme.Theme) error {
	img := Render(b, sel, m, t)
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return nil
}
