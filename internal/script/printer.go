package script

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/hailam/chessview/internal/coords"
	"github.com/notnil/chess"
	"golang.org/x/term"
)

var pieceGlyphs = map[chess.Piece]string{
	chess.WhiteKing:   "K",
	chess.WhiteQueen:  "Q",
	chess.WhiteRook:   "R",
	chess.WhiteBishop: "B",
	chess.WhiteKnight: "N",
	chess.WhitePawn:   "P",
	chess.BlackKing:   "k",
	chess.BlackQueen:  "q",
	chess.BlackRook:   "r",
	chess.BlackBishop: "b",
	chess.BlackKnight: "n",
	chess.BlackPawn:   "p",
}

// Board is the read side of the rules engine.
type Board interface {
	PieceAt(sq chess.Square) chess.Piece
}

// Selection is the read side of the selection controller.
type Selection interface {
	Selected() (chess.Square, bool)
	IsDestination(sq chess.Square) bool
}

// Printer writes the board as text, colored when out is a terminal.
type Printer struct {
	out      io.Writer
	light    *color.Color
	dark     *color.Color
	selected *color.Color
	dest     *color.Color
}

// NewPrinter creates a printer. Color is disabled unless out is a terminal.
func NewPrinter(out io.Writer) *Printer {
	p := &Printer{
		out:      out,
		light:    color.New(color.BgWhite, color.FgBlack),
		dark:     color.New(color.BgBlue, color.FgHiWhite),
		selected: color.New(color.BgGreen, color.FgBlack),
		dest:     color.New(color.BgYellow, color.FgBlack),
	}
	if !isTerminal(out) {
		for _, c := range []*color.Color{p.light, p.dark, p.selected, p.dest} {
			c.DisableColor()
		}
	}
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Print writes one line per row in window order, row 0 (rank 1) first.
// Without color, the selected square is bracketed and destinations show '*'.
func (p *Printer) Print(b Board, sel Selection) {
	selected, hasSelection := sel.Selected()

	fmt.Fprintln(p.out, "   a  b  c  d  e  f  g  h")
	for row := uint(0); row < coords.BoardSize; row++ {
		fmt.Fprintf(p.out, "%d ", row+1)
		for col := uint(0); col < coords.BoardSize; col++ {
			sq, _ := coords.CellToSquare(coords.NewCell(col, row))

			glyph := "."
			if g, ok := pieceGlyphs[b.PieceAt(sq)]; ok {
				glyph = g
			}

			isSel := hasSelection && sq == selected
			isDest := sel.IsDestination(sq)

			cell := " " + glyph + " "
			switch {
			case isSel:
				cell = "[" + glyph + "]"
			case isDest:
				cell = " " + glyph + "*"
			}

			c := p.dark
			switch {
			case isSel:
				c = p.selected
			case isDest:
				c = p.dest
			case (col+row)%2 == 0:
				c = p.light
			}
			c.Fprint(p.out, cell)
		}
		fmt.Fprintln(p.out)
	}
}
