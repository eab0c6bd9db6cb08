package rules

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// Game adapts a notnil chess game to Engine and adds the read-only queries
// the render host needs.
type Game struct {
	game       *chess.Game
	startFEN   string // empty for the standard starting position
	startCheck bool   // side to move is in check at the start position
}

// NewGame creates a game at the standard starting position.
func NewGame() *Game {
	return &Game{game: chess.NewGame()}
}

// NewGameFromFEN creates a game from a FEN string.
func NewGameFromFEN(fen string) (*Game, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("parse fen %q: %w", fen, err)
	}
	g := &Game{game: chess.NewGame(opt), startFEN: fen}
	g.startCheck = g.sideToMoveAttacked()
	return g, nil
}

// LegalMoves lists every legal move for the side to move.
func (g *Game) LegalMoves() []Move {
	valid := g.game.ValidMoves()
	moves := make([]Move, 0, len(valid))
	for _, m := range valid {
		moves = append(moves, FromChess(m))
	}
	return moves
}

// PieceAt returns the piece on a square, or chess.NoPiece.
func (g *Game) PieceAt(sq chess.Square) chess.Piece {
	return g.game.Position().Board().Piece(sq)
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Color {
	return g.game.Position().Turn()
}

// Apply plays the engine's own move matching m.
func (g *Game) Apply(m Move) error {
	for _, cm := range g.game.ValidMoves() {
		if FromChess(cm) != m {
			continue
		}
		if err := g.game.Move(cm); err != nil {
			return fmt.Errorf("apply %s: %w", m, err)
		}
		return nil
	}
	return illegal(m)
}

// Reset returns the game to its starting position.
func (g *Game) Reset() {
	g.startCheck = false
	if g.startFEN == "" {
		g.game = chess.NewGame()
		return
	}
	opt, err := chess.FEN(g.startFEN)
	if err != nil {
		// startFEN was validated in NewGameFromFEN.
		g.game = chess.NewGame()
		return
	}
	g.game = chess.NewGame(opt)
	g.startCheck = g.sideToMoveAttacked()
}

// FEN returns the current position in FEN.
func (g *Game) FEN() string {
	return g.game.FEN()
}

// Outcome returns the engine's game outcome.
func (g *Game) Outcome() chess.Outcome {
	return g.game.Outcome()
}

// Over reports whether the game has ended.
func (g *Game) Over() bool {
	return g.game.Outcome() != chess.NoOutcome
}

// LastMove returns the most recent move, if any.
func (g *Game) LastMove() (Move, bool) {
	moves := g.game.Moves()
	if len(moves) == 0 {
		return NoMove, false
	}
	return FromChess(moves[len(moves)-1]), true
}

// InCheck reports whether the side to move is in check. Before any move it
// uses the check computed for the start position.
func (g *Game) InCheck() bool {
	moves := g.game.Moves()
	if len(moves) == 0 {
		return g.startCheck
	}
	return moves[len(moves)-1].HasTag(chess.Check)
}

// sideToMoveAttacked replays the position with the other side to move and
// looks for a move onto the king.
func (g *Game) sideToMoveAttacked() bool {
	king := g.KingSquare(g.Turn())
	if king == chess.NoSquare {
		return false
	}
	fields := strings.Fields(g.game.FEN())
	if len(fields) < 4 {
		return false
	}
	if fields[1] == "w" {
		fields[1] = "b"
	} else {
		fields[1] = "w"
	}
	fields[3] = "-"
	opt, err := chess.FEN(strings.Join(fields, " "))
	if err != nil {
		return false
	}
	for _, m := range chess.NewGame(opt).ValidMoves() {
		if m.S2() == king {
			return true
		}
	}
	return false
}

// WasCapture reports whether the last move captured a piece.
func (g *Game) WasCapture() bool {
	moves := g.game.Moves()
	if len(moves) == 0 {
		return false
	}
	last := moves[len(moves)-1]
	return last.HasTag(chess.Capture) || last.HasTag(chess.EnPassant)
}

// KingSquare returns the square of the given side's king.
func (g *Game) KingSquare(c chess.Color) chess.Square {
	for sq, p := range g.game.Position().Board().SquareMap() {
		if p.Type() == chess.King && p.Color() == c {
			return sq
		}
	}
	return chess.NoSquare
}

// History returns the moves played so far in algebraic notation.
func (g *Game) History() []string {
	moves := g.game.Moves()
	positions := g.game.Positions()
	out := make([]string, 0, len(moves))
	for i, m := range moves {
		out = append(out, chess.AlgebraicNotation{}.Encode(positions[i], m))
	}
	return out
}

// Status returns a one-line description of the game state.
func (g *Game) Status() string {
	switch g.game.Outcome() {
	case chess.WhiteWon:
		return "White wins by " + methodName(g.game.Method())
	case chess.BlackWon:
		return "Black wins by " + methodName(g.game.Method())
	case chess.Draw:
		return "Draw by " + methodName(g.game.Method())
	}
	s := ColorName(g.Turn()) + " to move"
	if g.InCheck() {
		s += " (check)"
	}
	return s
}

func methodName(m chess.Method) string {
	switch m {
	case chess.Checkmate:
		return "checkmate"
	case chess.Resignation:
		return "resignation"
	case chess.DrawOffer:
		return "agreement"
	case chess.Stalemate:
		return "stalemate"
	case chess.ThreefoldRepetition:
		return "threefold repetition"
	case chess.FivefoldRepetition:
		return "fivefold repetition"
	case chess.FiftyMoveRule:
		return "50-move rule"
	case chess.SeventyFiveMoveRule:
		return "75-move rule"
	case chess.InsufficientMaterial:
		return "insufficient material"
	}
	return "unknown"
}

var _ Engine = (*Game)(nil)
