// Package rules defines the rules-engine contract the viewer consumes and
// adapts github.com/notnil/chess to it.
package rules

import (
	"errors"
	"fmt"

	"github.com/notnil/chess"
)

// ErrIllegalMove is returned by Apply for a move the engine did not list.
var ErrIllegalMove = errors.New("illegal move")

// Move is a (from, to) pair as listed by the engine. Promo is the promotion
// piece type, or chess.NoPieceType.
type Move struct {
	From  chess.Square
	To    chess.Square
	Promo chess.PieceType
}

// NoMove is the zero move marker.
var NoMove = Move{From: chess.NoSquare, To: chess.NoSquare, Promo: chess.NoPieceType}

// IsPromotion returns true if the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promo != chess.NoPieceType
}

// String returns the move in coordinate notation (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	if m.From == chess.NoSquare {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += promoChar(m.Promo)
	}
	return s
}

func promoChar(pt chess.PieceType) string {
	switch pt {
	case chess.Queen:
		return "q"
	case chess.Rook:
		return "r"
	case chess.Bishop:
		return "b"
	case chess.Knight:
		return "n"
	}
	return ""
}

// Engine is everything the selection controller needs from a rules engine.
// Implementations own the position; callers never cache board state.
type Engine interface {
	// LegalMoves lists every legal move for the side to move.
	LegalMoves() []Move
	// PieceAt returns the piece on a square, or chess.NoPiece.
	PieceAt(sq chess.Square) chess.Piece
	// Turn returns the side to move.
	Turn() chess.Color
	// Apply plays a move taken from LegalMoves.
	Apply(m Move) error
}

// ColorName returns "White", "Black" or "None".
func ColorName(c chess.Color) string {
	switch c {
	case chess.White:
		return "White"
	case chess.Black:
		return "Black"
	default:
		return "None"
	}
}

// FromChess converts a notnil move into a Move.
func FromChess(m *chess.Move) Move {
	return Move{From: m.S1(), To: m.S2(), Promo: m.Promo()}
}

// FindMove returns the legal move from src to dst. When several promotion
// moves share the pair, the queen promotion is returned.
func FindMove(moves []Move, src, dst chess.Square) (Move, bool) {
	found := NoMove
	for _, m := range moves {
		if m.From != src || m.To != dst {
			continue
		}
		if !m.IsPromotion() || m.Promo == chess.Queen {
			return m, true
		}
		if found == NoMove {
			found = m
		}
	}
	if found == NoMove {
		return NoMove, false
	}
	return found, true
}

// Destinations returns the target squares of all moves starting on src,
// deduplicated, in the engine's listing order.
func Destinations(moves []Move, src chess.Square) []chess.Square {
	var out []chess.Square
	seen := make(map[chess.Square]bool)
	for _, m := range moves {
		if m.From != src || seen[m.To] {
			continue
		}
		seen[m.To] = true
		out = append(out, m.To)
	}
	return out
}

func illegal(m Move) error {
	return fmt.Errorf("%w: %s", ErrIllegalMove, m)
}
