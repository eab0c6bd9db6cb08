// Package selection implements the click-driven piece selection state machine.
package selection

import (
	"sort"
	"strings"

	"github.com/notnil/chess"
)

// State is either Idle or PieceSelected.
type State interface {
	isState()
	String() string
}

// Idle means no piece is picked up.
type Idle struct{}

func (Idle) isState() {}

func (Idle) String() string { return "idle" }

// PieceSelected holds the picked-up square and the legal destinations
// computed from it when it was selected.
type PieceSelected struct {
	Square       chess.Square
	Destinations []chess.Square // sorted, no duplicates
}

func (PieceSelected) isState() {}

// Has reports whether sq is one of the destinations.
func (s PieceSelected) Has(sq chess.Square) bool {
	i := sort.Search(len(s.Destinations), func(i int) bool { return s.Destinations[i] >= sq })
	return i < len(s.Destinations) && s.Destinations[i] == sq
}

func (s PieceSelected) String() string {
	var b strings.Builder
	b.WriteString("selected ")
	b.WriteString(s.Square.String())
	if len(s.Destinations) > 0 {
		b.WriteString(" ->")
		for _, d := range s.Destinations {
			b.WriteByte(' ')
			b.WriteString(d.String())
		}
	}
	return b.String()
}

func newPieceSelected(sq chess.Square, dests []chess.Square) PieceSelected {
	sorted := make([]chess.Square, len(dests))
	copy(sorted, dests)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return PieceSelected{Square: sq, Destinations: sorted}
}

// Outcome classifies what a click did.
type Outcome int

const (
	Ignored Outcome = iota
	Selected
	Deselected
	Moved
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case Selected:
		return "selected"
	case Deselected:
		return "deselected"
	case Moved:
		return "moved"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}
