package selection

import (
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/hailam/chessview/internal/coords"
	"github.com/hailam/chessview/internal/logx"
	"github.com/hailam/chessview/internal/rules"
	"github.com/notnil/chess"
)

// Result reports the effect of one click.
type Result struct {
	Outcome Outcome
	Square  chess.Square // clicked square, chess.NoSquare when ignored
	Move    rules.Move   // applied move when Outcome is Moved, else rules.NoMove
	Err     error        // engine rejected a listed move
}

func result(o Outcome, sq chess.Square) Result {
	return Result{Outcome: o, Square: sq, Move: rules.NoMove}
}

// Controller owns the selection session for one board view.
// It is not safe for concurrent use; the host delivers clicks one at a time.
type Controller struct {
	engine rules.Engine
	mapper coords.Mapper
	state  State
	log    logx.Logger
}

// NewController creates a controller in the Idle state.
func NewController(engine rules.Engine, mapper coords.Mapper, log logx.Logger) *Controller {
	if log == nil {
		log = logx.Nop()
	}
	return &Controller{
		engine: engine,
		mapper: mapper,
		state:  Idle{},
		log:    log.With("session", petname.Generate(2, "-")),
	}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Selected returns the selected square, if any.
func (c *Controller) Selected() (chess.Square, bool) {
	if s, ok := c.state.(PieceSelected); ok {
		return s.Square, true
	}
	return chess.NoSquare, false
}

// Destinations returns a copy of the previewed destinations, empty when Idle.
func (c *Controller) Destinations() []chess.Square {
	if s, ok := c.state.(PieceSelected); ok {
		return append([]chess.Square(nil), s.Destinations...)
	}
	return nil
}

// IsDestination reports whether sq is a previewed destination.
func (c *Controller) IsDestination(sq chess.Square) bool {
	s, ok := c.state.(PieceSelected)
	return ok && s.Has(sq)
}

// Reset drops any selection.
func (c *Controller) Reset() {
	c.state = Idle{}
}

// ClickSquare clicks the pixel center of a square's cell.
func (c *Controller) ClickSquare(sq chess.Square) Result {
	x, y := c.mapper.CellToRect(coords.SquareToCell(sq)).Center()
	return c.Click(x, y)
}

// Click processes a click at pixel (x, y).
func (c *Controller) Click(x, y int) Result {
	cell := c.mapper.PixelToCell(x, y)
	if !cell.InBounds() {
		c.log.Debugf("click (%d,%d) off board", x, y)
		return result(Ignored, chess.NoSquare)
	}
	clicked, err := coords.CellToSquare(cell)
	if err != nil {
		return result(Ignored, chess.NoSquare)
	}

	sel, selected := c.state.(PieceSelected)

	// Re-clicking the selected square always deselects.
	if selected && clicked == sel.Square {
		c.state = Idle{}
		c.log.Debugf("deselect %s", clicked)
		return result(Deselected, clicked)
	}

	piece := c.engine.PieceAt(clicked)
	if piece != chess.NoPiece && piece.Color() == c.engine.Turn() {
		dests := rules.Destinations(c.engine.LegalMoves(), clicked)
		c.state = newPieceSelected(clicked, dests)
		c.log.Debugf("select %s with %d destinations", clicked, len(dests))
		return result(Selected, clicked)
	}

	if !selected {
		return result(Ignored, clicked)
	}

	c.state = Idle{}

	move, ok := rules.FindMove(c.engine.LegalMoves(), sel.Square, clicked)
	if !ok {
		c.log.Debugf("cancel %s: %s is not a destination", sel.Square, clicked)
		return result(Cancelled, clicked)
	}

	if err := c.engine.Apply(move); err != nil {
		c.log.Errorf("engine rejected listed move %s: %v", move, err)
		r := result(Cancelled, clicked)
		r.Err = err
		return r
	}
	c.log.Infof("move %s", move)
	return Result{Outcome: Moved, Square: clicked, Move: move}
}
