// Package script drives a selection session from a line-oriented command stream.
package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hailam/chessview/internal/coords"
	"github.com/hailam/chessview/internal/logx"
	"github.com/hailam/chessview/internal/rules"
	"github.com/hailam/chessview/internal/selection"
	"github.com/hailam/chessview/internal/snapshot"
	"github.com/hailam/chessview/internal/theme"
	"github.com/notnil/chess"
)

// Script runs click commands against a game.
type Script struct {
	game       *rules.Game
	mapper     coords.Mapper
	controller *selection.Controller
	theme      *theme.Theme
	printer    *Printer
	out        io.Writer
	log        logx.Logger
}

// New creates a script host.
func New(game *rules.Game, mapper coords.Mapper, th *theme.Theme, out io.Writer, log logx.Logger) *Script {
	if log == nil {
		log = logx.Nop()
	}
	return &Script{
		game:       game,
		mapper:     mapper,
		controller: selection.NewController(game, mapper, log),
		theme:      th,
		printer:    NewPrinter(out),
		out:        out,
		log:        log,
	}
}

// Controller returns the selection controller driven by the script.
func (s *Script) Controller() *selection.Controller {
	return s.controller
}

// Run reads commands from in until EOF or "quit".
func (s *Script) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "click":
			s.handleClick(args)
		case "square":
			s.handleSquare(args)
		case "state":
			fmt.Fprintln(s.out, s.controller.State())
		case "board":
			s.printer.Print(s.game, s.controller)
		case "fen":
			fmt.Fprintln(s.out, s.game.FEN())
		case "status":
			fmt.Fprintln(s.out, s.game.Status())
		case "history":
			fmt.Fprintln(s.out, formatHistory(s.game.History()))
		case "png":
			s.handlePNG(args)
		case "reset":
			s.game.Reset()
			s.controller.Reset()
			fmt.Fprintln(s.out, "ok")
		case "quit":
			return nil
		default:
			fmt.Fprintf(s.out, "unknown command: %s\n", cmd)
		}
	}

	return scanner.Err()
}

func (s *Script) handleClick(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(s.out, "usage: click X Y")
		return
	}
	x, errX := strconv.Atoi(args[0])
	y, errY := strconv.Atoi(args[1])
	if errX != nil || errY != nil {
		fmt.Fprintf(s.out, "bad coordinates: %s %s\n", args[0], args[1])
		return
	}
	s.report(s.controller.Click(x, y))
}

func (s *Script) handleSquare(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "usage: square e2")
		return
	}
	sq, err := parseSquare(args[0])
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	s.report(s.controller.ClickSquare(sq))
}

func (s *Script) handlePNG(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "usage: png PATH")
		return
	}
	if err := snapshot.SavePNG(args[0], s.game, s.controller, s.mapper, s.theme); err != nil {
		s.log.Errorf("snapshot: %v", err)
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "wrote %s\n", args[0])
}

func (s *Script) report(r selection.Result) {
	switch r.Outcome {
	case selection.Moved:
		fmt.Fprintf(s.out, "%s %s\n", r.Outcome, r.Move)
	case selection.Ignored:
		fmt.Fprintln(s.out, r.Outcome)
	default:
		fmt.Fprintf(s.out, "%s %s\n", r.Outcome, r.Square)
	}
	if r.Err != nil {
		fmt.Fprintf(s.out, "error: %v\n", r.Err)
	}
}

// formatHistory numbers moves in pairs: "1. e4 e5 2. Nf3". "-" before any move.
func formatHistory(moves []string) string {
	if len(moves) == 0 {
		return "-"
	}
	var b strings.Builder
	for i, m := range moves {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i%2 == 0 {
			fmt.Fprintf(&b, "%d. ", i/2+1)
		}
		b.WriteString(m)
	}
	return b.String()
}

// parseSquare parses algebraic notation (e.g., "e4") into a square.
func parseSquare(str string) (chess.Square, error) {
	str = strings.ToLower(str)
	if len(str) != 2 {
		return chess.NoSquare, fmt.Errorf("invalid square: %s", str)
	}

	file := uint(str[0] - 'a')
	rank := uint(str[1] - '1')
	if file >= coords.BoardSize || rank >= coords.BoardSize {
		return chess.NoSquare, fmt.Errorf("invalid square: %s", str)
	}

	return coords.CellToSquare(coords.NewCell(file, rank))
}
