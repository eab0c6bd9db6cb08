package script

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hailam/chessview/internal/coords"
	"github.com/hailam/chessview/internal/rules"
	"github.com/hailam/chessview/internal/theme"
	"github.com/notnil/chess"
)

func run(t *testing.T, input string) (string, *Script) {
	t.Helper()
	var out bytes.Buffer
	s := New(rules.NewGame(), coords.NewMapper(32), theme.Classic(), &out, nil)
	if err := s.Run(strings.NewReader(input)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String(), s
}

func TestSelectAndMove(t *testing.T) {
	out, s := run(t, `
square e2
state
square e4
state
fen
`)
	want := []string{
		"selected e2",
		"selected e2 -> e3 e4",
		"moved e2e4",
		"idle",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(want) {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
	if _, ok := s.Controller().Selected(); ok {
		t.Error("selection left after move")
	}
}

func TestHistory(t *testing.T) {
	out, _ := run(t, `
history
square e2
square e4
square e7
square e5
square g1
square f3
history
reset
history
`)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := map[int]string{
		0:              "-",
		7:              "1. e4 e5 2. Nf3",
		len(lines) - 1: "-",
	}
	for i, w := range want {
		if i >= len(lines) || lines[i] != w {
			t.Errorf("line %d of:\n%s\nwant %q", i, out, w)
		}
	}
}

func TestClickPixels(t *testing.T) {
	// g1 is column 6, row 0: pixels [192,224) x [0,32).
	out, _ := run(t, "click 200 10\nclick 200 10\nclick 300 10\nclick x y\n")
	want := "selected g1\ndeselected g1\nignored\nbad coordinates: x y\n"
	if out != want {
		t.Errorf("output:\n%s\nwant:\n%s", out, want)
	}
}

func TestCancelAndUnknown(t *testing.T) {
	out, _ := run(t, "square g1\nsquare g4\nbogus\nsquare z9\n")
	for _, s := range []string{"selected g1", "cancelled g4", "unknown command: bogus", "invalid square: z9"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
}

func TestQuitStops(t *testing.T) {
	out, _ := run(t, "quit\nsquare e2\n")
	if out != "" {
		t.Errorf("commands after quit were run: %q", out)
	}
}

func TestResetAndPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.png")
	out, s := run(t, "square e2\nsquare e4\nreset\npng "+path+"\n")
	if !strings.Contains(out, "wrote "+path) {
		t.Errorf("png not written:\n%s", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Error(err)
	}
	if s.game.PieceAt(chess.E2) != chess.WhitePawn {
		t.Error("reset did not restore the starting position")
	}
}

func TestPrintBoard(t *testing.T) {
	out, _ := run(t, "square g1\nboard\n")
	lines := strings.Split(out, "\n")
	// lines[0] is the select report, lines[1] the file header, lines[2] row 0 (rank 1).
	if len(lines) < 5 {
		t.Fatalf("short output:\n%s", out)
	}
	if !strings.HasPrefix(lines[2], "1  R  N  B  Q  K  B [N] R ") {
		t.Errorf("rank 1 line = %q", lines[2])
	}
	if !strings.Contains(lines[4], " .*") {
		t.Errorf("rank 3 line should mark destinations: %q", lines[4])
	}
}

func TestParseSquare(t *testing.T) {
	tests := map[string]chess.Square{"a1": chess.A1, "H8": chess.H8, "e4": chess.E4}
	for in, want := range tests {
		got, err := parseSquare(in)
		if err != nil || got != want {
			t.Errorf("parseSquare(%q) = %v, %v", in, got, err)
		}
	}
	for _, in := range []string{"", "e", "i1", "a9", "e44"} {
		if _, err := parseSquare(in); err == nil {
			t.Errorf("parseSquare(%q) should fail", in)
		}
	}
}
