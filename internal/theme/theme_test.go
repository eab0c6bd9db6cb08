package theme

import "testing"

func TestSquareColorAlternates(t *testing.T) {
	th := Classic()
	if th.SquareColor(0, 0) != th.LightSquare {
		t.Error("(0,0) should be light")
	}
	if th.SquareColor(1, 0) != th.DarkSquare || th.SquareColor(0, 1) != th.DarkSquare {
		t.Error("neighbours of (0,0) should be dark")
	}
	if th.SquareColor(7, 7) != th.LightSquare {
		t.Error("(7,7) should be light")
	}
}

func TestCellFillOverrides(t *testing.T) {
	th := Original()
	if th.CellFill(1, 0, true, true) != th.SelectedSquare {
		t.Error("selection should win over destination")
	}
	if th.CellFill(1, 0, false, true) != th.DestSquare {
		t.Error("destination should override the base color")
	}
	if th.CellFill(1, 0, false, false) != th.DarkSquare {
		t.Error("plain cell should use the base color")
	}
}

func TestByName(t *testing.T) {
	if ByName("original").Name != "original" {
		t.Error("ByName(original) returned the wrong theme")
	}
	if ByName("missing").Name != "classic" {
		t.Error("unknown names should fall back to classic")
	}
}
