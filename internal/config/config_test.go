package config

import (
	"context"
	"testing"
	"time"

	"github.com/hailam/chessview/internal/storage"
	"github.com/urfave/cli/v3"
)

func TestCorrect(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		want Config
	}{
		{
			name: "valid values kept",
			in:   Config{CellSize: 48, Theme: ThemeOriginal, LogLevel: "debug"},
			want: Config{CellSize: 48, Theme: ThemeOriginal, LogLevel: "debug"},
		},
		{
			name: "cell size too small",
			in:   Config{CellSize: 4, Theme: ThemeClassic, LogLevel: "info"},
			want: Config{CellSize: Default().CellSize, Theme: ThemeClassic, LogLevel: "info"},
		},
		{
			name: "unknown theme and level",
			in:   Config{CellSize: 64, Theme: "neon", LogLevel: "trace"},
			want: Config{CellSize: 64, Theme: ThemeClassic, LogLevel: "info"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in
			got.Correct()
			if got != tt.want {
				t.Errorf("Correct() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestApplyPreferences(t *testing.T) {
	c := Default()
	c.ApplyPreferences(&storage.Preferences{})
	if c != Default() {
		t.Errorf("empty preferences changed config: %+v", c)
	}

	c.ApplyPreferences(&storage.Preferences{
		Theme:        ThemeOriginal,
		CellSize:     40,
		SoundEnabled: false,
		LastLaunch:   time.Now(),
	})
	if c.Theme != ThemeOriginal || c.CellSize != 40 || c.SoundEnabled {
		t.Errorf("preferences not applied: %+v", c)
	}

	p := c.Preferences()
	if p.Theme != ThemeOriginal || p.CellSize != 40 {
		t.Errorf("Preferences() = %+v", p)
	}
}

func TestApplyFlags(t *testing.T) {
	c := Default()
	c.CellSize = 40 // from stored preferences

	var ran bool
	cmd := &cli.Command{
		Name:  "chessview",
		Flags: Flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c.ApplyFlags(cmd)
			ran = true
			return nil
		},
	}

	args := []string{"chessview", "--theme", "original", "--console", "--fen", "8/8/8/8/8/8/8/K6k w - - 0 1"}
	if err := cmd.Run(context.Background(), args); err != nil {
		t.Fatal(err)
	}
	if !ran {
		t.Fatal("action did not run")
	}

	if c.CellSize != 40 {
		t.Errorf("unset flag overrode stored cell size: %d", c.CellSize)
	}
	if c.Theme != ThemeOriginal || !c.Console {
		t.Errorf("flags not applied: %+v", c)
	}
	if c.FEN == "" {
		t.Error("FEN flag not applied")
	}
}
