package app

import (
	"context"
	"os"
	"testing"

	"github.com/hailam/chessview/internal/config"
	"github.com/hailam/chessview/internal/storage"
	"github.com/notnil/chess"
	"github.com/urfave/cli/v3"
)

// runSetup runs the root command with args and returns the config Setup built.
func runSetup(t *testing.T, args ...string) config.Config {
	t.Helper()
	cfg, _ := runSetupEnv(t, args...)
	return cfg
}

// runSetupEnv is runSetup that also reports whether Setup saw a first launch.
func runSetupEnv(t *testing.T, args ...string) (config.Config, bool) {
	t.Helper()
	var got config.Config
	var first bool
	action := func(ctx context.Context, cmd *cli.Command) error {
		env, err := Setup(cmd)
		if err != nil {
			return err
		}
		defer env.Close()
		got = env.Config
		first = env.FirstLaunch
		env.SavePreferences()
		return nil
	}
	if err := Command(action, action).Run(context.Background(), append([]string{"chessview"}, args...)); err != nil {
		t.Fatalf("run %v: %v", args, err)
	}
	return got, first
}

func TestSetupPersistsPreferences(t *testing.T) {
	dir := t.TempDir()

	cfg := runSetup(t, "--data-dir", dir, "--cell-size", "48", "--theme", "original")
	if cfg.CellSize != 48 || cfg.Theme != config.ThemeOriginal {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if _, err := os.Stat(storage.LogPath(dir)); err != nil {
		t.Errorf("log file not created: %v", err)
	}

	// A second run without flags picks the stored values up.
	cfg = runSetup(t, "--data-dir", dir)
	if cfg.CellSize != 48 || cfg.Theme != config.ThemeOriginal {
		t.Errorf("stored preferences not applied: %+v", cfg)
	}

	// Flags still win over stored values.
	cfg = runSetup(t, "--data-dir", dir, "--cell-size", "64")
	if cfg.CellSize != 64 {
		t.Errorf("flag did not override stored cell size: %d", cfg.CellSize)
	}
}

func TestSetupFirstLaunch(t *testing.T) {
	dir := t.TempDir()
	if _, first := runSetupEnv(t, "--data-dir", dir); !first {
		t.Error("first run against an empty data dir not reported as first launch")
	}
	if _, first := runSetupEnv(t, "--data-dir", dir); first {
		t.Error("second run still reported as first launch")
	}
}

func TestSetupCorrectsValues(t *testing.T) {
	cfg := runSetup(t, "--data-dir", t.TempDir(), "--cell-size", "5000", "--level", "loud")
	if cfg.CellSize != config.Default().CellSize {
		t.Errorf("cell size not corrected: %d", cfg.CellSize)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level not corrected: %s", cfg.LogLevel)
	}
}

func TestNewEngine(t *testing.T) {
	env := &Env{Config: config.Default()}
	g, err := env.NewEngine()
	if err != nil {
		t.Fatal(err)
	}
	if g.PieceAt(chess.E1) != chess.WhiteKing {
		t.Error("default engine is not at the starting position")
	}

	env.Config.FEN = "4k3/8/8/8/8/8/8/4K3 b - - 0 1"
	g, err = env.NewEngine()
	if err != nil {
		t.Fatal(err)
	}
	if g.Turn() != chess.Black {
		t.Error("FEN side to move not honored")
	}

	env.Config.FEN = "garbage"
	if _, err := env.NewEngine(); err == nil {
		t.Error("expected error for bad FEN")
	}
}
