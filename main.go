// ChessView - an interactive chessboard built with Ebitengine
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hailam/chessview/internal/app"
	"github.com/hailam/chessview/internal/coords"
	"github.com/hailam/chessview/internal/script"
	"github.com/hailam/chessview/internal/selection"
	"github.com/hailam/chessview/internal/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/urfave/cli/v3"
)

func runGUI(ctx context.Context, cmd *cli.Command) error {
	env, err := app.Setup(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	engine, err := env.NewEngine()
	if err != nil {
		return err
	}

	game := ui.NewGame(env.Config, engine, env.Log)

	w, h := game.ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("ChessView")

	if env.FirstLaunch {
		env.Log.Infof("click a piece to select it, Esc to deselect, N for a new game")
	}
	env.Log.Infof("starting window %dx%d", w, h)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	env.SavePreferences()
	return nil
}

func runPrint(ctx context.Context, cmd *cli.Command) error {
	env, err := app.Setup(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	engine, err := env.NewEngine()
	if err != nil {
		return err
	}

	c := selection.NewController(engine, coords.NewMapper(env.Config.CellSize), env.Log)
	script.NewPrinter(os.Stdout).Print(engine, c)
	fmt.Println(engine.Status())
	return nil
}

func main() {
	if err := app.Run(runGUI, runPrint); err != nil {
		fmt.Fprintf(os.Stderr, "chessview: %v\n", err)
		os.Exit(1)
	}
}
