// Command chessview-script drives a board session from commands on stdin:
//
//	click X Y     click at pixel (X, Y)
//	square e2     click the center of a square
//	state         print the selection
//	board         print the board
//	fen | status  print the position
//	history       print the moves played
//	png PATH      write a PNG snapshot
//	reset | quit
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hailam/chessview/internal/app"
	"github.com/hailam/chessview/internal/config"
	"github.com/hailam/chessview/internal/coords"
	"github.com/hailam/chessview/internal/script"
	"github.com/hailam/chessview/internal/theme"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "chessview-script",
		Usage: "run click scripts against a board session",
		Flags: config.Flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			env, err := app.Setup(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			engine, err := env.NewEngine()
			if err != nil {
				return err
			}

			mapper := coords.NewMapper(env.Config.CellSize)
			s := script.New(engine, mapper, theme.ByName(env.Config.Theme), os.Stdout, env.Log)
			return s.Run(os.Stdin)
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "chessview-script: %v\n", err)
		os.Exit(1)
	}
}
