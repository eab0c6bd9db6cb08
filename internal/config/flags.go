package config

import (
	"github.com/urfave/cli/v3"
)

// Flag names
const (
	FlagFEN      = "fen"
	FlagCellSize = "cell-size"
	FlagTheme    = "theme"
	FlagSound    = "sound"
	FlagLevel    = "level"
	FlagDebug    = "debug"
	FlagConsole  = "console"
	FlagDataDir  = "data-dir"
)

// Flags returns the command-line flags shared by the viewer commands.
func Flags() []cli.Flag {
	def := Default()
	return []cli.Flag{
		&cli.StringFlag{
			Name:  FlagFEN,
			Usage: "start from a position in FEN format",
		},
		&cli.IntFlag{
			Name:  FlagCellSize,
			Usage: "edge length of one board cell in pixels",
			Value: int64(def.CellSize),
		},
		&cli.StringFlag{
			Name:  FlagTheme,
			Usage: "board colors: classic or original",
			Value: def.Theme,
		},
		&cli.BoolFlag{
			Name:  FlagSound,
			Usage: "play move sounds",
			Value: def.SoundEnabled,
		},
		&cli.StringFlag{
			Name:    FlagLevel,
			Aliases: []string{"l"},
			Usage:   "logger level: debug, info, warn, error",
			Value:   def.LogLevel,
		},
		&cli.BoolFlag{
			Name:    FlagDebug,
			Aliases: []string{"d"},
			Usage:   "development log encoding",
		},
		&cli.BoolFlag{
			Name:    FlagConsole,
			Aliases: []string{"c"},
			Usage:   "log to stdout in console encoding",
		},
		&cli.StringFlag{
			Name:  FlagDataDir,
			Usage: "directory for preferences and logs (default: platform data dir)",
		},
	}
}

// ApplyFlags overlays flags the user set explicitly.
func (c *Config) ApplyFlags(cmd *cli.Command) {
	if cmd.IsSet(FlagCellSize) {
		c.CellSize = int(cmd.Int(FlagCellSize))
	}
	if cmd.IsSet(FlagTheme) {
		c.Theme = cmd.String(FlagTheme)
	}
	if cmd.IsSet(FlagSound) {
		c.SoundEnabled = cmd.Bool(FlagSound)
	}
	if cmd.IsSet(FlagLevel) {
		c.LogLevel = cmd.String(FlagLevel)
	}
	c.FEN = cmd.String(FlagFEN)
	c.Debug = cmd.Bool(FlagDebug)
	c.Console = cmd.Bool(FlagConsole)
	c.DataDir = cmd.String(FlagDataDir)
}
