// Package app wires configuration, logging, storage and the rules engine
// into the viewer commands.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hailam/chessview/internal/config"
	"github.com/hailam/chessview/internal/logx"
	"github.com/hailam/chessview/internal/rules"
	"github.com/hailam/chessview/internal/storage"
	"github.com/urfave/cli/v3"
)

// Env is the resolved runtime environment of one command.
type Env struct {
	Config  config.Config
	Log     logx.Logger
	Storage *storage.Storage // nil when the store could not be opened

	// FirstLaunch is true on the first run against this data dir.
	FirstLaunch bool

	closers []io.Closer
}

// Setup resolves configuration and opens the log and the preference store.
// Storage failures are logged and tolerated.
func Setup(cmd *cli.Command) (*Env, error) {
	env := &Env{Config: config.Default()}

	dataDir := cmd.String(config.FlagDataDir)
	if dataDir == "" {
		dir, err := storage.GetDataDir()
		if err != nil {
			return nil, fmt.Errorf("data dir: %w", err)
		}
		dataDir = dir
	} else if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	// Flags decide where and how to log, so apply them once up front.
	env.Config.ApplyFlags(cmd)
	env.Config.DataDir = dataDir

	var out io.Writer = os.Stdout
	if !env.Config.Console {
		f, err := os.OpenFile(storage.LogPath(dataDir), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		env.closers = append(env.closers, f)
		out = f
	}
	env.Config.Correct()
	env.Log = logx.New(logx.Options{
		Level:   env.Config.LogLevel,
		Dev:     env.Config.Debug,
		Console: env.Config.Console,
		Output:  out,
	})

	st, err := storage.Open(dataDir)
	if err != nil {
		env.Log.Warnf("preferences unavailable: %v", err)
	} else {
		env.Storage = st
		env.closers = append(env.closers, st)
		prefs, err := st.LoadPreferences()
		if err != nil {
			env.Log.Warnf("load preferences: %v", err)
		}
		env.Config.ApplyPreferences(prefs)
		env.checkFirstLaunch(dataDir)
	}

	// Explicit flags beat stored preferences.
	env.Config.ApplyFlags(cmd)
	env.Config.DataDir = dataDir
	env.Config.Correct()

	env.Log.Debugf("config: %+v", env.Config)
	return env, nil
}

func (e *Env) checkFirstLaunch(dataDir string) {
	first, err := e.Storage.IsFirstLaunch()
	if err != nil {
		e.Log.Warnf("first launch check: %v", err)
		return
	}
	if !first {
		return
	}
	e.FirstLaunch = true
	e.Log.Infof("first launch, data dir %s", dataDir)
	if err := e.Storage.MarkFirstLaunchComplete(); err != nil {
		e.Log.Warnf("mark first launch: %v", err)
	}
}

// NewEngine creates the rules engine for the configured start position.
func (e *Env) NewEngine() (*rules.Game, error) {
	if e.Config.FEN == "" {
		return rules.NewGame(), nil
	}
	return rules.NewGameFromFEN(e.Config.FEN)
}

// SavePreferences writes the persisted subset of the configuration.
func (e *Env) SavePreferences() {
	if e.Storage == nil {
		return
	}
	if err := e.Storage.SavePreferences(e.Config.Preferences()); err != nil {
		e.Log.Warnf("save preferences: %v", err)
	}
}

// Close flushes the log and closes the store and the log file.
func (e *Env) Close() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	for i := len(e.closers) - 1; i >= 0; i-- {
		_ = e.closers[i].Close()
	}
}

// Command builds the root command. Flags are declared once on the root and
// inherited by the subcommands; the gui action is the default.
func Command(guiAction, printAction cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:   "chessview",
		Usage:  "interactive chessboard viewer",
		Flags:  config.Flags(),
		Action: guiAction,
		Commands: []*cli.Command{
			{
				Name:   "gui",
				Usage:  "open the board window",
				Action: guiAction,
			},
			{
				Name:   "print",
				Usage:  "print the start position and exit",
				Action: printAction,
			},
		},
	}
}

// Run runs the root command with the process arguments.
func Run(guiAction, printAction cli.ActionFunc) error {
	return Command(guiAction, printAction).Run(context.Background(), os.Args)
}
