// Package config resolves viewer settings from defaults, stored preferences
// and command-line flags, in that order of precedence.
package config

import (
	"github.com/hailam/chessview/internal/coords"
	"github.com/hailam/chessview/internal/storage"
)

// Cell size limits in pixels.
const (
	MinCellSize = 32
	MaxCellSize = 160
)

// Theme names understood by the renderer.
const (
	ThemeClassic  = "classic"
	ThemeOriginal = "original"
)

// Config is the resolved runtime configuration.
type Config struct {
	CellSize     int
	Theme        string
	SoundEnabled bool
	FEN          string // empty for the standard starting position
	LogLevel     string
	Debug        bool
	Console      bool
	DataDir      string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		CellSize:     coords.DefaultCellSize,
		Theme:        ThemeClassic,
		SoundEnabled: true,
		LogLevel:     "info",
	}
}

// Correct replaces out-of-range values with defaults.
func (c *Config) Correct() {
	def := Default()
	if c.CellSize < MinCellSize || c.CellSize > MaxCellSize {
		c.CellSize = def.CellSize
	}
	if c.Theme != ThemeClassic && c.Theme != ThemeOriginal {
		c.Theme = def.Theme
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		c.LogLevel = def.LogLevel
	}
}

// ApplyPreferences overlays stored preferences. Zero values are skipped.
func (c *Config) ApplyPreferences(p *storage.Preferences) {
	if p == nil {
		return
	}
	if p.CellSize != 0 {
		c.CellSize = p.CellSize
	}
	if p.Theme != "" {
		c.Theme = p.Theme
	}
	if !p.LastLaunch.IsZero() {
		c.SoundEnabled = p.SoundEnabled
	}
}

// Preferences returns the persisted subset of the configuration.
func (c Config) Preferences() *storage.Preferences {
	return &storage.Preferences{
		Theme:        c.Theme,
		CellSize:     c.CellSize,
		SoundEnabled: c.SoundEnabled,
	}
}
