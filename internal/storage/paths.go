// Package storage persists viewer preferences.
package storage

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "chessview"

// GetDataDir returns the platform-specific data directory for the application.
// - macOS: ~/Library/Application Support/chessview/
// - Linux: ~/.local/share/chessview/
// - Windows: %APPDATA%/chessview/
func GetDataDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		// XDG_DATA_HOME wins over ~/.local/share
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	return ensureDir(filepath.Join(baseDir, appName))
}

// DatabaseDir returns the BadgerDB directory under dataDir, creating it.
func DatabaseDir(dataDir string) (string, error) {
	return ensureDir(filepath.Join(dataDir, "db"))
}

// LogPath returns the log file path under dataDir.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, appName+".log")
}

func ensureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
