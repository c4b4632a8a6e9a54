package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755

	// DirEnv overrides the configuration directory
	DirEnv = "TP_CONFIG_DIR"
)

var (
	// ConfigDir is the global configuration directory (<user config dir>/tp)
	ConfigDir string

	// ConfigFile holds display and scroll defaults
	ConfigFile string

	// KeybindsFile holds user keybinding overrides
	KeybindsFile string

	// DatabasePath is the SQLite database file for the run log
	DatabasePath string

	// DebugLogFile receives diagnostics while the TUI owns the terminal
	DebugLogFile string
)

// Initialize sets up the configuration directory and file paths
// It creates the directory if it doesn't exist
func Initialize() error {
	dir := os.Getenv(DirEnv)
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("failed to get config directory: %w", err)
		}
		dir = filepath.Join(base, "tp")
	}

	SetDir(dir)

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	return nil
}

// SetDir points every path at dir without touching the file system
func SetDir(dir string) {
	ConfigDir = dir
	ConfigFile = filepath.Join(dir, "config.yaml")
	KeybindsFile = filepath.Join(dir, "keybinds.json")
	DatabasePath = filepath.Join(dir, "tp.db")
	DebugLogFile = filepath.Join(dir, "debug.log")
}
