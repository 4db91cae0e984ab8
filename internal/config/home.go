package config

import (
	"os"
	"path/filepath"
)

const (
	// DockhandHomeEnv is the environment variable overriding the dockhand home directory
	DockhandHomeEnv = "DOCKHAND_HOME"
	// defaultHomeSubdir is the directory name under the platform user config dir
	defaultHomeSubdir = "dockhand"
	// LogsSubdir is the subdirectory for rotated log files
	LogsSubdir = "logs"
)

// DockhandHome returns the dockhand home directory.
// It checks the DOCKHAND_HOME environment variable first, then defaults to
// the platform user config dir ("~/.config/dockhand" on Linux).
func DockhandHome() (string, error) {
	if home := os.Getenv(DockhandHomeEnv); home != "" {
		return home, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, defaultHomeSubdir), nil
}

// LogsDir returns the log file directory (~/.config/dockhand/logs).
func LogsDir() (string, error) {
	home, err := DockhandHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, LogsSubdir), nil
}

// SettingsPath returns the settings file path (~/.config/dockhand/settings.yaml).
func SettingsPath() (string, error) {
	home, err := DockhandHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, SettingsFileName), nil
}

// EnsureDir creates a directory if it doesn't exist
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}
