package config

import "time"

// Settings represents user-level configuration stored in
// ~/.config/dockhand/settings.yaml. Every field is optional: zero values
// fall back to defaults through the getter methods, so a missing file
// behaves exactly like an empty one.
type Settings struct {
	// Engine configures the container engine subprocess.
	Engine EngineConfig `yaml:"engine,omitempty" mapstructure:"engine"`

	// Logging configures file-based logging.
	// File logging is ENABLED by default - users can disable via settings.yaml.
	Logging LoggingConfig `yaml:"logging,omitempty" mapstructure:"logging"`

	// UI configures terminal output behavior.
	UI UIConfig `yaml:"ui,omitempty" mapstructure:"ui"`

	// History configures the interactive shell's line history.
	History HistoryConfig `yaml:"history,omitempty" mapstructure:"history"`
}

// EngineConfig configures how dockhand reaches the container engine.
type EngineConfig struct {
	// Binary is the engine CLI to invoke (default: "docker")
	Binary string `yaml:"binary,omitempty" mapstructure:"binary"`
	// StartTimeout bounds how long to wait for the daemon to come up
	// after a start attempt, polled every 2 seconds (default: 60s)
	StartTimeout time.Duration `yaml:"start_timeout,omitempty" mapstructure:"start_timeout"`
}

// LoggingConfig configures file-based logging.
// File logging is ENABLED by default - users can disable via settings.yaml.
type LoggingConfig struct {
	// Level is the minimum level written to the log file: "debug" or "info"
	// (default: "info"). The --debug flag forces "debug" for one run.
	Level string `yaml:"level,omitempty" mapstructure:"level"`
	// FileEnabled enables logging to file (default: true)
	// Set to false in ~/.config/dockhand/settings.yaml to disable
	FileEnabled *bool `yaml:"file_enabled,omitempty" mapstructure:"file_enabled"`
	// MaxSizeMB is the max size in MB before rotation (default: 50)
	MaxSizeMB int `yaml:"max_size_mb,omitempty" mapstructure:"max_size_mb"`
	// MaxAgeDays is max days to retain old logs (default: 7)
	MaxAgeDays int `yaml:"max_age_days,omitempty" mapstructure:"max_age_days"`
	// MaxBackups is max number of old log files to keep (default: 3)
	MaxBackups int `yaml:"max_backups,omitempty" mapstructure:"max_backups"`
}

// UIConfig configures terminal output behavior.
type UIConfig struct {
	// Color controls ANSI color output: "auto", "always" or "never"
	// (default: "auto", meaning color only when stdout is a terminal)
	Color string `yaml:"color,omitempty" mapstructure:"color"`
}

// HistoryConfig configures the interactive shell's line history.
// History lives in memory only; nothing is persisted to disk.
type HistoryConfig struct {
	// Size is the number of lines the line editor retains (default: 1000)
	Size int `yaml:"size,omitempty" mapstructure:"size"`
}

// GetBinary returns the engine CLI name, defaulting to "docker" if not set.
func (c *EngineConfig) GetBinary() string {
	if c.Binary == "" {
		return "docker"
	}
	return c.Binary
}

// GetStartTimeout returns the daemon start timeout, defaulting to 60s if not set.
func (c *EngineConfig) GetStartTimeout() time.Duration {
	if c.StartTimeout <= 0 {
		return 60 * time.Second
	}
	return c.StartTimeout
}

// GetLevel returns the log level, defaulting to "info" if not set.
// Unknown levels also fall back to "info".
func (c *LoggingConfig) GetLevel() string {
	if c.Level == "debug" {
		return "debug"
	}
	return "info"
}

// IsFileEnabled returns whether file logging is enabled.
// Defaults to true if not explicitly set.
func (c *LoggingConfig) IsFileEnabled() bool {
	if c.FileEnabled == nil {
		return true
	}
	return *c.FileEnabled
}

// GetMaxSizeMB returns the max size in MB, defaulting to 50 if not set.
func (c *LoggingConfig) GetMaxSizeMB() int {
	if c.MaxSizeMB <= 0 {
		return 50
	}
	return c.MaxSizeMB
}

// GetMaxAgeDays returns the max age in days, defaulting to 7 if not set.
func (c *LoggingConfig) GetMaxAgeDays() int {
	if c.MaxAgeDays <= 0 {
		return 7
	}
	return c.MaxAgeDays
}

// GetMaxBackups returns the max backups, defaulting to 3 if not set.
func (c *LoggingConfig) GetMaxBackups() int {
	if c.MaxBackups <= 0 {
		return 3
	}
	return c.MaxBackups
}

// GetColor returns the color mode, defaulting to "auto" if not set.
// Unknown modes also fall back to "auto".
func (c *UIConfig) GetColor() string {
	switch c.Color {
	case "always", "never":
		return c.Color
	}
	return "auto"
}

// GetSize returns the history size, defaulting to 1000 if not set.
func (c *HistoryConfig) GetSize() int {
	if c.Size <= 0 {
		return 1000
	}
	return c.Size
}
