package config

import "time"

// DefaultSettings returns a Settings with default values materialized.
func DefaultSettings() *Settings {
	return &Settings{
		Engine: EngineConfig{
			Binary:       "docker",
			StartTimeout: 60 * time.Second,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  50,
			MaxAgeDays: 7,
			MaxBackups: 3,
		},
		UI: UIConfig{
			Color: "auto",
		},
		History: HistoryConfig{
			Size: 1000,
		},
	}
}

// DefaultSettingsYAML is the commented scaffold written by 'dockhand config init'.
const DefaultSettingsYAML = `# Dockhand Settings
# Documentation: https://github.com/schmitthub/dockhand

engine:
  # Container engine CLI to invoke
  binary: "docker"
  # How long to wait for the daemon after a start attempt (polled every 2s)
  start_timeout: "60s"

logging:
  # Minimum level written to the log file: "debug" or "info"
  level: "info"
  # Write diagnostics to <home>/logs/dockhand.log
  file_enabled: true
  # Rotation policy for the log file
  max_size_mb: 50
  max_age_days: 7
  max_backups: 3

ui:
  # ANSI color output: "auto", "always" or "never"
  color: "auto"

history:
  # Lines of shell history kept in memory
  size: 1000
`
