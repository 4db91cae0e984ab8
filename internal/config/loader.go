package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// SettingsFileName is the settings file name under the dockhand home directory.
const SettingsFileName = "settings.yaml"

// SettingsLoader reads and writes the optional user settings file.
// Loading a missing file yields defaults; nothing is created implicitly.
type SettingsLoader struct {
	path string
	v    *viper.Viper
}

// NewSettingsLoader returns a loader for the settings file under the
// dockhand home directory.
func NewSettingsLoader() (*SettingsLoader, error) {
	path, err := SettingsPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve settings path: %w", err)
	}
	return &SettingsLoader{path: path}, nil
}

// Path returns the absolute settings file path.
func (l *SettingsLoader) Path() string {
	return l.path
}

// Exists reports whether the settings file is present on disk.
func (l *SettingsLoader) Exists() bool {
	_, err := os.Stat(l.path)
	return err == nil
}

// Load parses the settings file. A missing file is not an error: defaults
// apply, and DOCKHAND_* environment variables override individual keys
// either way (e.g. DOCKHAND_ENGINE_BINARY=podman).
func (l *SettingsLoader) Load() (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(l.path)
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix("DOCKHAND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if l.Exists() {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	l.v = v
	return &settings, nil
}

// setDefaults registers every settings key with viper. Registration is what
// makes AutomaticEnv consult DOCKHAND_* variables during Unmarshal.
func setDefaults(v *viper.Viper) {
	defaults := DefaultSettings()
	v.SetDefault("engine.binary", defaults.Engine.Binary)
	v.SetDefault("engine.start_timeout", defaults.Engine.StartTimeout)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.file_enabled", true)
	v.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	v.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	v.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	v.SetDefault("ui.color", defaults.UI.Color)
	v.SetDefault("history.size", defaults.History.Size)
}

// Save marshals settings to YAML and writes them atomically under a file lock.
func (l *SettingsLoader) Save(settings *Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := EnsureDir(filepath.Dir(l.path)); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	return withFileLock(l.path, func() error {
		return atomicWriteFile(l.path, data, 0o644)
	})
}

// EnsureExists writes the commented default settings scaffold when no file
// is present. An existing file is left untouched.
func (l *SettingsLoader) EnsureExists() error {
	if err := EnsureDir(filepath.Dir(l.path)); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	return withFileLock(l.path, func() error {
		if _, err := os.Stat(l.path); err == nil {
			return nil
		}
		return atomicWriteFile(l.path, []byte(DefaultSettingsYAML), 0o644)
	})
}
