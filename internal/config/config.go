// Package config loads dockhand's optional user settings file into an
// in-memory Config. Settings live at ~/.config/dockhand/settings.yaml
// (the directory is overridable with DOCKHAND_HOME); a missing file
// yields defaults so the tool works with zero setup.
package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// Config carries the resolved user settings for one process.
// Commands receive it lazily through the cmdutil.Factory.
type Config struct {
	// Settings holds the merged settings: file values over environment
	// overrides over defaults.
	Settings *Settings

	loader  *SettingsLoader
	loadErr error
}

// NewConfig resolves and loads the settings file. Load failures never stop
// the tool: defaults apply and the error is retained for LoadError.
func NewConfig() *Config {
	cfg := &Config{Settings: DefaultSettings()}

	loader, err := NewSettingsLoader()
	if err != nil {
		cfg.loadErr = err
		return cfg
	}
	cfg.loader = loader

	settings, err := loader.Load()
	if err != nil {
		cfg.loadErr = err
		return cfg
	}
	cfg.Settings = settings
	return cfg
}

// NewConfigForTest returns a Config seeded with the given settings, or
// defaults when nil. No file or environment access happens.
func NewConfigForTest(settings *Settings) *Config {
	if settings == nil {
		settings = DefaultSettings()
	}
	return &Config{Settings: settings}
}

// SettingsLoader returns the loader backing this config. It is nil when
// home directory resolution failed or the config was built for tests.
func (c *Config) SettingsLoader() *SettingsLoader {
	return c.loader
}

// LoadError reports a settings load failure, if any. The config is still
// usable with defaults when this is non-nil.
func (c *Config) LoadError() error {
	return c.loadErr
}

// Watch registers onChange for settings file modifications. Watching
// requires a successful load of an existing file.
func (c *Config) Watch(onChange func(fsnotify.Event)) error {
	if c.loader == nil {
		return fmt.Errorf("watch settings requires a loaded settings file")
	}
	return c.loader.Watch(onChange)
}

// Reload re-reads the settings file and swaps the merged settings in place.
// On failure the previous settings stay active.
func (c *Config) Reload() error {
	if c.loader == nil {
		return fmt.Errorf("reload requires a loaded settings file")
	}
	settings, err := c.loader.Load()
	if err != nil {
		return err
	}
	c.Settings = settings
	return nil
}
