package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// Watch enables file watching for the settings file.
//
// If onChange is non-nil, it is registered with Viper's OnConfigChange hook.
// Load must have succeeded with the file present before watching; this
// method returns an error when no settings file is currently in use.
func (l *SettingsLoader) Watch(onChange func(fsnotify.Event)) error {
	if l.v == nil || l.v.ConfigFileUsed() == "" || !l.Exists() {
		return fmt.Errorf("watch settings requires a loaded settings file")
	}

	if onChange != nil {
		l.v.OnConfigChange(onChange)
	}
	l.v.WatchConfig()
	return nil
}
