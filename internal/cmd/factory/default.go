// Package factory wires the real dependency implementations into a
// cmdutil.Factory.
package factory

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/config"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/schmitthub/dockhand/internal/logger"
)

const readyPollInterval = 2 * time.Second

// New creates a fully-wired Factory with lazy-initialized dependency closures.
// Called exactly once at the CLI entry point (internal/dockhand/cmd.go).
// Tests should NOT import this package — construct &cmdutil.Factory{} directly.
func New(version, commit string) *cmdutil.Factory {
	ios := iostreams.NewIOStreams()
	ios.Logger = logger.Shared()

	// Auto-detect color support
	if ios.IsOutputTTY() {
		ios.DetectTerminalTheme()
		// Respect NO_COLOR environment variable
		if os.Getenv("NO_COLOR") != "" {
			ios.SetColorEnabled(false)
		}
	} else {
		ios.SetColorEnabled(false)
	}

	// Respect CI environment (disable prompts)
	if os.Getenv("CI") != "" {
		ios.SetNeverPrompt(true)
	}

	f := &cmdutil.Factory{
		Version:   version,
		Commit:    commit,
		IOStreams: ios,
	}

	// --- Lazy dependency closures ---

	// Settings, loaded once. Load failures keep defaults; the root command
	// surfaces them after logging is up.
	var (
		configOnce sync.Once
		cfg        *config.Config
	)
	f.Config = func() *config.Config {
		configOnce.Do(func() {
			cfg = config.NewConfig()
			applyColorSetting(ios, cfg)
		})
		return cfg
	}

	// Engine client. The first call probes the daemon, starts it if needed,
	// and waits for it to come up; every later call reuses the result.
	var (
		clientOnce sync.Once
		client     *engine.Client
		clientErr  error
	)
	f.Client = func(ctx context.Context) (*engine.Client, error) {
		clientOnce.Do(func() {
			c := engine.New(f.Config().Settings.Engine.GetBinary())
			clientErr = ensureEngineReady(ctx, ios, f.Config(), c)
			if clientErr == nil {
				client = c
			}
		})
		return client, clientErr
	}

	return f
}

// ensureEngineReady waits for the daemon, drawing poll progress on stderr.
// The bar appears only when a wait actually happens: a live daemon answers
// the first probe and never notifies.
func ensureEngineReady(ctx context.Context, ios *iostreams.IOStreams, cfg *config.Config, c *engine.Client) error {
	attempts := int(cfg.Settings.Engine.GetStartTimeout() / readyPollInterval)
	if attempts < 1 {
		attempts = 1
	}

	var bar *iostreams.ProgressBar
	err := c.EnsureReady(ctx, engine.EnsureReadyOptions{
		Interval: readyPollInterval,
		Attempts: attempts,
		Notify: func(attempt, total int) {
			if bar == nil {
				bar = ios.NewProgressBar(total, "Waiting for the engine daemon")
			}
			bar.Set(attempt)
		},
	})
	if bar != nil {
		bar.Finish()
	}
	return err
}

// applyColorSetting maps the ui.color setting onto the streams. "auto" keeps
// the TTY detection done at construction.
func applyColorSetting(ios *iostreams.IOStreams, cfg *config.Config) {
	switch cfg.Settings.UI.GetColor() {
	case "always":
		ios.SetColorEnabled(true)
	case "never":
		ios.SetColorEnabled(false)
	}
}
