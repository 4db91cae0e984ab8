// Package cmdutil provides shared plumbing for CLI commands: the dependency
// Factory, error types understood by Main(), positional-arg validators, and
// --format/--filter flag handling.
package cmdutil

import (
	"context"

	"github.com/schmitthub/dockhand/internal/config"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
)

// Factory provides shared dependencies for CLI commands.
// It is a dependency injection container: the struct defines what
// dependencies exist (the contract), while internal/cmd/factory
// wires the real implementations.
//
// Closure fields are set by the factory constructor and use lazy
// initialization internally. Commands extract only the fields they
// need into per-command Options structs.
type Factory struct {
	// Configuration from flags (set before command execution)
	Debug bool

	// Version info (set at build time via ldflags)
	Version string
	Commit  string

	// IO streams for input/output (for testability)
	IOStreams *iostreams.IOStreams

	// Client returns the engine client, ensuring the daemon is reachable
	// on first use. Subsequent calls return the same client.
	Client func(context.Context) (*engine.Client, error)

	// Config returns the user settings, loaded once with defaults applied.
	Config func() *config.Config
}
