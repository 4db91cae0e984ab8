// Package signals scopes OS interrupt handling for commands that stream
// until the user stops them. Leaf package: stdlib only, no internal
// imports, no logging.
package signals

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SetupSignalContext returns a context canceled on SIGINT or SIGTERM.
// While the registration is live the process's default die-on-interrupt
// disposition is suppressed, so Ctrl+C ends the streaming call that holds
// the scope instead of the whole process. The interactive shell relies on
// this to survive an interrupted event tail.
//
// Callers must invoke the returned cancel function to release the
// registration once the stream ends.
func SetupSignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
