package engine

import (
	"context"
	"time"

	"github.com/schmitthub/dockhand/internal/logger"
)

const (
	// defaultReadyInterval is the pause between liveness probes while
	// waiting for a freshly started daemon.
	defaultReadyInterval = 2 * time.Second

	// defaultReadyAttempts caps how many probes run before giving up.
	defaultReadyAttempts = 30
)

// EnsureReadyOptions control the readiness prober.
type EnsureReadyOptions struct {
	// Interval is the pause between liveness probes. Zero means 2s.
	Interval time.Duration

	// Attempts is the number of probes after a start strategy succeeds.
	// Zero means 30, for a minute of waiting at the default interval.
	Attempts int

	// Notify, when set, is called before each probe with the attempt
	// number and the total. The caller uses it to drive a progress bar.
	Notify func(attempt, total int)
}

// EnsureReady makes sure the engine daemon is reachable, starting it when
// necessary. The sequence is: check the binary exists, probe liveness, run
// platform start strategies until one succeeds, then poll until the daemon
// answers or the attempt budget runs out. Errors are *StartupError values
// wrapping ErrNotInstalled, ErrCannotStart, or ErrStartTimeout.
func (c *Client) EnsureReady(ctx context.Context, opts EnsureReadyOptions) error {
	if opts.Interval <= 0 {
		opts.Interval = defaultReadyInterval
	}
	if opts.Attempts <= 0 {
		opts.Attempts = defaultReadyAttempts
	}

	if _, err := c.LookPathFunc(c.binary); err != nil {
		logger.Error().Err(err).Str("binary", c.binary).Msg("engine binary not found on PATH")
		return errNotInstalled(c.binary)
	}

	if err := c.Ping(ctx); err == nil {
		logger.Debug().Str("binary", c.binary).Msg("engine daemon already running")
		return nil
	}

	started := false
	for _, s := range c.StartStrategiesFunc() {
		logger.Info().Str("strategy", s.Name).Msg("attempting to start engine daemon")
		if err := s.Run(ctx); err != nil {
			logger.Warn().Err(err).Str("strategy", s.Name).Msg("engine start strategy failed")
			continue
		}
		logger.Info().Str("strategy", s.Name).Msg("engine start strategy succeeded")
		started = true
		break
	}
	if !started {
		return errCannotStart(c.binary)
	}

	for attempt := 1; attempt <= opts.Attempts; attempt++ {
		if opts.Notify != nil {
			opts.Notify(attempt, opts.Attempts)
		}
		if err := c.Ping(ctx); err == nil {
			logger.Info().Int("attempt", attempt).Msg("engine daemon is ready")
			return nil
		}
		if attempt == opts.Attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(opts.Interval):
		}
	}

	waited := time.Duration(opts.Attempts) * opts.Interval
	logger.Error().Dur("waited", waited).Msg("engine daemon never became ready")
	return errStartTimeout(c.binary, waited)
}
