package engine

import (
	"context"
	"io"
	"os/exec"
	"strings"
)

// Client issues operations against the container engine CLI. One Client is
// shared per process; it holds no connection state, so it is safe to use
// from the moment it is constructed.
type Client struct {
	runner Runner
	binary string

	// LookPathFunc looks up the engine binary on PATH. Tests can override
	// this to simulate a missing installation.
	LookPathFunc func(file string) (string, error)

	// StartStrategiesFunc returns the daemon start strategies to attempt,
	// in order. Tests can override this to avoid touching the host.
	StartStrategiesFunc func() []StartStrategy
}

// New returns a Client that shells out to the named engine binary.
// An empty binary defaults to "docker".
func New(binary string) *Client {
	if binary == "" {
		binary = defaultBinary
	}
	return NewWithRunner(binary, NewRunner(binary))
}

// NewWithRunner returns a Client backed by the given runner. Tests use this
// with a stub runner to script engine responses.
func NewWithRunner(binary string, runner Runner) *Client {
	if binary == "" {
		binary = defaultBinary
	}
	c := &Client{
		runner: runner,
		binary: binary,
	}
	c.LookPathFunc = exec.LookPath
	c.StartStrategiesFunc = func() []StartStrategy {
		return platformStrategies(binary)
	}
	return c
}

// Binary returns the engine binary name this client shells out to.
func (c *Client) Binary() string {
	return c.binary
}

// Ping probes daemon liveness with a throwaway `info` call.
func (c *Client) Ping(ctx context.Context) error {
	_, _, err := c.runner.Run(ctx, "info")
	return err
}

// SystemInfo returns the engine's full system information report.
func (c *Client) SystemInfo(ctx context.Context) (string, error) {
	stdout, _, err := c.runner.Run(ctx, "system", "info")
	if err != nil {
		return "", err
	}
	return string(stdout), nil
}

// Events streams engine events to out until ctx is cancelled. On Ctrl+C the
// returned error is ctx.Err(); callers treat context.Canceled as a clean stop.
func (c *Client) Events(ctx context.Context, out, errOut io.Writer) error {
	return c.runner.RunAttached(ctx, nil, out, errOut, "events")
}

// Version returns the engine client version line.
func (c *Client) Version(ctx context.Context) (string, error) {
	stdout, _, err := c.runner.Run(ctx, "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(stdout)), nil
}
