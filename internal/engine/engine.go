// Package engine talks to the container engine by shelling out to its CLI
// (docker by default). Every operation is one synchronous subprocess per
// request: no SDK, no connection pooling, no background calls. Structured
// listings are read from the CLI's line-delimited JSON format; everything
// else is passed through as raw text.
//
// This is a Tier 1 (Leaf) package in the dockhand architecture:
//   - It imports only stdlib, third-party packages, and internal/{logger,text}
//   - Configuration is passed as parameters, not read from the config package
package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/schmitthub/dockhand/internal/logger"
)

// defaultBinary is the engine CLI used when settings name none.
const defaultBinary = "docker"

// Runner executes the engine binary. Implementations run exactly one
// subprocess per call and block until it exits.
type Runner interface {
	// Run executes the engine with args and returns captured output.
	// A non-zero exit yields an *EngineError carrying the stderr text.
	Run(ctx context.Context, args ...string) (stdout, stderr []byte, err error)

	// RunAttached executes the engine with args wired directly to the
	// given streams. in may be nil for output-only commands. Used for
	// open-ended or interactive calls (events, attach) where output
	// must reach the terminal as it is produced.
	RunAttached(ctx context.Context, in io.Reader, out, errOut io.Writer, args ...string) error
}

type execRunner struct {
	binary string
}

// NewRunner returns a Runner that invokes the given engine binary.
// An empty binary defaults to "docker".
func NewRunner(binary string) Runner {
	if binary == "" {
		binary = defaultBinary
	}
	return &execRunner{binary: binary}
}

func (r *execRunner) Run(ctx context.Context, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, r.binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug().Str("binary", r.binary).Strs("args", args).Msg("running engine command")

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.Bytes(), stderr.Bytes(), &EngineError{
				Binary:   r.binary,
				Args:     args,
				Stderr:   strings.TrimSpace(stderr.String()),
				ExitCode: exitErr.ExitCode(),
			}
		}
		return stdout.Bytes(), stderr.Bytes(), fmt.Errorf("failed to execute %s: %w", r.binary, err)
	}
	return stdout.Bytes(), stderr.Bytes(), nil
}

func (r *execRunner) RunAttached(ctx context.Context, in io.Reader, out, errOut io.Writer, args ...string) error {
	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Stdin = in
	cmd.Stdout = out
	cmd.Stderr = errOut

	logger.Debug().Str("binary", r.binary).Strs("args", args).Msg("running attached engine command")

	err := cmd.Run()
	if ctx.Err() != nil {
		// The subprocess was killed by context cancellation (Ctrl+C on an
		// event stream). Report the cancellation, not the kill signal.
		return ctx.Err()
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &EngineError{
				Binary:   r.binary,
				Args:     args,
				ExitCode: exitErr.ExitCode(),
			}
		}
		return fmt.Errorf("failed to execute %s: %w", r.binary, err)
	}
	return nil
}
