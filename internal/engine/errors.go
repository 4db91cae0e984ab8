package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for the readiness prober. Wrapped inside *StartupError;
// match with errors.Is.
var (
	// ErrNotInstalled means the engine binary is not on PATH.
	ErrNotInstalled = errors.New("engine binary not found")

	// ErrCannotStart means every platform start strategy failed.
	ErrCannotStart = errors.New("engine daemon could not be started")

	// ErrStartTimeout means the daemon did not come up within the poll budget.
	ErrStartTimeout = errors.New("timed out waiting for engine daemon")
)

// EngineError represents a non-zero exit from one engine subprocess.
// Its message is the captured stderr text verbatim, because the engine CLI
// already writes user-facing diagnostics there.
type EngineError struct {
	Binary   string   // engine binary name
	Args     []string // argv after the binary
	Stderr   string   // trimmed stderr text
	ExitCode int
}

func (e *EngineError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	return fmt.Sprintf("%s %s exited with status %d", e.Binary, strings.Join(e.Args, " "), e.ExitCode)
}

// StartupError wraps a readiness sentinel with remediation steps.
// It mirrors the shape of per-operation engine errors: a short message for
// inline display plus numbered next steps for the full report.
type StartupError struct {
	Err       error    // one of the readiness sentinels
	Message   string   // human-readable message
	NextSteps []string // suggested remediation steps
}

func (e *StartupError) Error() string {
	return e.Message
}

func (e *StartupError) Unwrap() error {
	return e.Err
}

// FormatUserError formats the error for display to users with next steps.
func (e *StartupError) FormatUserError() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Error: %s\n", e.Message))

	if len(e.NextSteps) > 0 {
		sb.WriteString("\nNext Steps:\n")
		for i, step := range e.NextSteps {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
		}
	}

	return sb.String()
}

func errNotInstalled(binary string) *StartupError {
	return &StartupError{
		Err:     ErrNotInstalled,
		Message: fmt.Sprintf("%s is not installed or not on PATH", binary),
		NextSteps: []string{
			"Install Docker: https://docs.docker.com/get-docker/",
			fmt.Sprintf("Verify the binary is reachable: which %s", binary),
			"Point engine.binary in settings.yaml at a different engine CLI if needed",
		},
	}
}

func errCannotStart(binary string) *StartupError {
	return &StartupError{
		Err:     ErrCannotStart,
		Message: fmt.Sprintf("cannot start the %s daemon", binary),
		NextSteps: []string{
			fmt.Sprintf("Start it manually: sudo systemctl start %s (Linux) or open Docker Desktop (macOS)", binary),
			fmt.Sprintf("Check the daemon logs: journalctl -u %s", binary),
			"Verify your user is allowed to manage the engine: groups $USER",
		},
	}
}

func errStartTimeout(binary string, waited time.Duration) *StartupError {
	return &StartupError{
		Err:     ErrStartTimeout,
		Message: fmt.Sprintf("%s daemon did not become ready within %s", binary, waited),
		NextSteps: []string{
			fmt.Sprintf("Check the daemon status: systemctl status %s", binary),
			fmt.Sprintf("Probe it yourself once it settles: %s info", binary),
			"Raise engine.start_timeout in settings.yaml if the daemon is just slow to boot",
		},
	}
}
