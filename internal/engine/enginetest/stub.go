// Package enginetest provides test doubles for the engine package.
package enginetest

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/schmitthub/dockhand/internal/engine"
)

// Response is one scripted engine reply.
type Response struct {
	Stdout []byte
	Stderr []byte
	Err    error
}

// StubRunner is a test double for engine.Runner. Tests script replies by
// registering them against an argv prefix ("ps -a", "stop web"); the longest
// registered prefix matching the joined argv wins. A call with no matching
// registration panics, so unexpected engine invocations fail loud.
type StubRunner struct {
	mu    sync.Mutex
	calls [][]string
	fns   map[string]func(args []string) Response

	// RunAttachedFn, when set, handles RunAttached calls. When nil,
	// RunAttached resolves through the registered prefixes and copies the
	// scripted stdout and stderr to the given writers.
	RunAttachedFn func(ctx context.Context, in io.Reader, out, errOut io.Writer, args []string) error
}

var _ engine.Runner = (*StubRunner)(nil)

// NewStubRunner returns an empty stub. Register responses before use.
func NewStubRunner() *StubRunner {
	return &StubRunner{fns: make(map[string]func(args []string) Response)}
}

// Register scripts a fixed response for calls whose argv starts with prefix.
func (s *StubRunner) Register(prefix string, r Response) {
	s.RegisterFunc(prefix, func([]string) Response { return r })
}

// RegisterFunc scripts a computed response for calls whose argv starts with
// prefix. The function receives the full argv of each matching call.
func (s *StubRunner) RegisterFunc(prefix string, fn func(args []string) Response) {
	s.mu.Lock()
	s.fns[prefix] = fn
	s.mu.Unlock()
}

// RegisterOutput scripts a successful call that prints stdout.
func (s *StubRunner) RegisterOutput(prefix, stdout string) {
	s.Register(prefix, Response{Stdout: []byte(stdout)})
}

// RegisterError scripts a failing call whose error carries stderr verbatim,
// matching what a real non-zero engine exit produces.
func (s *StubRunner) RegisterError(prefix, stderr string) {
	s.RegisterFunc(prefix, func(args []string) Response {
		return Response{
			Stderr: []byte(stderr),
			Err: &engine.EngineError{
				Binary:   "docker",
				Args:     args,
				Stderr:   strings.TrimSpace(stderr),
				ExitCode: 1,
			},
		}
	})
}

// Run resolves the scripted response for args. It panics when nothing
// matches; register a response (an empty prefix acts as a catch-all).
func (s *StubRunner) Run(_ context.Context, args ...string) ([]byte, []byte, error) {
	r := s.resolve(args)
	return r.Stdout, r.Stderr, r.Err
}

// RunAttached resolves like Run but writes the scripted output to the given
// streams, or delegates to RunAttachedFn when set.
func (s *StubRunner) RunAttached(ctx context.Context, in io.Reader, out, errOut io.Writer, args ...string) error {
	if s.RunAttachedFn != nil {
		s.mu.Lock()
		s.calls = append(s.calls, args)
		s.mu.Unlock()
		return s.RunAttachedFn(ctx, in, out, errOut, args)
	}

	r := s.resolve(args)
	if len(r.Stdout) > 0 && out != nil {
		_, _ = out.Write(r.Stdout)
	}
	if len(r.Stderr) > 0 && errOut != nil {
		_, _ = errOut.Write(r.Stderr)
	}
	return r.Err
}

func (s *StubRunner) resolve(args []string) Response {
	joined := strings.Join(args, " ")

	s.mu.Lock()
	s.calls = append(s.calls, args)
	var best string
	found := false
	for prefix := range s.fns {
		if strings.HasPrefix(joined, prefix) && (!found || len(prefix) > len(best)) {
			best = prefix
			found = true
		}
	}
	fn := s.fns[best]
	s.mu.Unlock()

	if !found {
		panic(fmt.Sprintf("enginetest: no response registered for %q, call Register first", joined))
	}
	// Run the scripted function outside the lock so it can inspect the
	// stub (CallCount and friends) without deadlocking.
	return fn(args)
}

// Calls returns every recorded argv, in order.
func (s *StubRunner) Calls() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]string, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallCount reports how many recorded calls match the given argv prefix.
func (s *StubRunner) CallCount(prefix string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, args := range s.calls {
		if strings.HasPrefix(strings.Join(args, " "), prefix) {
			n++
		}
	}
	return n
}

// Reset clears the call log but keeps registered responses.
func (s *StubRunner) Reset() {
	s.mu.Lock()
	s.calls = nil
	s.mu.Unlock()
}
