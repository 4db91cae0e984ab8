// Package shell implements the interactive session: a readline-backed
// read-eval loop with TAB completion, an in-memory line history, and
// numbered sub-menus for acting on listed containers and images.
//
// The loop has two states. Reading waits at the prompt; a submitted line
// moves to Dispatching, which resolves the first token against a fixed
// command table, runs the action synchronously, and returns to Reading.
// Errors from dispatched actions are printed and never end the session;
// only an exit directive or the end of the input stream does.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"

	"github.com/schmitthub/dockhand/internal/completion"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/schmitthub/dockhand/internal/logger"
)

// errExit signals a user-initiated end of the session. It travels up from
// the dispatch table (or a sub-menu) to Run, which turns it into a clean
// zero-exit return.
var errExit = errors.New("exit session")

// lineReader is the slice of the readline editor the loop depends on.
// Tests substitute a scripted implementation.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

// Session is one interactive run over a pair of streams. Sessions are
// single-use: construct with New, drive with Run, discard.
type Session struct {
	ios    *iostreams.IOStreams
	client func(context.Context) (*engine.Client, error)

	// id tags every log line the session emits, so one session's activity
	// can be pulled out of a shared log file.
	id string

	historySize int

	// newReader opens the line editor. Defaults to a readline instance on
	// the process terminal; tests swap in a scripted reader.
	newReader func() (lineReader, error)
}

// New assembles a session. The client supplier is called lazily by the
// first command that needs the engine, so starting the shell never blocks
// on daemon startup. historySize caps the in-memory line history; nothing
// is persisted to disk.
func New(ios *iostreams.IOStreams, client func(context.Context) (*engine.Client, error), historySize int) *Session {
	s := &Session{
		ios:         ios,
		client:      client,
		id:          uuid.NewString(),
		historySize: historySize,
	}
	s.newReader = s.openEditor
	return s
}

// openEditor builds the readline editor with completion wired to live
// engine listings. No HistoryFile: history lives and dies with the session.
func (s *Session) openEditor() (lineReader, error) {
	completer := completion.NewReadlineCompleter(
		completion.NewCompleter(&clientSource{client: s.client}),
	)
	return readline.NewEx(&readline.Config{
		Prompt:            s.prompt(""),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistoryLimit:      s.historySize,
		HistorySearchFold: true,
		AutoComplete:      completer,
		Stdin:             io.NopCloser(s.ios.In),
		Stdout:            s.ios.Out,
		Stderr:            s.ios.ErrOut,
	})
}

// Run executes the loop until an exit directive or end of input. A user
// leaving the session is success; only a broken input stream or a failed
// editor setup returns an error.
func (s *Session) Run(ctx context.Context) error {
	reader, err := s.newReader()
	if err != nil {
		return fmt.Errorf("opening line editor: %w", err)
	}
	defer reader.Close()

	logger.SetSession(s.id)
	defer logger.ClearSession()
	s.ios.Logger.Debug().Str("session_id", s.id).Msg("interactive session started")
	defer s.ios.Logger.Debug().Str("session_id", s.id).Msg("interactive session ended")

	s.ios.PrintInfo("Entering interactive mode. Type 'help' for available commands or 'exit' to quit.")

	for {
		reader.SetPrompt(s.prompt(""))
		line, err := reader.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			s.ios.PrintInfo("Use 'exit' to leave the session.")
			continue
		}
		if errors.Is(err, io.EOF) {
			s.ios.PrintInfo("Goodbye!")
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		err = s.dispatch(ctx, reader, line)
		if errors.Is(err, errExit) || errors.Is(err, io.EOF) {
			s.ios.PrintInfo("Goodbye!")
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}
}

// dispatch resolves one submitted line against the top-level command table.
// Action failures are printed here and the loop continues; the only errors
// returned are errExit and reader failures escaping a sub-menu.
func (s *Session) dispatch(ctx context.Context, reader lineReader, line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "exit", "quit":
		return errExit
	case "help":
		s.renderHelp()
	case "containers":
		return s.containerMenu(ctx, reader)
	case "images":
		return s.imageMenu(ctx, reader)
	case "networks":
		s.report(s.showNetworks(ctx))
	case "volumes":
		s.report(s.showVolumes(ctx))
	case "stats":
		s.report(s.showStats(ctx))
	case "system":
		s.report(s.showSystem(ctx))
	case "events":
		s.report(s.tailEvents(ctx))
	case "dashboard":
		s.report(s.showDashboard(ctx))
	case "charts":
		s.report(s.showCharts(ctx))
	default:
		s.ios.PrintFailure("Unknown command. Type 'help' for available commands.")
	}
	return nil
}

// prompt renders the session prompt, scoped to a sub-menu noun when one is
// active.
func (s *Session) prompt(scope string) string {
	cs := s.ios.ColorScheme()
	label := "dockhand"
	if scope != "" {
		label += ":" + scope
	}
	return cs.Bold(cs.Cyan(label+">")) + " "
}

// report prints a dispatched action's failure and keeps the loop alive.
func (s *Session) report(err error) {
	if err != nil {
		s.ios.PrintFailure("%v", err)
	}
}

// confirm asks a yes/no question through the line editor. Only "y" or
// "yes" (case-insensitive) consents; interrupts and end of input decline.
func (s *Session) confirm(reader lineReader, format string, args ...any) bool {
	cs := s.ios.ColorScheme()
	question := fmt.Sprintf(format, args...)
	reader.SetPrompt(fmt.Sprintf("%s (y/N): ", cs.Yellow(question)))

	line, err := reader.Readline()
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// pick resolves a 1-based menu index token against the snapshot. Rejections
// happen here, before any engine call is made on the selection.
func pick[T any](snapshot []T, token string) (T, error) {
	var zero T
	i, err := strconv.Atoi(token)
	if err != nil {
		return zero, fmt.Errorf("invalid selection %q: enter a number between 1 and %d", token, len(snapshot))
	}
	if i < 1 || i > len(snapshot) {
		return zero, fmt.Errorf("selection %d is out of range: enter a number between 1 and %d", i, len(snapshot))
	}
	return snapshot[i-1], nil
}

// clientSource adapts the lazy engine supplier to the completion package's
// EntitySource. The supplier memoizes, so completion reuses the session's
// engine client instead of spawning its own readiness probe.
type clientSource struct {
	client func(context.Context) (*engine.Client, error)
}

func (c *clientSource) ListContainers(ctx context.Context, filters ...string) ([]engine.Container, error) {
	cl, err := c.client(ctx)
	if err != nil {
		return nil, err
	}
	return cl.ListContainers(ctx, filters...)
}

func (c *clientSource) ListImages(ctx context.Context, filters ...string) ([]engine.Image, error) {
	cl, err := c.client(ctx)
	if err != nil {
		return nil, err
	}
	return cl.ListImages(ctx, filters...)
}
