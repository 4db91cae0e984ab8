// Package shared holds helpers used across the container subcommands.
package shared

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/iostreams"
)

// RunForEach applies op to every name in order, printing each name that
// succeeds to stdout and reporting each failure on stderr. It returns
// cmdutil.SilentError when any name failed, so the process exits non-zero
// without repeating the per-name messages.
func RunForEach(ios *iostreams.IOStreams, names []string, op func(name string) error) error {
	cs := ios.ColorScheme()

	var failed bool
	for _, name := range names {
		if err := op(name); err != nil {
			failed = true
			fmt.Fprintf(ios.ErrOut, "%s %s: %v\n", cs.FailureIcon(), name, err)
			continue
		}
		fmt.Fprintln(ios.Out, name)
	}

	if failed {
		return cmdutil.SilentError
	}
	return nil
}

// Confirm asks a yes/no question and reads one line from ios.In. Only "y"
// or "yes" (case-insensitive) counts as consent. Sessions that cannot
// prompt get true, so scripted runs proceed without hanging on a prompt.
func Confirm(ios *iostreams.IOStreams, format string, args ...any) bool {
	if !ios.CanPrompt() {
		return true
	}

	cs := ios.ColorScheme()
	question := fmt.Sprintf(format, args...)
	fmt.Fprintf(ios.Out, "%s (y/N): ", cs.Yellow(question))

	line, err := bufio.NewReader(ios.In).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
