package cmdutil

import (
	"errors"
	"fmt"

	"github.com/schmitthub/dockhand/internal/iostreams"
)

// userFormattedError is a duck-typed interface for errors that can format
// themselves for user display. engine.StartupError satisfies this interface.
type userFormattedError interface {
	FormatUserError() string
}

// PrintError renders err to the error stream without terminating anything.
// The interactive shell uses this to report a failed action and keep going;
// Main() uses it for the one-shot command path.
func PrintError(ios *iostreams.IOStreams, err error) {
	if err == nil {
		return
	}

	var ufErr userFormattedError
	if errors.As(err, &ufErr) {
		fmt.Fprint(ios.ErrOut, ufErr.FormatUserError())
		return
	}

	cs := ios.ColorScheme()
	fmt.Fprintf(ios.ErrOut, "%s %s\n", cs.Red("Error:"), err)
}

// PrintWarning renders a non-fatal warning to the error stream.
func PrintWarning(ios *iostreams.IOStreams, format string, args ...any) {
	cs := ios.ColorScheme()
	fmt.Fprintf(ios.ErrOut, "%s %s\n", cs.Yellow("Warning:"), fmt.Sprintf(format, args...))
}
