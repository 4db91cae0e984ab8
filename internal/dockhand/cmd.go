// Package dockhand hosts the CLI entry point shared by cmd/dockhand.
package dockhand

import (
	"context"
	"errors"
	"fmt"

	"github.com/schmitthub/dockhand/internal/cmd/factory"
	"github.com/schmitthub/dockhand/internal/cmd/root"
	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/logger"
	"github.com/spf13/cobra"
)

// Build-time variables injected via ldflags
var (
	Version = "dev"
	Commit  = "none"
)

const (
	exitOK    = 0
	exitError = 1
)

// Main is the entry point for the dockhand CLI.
// It wires the Factory, builds the root command, executes it, and maps
// errors to exit codes. Engine failures inside the interactive session
// never reach here; they are reported at the prompt and the session
// exits cleanly.
func Main() int {
	// Ensure logs are flushed on exit
	defer logger.CloseFileWriter()

	f := factory.New(Version, Commit)

	rootCmd, err := root.NewCmdRoot(f, Version, Commit)
	if err != nil {
		fmt.Fprintf(f.IOStreams.ErrOut, "failed to create root command: %v\n", err)
		return exitError
	}

	// ExecuteContextC returns the executed command for contextual usage hints.
	cmd, err := rootCmd.ExecuteContextC(context.Background())
	if err != nil {
		return handleError(f, cmd, err)
	}

	return exitOK
}

// handleError maps an execution error to an exit code, printing whatever
// the command has not already shown.
func handleError(f *cmdutil.Factory, cmd *cobra.Command, err error) int {
	ios := f.IOStreams

	// The error was already displayed where it happened.
	if errors.Is(err, cmdutil.SilentError) {
		return exitError
	}

	var exitErr *cmdutil.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var flagErr *cmdutil.FlagError
	if errors.As(err, &flagErr) {
		fmt.Fprintln(ios.ErrOut, flagErr.Error())
		if cmd != nil {
			fmt.Fprint(ios.ErrOut, cmd.UsageString())
		}
		return exitError
	}

	cmdutil.PrintError(ios, err)
	if cmd != nil {
		fmt.Fprintf(ios.ErrOut, "Run '%s --help' for usage.\n", cmd.CommandPath())
	}
	return exitError
}
