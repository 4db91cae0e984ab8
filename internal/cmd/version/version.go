package version

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/config"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
)

// VersionOptions holds options for the version command.
type VersionOptions struct {
	IOStreams *iostreams.IOStreams
	Config    func() *config.Config

	Version string
	Commit  string
}

// NewCmdVersion creates the "version" subcommand.
func NewCmdVersion(f *cmdutil.Factory, runF func(context.Context, *VersionOptions) error) *cobra.Command {
	opts := &VersionOptions{
		IOStreams: f.IOStreams,
		Config:    f.Config,
		Version:   f.Version,
		Commit:    f.Commit,
	}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of dockhand",
		Args:  cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return versionRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func versionRun(ctx context.Context, opts *VersionOptions) error {
	out := opts.IOStreams.Out
	fmt.Fprint(out, Format(opts.Version, opts.Commit))

	// Best effort: "docker --version" works without a running daemon.
	binary := opts.Config().Settings.Engine.GetBinary()
	if v, err := engine.New(binary).Version(ctx); err == nil && v != "" {
		fmt.Fprintln(out, v)
	}
	return nil
}

// Format returns the version string for display.
func Format(version, commit string) string {
	version = strings.TrimPrefix(version, "v")

	var commitStr string
	if commit != "" && commit != "none" {
		commitStr = fmt.Sprintf(" (%s)", commit)
	}

	return fmt.Sprintf("dockhand version %s%s\n", version, commitStr)
}
