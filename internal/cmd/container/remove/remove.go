package remove

import (
	"context"
	"fmt"

	"github.com/schmitthub/dockhand/internal/cmd/container/shared"
	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// RemoveOptions holds options for the remove command.
type RemoveOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Force bool

	Containers []string
}

// NewCmdRemove creates the container remove command.
func NewCmdRemove(f *cmdutil.Factory, runF func(context.Context, *RemoveOptions) error) *cobra.Command {
	opts := &RemoveOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:     "remove CONTAINER [CONTAINER...]",
		Aliases: []string{"rm"},
		Short:   "Remove one or more containers",
		Long: `Remove one or more containers.

Each removal asks for confirmation when running in a terminal. Pass
--force to skip the prompt; non-interactive runs never prompt.`,
		Example: `  # Remove a container (prompts for confirmation)
  dockhand containers remove web

  # Remove without prompting
  dockhand containers remove --force web db`,
		Args: cmdutil.RequiresMinArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Containers = args
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return removeRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Do not prompt for confirmation")

	return cmd
}

func removeRun(ctx context.Context, opts *RemoveOptions) error {
	ios := opts.IOStreams
	cs := ios.ColorScheme()

	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	var failed bool
	for _, name := range opts.Containers {
		if !opts.Force && !shared.Confirm(ios, "Are you sure you want to remove container '%s'?", name) {
			continue
		}
		if err := client.RemoveContainer(ctx, name); err != nil {
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
