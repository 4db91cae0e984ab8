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

	References []string
}

// NewCmdRemove creates the image remove command.
func NewCmdRemove(f *cmdutil.Factory, runF func(context.Context, *RemoveOptions) error) *cobra.Command {
	opts := &RemoveOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:     "remove IMAGE [IMAGE...]",
		Aliases: []string{"rm", "rmi"},
		Short:   "Remove one or more local images",
		Long: `Remove one or more local images.

Each removal asks for confirmation when running in a terminal. Pass
--force to skip the prompt; non-interactive runs never prompt.`,
		Example: `  # Remove an image (prompts for confirmation)
  dockhand images remove nginx:latest

  # Remove without prompting
  dockhand images remove --force nginx:latest postgres:16`,
		Args: cmdutil.RequiresMinArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.References = args
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
	for _, ref := range opts.References {
		if !opts.Force && !shared.Confirm(ios, "Are you sure you want to remove image '%s'?", ref) {
			continue
		}
		if err := client.RemoveImage(ctx, ref); err != nil {
			failed = true
			fmt.Fprintf(ios.ErrOut, "%s %s: %v\n", cs.FailureIcon(), ref, err)
			continue
		}
		fmt.Fprintln(ios.Out, ref)
	}

	if failed {
		return cmdutil.SilentError
	}
	return nil
}
