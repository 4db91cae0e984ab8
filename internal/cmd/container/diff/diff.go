package diff

import (
	"context"
	"fmt"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// DiffOptions holds options for the diff command.
type DiffOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Container string
}

// NewCmdDiff creates the container diff command.
func NewCmdDiff(f *cmdutil.Factory, runF func(context.Context, *DiffOptions) error) *cobra.Command {
	opts := &DiffOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "diff CONTAINER",
		Short: "Inspect changes to files on a container's filesystem",
		Example: `  # Show files changed since the container was created
  dockhand containers diff web`,
		Args: cmdutil.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Container = args[0]
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return diffRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func diffRun(ctx context.Context, opts *DiffOptions) error {
	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	out, err := client.Diff(ctx, opts.Container)
	if err != nil {
		return fmt.Errorf("diffing %s: %w", opts.Container, err)
	}

	fmt.Fprint(opts.IOStreams.Out, out)
	return nil
}
