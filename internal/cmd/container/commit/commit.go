package commit

import (
	"context"
	"fmt"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// CommitOptions holds options for the commit command.
type CommitOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Container string
	Reference string
}

// NewCmdCommit creates the container commit command.
func NewCmdCommit(f *cmdutil.Factory, runF func(context.Context, *CommitOptions) error) *cobra.Command {
	opts := &CommitOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "commit CONTAINER REPOSITORY[:TAG]",
		Short: "Create a new image from a container's changes",
		Example: `  # Snapshot a container into an image
  dockhand containers commit web myapp:snapshot`,
		Args: cmdutil.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Container = args[0]
			opts.Reference = args[1]
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return commitRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func commitRun(ctx context.Context, opts *CommitOptions) error {
	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	if err := client.Commit(ctx, opts.Container, opts.Reference); err != nil {
		return fmt.Errorf("committing %s: %w", opts.Container, err)
	}

	fmt.Fprintln(opts.IOStreams.Out, opts.Reference)
	return nil
}
