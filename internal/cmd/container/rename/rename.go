package rename

import (
	"context"
	"fmt"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// RenameOptions holds options for the rename command.
type RenameOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Container string
	NewName   string
}

// NewCmdRename creates the container rename command.
func NewCmdRename(f *cmdutil.Factory, runF func(context.Context, *RenameOptions) error) *cobra.Command {
	opts := &RenameOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "rename CONTAINER NEW_NAME",
		Short: "Rename a container",
		Example: `  # Rename a container
  dockhand containers rename web frontend`,
		Args: cmdutil.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Container = args[0]
			opts.NewName = args[1]
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return renameRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func renameRun(ctx context.Context, opts *RenameOptions) error {
	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	if err := client.Rename(ctx, opts.Container, opts.NewName); err != nil {
		return fmt.Errorf("renaming %s: %w", opts.Container, err)
	}

	fmt.Fprintln(opts.IOStreams.Out, opts.NewName)
	return nil
}
