package unpause

import (
	"context"

	"github.com/schmitthub/dockhand/internal/cmd/container/shared"
	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// UnpauseOptions holds options for the unpause command.
type UnpauseOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Containers []string
}

// NewCmdUnpause creates the container unpause command.
func NewCmdUnpause(f *cmdutil.Factory, runF func(context.Context, *UnpauseOptions) error) *cobra.Command {
	opts := &UnpauseOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "unpause CONTAINER [CONTAINER...]",
		Short: "Unpause all processes within one or more containers",
		Example: `  # Resume a paused container
  dockhand containers unpause web`,
		Args: cmdutil.RequiresMinArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Containers = args
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return unpauseRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func unpauseRun(ctx context.Context, opts *UnpauseOptions) error {
	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	return shared.RunForEach(opts.IOStreams, opts.Containers, func(name string) error {
		return client.UnpauseContainer(ctx, name)
	})
}
