package pause

import (
	"context"

	"github.com/schmitthub/dockhand/internal/cmd/container/shared"
	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// PauseOptions holds options for the pause command.
type PauseOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Containers []string
}

// NewCmdPause creates the container pause command.
func NewCmdPause(f *cmdutil.Factory, runF func(context.Context, *PauseOptions) error) *cobra.Command {
	opts := &PauseOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "pause CONTAINER [CONTAINER...]",
		Short: "Pause all processes within one or more containers",
		Example: `  # Pause a container
  dockhand containers pause web`,
		Args: cmdutil.RequiresMinArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Containers = args
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return pauseRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func pauseRun(ctx context.Context, opts *PauseOptions) error {
	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	return shared.RunForEach(opts.IOStreams, opts.Containers, func(name string) error {
		return client.PauseContainer(ctx, name)
	})
}
