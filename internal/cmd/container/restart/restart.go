package restart

import (
	"context"

	"github.com/schmitthub/dockhand/internal/cmd/container/shared"
	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// RestartOptions holds options for the restart command.
type RestartOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Containers []string
}

// NewCmdRestart creates the container restart command.
func NewCmdRestart(f *cmdutil.Factory, runF func(context.Context, *RestartOptions) error) *cobra.Command {
	opts := &RestartOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "restart CONTAINER [CONTAINER...]",
		Short: "Restart one or more containers",
		Example: `  # Restart a container
  dockhand containers restart web`,
		Args: cmdutil.RequiresMinArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Containers = args
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return restartRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func restartRun(ctx context.Context, opts *RestartOptions) error {
	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	return shared.RunForEach(opts.IOStreams, opts.Containers, func(name string) error {
		return client.RestartContainer(ctx, name)
	})
}
