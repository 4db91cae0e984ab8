package stop

import (
	"context"

	"github.com/schmitthub/dockhand/internal/cmd/container/shared"
	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// StopOptions holds options for the stop command.
type StopOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Containers []string
}

// NewCmdStop creates the container stop command.
func NewCmdStop(f *cmdutil.Factory, runF func(context.Context, *StopOptions) error) *cobra.Command {
	opts := &StopOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "stop CONTAINER [CONTAINER...]",
		Short: "Stop one or more running containers",
		Long: `Stop one or more running containers.

The engine sends the main process SIGTERM and, after its grace period,
SIGKILL. Stopped containers keep their state and can be started again.`,
		Example: `  # Stop a container
  dockhand containers stop web

  # Stop several at once
  dockhand containers stop web db`,
		Args: cmdutil.RequiresMinArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Containers = args
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return stopRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func stopRun(ctx context.Context, opts *StopOptions) error {
	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	return shared.RunForEach(opts.IOStreams, opts.Containers, func(name string) error {
		return client.StopContainer(ctx, name)
	})
}
