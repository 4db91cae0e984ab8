package kill

import (
	"context"

	"github.com/schmitthub/dockhand/internal/cmd/container/shared"
	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// KillOptions holds options for the kill command.
type KillOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Signal string

	Containers []string
}

// NewCmdKill creates the container kill command.
func NewCmdKill(f *cmdutil.Factory, runF func(context.Context, *KillOptions) error) *cobra.Command {
	opts := &KillOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "kill CONTAINER [CONTAINER...]",
		Short: "Kill one or more running containers",
		Long: `Kill one or more running containers.

The main process inside each container is sent SIGKILL, or the signal
named with --signal.`,
		Example: `  # Kill a container
  dockhand containers kill web

  # Send a specific signal
  dockhand containers kill --signal SIGHUP web
  dockhand containers kill -s SIGINT web db`,
		Args: cmdutil.RequiresMinArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Containers = args
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return killRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Signal, "signal", "s", "", "Signal to send to the container (default SIGKILL)")

	return cmd
}

func killRun(ctx context.Context, opts *KillOptions) error {
	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	return shared.RunForEach(opts.IOStreams, opts.Containers, func(name string) error {
		return client.Kill(ctx, name, opts.Signal)
	})
}
