package start

import (
	"context"

	"github.com/schmitthub/dockhand/internal/cmd/container/shared"
	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// StartOptions holds options for the start command.
type StartOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Containers []string
}

// NewCmdStart creates the container start command.
func NewCmdStart(f *cmdutil.Factory, runF func(context.Context, *StartOptions) error) *cobra.Command {
	opts := &StartOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "start CONTAINER [CONTAINER...]",
		Short: "Start one or more stopped containers",
		Example: `  # Start a container
  dockhand containers start web

  # Start several at once
  dockhand containers start web db cache`,
		Args: cmdutil.RequiresMinArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Containers = args
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return startRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func startRun(ctx context.Context, opts *StartOptions) error {
	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	return shared.RunForEach(opts.IOStreams, opts.Containers, func(name string) error {
		return client.StartContainer(ctx, name)
	})
}
