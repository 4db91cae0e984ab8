package attach

import (
	"context"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// AttachOptions holds options for the attach command.
type AttachOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Container string
}

// NewCmdAttach creates the container attach command.
func NewCmdAttach(f *cmdutil.Factory, runF func(context.Context, *AttachOptions) error) *cobra.Command {
	opts := &AttachOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "attach CONTAINER",
		Short: "Attach local standard streams to a running container",
		Long: `Attach this terminal's input and output to a running container's
main process. Detach with the engine's escape sequence (Ctrl-P Ctrl-Q
by default); Ctrl-C forwards to the container.`,
		Example: `  # Attach to a running container
  dockhand containers attach web`,
		Args: cmdutil.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Container = args[0]
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return attachRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func attachRun(ctx context.Context, opts *AttachOptions) error {
	ios := opts.IOStreams

	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	return client.Attach(ctx, ios.In, ios.Out, ios.ErrOut, opts.Container)
}
