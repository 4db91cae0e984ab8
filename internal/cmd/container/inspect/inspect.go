package inspect

import (
	"context"
	"fmt"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// InspectOptions holds options for the inspect command.
type InspectOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Container string
}

// NewCmdInspect creates the container inspect command.
func NewCmdInspect(f *cmdutil.Factory, runF func(context.Context, *InspectOptions) error) *cobra.Command {
	opts := &InspectOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:     "inspect CONTAINER",
		Aliases: []string{"info"},
		Short:   "Display detailed information on a container",
		Long: `Display the engine's full JSON inspection report for a container.

The report is piped through your pager when output goes to a terminal.`,
		Example: `  # Inspect a container
  dockhand containers inspect web

  # Same command under its other name
  dockhand containers info web`,
		Args: cmdutil.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Container = args[0]
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return inspectRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func inspectRun(ctx context.Context, opts *InspectOptions) error {
	ios := opts.IOStreams

	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	out, err := client.Inspect(ctx, opts.Container)
	if err != nil {
		return fmt.Errorf("inspecting %s: %w", opts.Container, err)
	}

	if err := ios.StartPager(); err != nil {
		ios.Logger.Warn().Err(err).Msg("failed to start pager")
	}
	defer ios.StopPager()

	fmt.Fprint(ios.Out, out)
	return nil
}
