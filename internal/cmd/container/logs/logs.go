package logs

import (
	"context"
	"fmt"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// LogsOptions holds options for the logs command.
type LogsOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Tail int

	Container string
}

// NewCmdLogs creates the container logs command.
func NewCmdLogs(f *cmdutil.Factory, runF func(context.Context, *LogsOptions) error) *cobra.Command {
	opts := &LogsOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "logs CONTAINER",
		Short: "Fetch the logs of a container",
		Long: `Fetch the trailing logs of a container.

Output is piped through your pager when it goes to a terminal. Set
DOCKHAND_PAGER or PAGER to change the pager, or set it empty to disable.`,
		Example: `  # Show the last 50 log lines
  dockhand containers logs web

  # Show the last 200 lines
  dockhand containers logs --tail 200 web`,
		Args: cmdutil.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Container = args[0]
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return logsRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVar(&opts.Tail, "tail", 50, "Number of lines to show from the end of the logs")

	return cmd
}

func logsRun(ctx context.Context, opts *LogsOptions) error {
	ios := opts.IOStreams

	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	out, err := client.Logs(ctx, opts.Container, opts.Tail)
	if err != nil {
		return fmt.Errorf("fetching logs for %s: %w", opts.Container, err)
	}

	if err := ios.StartPager(); err != nil {
		ios.Logger.Warn().Err(err).Msg("failed to start pager")
	}
	defer ios.StopPager()

	fmt.Fprint(ios.Out, out)
	return nil
}
