package system

import (
	"context"
	"fmt"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// SystemOptions holds options for the system command.
type SystemOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)
}

// NewCmdSystem creates the monitor system command.
func NewCmdSystem(f *cmdutil.Factory, runF func(context.Context, *SystemOptions) error) *cobra.Command {
	opts := &SystemOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "system",
		Short: "Show engine system information",
		Example: `  # Full system information report
  dockhand monitor system`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return systemRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func systemRun(ctx context.Context, opts *SystemOptions) error {
	ios := opts.IOStreams

	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	info, err := client.SystemInfo(ctx)
	if err != nil {
		return err
	}

	if err := ios.StartPager(); err != nil {
		ios.Logger.Warn().Err(err).Msg("failed to start pager")
	}
	defer ios.StopPager()

	fmt.Fprint(ios.Out, info)
	return nil
}
