package dashboard

import (
	"context"
	"fmt"

	"github.com/schmitthub/dockhand/internal/charts"
	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// DashboardOptions holds options for the dashboard command.
type DashboardOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)
}

// NewCmdDashboard creates the monitor dashboard command.
func NewCmdDashboard(f *cmdutil.Factory, runF func(context.Context, *DashboardOptions) error) *cobra.Command {
	opts := &DashboardOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show a one-shot dashboard of container load",
		Example: `  # Wide per-container load table
  dockhand monitor dashboard`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return dashboardRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func dashboardRun(ctx context.Context, opts *DashboardOptions) error {
	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	stats, err := client.ContainerStats(ctx)
	if err != nil {
		return fmt.Errorf("fetching container stats: %w", err)
	}

	charts.NewRenderer(opts.IOStreams).Dashboard(stats)
	return nil
}
