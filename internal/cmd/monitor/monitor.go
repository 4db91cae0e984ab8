// Package monitor provides the monitoring command and its subcommands.
package monitor

import (
	"github.com/schmitthub/dockhand/internal/cmd/monitor/charts"
	"github.com/schmitthub/dockhand/internal/cmd/monitor/dashboard"
	"github.com/schmitthub/dockhand/internal/cmd/monitor/events"
	"github.com/schmitthub/dockhand/internal/cmd/monitor/stats"
	"github.com/schmitthub/dockhand/internal/cmd/monitor/system"
	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/spf13/cobra"
)

// NewCmdMonitor creates the monitor parent command.
func NewCmdMonitor(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Monitor containers and the engine",
		Long: `Monitor running containers and the engine itself.

Subcommands show live resource usage, system information, the engine
event stream, and chart views of the same data.`,
		Example: `  # Resource usage of running containers
  dockhand monitor stats

  # Engine system information
  dockhand monitor system

  # Follow the engine event stream
  dockhand monitor events

  # Chart views
  dockhand monitor dashboard
  dockhand monitor charts cpu`,
		// No RunE - this is a parent command
	}

	// Add subcommands
	cmd.AddCommand(charts.NewCmdCharts(f, nil))
	cmd.AddCommand(dashboard.NewCmdDashboard(f, nil))
	cmd.AddCommand(events.NewCmdEvents(f, nil))
	cmd.AddCommand(stats.NewCmdStats(f, nil))
	cmd.AddCommand(system.NewCmdSystem(f, nil))

	return cmd
}
