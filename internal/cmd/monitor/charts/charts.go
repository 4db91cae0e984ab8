package charts

import (
	"context"
	"fmt"

	"github.com/schmitthub/dockhand/internal/charts"
	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// chartTypes are the accepted TYPE arguments, in display order.
var chartTypes = []string{"cpu", "memory", "network", "storage", "status", "size", "pie"}

// ChartsOptions holds options for the charts command.
type ChartsOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	// Type selects a single chart; empty renders all of them.
	Type string
}

// NewCmdCharts creates the monitor charts command.
func NewCmdCharts(f *cmdutil.Factory, runF func(context.Context, *ChartsOptions) error) *cobra.Command {
	opts := &ChartsOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:       "charts [TYPE]",
		Short:     "Draw ASCII charts of container and image state",
		ValidArgs: chartTypes,
		Long: `Draw ASCII charts of container and image state.

Without a TYPE argument every chart is drawn. TYPE picks a single one:
cpu, memory, network, storage, status, size, or pie.`,
		Example: `  # All charts
  dockhand monitor charts

  # Just the CPU usage bars
  dockhand monitor charts cpu`,
		Args: cmdutil.RequiresMaxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Type = args[0]
			}
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return chartsRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func chartsRun(ctx context.Context, opts *ChartsOptions) error {
	if opts.Type != "" && !validChartType(opts.Type) {
		return cmdutil.FlagErrorf("unknown chart type %q (valid types: cpu, memory, network, storage, status, size, pie)", opts.Type)
	}

	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	r := charts.NewRenderer(opts.IOStreams)

	var stats []engine.Stats
	if opts.Type == "" || needsStats(opts.Type) {
		stats, err = client.ContainerStats(ctx)
		if err != nil {
			return fmt.Errorf("fetching container stats: %w", err)
		}
	}

	switch opts.Type {
	case "cpu":
		r.CPUChart(stats)
	case "memory":
		r.MemoryChart(stats)
	case "network":
		r.NetworkChart(stats)
	case "storage":
		r.StorageChart(stats)
	case "pie":
		r.SystemPie(stats)
	case "status":
		containers, err := client.ListContainers(ctx)
		if err != nil {
			return fmt.Errorf("listing containers: %w", err)
		}
		r.StatusChart(containers)
	case "size":
		images, err := client.ListImages(ctx)
		if err != nil {
			return fmt.Errorf("listing images: %w", err)
		}
		r.ImageSizeChart(images)
	default:
		containers, err := client.ListContainers(ctx)
		if err != nil {
			return fmt.Errorf("listing containers: %w", err)
		}
		images, err := client.ListImages(ctx)
		if err != nil {
			return fmt.Errorf("listing images: %w", err)
		}
		r.CPUChart(stats)
		r.MemoryChart(stats)
		r.SystemPie(stats)
		r.NetworkChart(stats)
		r.StorageChart(stats)
		r.StatusChart(containers)
		r.ImageSizeChart(images)
	}

	return nil
}

func validChartType(t string) bool {
	for _, known := range chartTypes {
		if t == known {
			return true
		}
	}
	return false
}

// needsStats reports whether a single-chart render reads the stats stream.
func needsStats(t string) bool {
	switch t {
	case "cpu", "memory", "network", "storage", "pie":
		return true
	}
	return false
}
