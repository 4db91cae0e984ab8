package stats

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
)

// Load levels above these thresholds are drawn in red.
const (
	cpuRedThreshold    = 50.0
	memoryRedThreshold = 80.0
)

// StatsOptions holds options for the stats command.
type StatsOptions struct {
	IOStreams *iostreams.IOStreams
	Client    func(context.Context) (*engine.Client, error)

	Format *cmdutil.FormatFlags
}

// statsRow is the display shape for one container's resource usage.
type statsRow struct {
	Name          string `json:"name"`
	CPUPercent    string `json:"cpu_percent"`
	MemoryUsage   string `json:"memory_usage"`
	MemoryPercent string `json:"memory_percent"`
	NetworkIO     string `json:"network_io"`
	BlockIO       string `json:"block_io"`
}

// NewCmdStats creates the monitor stats command.
func NewCmdStats(f *cmdutil.Factory, runF func(context.Context, *StatsOptions) error) *cobra.Command {
	opts := &StatsOptions{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show resource usage of running containers",
		Long: `Show a one-shot snapshot of CPU, memory, network, and block I/O
usage for every running container.`,
		Example: `  # Resource usage table
  dockhand monitor stats

  # Structured output
  dockhand monitor stats --json`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return statsRun(cmd.Context(), opts)
		},
	}

	opts.Format = cmdutil.AddFormatFlags(cmd)

	return cmd
}

func statsRun(ctx context.Context, opts *StatsOptions) error {
	ios := opts.IOStreams
	cs := ios.ColorScheme()

	client, err := opts.Client(ctx)
	if err != nil {
		return err
	}

	stats, err := client.ContainerStats(ctx)
	if err != nil {
		return fmt.Errorf("fetching container stats: %w", err)
	}

	if len(stats) == 0 && opts.Format.IsDefault() && !opts.Format.Quiet {
		return ios.PrintInfo("No running containers to show stats for.")
	}

	rows := make([]statsRow, len(stats))
	for i, s := range stats {
		rows[i] = statsRow{
			Name:          s.Name,
			CPUPercent:    s.CPUPercent,
			MemoryUsage:   s.MemoryUsage,
			MemoryPercent: s.MemoryPercent,
			NetworkIO:     s.NetworkIO,
			BlockIO:       s.BlockIO,
		}
	}

	switch {
	case opts.Format.Quiet:
		for _, r := range rows {
			fmt.Fprintln(ios.Out, r.Name)
		}
		return nil
	case opts.Format.IsJSON():
		return cmdutil.WriteJSON(ios.Out, rows)
	case opts.Format.IsTemplate():
		return cmdutil.ExecuteTemplate(ios.Out, opts.Format.Template(), cmdutil.ToAny(rows))
	default:
		table := ios.NewTablePrinter("NAME", "CPU %", "MEM USAGE", "MEM %", "NET I/O", "BLOCK I/O")
		for _, r := range rows {
			table.AddRow(
				r.Name,
				loadColor(cs, r.CPUPercent, cpuRedThreshold),
				r.MemoryUsage,
				loadColor(cs, r.MemoryPercent, memoryRedThreshold),
				r.NetworkIO,
				r.BlockIO,
			)
		}
		return table.Render()
	}
}

// loadColor colors a percentage value red once it crosses the threshold,
// green otherwise. Unparseable values count as zero load.
func loadColor(cs *iostreams.ColorScheme, value string, threshold float64) string {
	pct, err := strconv.ParseFloat(strings.TrimSuffix(value, "%"), 64)
	if err != nil {
		pct = 0
	}
	if pct > threshold {
		return cs.Red(value)
	}
	return cs.Green(value)
}
