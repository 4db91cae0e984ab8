// Package charts renders ASCII charts of engine state: usage bars, pie-style
// distribution overviews, and a combined dashboard. All output goes through
// an injected IOStreams so color degrades cleanly and tests capture plain
// text.
package charts

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/docker/go-units"

	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/schmitthub/dockhand/internal/text"
)

const (
	usageBarWidth  = 50
	statusBarWidth = 30
	dashboardWidth = 100
)

// Renderer draws charts onto an IOStreams.
type Renderer struct {
	ios *iostreams.IOStreams
}

// NewRenderer returns a Renderer writing to ios.Out.
func NewRenderer(ios *iostreams.IOStreams) *Renderer {
	return &Renderer{ios: ios}
}

// section opens a chart section: blank line, styled title, full-width rule.
func (r *Renderer) section(title string) {
	fmt.Fprintln(r.ios.Out)
	r.ios.RenderHeader(title)
	r.ios.RenderDivider()
}

// CPUChart draws one usage bar per container, scaled to 100%.
func (r *Renderer) CPUChart(stats []engine.Stats) {
	cs := r.ios.ColorScheme()
	out := r.ios.Out

	if len(stats) == 0 {
		r.ios.RenderEmptyState("No running containers to display CPU usage")
		return
	}

	r.section("📊 CPU Usage Chart")

	for _, stat := range stats {
		cpu := parsePercent(stat.CPUPercent)
		bar, empty := usageBar(cpu, usageBarWidth)

		fmt.Fprintf(out, "%s %s%s %s%%\n",
			text.PadRight(text.Truncate(stat.Name, 20), 20),
			levelColor(cs, cpu, bar),
			cs.Dim(empty),
			cs.Bold(formatPercent(cpu)),
		)
	}
	fmt.Fprintln(out)
}

// MemoryChart draws one usage bar per container with the absolute usage
// appended.
func (r *Renderer) MemoryChart(stats []engine.Stats) {
	cs := r.ios.ColorScheme()
	out := r.ios.Out

	if len(stats) == 0 {
		r.ios.RenderEmptyState("No running containers to display memory usage")
		return
	}

	r.section("💾 Memory Usage Chart")

	for _, stat := range stats {
		mem := parsePercent(stat.MemoryPercent)
		bar, empty := usageBar(mem, usageBarWidth)

		fmt.Fprintf(out, "%s %s%s %s%% (%s)\n",
			text.PadRight(text.Truncate(stat.Name, 20), 20),
			levelColor(cs, mem, bar),
			cs.Dim(empty),
			cs.Bold(formatPercent(mem)),
			cs.Cyan(stat.MemoryUsage),
		)
	}
	fmt.Fprintln(out)
}

// SystemPie draws the share of total CPU and memory each container holds.
func (r *Renderer) SystemPie(stats []engine.Stats) {
	cs := r.ios.ColorScheme()
	out := r.ios.Out

	if len(stats) == 0 {
		r.ios.RenderEmptyState("No running containers to display system overview")
		return
	}

	r.section("🍰 System Resource Overview")

	var totalCPU, totalMem float64
	for _, stat := range stats {
		totalCPU += parsePercent(stat.CPUPercent)
		totalMem += parsePercent(stat.MemoryPercent)
	}

	fmt.Fprintln(out, cs.Bold(cs.Yellow("CPU Distribution:")))
	for _, stat := range stats {
		share := shareOf(parsePercent(stat.CPUPercent), totalCPU)
		fmt.Fprintf(out, "  %s %s (%.1f%%)\n", pieSlice(share), stat.Name, share)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, cs.Bold(cs.Yellow("Memory Distribution:")))
	for _, stat := range stats {
		share := shareOf(parsePercent(stat.MemoryPercent), totalMem)
		fmt.Fprintf(out, "  %s %s (%.1f%%)\n", pieSlice(share), stat.Name, share)
	}
	fmt.Fprintln(out)
}

// NetworkChart lists per-container network I/O counters.
func (r *Renderer) NetworkChart(stats []engine.Stats) {
	cs := r.ios.ColorScheme()
	out := r.ios.Out

	if len(stats) == 0 {
		r.ios.RenderEmptyState("No running containers to display network traffic")
		return
	}

	r.section("🌐 Network Traffic Chart")

	for _, stat := range stats {
		fmt.Fprintf(out, "%s %s\n", text.PadRight(stat.Name, 20), cs.Cyan(stat.NetworkIO))
	}
	fmt.Fprintln(out)
}

// StorageChart lists per-container block I/O counters.
func (r *Renderer) StorageChart(stats []engine.Stats) {
	cs := r.ios.ColorScheme()
	out := r.ios.Out

	if len(stats) == 0 {
		r.ios.RenderEmptyState("No running containers to display storage usage")
		return
	}

	r.section("💿 Storage I/O Chart")

	for _, stat := range stats {
		fmt.Fprintf(out, "%s %s\n", text.PadRight(stat.Name, 20), cs.Magenta(stat.BlockIO))
	}
	fmt.Fprintln(out)
}

// StatusChart buckets containers by lifecycle state and draws the share of
// each bucket.
func (r *Renderer) StatusChart(containers []engine.Container) {
	cs := r.ios.ColorScheme()
	out := r.ios.Out

	if len(containers) == 0 {
		r.ios.RenderEmptyState("No containers to display status chart")
		return
	}

	r.section("📦 Container Status Overview")

	counts := make(map[string]int)
	for _, ct := range containers {
		counts[statusBucket(ct.Status)]++
	}

	total := len(containers)
	for _, bucket := range []string{"Running", "Stopped", "Paused", "Other"} {
		count, ok := counts[bucket]
		if !ok {
			continue
		}
		pct := float64(count) / float64(total) * 100
		barLen := clampBar(int(pct/100*statusBarWidth), statusBarWidth)
		bar := strings.Repeat("█", barLen)
		empty := strings.Repeat("░", statusBarWidth-barLen)

		fmt.Fprintf(out, "%s %s%s %s (%s)\n",
			text.PadRight(bucket, 10),
			statusColor(cs, bucket, bar),
			cs.Dim(empty),
			cs.Bold(strconv.Itoa(count)),
			cs.Cyanf("%.1f%%", pct),
		)
	}
	fmt.Fprintln(out)
}

// ImageSizeChart draws the ten largest images, biggest first.
func (r *Renderer) ImageSizeChart(images []engine.Image) {
	cs := r.ios.ColorScheme()
	out := r.ios.Out

	if len(images) == 0 {
		r.ios.RenderEmptyState("No images to display size chart")
		return
	}

	r.section("🖼️  Image Size Distribution")

	sorted := make([]engine.Image, len(images))
	copy(sorted, images)
	sort.SliceStable(sorted, func(i, j int) bool {
		return parseSize(sorted[i].Size) > parseSize(sorted[j].Size)
	})
	if len(sorted) > 10 {
		sorted = sorted[:10]
	}

	for _, img := range sorted {
		barLen := clampBar(int(parseSize(img.Size)/1024), usageBarWidth)
		bar := strings.Repeat("█", barLen)
		empty := strings.Repeat("░", usageBarWidth-barLen)

		fmt.Fprintf(out, "%s %s%s %s\n",
			text.PadRight(img.Reference(), 25),
			cs.Cyan(bar),
			cs.Dim(empty),
			cs.Yellow(img.Size),
		)
	}
	fmt.Fprintln(out)
}

// Dashboard draws one wide table row per container with colored load values.
func (r *Renderer) Dashboard(stats []engine.Stats) {
	cs := r.ios.ColorScheme()
	out := r.ios.Out

	fmt.Fprintln(out)
	r.ios.RenderHeader("📊 Real-Time System Dashboard")
	fmt.Fprintln(out, cs.Dim(strings.Repeat("═", dashboardWidth)))

	fmt.Fprintf(out, "%s %s %s %s %s %s\n",
		text.PadRight(cs.Bold("CONTAINER"), 20),
		text.PadRight(cs.Bold("CPU %"), 10),
		text.PadRight(cs.Bold("MEMORY %"), 15),
		text.PadRight(cs.Bold("MEMORY USAGE"), 15),
		text.PadRight(cs.Bold("NETWORK I/O"), 20),
		text.PadRight(cs.Bold("BLOCK I/O"), 15),
	)
	fmt.Fprintln(out, cs.Dim(strings.Repeat("─", dashboardWidth)))

	for _, stat := range stats {
		cpu := parsePercent(stat.CPUPercent)
		mem := parsePercent(stat.MemoryPercent)

		fmt.Fprintf(out, "%s %s %s %s %s %s\n",
			text.PadRight(stat.Name, 20),
			text.PadRight(levelColor(cs, cpu, formatPercent(cpu)), 10),
			text.PadRight(levelColor(cs, mem, formatPercent(mem)), 15),
			text.PadRight(cs.Cyan(stat.MemoryUsage), 15),
			text.PadRight(cs.Dim(stat.NetworkIO), 20),
			text.PadRight(cs.Magenta(stat.BlockIO), 15),
		)
	}
	fmt.Fprintln(out, cs.Dim(strings.Repeat("═", dashboardWidth)))
	fmt.Fprintln(out)
}

// parsePercent reads a "12.5%" style value; anything unparseable is zero.
func parsePercent(s string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, "%", ""), 64)
	if err != nil {
		return 0
	}
	return v
}

// parseSize reads a human size like "187MB" into bytes; unparseable is zero.
func parseSize(s string) int64 {
	n, err := units.RAMInBytes(s)
	if err != nil {
		return 0
	}
	return n
}

// formatPercent renders a percent value the shortest way ("12.5", "0").
func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// usageBar returns the filled and empty segments of a 0..100% bar.
func usageBar(pct float64, width int) (bar, empty string) {
	barLen := clampBar(int(pct/100*float64(width)), width)
	return strings.Repeat("█", barLen), strings.Repeat("░", width-barLen)
}

// clampBar keeps a bar length inside [0, width]; stats above 100% (multi-core
// CPU) would otherwise overflow the bar.
func clampBar(n, width int) int {
	if n < 0 {
		return 0
	}
	if n > width {
		return width
	}
	return n
}

// levelColor colors s by load level: red above 80, yellow above 50, green
// otherwise.
func levelColor(cs *iostreams.ColorScheme, pct float64, s string) string {
	switch {
	case pct > 80:
		return cs.Red(s)
	case pct > 50:
		return cs.Yellow(s)
	default:
		return cs.Green(s)
	}
}

// statusColor colors a status bucket's bar.
func statusColor(cs *iostreams.ColorScheme, bucket, s string) string {
	switch bucket {
	case "Running":
		return cs.Green(s)
	case "Stopped":
		return cs.Red(s)
	case "Paused":
		return cs.Yellow(s)
	default:
		return cs.Cyan(s)
	}
}

// statusBucket maps a raw engine status line to a display bucket.
func statusBucket(status string) string {
	switch {
	case strings.Contains(status, "Up"):
		return "Running"
	case strings.Contains(status, "Exited"):
		return "Stopped"
	case strings.Contains(status, "Paused"):
		return "Paused"
	default:
		return "Other"
	}
}

// shareOf returns part's percentage share of total, zero when total is zero.
func shareOf(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return part / total * 100
}

// pieSlice picks a quarter-fill symbol for a 0..100% share.
func pieSlice(pct float64) string {
	symbols := []string{"◐", "◑", "◒", "◓"}
	idx := int(pct / 25)
	if idx > 3 {
		idx = 3
	}
	return symbols[idx]
}
