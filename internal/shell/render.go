package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/schmitthub/dockhand/internal/text"
)

const (
	ruleWidth    = 80
	logTailLines = 50
	sysInfoLines = 20

	cpuRedThreshold    = 50.0
	memoryRedThreshold = 80.0
)

// renderContainerMenu draws the numbered container table and its action
// footer. Row numbers start at 1 and match what pick resolves.
func (s *Session) renderContainerMenu(containers []engine.Container) {
	cs := s.ios.ColorScheme()
	out := s.ios.Out

	fmt.Fprintln(out)
	fmt.Fprintln(out, cs.Bold(cs.Cyan("📦 Docker Containers (Interactive)")))
	fmt.Fprintln(out, cs.Dim(strings.Repeat("─", ruleWidth)))
	fmt.Fprintf(out, "%s %s %s %s %s %s\n",
		cs.Bold(text.PadRight("#", 4)),
		cs.Bold(text.PadRight("ID", 12)),
		cs.Bold(text.PadRight("NAME", 20)),
		cs.Bold(text.PadRight("IMAGE", 25)),
		cs.Bold(text.PadRight("STATUS", 15)),
		cs.Bold("PORTS"))
	fmt.Fprintln(out, cs.Dim(strings.Repeat("─", ruleWidth)))

	for i, ct := range containers {
		fmt.Fprintf(out, "%s %s %s %s %s %s\n",
			cs.Bold(cs.Yellow(text.PadRight(strconv.Itoa(i+1), 4))),
			cs.Dim(text.PadRight(shortID(ct.ID), 12)),
			text.PadRight(ct.Name, 20),
			cs.Cyan(text.PadRight(ct.Image, 25)),
			statusCell(cs, ct, 15),
			cs.Dim(ct.Ports))
	}

	s.renderActions(containerMenuActions)
}

// renderImageMenu draws the numbered image table and its action footer.
func (s *Session) renderImageMenu(images []engine.Image) {
	cs := s.ios.ColorScheme()
	out := s.ios.Out

	fmt.Fprintln(out)
	fmt.Fprintln(out, cs.Bold(cs.Cyan("🖼️  Docker Images (Interactive)")))
	fmt.Fprintln(out, cs.Dim(strings.Repeat("─", ruleWidth)))
	fmt.Fprintf(out, "%s %s %s %s %s %s\n",
		cs.Bold(text.PadRight("#", 4)),
		cs.Bold(text.PadRight("ID", 12)),
		cs.Bold(text.PadRight("REPOSITORY", 25)),
		cs.Bold(text.PadRight("TAG", 10)),
		cs.Bold(text.PadRight("SIZE", 12)),
		cs.Bold("CREATED"))
	fmt.Fprintln(out, cs.Dim(strings.Repeat("─", ruleWidth)))

	for i, img := range images {
		fmt.Fprintf(out, "%s %s %s %s %s %s\n",
			cs.Bold(cs.Yellow(text.PadRight(strconv.Itoa(i+1), 4))),
			cs.Dim(text.PadRight(shortID(img.ID), 12)),
			text.PadRight(img.Repository, 25),
			cs.Cyan(text.PadRight(img.Tag, 10)),
			cs.Yellow(text.PadRight(img.Size, 12)),
			cs.Dim(img.Created))
	}

	s.renderActions(imageMenuActions)
}

// renderActions prints a sub-menu's action footer below its table.
func (s *Session) renderActions(actions []menuAction) {
	cs := s.ios.ColorScheme()
	out := s.ios.Out

	fmt.Fprintln(out)
	fmt.Fprintln(out, cs.Bold(cs.Yellow("🔧 Available Actions:")))
	for _, a := range actions {
		fmt.Fprintf(out, "  %s - %s\n", cs.Cyan(a.usage), a.desc)
	}
	fmt.Fprintf(out, "  %s - Back to main menu\n", cs.Cyan("back"))
	fmt.Fprintln(out)
}

// renderNetworks draws the plain network table.
func (s *Session) renderNetworks(networks []engine.Network) {
	if len(networks) == 0 {
		s.ios.PrintInfo("No networks found.")
		return
	}

	cs := s.ios.ColorScheme()
	out := s.ios.Out

	fmt.Fprintln(out)
	fmt.Fprintln(out, cs.Bold(cs.Cyan("🌐 Docker Networks")))
	fmt.Fprintln(out, cs.Dim(strings.Repeat("─", ruleWidth)))
	fmt.Fprintf(out, "%s %s %s %s\n",
		cs.Bold(text.PadRight("ID", 12)),
		cs.Bold(text.PadRight("NAME", 20)),
		cs.Bold(text.PadRight("DRIVER", 15)),
		cs.Bold("SCOPE"))
	fmt.Fprintln(out, cs.Dim(strings.Repeat("─", ruleWidth)))

	for _, nw := range networks {
		fmt.Fprintf(out, "%s %s %s %s\n",
			cs.Dim(text.PadRight(shortID(nw.ID), 12)),
			text.PadRight(nw.Name, 20),
			cs.Cyan(text.PadRight(nw.Driver, 15)),
			cs.Yellow(nw.Scope))
	}
	fmt.Fprintln(out)
}

// renderVolumes draws the plain volume table.
func (s *Session) renderVolumes(volumes []engine.Volume) {
	if len(volumes) == 0 {
		s.ios.PrintInfo("No volumes found.")
		return
	}

	cs := s.ios.ColorScheme()
	out := s.ios.Out

	fmt.Fprintln(out)
	fmt.Fprintln(out, cs.Bold(cs.Cyan("💾 Docker Volumes")))
	fmt.Fprintln(out, cs.Dim(strings.Repeat("─", ruleWidth)))
	fmt.Fprintf(out, "%s %s %s\n",
		cs.Bold(text.PadRight("NAME", 20)),
		cs.Bold(text.PadRight("DRIVER", 15)),
		cs.Bold("MOUNTPOINT"))
	fmt.Fprintln(out, cs.Dim(strings.Repeat("─", ruleWidth)))

	for _, vol := range volumes {
		fmt.Fprintf(out, "%s %s %s\n",
			text.PadRight(vol.Name, 20),
			cs.Cyan(text.PadRight(vol.Driver, 15)),
			cs.Dim(vol.Mountpoint))
	}
	fmt.Fprintln(out)
}

// renderStats draws one usage row per running container, coloring the CPU
// and memory percentages by load.
func (s *Session) renderStats(stats []engine.Stats) {
	if len(stats) == 0 {
		s.ios.PrintInfo("No running containers to show stats for.")
		return
	}

	cs := s.ios.ColorScheme()
	out := s.ios.Out

	fmt.Fprintln(out)
	fmt.Fprintln(out, cs.Bold(cs.Cyan("📊 Container Statistics")))
	fmt.Fprintln(out, cs.Dim(strings.Repeat("─", ruleWidth)))
	fmt.Fprintf(out, "%s %s %s %s %s %s\n",
		cs.Bold(text.PadRight("NAME", 20)),
		cs.Bold(text.PadRight("CPU %", 10)),
		cs.Bold(text.PadRight("MEMORY USAGE", 20)),
		cs.Bold(text.PadRight("MEM %", 10)),
		cs.Bold(text.PadRight("NET I/O", 15)),
		cs.Bold("BLOCK I/O"))
	fmt.Fprintln(out, cs.Dim(strings.Repeat("─", ruleWidth)))

	for _, st := range stats {
		fmt.Fprintf(out, "%s %s %s %s %s %s\n",
			text.PadRight(st.Name, 20),
			loadCell(cs, st.CPUPercent, cpuRedThreshold, 10),
			cs.Yellow(text.PadRight(st.MemoryUsage, 20)),
			loadCell(cs, st.MemoryPercent, memoryRedThreshold, 10),
			cs.Cyan(text.PadRight(st.NetworkIO, 15)),
			cs.Dim(st.BlockIO))
	}
	fmt.Fprintln(out)
}

// renderLogs prints at most logTailLines log lines, dimmed so they stand
// apart from the prompt and status output around them.
func (s *Session) renderLogs(logs string) {
	cs := s.ios.ColorScheme()
	out := s.ios.Out

	fmt.Fprintln(out)
	fmt.Fprintln(out, cs.Bold(cs.Cyan("📋 Container Logs")))
	fmt.Fprintln(out, cs.Dim(strings.Repeat("─", ruleWidth)))

	if strings.TrimSpace(logs) == "" {
		s.ios.PrintInfo("No logs available.")
	} else {
		for i, line := range strings.Split(strings.TrimRight(logs, "\n"), "\n") {
			if i == logTailLines {
				break
			}
			fmt.Fprintln(out, cs.Dim(line))
		}
	}
	fmt.Fprintln(out)
}

// renderSystemInfo prints the key/value lines from the engine's system
// report, capped at sysInfoLines lines examined.
func (s *Session) renderSystemInfo(info string) {
	cs := s.ios.ColorScheme()
	out := s.ios.Out

	fmt.Fprintln(out)
	fmt.Fprintln(out, cs.Bold(cs.Cyan("🖥️  Docker System Information")))
	fmt.Fprintln(out, cs.Dim(strings.Repeat("─", ruleWidth)))

	var pairs []iostreams.KeyValuePair
	for i, line := range strings.Split(info, "\n") {
		if i == sysInfoLines {
			break
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		pairs = append(pairs, iostreams.KeyValuePair{
			Key:   strings.TrimSpace(key),
			Value: strings.TrimSpace(value),
		})
	}
	s.ios.RenderKeyValueBlock(pairs...)
	fmt.Fprintln(out)
}

// renderHelp prints the interactive command reference.
func (s *Session) renderHelp() {
	cs := s.ios.ColorScheme()
	out := s.ios.Out

	fmt.Fprintln(out, cs.Bold(cs.Yellow("🔄 Interactive Mode Commands:")))
	fmt.Fprintln(out, cs.Dim(strings.Repeat("─", ruleWidth)))
	fmt.Fprintln(out)

	fmt.Fprintln(out, cs.Bold(cs.Green("🐳 Container Commands:")))
	fmt.Fprintf(out, "  %s - List containers and enter the numbered action menu\n", cs.Cyan("containers"))
	fmt.Fprintln(out)

	fmt.Fprintln(out, cs.Bold(cs.Green("🖼️  Image Commands:")))
	fmt.Fprintf(out, "  %s - List images and enter the numbered action menu\n", cs.Cyan("images"))
	fmt.Fprintln(out)

	fmt.Fprintln(out, cs.Bold(cs.Green("🌐 Network Commands:")))
	fmt.Fprintf(out, "  %s - List all networks\n", cs.Cyan("networks"))
	fmt.Fprintln(out)

	fmt.Fprintln(out, cs.Bold(cs.Green("💾 Volume Commands:")))
	fmt.Fprintf(out, "  %s - List all volumes\n", cs.Cyan("volumes"))
	fmt.Fprintln(out)

	fmt.Fprintln(out, cs.Bold(cs.Green("📊 Monitoring Commands:")))
	fmt.Fprintf(out, "  %s - Show container statistics\n", cs.Cyan("stats"))
	fmt.Fprintf(out, "  %s - Show Docker system information\n", cs.Cyan("system"))
	fmt.Fprintf(out, "  %s - Monitor Docker events\n", cs.Cyan("events"))
	fmt.Fprintf(out, "  %s - Show the real-time system dashboard\n", cs.Cyan("dashboard"))
	fmt.Fprintf(out, "  %s - Display all system charts\n", cs.Cyan("charts"))
	fmt.Fprintln(out)

	fmt.Fprintln(out, cs.Bold(cs.Green("🔧 Utility Commands:")))
	fmt.Fprintf(out, "  %s - Show this help message\n", cs.Cyan("help"))
	fmt.Fprintf(out, "  %s - Exit interactive mode\n", cs.Cyan("exit"))
	fmt.Fprintf(out, "  %s - Exit interactive mode\n", cs.Cyan("quit"))
	fmt.Fprintln(out)
}

// shortID trims an engine ID to the familiar 12-character short form.
// Listings usually deliver short IDs already; inspect-derived IDs do not.
func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

// statusCell pads and colors a container's status: green while running,
// red otherwise.
func statusCell(cs *iostreams.ColorScheme, ct engine.Container, width int) string {
	cell := text.PadRight(ct.Status, width)
	if ct.IsRunning() {
		return cs.Green(cell)
	}
	return cs.Red(cell)
}

// loadCell pads and colors a percentage by load: red above the threshold,
// green otherwise. Unparseable values count as idle.
func loadCell(cs *iostreams.ColorScheme, value string, threshold float64, width int) string {
	cell := text.PadRight(value, width)
	f, _ := strconv.ParseFloat(strings.TrimSuffix(value, "%"), 64)
	if f > threshold {
		return cs.Red(cell)
	}
	return cs.Green(cell)
}
