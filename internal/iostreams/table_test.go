package iostreams

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// forceColorProfile sets lipgloss to emit ANSI escapes regardless of writer type.
// Restores the previous profile on cleanup.
func forceColorProfile(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func TestTablePrinter_Plain(t *testing.T) {
	tio := NewTestIOStreams()

	tp := tio.IOStreams.NewTablePrinter("ID", "NAME", "STATUS")
	tp.AddRow("a1b2c3d4e5f6", "web", "Up 2 hours")
	tp.AddRow("f6e5d4c3b2a1", "db", "Exited (0)")

	require.NoError(t, tp.Render())

	output := tio.OutBuf.String()
	assert.Contains(t, output, "ID")
	assert.Contains(t, output, "NAME")
	assert.Contains(t, output, "STATUS")
	assert.Contains(t, output, "a1b2c3d4e5f6")
	assert.Contains(t, output, "web")
	assert.Contains(t, output, "Up 2 hours")
	assert.Contains(t, output, "db")

	// Plain mode carries no ANSI escapes
	assert.NotContains(t, output, "\x1b[")
}

func TestTablePrinter_PlainAlignment(t *testing.T) {
	tio := NewTestIOStreams()

	tp := tio.IOStreams.NewTablePrinter("NAME", "DRIVER")
	tp.AddRow("data", "local")
	tp.AddRow("much-longer-volume-name", "local")

	require.NoError(t, tp.Render())

	lines := strings.Split(strings.TrimRight(tio.OutBuf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	// tabwriter aligns the DRIVER column across rows
	idx1 := strings.Index(lines[1], "local")
	idx2 := strings.Index(lines[2], "local")
	assert.Equal(t, idx1, idx2, "columns should align")
}

func TestTablePrinter_Styled(t *testing.T) {
	forceColorProfile(t)
	tio := NewTestIOStreams()
	tio.SetInteractive(true)
	tio.SetColorEnabled(true)
	tio.SetTerminalSize(80, 24)

	tp := tio.IOStreams.NewTablePrinter("NAME", "STATUS", "IMAGE")
	tp.AddRow("web", "running", "nginx:latest")
	tp.AddRow("db", "stopped", "postgres:16")

	require.NoError(t, tp.Render())

	output := tio.OutBuf.String()
	assert.Contains(t, output, "NAME")
	assert.Contains(t, output, "web")
	assert.Contains(t, output, "nginx:latest")

	// Styled output contains ANSI escapes and a divider
	assert.Contains(t, output, "\x1b[", "styled output should contain ANSI escapes")
	assert.Contains(t, output, "─", "styled output should contain a divider")
}

func TestTablePrinter_MissingColumns(t *testing.T) {
	tio := NewTestIOStreams()

	tp := tio.IOStreams.NewTablePrinter("A", "B", "C")
	tp.AddRow("only-one")

	require.NoError(t, tp.Render())

	output := tio.OutBuf.String()
	assert.Contains(t, output, "only-one")

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	require.Len(t, lines, 2, "header plus one data row")
}

func TestTablePrinter_NoHeaders(t *testing.T) {
	tio := NewTestIOStreams()

	tp := tio.IOStreams.NewTablePrinter()
	tp.AddRow("ignored")

	require.NoError(t, tp.Render())
	assert.Empty(t, tio.OutBuf.String())
}

func TestTablePrinter_Len(t *testing.T) {
	tio := NewTestIOStreams()

	tp := tio.IOStreams.NewTablePrinter("X")
	assert.Equal(t, 0, tp.Len())

	tp.AddRow("1")
	tp.AddRow("2")
	assert.Equal(t, 2, tp.Len())
}
