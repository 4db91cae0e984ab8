package iostreams

import (
	"fmt"
	"strings"
)

// KeyValuePair represents a label-value pair for RenderKeyValueBlock.
type KeyValuePair struct {
	Key   string
	Value string
}

// RenderHeader writes a styled header to Out.
// With colors: bold primary title, optional muted subtitle.
// Without colors: "TITLE" or "TITLE — subtitle".
func (ios *IOStreams) RenderHeader(title string, subtitle ...string) {
	cs := ios.ColorScheme()

	if cs.Enabled() {
		header := TitleStyle.Render(title)
		if len(subtitle) > 0 && subtitle[0] != "" {
			header += " " + SubtitleStyle.Render(subtitle[0])
		}
		fmt.Fprintln(ios.Out, header)
	} else {
		if len(subtitle) > 0 && subtitle[0] != "" {
			fmt.Fprintf(ios.Out, "%s — %s\n", title, subtitle[0])
		} else {
			fmt.Fprintln(ios.Out, title)
		}
	}
}

// RenderDivider writes a horizontal divider line to Out.
// Uses the terminal width for the divider length.
func (ios *IOStreams) RenderDivider() {
	width := ios.TerminalWidth()
	cs := ios.ColorScheme()

	divider := strings.Repeat("─", width)
	if cs.Enabled() {
		divider = DividerStyle.Render(divider)
	}
	fmt.Fprintln(ios.Out, divider)
}

// RenderLabeledDivider writes a divider with a centered label to Out.
// Example: "──── Section ────"
func (ios *IOStreams) RenderLabeledDivider(label string) {
	width := ios.TerminalWidth()
	cs := ios.ColorScheme()

	labelLen := len(label)
	if labelLen+4 >= width {
		// Label too long for divider, just render a plain divider
		ios.RenderDivider()
		return
	}

	leftWidth := (width - labelLen - 2) / 2
	rightWidth := width - labelLen - 2 - leftWidth

	left := strings.Repeat("─", leftWidth)
	right := strings.Repeat("─", rightWidth)

	if cs.Enabled() {
		fmt.Fprintln(ios.Out, DividerStyle.Render(left)+" "+cs.Muted(label)+" "+DividerStyle.Render(right))
	} else {
		fmt.Fprintf(ios.Out, "%s %s %s\n", left, label, right)
	}
}

// RenderKeyValueBlock writes multiple key-value pairs with aligned colons to Out.
// Returns without output if no pairs are provided.
func (ios *IOStreams) RenderKeyValueBlock(pairs ...KeyValuePair) {
	if len(pairs) == 0 {
		return
	}

	cs := ios.ColorScheme()

	// Find max key length for alignment
	maxKeyLen := 0
	for _, p := range pairs {
		if len(p.Key) > maxKeyLen {
			maxKeyLen = len(p.Key)
		}
	}

	for _, p := range pairs {
		if cs.Enabled() {
			key := LabelStyle.Width(maxKeyLen + 1).Render(p.Key + ":")
			val := ValueStyle.Render(p.Value)
			fmt.Fprintln(ios.Out, key+" "+val)
		} else {
			fmt.Fprintf(ios.Out, "%-*s %s\n", maxKeyLen+1, p.Key+":", p.Value)
		}
	}
}

// RenderEmptyState writes an empty state message to Out.
// It writes to Out (not ErrOut) because it is a structural data render;
// it replaces where table data would normally appear.
// Use PrintEmpty() for status notifications to ErrOut.
// With colors: muted italic text. Without colors: plain text.
func (ios *IOStreams) RenderEmptyState(message string) {
	cs := ios.ColorScheme()

	if cs.Enabled() {
		fmt.Fprintln(ios.Out, EmptyStateStyle.Render(message))
	} else {
		fmt.Fprintln(ios.Out, message)
	}
}
