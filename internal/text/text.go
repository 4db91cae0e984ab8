// Package text provides pure text/string utility functions.
// All functions are ANSI-aware where relevant (counting visible width,
// truncation). This is a leaf package with zero internal imports.
package text

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ansiPattern matches ANSI escape sequences for stripping.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// sizeUnits are the suffixes used by FormatSize, smallest first.
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count in human-readable form using 1024-based
// units. Bytes are printed without a decimal ("512 B"); larger units get one
// decimal place ("1.5 KB", "1.0 MB").
func FormatSize(bytes uint64) string {
	size := float64(bytes)
	unit := 0
	for size >= 1024 && unit < len(sizeUnits)-1 {
		size /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%d %s", bytes, sizeUnits[unit])
	}
	return fmt.Sprintf("%.1f %s", size, sizeUnits[unit])
}

// Truncate shortens a string to width visible characters, adding "..." if
// truncated. ANSI-aware: counts visible characters only. When truncation
// occurs, ANSI codes are stripped from the result.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}

	visible := CountVisibleWidth(s)
	if visible <= width {
		return s
	}

	plain := StripANSI(s)
	runes := []rune(plain)

	if width <= 3 {
		return string(runes[:min(width, len(runes))])
	}

	return string(runes[:width-3]) + "..."
}

// PadRight pads a string on the right to the specified width.
// ANSI-aware: counts visible characters only.
func PadRight(s string, width int) string {
	visible := CountVisibleWidth(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// CountVisibleWidth returns the visible width of a string, excluding ANSI codes.
func CountVisibleWidth(s string) int {
	plain := StripANSI(s)
	return utf8.RuneCountInString(plain)
}

// StripANSI removes all ANSI escape sequences from a string.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
