package iostreams

import "github.com/charmbracelet/lipgloss"

// Named colors: canonical color values by X11/CSS name (or nearest
// recognized name). These define the actual colors. They never change.
var (
	ColorBurntOrange = lipgloss.Color("#E8714A") // Warm orange (nearest: X11 Coral)
	ColorDeepSkyBlue = lipgloss.Color("#00BFFF") // Exact X11/CSS: DeepSkyBlue
	ColorEmerald     = lipgloss.Color("#04B575") // Vivid green (nearest: X11 MediumSeaGreen)
	ColorAmber       = lipgloss.Color("#FFCC00") // Warm yellow (nearest: X11 Gold)
	ColorHotPink     = lipgloss.Color("#FF5F87") // Bright pink (nearest: X11 HotPink)
	ColorDimGray     = lipgloss.Color("#626262") // Near X11 DimGray
	ColorOrchid      = lipgloss.Color("#AD58B4") // Purple-pink (nearest: X11 MediumOrchid)
	ColorSkyBlue     = lipgloss.Color("#87CEEB") // Exact X11/CSS: SkyBlue
	ColorCharcoal    = lipgloss.Color("#4A4A4A") // Dark gray
	ColorOnyx        = lipgloss.Color("#3C3C3C") // Very dark gray
	ColorSilver      = lipgloss.Color("#A0A0A0") // Muted silver (nearest: X11 DarkGray)
)

// Semantic theme: intent-based aliases. Swap the RHS to change the
// entire color theme.
var (
	ColorPrimary   = ColorDeepSkyBlue
	ColorSecondary = ColorSkyBlue
	ColorSuccess   = ColorEmerald
	ColorWarning   = ColorAmber
	ColorError     = ColorHotPink
	ColorMuted     = ColorDimGray
	ColorHighlight = ColorOrchid
	ColorInfo      = ColorSkyBlue
	ColorDisabled  = ColorCharcoal
	ColorBorder    = ColorOnyx
	ColorAccent    = ColorBurntOrange
	ColorSubtle    = ColorSilver
)

// Text styles for common formatting.
var (
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	SubtitleStyle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	ErrorStyle     = lipgloss.NewStyle().Foreground(ColorError)
	SuccessStyle   = lipgloss.NewStyle().Foreground(ColorSuccess)
	WarningStyle   = lipgloss.NewStyle().Foreground(ColorWarning)
	MutedStyle     = lipgloss.NewStyle().Foreground(ColorMuted)
	HighlightStyle = lipgloss.NewStyle().Foreground(ColorHighlight)
	AccentStyle    = lipgloss.NewStyle().Foreground(ColorAccent)
	DisabledStyle  = lipgloss.NewStyle().Foreground(ColorDisabled)
)

// Concrete color styles: pure foreground color, no decorations.
// Used by ColorScheme concrete color methods (Red, Blue, etc.).
var (
	BlueStyle = lipgloss.NewStyle().Foreground(ColorDeepSkyBlue)
	CyanStyle = lipgloss.NewStyle().Foreground(ColorInfo)
)

// Label-value pair styles.
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))
)

// DividerStyle for horizontal rules.
var DividerStyle = lipgloss.NewStyle().
	Foreground(ColorBorder)

// EmptyStateStyle for empty state messages.
var EmptyStateStyle = lipgloss.NewStyle().
	Foreground(ColorMuted).
	Italic(true)

// Table styles.
var (
	// TableHeaderStyle for table column headers: subtle silver foreground, no bold.
	TableHeaderStyle = lipgloss.NewStyle().Foreground(ColorSubtle)

	// TablePrimaryColumnStyle for the first column: primary brand color for emphasis.
	TablePrimaryColumnStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
)
