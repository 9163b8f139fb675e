package ui

import "charm.land/lipgloss/v2"

// Color palette - Purple + Cyan/Teal theme
var (
	ColorPrimary     = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary   = lipgloss.Color("#06B6D4") // Cyan
	ColorMuted       = lipgloss.Color("#6B7280") // Gray
	ColorBorder      = lipgloss.Color("#374151") // Dark gray
	ColorBorderFocus = lipgloss.Color("#7C3AED") // Purple while dragging
	ColorBg          = lipgloss.Color("#1F2937") // Dark background
	ColorBgPopover   = lipgloss.Color("#111827") // Popover fill
	ColorBgSelected  = lipgloss.Color("#7C3AED") // Selected menu row
	ColorText        = lipgloss.Color("#F9FAFB") // Light text
	ColorTextMuted   = lipgloss.Color("#B0B8C4") // Muted text
	ColorTextInverse = lipgloss.Color("#1F2937") // Dark text for light backgrounds
	ColorWarning     = lipgloss.Color("#F59E0B") // Amber
	ColorInfo        = lipgloss.Color("#06B6D4") // Cyan
	ColorError       = lipgloss.Color("#EF4444") // Red
)

// Header and footer styles
var (
	HeaderStyle       lipgloss.Style
	HeaderTitleStyle  lipgloss.Style
	HeaderStatusStyle lipgloss.Style

	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Popover styles
var (
	// PopoverStyle frames every popover's content.
	PopoverStyle lipgloss.Style
	// PopoverDraggingStyle replaces PopoverStyle while the popover is dragged.
	PopoverDraggingStyle lipgloss.Style

	PopoverTitleStyle lipgloss.Style
	PopoverHelpStyle  lipgloss.Style

	TooltipStyle lipgloss.Style
)

// Menu styles
var (
	MenuItemStyle     lipgloss.Style
	MenuSelectedStyle lipgloss.Style
	MenuMatchStyle    lipgloss.Style
	MenuFilterStyle   lipgloss.Style
)

// Playground styles
var (
	BackdropStyle     lipgloss.Style
	SourceMarkerStyle lipgloss.Style
	StatusErrorStyle  lipgloss.Style
)

func init() {
	buildStyles()
}

// buildStyles derives every style from the current color variables.
func buildStyles() {
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	HeaderStatusStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PopoverStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Background(ColorBgPopover).
		Foreground(ColorText).
		Padding(0, 1)

	PopoverDraggingStyle = PopoverStyle.
		BorderForeground(ColorBorderFocus)

	PopoverTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	PopoverHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	TooltipStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorSecondary).
		Padding(0, 1)

	MenuItemStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	MenuSelectedStyle = lipgloss.NewStyle().
		Background(ColorBgSelected).
		Foreground(ColorText).
		Bold(true)

	MenuMatchStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Underline(true)

	MenuFilterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	BackdropStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	SourceMarkerStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorWarning).
		Bold(true)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
}
