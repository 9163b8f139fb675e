package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"charm.land/lipgloss/v2"
)

// Header represents the top header bar
type Header struct {
	width  int
	count  int
	status string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetPopoverCount sets the number of presented popovers shown on the right
func (h *Header) SetPopoverCount(n int) {
	h.count = n
}

// SetStatus sets the transient status text (announcements, drag outcomes)
func (h *Header) SetStatus(status string) {
	h.status = status
}

// View renders the header
func (h *Header) View() string {
	titleText := " popover"
	var rightText string
	if h.status != "" {
		rightText = h.status + "  "
	}
	if h.count > 0 {
		rightText += fmt.Sprintf("[%d open] ", h.count)
	}

	paddingLen := h.width - lipgloss.Width(titleText) - lipgloss.Width(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText
	return h.renderGradient(fullContent, utf8.RuneCountInString(titleText)+paddingLen)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a theme-aware gradient background.
// Runes from mutedFrom on are drawn in the muted text color.
func (h *Header) renderGradient(content string, mutedFrom int) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)
		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < 8) // " popover"

		if i >= mutedFrom {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
