package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/popover/internal/ui"
)

// hintLines are drawn on the base screen under the preset buttons.
var hintLines = []string{
	"Press a number or click a button to present a popover.",
	"Drag popovers with the mouse. Tap outside one to dismiss it.",
}

// View renders the UI
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	v.SetContent(m.Render())
	return v
}

// Render returns the full screen with every visible popover composed over the
// base screen. Before the first resize it returns a placeholder.
func (m *Model) Render() string {
	if m.ctx.TerminalWidth == 0 || m.ctx.TerminalHeight == 0 {
		return "Loading..."
	}

	base := lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		m.renderSurface(),
		m.footer.View(),
	)
	return ui.Compose(base, m.ctx.TerminalWidth, m.ctx.TerminalHeight, m.renderer.Layers())
}

// renderSurface draws the base screen behind the popovers: the preset buttons
// and a few lines of help.
func (m *Model) renderSurface() string {
	width, height := m.ctx.TerminalWidth, m.ctx.ContentHeight

	presented := make(map[string]bool)
	for _, p := range m.Popovers() {
		presented[p.Tag()] = true
	}

	var row strings.Builder
	row.WriteString(strings.Repeat(" ", ButtonMargin))
	for i, b := range m.buttons {
		if i > 0 {
			row.WriteString(strings.Repeat(" ", ButtonGap))
		}
		if presented[b.preset.Name] {
			row.WriteString(ui.SourceMarkerStyle.Render(b.label))
		} else {
			row.WriteString(ui.MenuSelectedStyle.Render(b.label))
		}
	}

	lines := []string{"", row.String(), ""}
	for _, h := range hintLines {
		lines = append(lines, strings.Repeat(" ", ButtonMargin)+ui.BackdropStyle.Render(h))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxHeight(height).
		Render(strings.Join(lines, "\n"))
}
