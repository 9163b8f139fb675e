package ui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
)

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width    int
	bindings []key.Binding
	// contextual bindings replace the defaults while a popover wants the keyboard
	contextual []key.Binding
	dragging   bool
}

// NewFooter creates a footer showing bindings
func NewFooter(bindings ...key.Binding) *Footer {
	return &Footer{bindings: bindings}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings replaces the default bindings
func (f *Footer) SetBindings(bindings ...key.Binding) {
	f.bindings = bindings
}

// SetContext updates the footer's context for conditional bindings. Pass no
// contextual bindings to show the defaults.
func (f *Footer) SetContext(dragging bool, contextual ...key.Binding) {
	f.dragging = dragging
	f.contextual = contextual
}

// View renders the footer
func (f *Footer) View() string {
	if f.dragging {
		return FooterStyle.Width(f.width).Render(FooterDescStyle.Render("release to drop · drag past the edge to dismiss"))
	}

	bindings := f.bindings
	if len(f.contextual) > 0 {
		bindings = f.contextual
	}

	var parts []string
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, FooterKeyStyle.Render(h.Key)+FooterDescStyle.Render(": "+h.Desc))
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")
	return FooterStyle.Width(f.width).Render(content)
}
