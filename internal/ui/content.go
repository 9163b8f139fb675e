package ui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/popover/internal/geometry"
)

// RenderState tells content how it is about to be drawn.
type RenderState struct {
	// Dragging is set while the popover follows the pointer.
	Dragging bool
	// Focused is set when the popover is on top and receives keys.
	Focused bool
}

// Content is what a popover shows. Implementations draw their own chrome; the
// overlay only places and clips the result.
type Content interface {
	View(st RenderState) string
}

// Interactive content takes keyboard input while its popover is on top.
type Interactive interface {
	Content
	// Update handles msg. done reports that the content is finished and its
	// popover should be dismissed.
	Update(msg tea.Msg) (done bool, cmd tea.Cmd)
	// Bindings are shown in the footer while the content has focus.
	Bindings() []key.Binding
}

// Measure returns the cell size of rendered content. Empty content has no size.
func Measure(rendered string) geometry.Size {
	if rendered == "" {
		return geometry.Size{}
	}
	return geometry.Size{
		Width:  float64(lipgloss.Width(rendered)),
		Height: float64(lipgloss.Height(rendered)),
	}
}

// MeasureContent renders c for measurement and returns its size.
func MeasureContent(c Content) geometry.Size {
	return Measure(c.View(RenderState{}))
}

// frame wraps body in the popover border.
func frame(body string, st RenderState) string {
	style := PopoverStyle
	if st.Dragging {
		style = PopoverDraggingStyle
	}
	return style.Render(body)
}

// Text is a bordered popover with an optional title and a wrapped body.
type Text struct {
	Title string
	Body  string
	// Width is the wrap width; zero means DefaultWrapWidth.
	Width int
}

// View implements Content.
func (t Text) View(st RenderState) string {
	w := t.Width
	if w <= 0 {
		w = DefaultWrapWidth
	}
	body := t.Body
	if lipgloss.Width(body) > w {
		body = lipgloss.NewStyle().Width(w).Render(body)
	}
	if t.Title == "" {
		return frame(body, st)
	}
	return frame(lipgloss.JoinVertical(lipgloss.Left, PopoverTitleStyle.Render(t.Title), body), st)
}

// Tooltip is a single borderless line.
type Tooltip string

// View implements Content.
func (t Tooltip) View(st RenderState) string {
	return TooltipStyle.Render(strings.ReplaceAll(string(t), "\n", " "))
}
