package app

import (
	"strings"

	"github.com/zhubert/popover/internal/geometry"
	"github.com/zhubert/popover/internal/popover"
	"github.com/zhubert/popover/internal/ui"
)

// Base screen layout
const (
	// ButtonMargin is the gap between the surface's left edge and the first button
	ButtonMargin = 2

	// ButtonGap is the space between preset buttons
	ButtonGap = 2

	// SheetMargin is the horizontal space left around the sheet's text
	SheetMargin = 10

	// CornersWrapWidth is the wrap width of the corners popover
	CornersWrapWidth = 30
)

// Preset is a popover configuration the playground can present.
type Preset struct {
	// Key presents the preset; it is also drawn on the preset's button.
	Key  string
	Name string

	// build derives attributes from the configured base and returns the content.
	// source is the preset's button on the base screen.
	build func(m *Model, attrs popover.Attributes, source geometry.Rect) (popover.Attributes, ui.Content)
}

var presets = []Preset{
	{Key: "1", Name: "tooltip", build: buildTooltip},
	{Key: "2", Name: "sheet", build: buildSheet},
	{Key: "3", Name: "corners", build: buildCorners},
	{Key: "4", Name: "code", build: buildCode},
	{Key: "5", Name: "menu", build: buildMenu},
	{Key: "6", Name: "confirm", build: buildConfirm},
}

// Presets returns the presets in button order.
func Presets() []Preset {
	return presets
}

// present shows preset b. A popover already presented for the same preset is
// replaced in place.
func (m *Model) present(b button) {
	name := b.preset.Name
	attrs, content := b.preset.build(m, m.base, b.frame)
	attrs.Tag = name
	attrs.Accessibility = popover.Accessibility{
		ShiftFocus:         true,
		Label:              capitalize(name) + " opened",
		DismissButtonLabel: "Close " + name,
	}
	attrs.OnDismiss = func() {
		m.announcer.Announce(capitalize(name) + " dismissed")
	}

	p, err := popover.New(attrs, content)
	if err != nil {
		m.log.Error("failed to create popover", "preset", name, "error", err)
		m.announcer.Announce("Cannot present " + name)
		return
	}

	if old := m.surface.Container().Model().PopoverWithTag(name); old != nil {
		m.log.Debug("replacing popover", "preset", name, "old", old.ID, "new", p.ID)
		popover.Replace(old, p)
		return
	}
	popover.Present(p, m.surface)
}

// dismissAll removes every presented popover, top-most first.
func (m *Model) dismissAll() {
	ps := m.Popovers()
	for i := len(ps) - 1; i >= 0; i-- {
		popover.Dismiss(ps[i])
	}
}

func buildTooltip(_ *Model, attrs popover.Attributes, source geometry.Rect) (popover.Attributes, ui.Content) {
	attrs.Position = popover.Absolute(popover.AnchorBottom, popover.AnchorTop)
	attrs.SourceFrame = source
	attrs.Dismissal.Mode = popover.DismissTapOutside
	attrs.Dismissal.ExcludedFrames = []geometry.Rect{source}
	return attrs, ui.Tooltip("I hang below my button and stay on screen")
}

func buildSheet(m *Model, attrs popover.Attributes, _ geometry.Rect) (popover.Attributes, ui.Content) {
	attrs.Position = popover.Absolute(popover.AnchorBottom, popover.AnchorBottom)
	attrs.Dismissal.Mode = popover.DismissDragDown | popover.DismissTapOutside
	attrs.Dismissal.DragMovesPopoverOffScreen = true
	attrs.Presentation.Kind = popover.TransitionSlide
	attrs.Presentation.Edge = popover.AnchorBottom
	attrs.Dismissal.Transition = attrs.Presentation

	width := max(int(m.ctx.SurfaceBounds().Size.Width)-SheetMargin, 20)
	return attrs, ui.Text{
		Title: "Sheet",
		Body:  "Drag me down and let go to dismiss. Dragging up meets resistance and I spring back.",
		Width: width,
	}
}

func buildCorners(_ *Model, attrs popover.Attributes, _ geometry.Rect) (popover.Attributes, ui.Content) {
	attrs.Position = popover.Relative(
		popover.AnchorTopLeft,
		popover.AnchorTopRight,
		popover.AnchorBottomRight,
		popover.AnchorBottomLeft,
	)
	attrs.Dismissal.Mode = popover.DismissTapOutside
	return attrs, ui.Text{
		Title: "Corners",
		Body:  "Throw me toward a corner. I settle on whichever one my flight ends closest to.",
		Width: CornersWrapWidth,
	}
}

const rubberBandSource = `// RubberBand damps a drag translation on one axis.
func RubberBand(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Copysign(math.Pow(1+math.Abs(t), 0.9)-1, t)
}
`

func buildCode(_ *Model, attrs popover.Attributes, _ geometry.Rect) (popover.Attributes, ui.Content) {
	attrs.Position = popover.Absolute(popover.AnchorCenter, popover.AnchorCenter)
	attrs.Dismissal.Mode = popover.DismissTapOutside | popover.DismissDragDown | popover.DismissDragUp
	attrs.Presentation.Kind = popover.TransitionSlide
	attrs.Presentation.Edge = popover.AnchorTop
	return attrs, ui.NewCode("rubberband.go", "go", rubberBandSource)
}

func buildMenu(m *Model, attrs popover.Attributes, source geometry.Rect) (popover.Attributes, ui.Content) {
	attrs.Position = popover.Absolute(popover.AnchorBottomLeft, popover.AnchorTopLeft)
	attrs.SourceFrame = source
	attrs.Dismissal.Mode = popover.DismissTapOutside
	attrs.Dismissal.ExcludedFrames = []geometry.Rect{source}

	names := make([]string, 0, len(ui.ThemeNames()))
	for _, n := range ui.ThemeNames() {
		names = append(names, string(n))
	}
	return attrs, ui.NewMenu("Theme", names, func(item string) {
		ui.SetThemeByName(item)
		m.cfg.Theme = item
		m.announcer.Announce("Theme: " + item)
	})
}

func buildConfirm(m *Model, attrs popover.Attributes, _ geometry.Rect) (popover.Attributes, ui.Content) {
	attrs.Position = popover.Absolute(popover.AnchorCenter, popover.AnchorCenter)
	attrs.Dismissal.Mode = popover.DismissNone
	return attrs, ui.NewConfirm("Close everything?", "Dismisses every open popover.", func(yes bool) {
		if yes {
			m.dismissAll()
		}
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
