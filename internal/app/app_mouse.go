package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/popover/internal/geometry"
	"github.com/zhubert/popover/internal/popover"
	"github.com/zhubert/popover/internal/ui"
)

// cellPoint converts mouse coordinates to a point in surface space. Surface
// coordinates are screen cells, so only the type changes.
func cellPoint(x, y int) geometry.Point {
	return geometry.Pt(float64(x), float64(y))
}

// handleMouse feeds left-button events through the drag recognizer and hands
// the resulting gestures to the container.
func (m *Model) handleMouse(msg tea.Msg) {
	var g ui.Gesture
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft {
			return
		}
		g = m.recognizer.Press(cellPoint(msg.X, msg.Y))
	case tea.MouseMotionMsg:
		g = m.recognizer.Move(cellPoint(msg.X, msg.Y))
	case tea.MouseReleaseMsg:
		g = m.recognizer.Release(cellPoint(msg.X, msg.Y))
	}

	container := m.surface.Container()
	switch g.Kind {
	case ui.GestureDragChanged:
		container.DragChanged(g.Drag)

	case ui.GestureDragEnded:
		outcome := container.DragEnded(g.Drag)
		m.log.Debug("drag ended", "outcome", outcome, "predicted", g.Drag.PredictedEndTranslation)

	case ui.GestureTap:
		m.handleTap(g.Point)
	}
}

// handleTap gives the container first go at a tap, then presses whatever
// button lies under it.
func (m *Model) handleTap(pt geometry.Point) {
	container := m.surface.Container()
	if container.Tap(pt) {
		m.log.Debug("tap dismissed top popover", "point", pt)
	}
	if hitsPopover(container, pt) {
		return
	}
	if b, ok := m.buttonAt(pt); ok {
		m.present(b)
	}
}

// hitsPopover reports whether pt lands on a visible popover.
func hitsPopover(c *popover.Container, pt geometry.Point) bool {
	for _, pl := range c.Render() {
		if pl.Visible && pl.Frame.Contains(pt) {
			return true
		}
	}
	return false
}
