package ui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/popover/internal/geometry"
	"github.com/zhubert/popover/internal/popover"
)

// Renderer is the drawing side of a popover container: it measures content,
// reports sizes back, and turns placements into screen layers.
type Renderer struct {
	container *popover.Container
	animator  *Animator
}

// NewRenderer creates a renderer for container.
func NewRenderer(container *popover.Container, animator *Animator) *Renderer {
	return &Renderer{container: container, animator: animator}
}

// Measure reports the size of every presented popover whose size is unknown or
// has changed. Unchanged sizes are not re-reported.
func (r *Renderer) Measure() {
	for _, pl := range r.container.Render() {
		c, ok := pl.Content.(Content)
		if !ok {
			continue
		}
		ctx := pl.Popover.Context()
		size := MeasureContent(c)
		if ctx.Size != nil && *ctx.Size == size {
			continue
		}
		r.container.SizeReported(pl.Popover, ctx.PresentationID, size)
	}
}

// Sync hands the current placements to the animator.
func (r *Renderer) Sync() tea.Cmd {
	return r.animator.Sync(r.container.Render())
}

// Focused returns the topmost visible popover with interactive content.
func (r *Renderer) Focused() (*popover.Popover, Interactive) {
	placements := r.container.Render()
	for i := len(placements) - 1; i >= 0; i-- {
		pl := placements[i]
		if !pl.Visible {
			continue
		}
		if in, ok := pl.Content.(Interactive); ok {
			return pl.Popover, in
		}
	}
	return nil, nil
}

// Layers renders every visible popover at its drawn position, clipped to its
// available size. Dismissed popovers that are still moving out are drawn
// beneath the presented ones.
func (r *Renderer) Layers() []Layer {
	dragged := r.container.Dragging()
	focused, _ := r.Focused()

	var layers []Layer
	for _, pl := range r.animator.Exiting() {
		c, ok := pl.Content.(Content)
		if !ok {
			continue
		}
		layers = append(layers, Layer{
			Rect:    geometry.Rect{Origin: pl.Frame.Origin, Size: pl.Available}.Image(),
			Content: c.View(RenderState{}),
		})
	}
	for _, pl := range r.container.Render() {
		if !pl.Visible {
			continue
		}
		c, ok := pl.Content.(Content)
		if !ok {
			continue
		}
		origin := pl.Frame.Origin
		if p, ok := r.animator.Position(pl.ID); ok {
			origin = p
		}
		rendered := c.View(RenderState{
			Dragging: pl.Popover == dragged,
			Focused:  pl.Popover == focused,
		})
		layers = append(layers, Layer{
			Rect:    geometry.Rect{Origin: origin, Size: pl.Available}.Image(),
			Content: rendered,
		})
	}
	return layers
}
