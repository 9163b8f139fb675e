package popover

import (
	"github.com/google/uuid"
	"github.com/zhubert/popover/internal/geometry"
)

// Placement is what the renderer needs to draw one popover.
type Placement struct {
	ID          uuid.UUID
	Popover     *Popover
	Frame       geometry.Rect
	StaticFrame geometry.Rect
	Offset      geometry.Vector
	Visible     bool
	Animated    bool
	// Available is the drawable size of the static frame after the bottom/right
	// layout inset. A drag offset moves the popover without resizing it.
	Available  geometry.Size
	Transition Transition
	Content    any
	Background any
}

// Render returns one placement per presented popover, bottom-most first. Popovers whose
// size is still unknown are included with Visible false so the host can measure them.
func (c *Container) Render() []Placement {
	out := make([]Placement, 0, len(c.model.popovers))
	for _, p := range c.model.popovers {
		ctx := p.ctx
		pl := Placement{
			ID:          p.ID,
			Popover:     p,
			StaticFrame: ctx.StaticFrame,
			Offset:      ctx.Offset,
			Visible:     ctx.Visible(),
			Animated:    ctx.Animated,
			Transition:  p.attrs.Presentation,
			Content:     p.Content,
			Background:  p.Background,
		}
		if pl.Visible {
			pl.Frame = ctx.Frame()
			pl.Available = AvailableSize(p.attrs, ctx.StaticFrame, c.bounds)
		}
		out = append(out, pl)
	}
	return out
}
