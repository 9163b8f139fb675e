package popover

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/zhubert/popover/internal/geometry"
	"github.com/zhubert/popover/internal/logger"
)

// Scheduler runs work on a later turn of the host event loop.
type Scheduler interface {
	Schedule(fn func())
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(fn func())

func (f SchedulerFunc) Schedule(fn func()) { f(fn) }

// DragEvent is a gesture update. Start is where the pointer went down, Translation is
// the movement so far, and PredictedEndTranslation is where the gesture would come to
// rest given its velocity (only meaningful for DragEnded).
type DragEvent struct {
	Start                   geometry.Point
	Translation             geometry.Vector
	PredictedEndTranslation geometry.Vector
}

// DragOutcome is what a drag-end did.
type DragOutcome int

const (
	// DragIgnored: no popover was being dragged.
	DragIgnored DragOutcome = iota
	// DragSnappedBack: the popover returned to its static frame.
	DragSnappedBack
	// DragCommitted: the popover moved to a different anchor.
	DragCommitted
	// DragDismissed: the popover was removed.
	DragDismissed
)

func (o DragOutcome) String() string {
	switch o {
	case DragIgnored:
		return "ignored"
	case DragSnappedBack:
		return "snapped-back"
	case DragCommitted:
		return "committed"
	case DragDismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

type dragState int

const (
	dragIdle dragState = iota
	dragSelecting
	dragDragging
)

// Container lays out the popovers of one model on one surface and turns gestures into
// offsets. Like the Model it is confined to the UI goroutine.
type Container struct {
	model     *Model
	bounds    geometry.Rect
	scheduler Scheduler

	dragState dragState
	dragged   *Popover

	log *slog.Logger
}

// NewContainer creates a container for model on a surface with the given bounds.
// A nil scheduler runs deferred work immediately.
func NewContainer(model *Model, bounds geometry.Rect, scheduler Scheduler) *Container {
	if scheduler == nil {
		scheduler = SchedulerFunc(func(fn func()) { fn() })
	}
	c := &Container{
		model:     model,
		bounds:    bounds,
		scheduler: scheduler,
		log:       logger.ComponentLogger("popover-container"),
	}
	model.Subscribe(c.modelChanged)
	return c
}

// Model returns the container's model.
func (c *Container) Model() *Model {
	return c.model
}

// Bounds returns the surface bounds.
func (c *Container) Bounds() geometry.Rect {
	return c.bounds
}

// SetBounds changes the surface bounds and re-lays out every measured popover.
func (c *Container) SetBounds(bounds geometry.Rect) {
	if bounds == c.bounds {
		return
	}
	c.bounds = bounds
	for _, p := range c.model.popovers {
		if p.ctx.layout(p.attrs, bounds) {
			p.ctx.Animated = false
			p.contextChanged()
		}
	}
	c.model.Reload()
}

// SizeReported records the measured content size of p for the presentation identified
// by presentationID. Reports for popovers that are not presented here, or for an
// earlier presentation, are ignored. It returns whether the report was applied.
func (c *Container) SizeReported(p *Popover, presentationID uuid.UUID, size geometry.Size) bool {
	if !c.model.Contains(p) {
		return false
	}
	ctx := p.ctx
	if presentationID != ctx.PresentationID {
		p.log.Debug("ignoring stale size report", "reported", presentationID, "current", ctx.PresentationID)
		return false
	}

	first := ctx.Size == nil
	s := size
	ctx.Size = &s
	if ctx.Phase == PhaseUninitialized {
		ctx.Phase = PhaseMeasuring
	}
	if !ctx.layout(p.attrs, c.bounds) {
		return true
	}

	if first || !ctx.IsOffsetInitialized {
		ctx.Offset = geometry.Vector{}
		ctx.IsOffsetInitialized = true
		ctx.Animated = false
		ctx.Phase = PhasePositioned
		p.contextChanged()
		c.model.Reload()
		return true
	}

	// Later reports, whether the size changed or not, reload on the next turn so the
	// current render pass finishes with the old geometry.
	if ctx.Phase != PhaseDragging {
		ctx.Phase = PhasePositioned
	}
	p.contextChanged()
	c.scheduler.Schedule(func() {
		if c.model.Contains(p) {
			c.model.Reload()
		}
	})
	return true
}

// DragChanged handles a drag update. The first update selects the popover under
// Start and animates to the offset; later updates track the pointer directly.
func (c *Container) DragChanged(e DragEvent) {
	switch c.dragState {
	case dragIdle:
		c.dragState = dragSelecting
		c.dragged = c.hitTest(e.Start)
		if c.dragged == nil {
			return
		}
		c.applyDrag(e.Translation, true)
		c.dragState = dragDragging
	case dragSelecting:
		// Nothing was under the pointer when the gesture began.
	case dragDragging:
		if !c.model.Contains(c.dragged) {
			c.dragged = nil
			c.dragState = dragSelecting
			return
		}
		c.applyDrag(e.Translation, false)
	}
}

// DragEnded finishes a drag using the predicted end translation: the popover is
// dismissed, moved to the nearest anchor, or returned to its static frame.
func (c *Container) DragEnded(e DragEvent) DragOutcome {
	p := c.dragged
	c.dragState = dragIdle
	c.dragged = nil
	if p == nil || !c.model.Contains(p) {
		return DragIgnored
	}

	ctx := p.ctx
	outcome := DragSnappedBack
	switch {
	case c.shouldDismiss(p, e.PredictedEndTranslation):
		if p.attrs.Dismissal.DragMovesPopoverOffScreen {
			ctx.Offset = c.offScreenOffset(p, e.PredictedEndTranslation)
			ctx.Animated = true
			p.contextChanged()
		}
		c.log.Debug("drag ended", "id", p.ID, "outcome", DragDismissed)
		c.model.Remove(p)
		return DragDismissed

	case p.attrs.Position.repositionable():
		origin := ctx.StaticFrame.Origin.Add(e.PredictedEndTranslation)
		previous, _ := ctx.SelectedAnchor()
		anchor := ClosestAnchor(p.attrs, *ctx.Size, c.bounds, origin)
		if anchor != previous {
			outcome = DragCommitted
		}
		ctx.selectAnchor(anchor)
	}

	ctx.layout(p.attrs, c.bounds)
	ctx.Offset = geometry.Vector{}
	ctx.Animated = true
	ctx.Phase = PhasePositioned
	c.log.Debug("drag ended", "id", p.ID, "outcome", outcome)
	p.contextChanged()
	c.model.Reload()
	return outcome
}

// Dragging returns the popover being dragged, if any.
func (c *Container) Dragging() *Popover {
	return c.dragged
}

// Tap handles a tap at pt. A tap outside every visible popover and every excluded frame
// calls the top popover's OnTapOutside and dismisses it when its mode allows. It
// returns whether a popover was dismissed.
func (c *Container) Tap(pt geometry.Point) bool {
	top := c.topVisible()
	if top == nil {
		return false
	}
	if c.hitTest(pt) != nil {
		return false
	}
	for _, r := range top.attrs.Dismissal.ExcludedFrames {
		if r.Contains(pt) {
			return false
		}
	}
	if top.attrs.OnTapOutside != nil {
		top.attrs.OnTapOutside()
	}
	if !top.attrs.Dismissal.Mode.Has(DismissTapOutside) {
		return false
	}
	c.log.Debug("dismissing on tap outside", "id", top.ID)
	return c.model.Remove(top)
}

func (c *Container) applyDrag(translation geometry.Vector, animated bool) {
	p := c.dragged
	p.ctx.Offset = DragOffset(p.attrs, translation)
	p.ctx.Animated = animated
	p.ctx.Phase = PhaseDragging
	p.contextChanged()
	c.model.Reload()
}

func (c *Container) shouldDismiss(p *Popover, predicted geometry.Vector) bool {
	d := p.attrs.Dismissal
	band := d.DragDismissalProximity * c.bounds.Size.Height
	frame := p.ctx.StaticFrame.Offset(predicted)
	if d.Mode.Has(DismissDragDown) && predicted.Y > 0 && frame.MinY() >= c.bounds.MaxY()-band {
		return true
	}
	if d.Mode.Has(DismissDragUp) && predicted.Y < 0 && frame.MaxY() <= c.bounds.MinY()+band {
		return true
	}
	return false
}

// offScreenOffset returns an offset that moves p just past the dismissal edge.
func (c *Container) offScreenOffset(p *Popover, predicted geometry.Vector) geometry.Vector {
	frame := p.ctx.StaticFrame
	if predicted.Y > 0 {
		return geometry.Vec(0, c.bounds.MaxY()-frame.MinY())
	}
	return geometry.Vec(0, c.bounds.MinY()-frame.MaxY())
}

// hitTest returns the topmost visible popover whose frame contains pt.
func (c *Container) hitTest(pt geometry.Point) *Popover {
	for i := len(c.model.popovers) - 1; i >= 0; i-- {
		p := c.model.popovers[i]
		if p.ctx.Visible() && p.ctx.Frame().Contains(pt) {
			return p
		}
	}
	return nil
}

func (c *Container) topVisible() *Popover {
	for i := len(c.model.popovers) - 1; i >= 0; i-- {
		if p := c.model.popovers[i]; p.ctx.Visible() {
			return p
		}
	}
	return nil
}

func (c *Container) modelChanged(ch Change) {
	if ch.Kind == ChangeRemoved || ch.Kind == ChangeReplaced {
		gone := ch.Popover
		if ch.Kind == ChangeReplaced {
			gone = ch.Previous
		}
		if gone == c.dragged {
			c.dragged = nil
			if c.dragState == dragDragging {
				c.dragState = dragSelecting
			}
		}
	}
}
