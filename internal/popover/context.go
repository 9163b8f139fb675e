package popover

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/zhubert/popover/internal/geometry"
)

// Phase is where a popover is in its lifecycle.
type Phase int

const (
	// PhaseUninitialized: presented, content size not yet known.
	PhaseUninitialized Phase = iota
	// PhaseMeasuring: a size was reported but no frame could be computed yet.
	PhaseMeasuring
	// PhasePositioned: frame known and visible.
	PhasePositioned
	// PhaseDragging: offset driven by a drag gesture.
	PhaseDragging
	// PhaseDismissed: removed from its model.
	PhaseDismissed
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized-size"
	case PhaseMeasuring:
		return "measuring"
	case PhasePositioned:
		return "positioned"
	case PhaseDragging:
		return "dragging"
	case PhaseDismissed:
		return "dismissed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Context is the mutable runtime state of one popover. It is owned by its Popover and
// changed only by the Model and Container on the UI goroutine.
type Context struct {
	// Size is nil until the first size report of the current presentation.
	Size *geometry.Size
	// StaticFrame is the resting frame, excluding any live drag offset.
	StaticFrame geometry.Rect
	// Offset is the live drag offset.
	Offset geometry.Vector
	// PresentationID is replaced on every presentation. Size reports carrying another ID are stale.
	PresentationID uuid.UUID
	// IsReplacement is set when the popover took another popover's place.
	IsReplacement bool
	// WasReplaced is set when the popover left because another took its place.
	WasReplaced bool
	// IsOffsetInitialized becomes true with the first non-zero size and gates visibility.
	IsOffsetInitialized bool
	// Animated asks the renderer to animate the most recent geometry change.
	Animated bool
	Phase    Phase

	anchor         Anchor
	anchorSelected bool
}

// Frame is StaticFrame moved by Offset.
func (c *Context) Frame() geometry.Rect {
	return c.StaticFrame.Offset(c.Offset)
}

// Visible reports whether the renderer should draw the popover.
func (c *Context) Visible() bool {
	return c.Size != nil && c.IsOffsetInitialized && c.Phase != PhaseDismissed
}

// SelectedAnchor returns the relative anchor chosen by a drag, if any.
func (c *Context) SelectedAnchor() (Anchor, bool) {
	return c.anchor, c.anchorSelected
}

// beginPresentation starts a new presentation and invalidates in-flight measurements.
func (c *Context) beginPresentation() {
	c.PresentationID = uuid.New()
	c.Size = nil
	c.Offset = geometry.Vector{}
	c.IsOffsetInitialized = false
	c.Animated = false
	c.Phase = PhaseUninitialized
	c.WasReplaced = false
	c.anchorSelected = false
}

// layout recomputes the static frame for the current size. It returns false when the
// size is unknown, in which case nothing changes.
func (c *Context) layout(attrs Attributes, bounds geometry.Rect) bool {
	if c.Size == nil || c.Size.IsZero() {
		return false
	}
	if attrs.Position.Kind == PositionRelative {
		if !c.anchorSelected {
			c.anchor = ResolveAnchor(attrs, *c.Size, bounds)
		}
		c.StaticFrame = FrameForAnchor(attrs, c.anchor, *c.Size, bounds)
		return true
	}
	c.StaticFrame = ComputeFrame(attrs, *c.Size, bounds)
	return true
}

func (c *Context) selectAnchor(a Anchor) {
	c.anchor = a
	c.anchorSelected = true
}
