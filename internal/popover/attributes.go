package popover

import (
	"fmt"
	"strings"
	"time"

	perrors "github.com/zhubert/popover/internal/errors"
	"github.com/zhubert/popover/internal/geometry"
)

// Anchor names one of nine reference points on a rectangle.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTop
	AnchorTopRight
	AnchorRight
	AnchorBottomRight
	AnchorBottom
	AnchorBottomLeft
	AnchorLeft
	AnchorCenter
)

var anchorNames = [...]string{
	AnchorTopLeft:     "top-left",
	AnchorTop:         "top",
	AnchorTopRight:    "top-right",
	AnchorRight:       "right",
	AnchorBottomRight: "bottom-right",
	AnchorBottom:      "bottom",
	AnchorBottomLeft:  "bottom-left",
	AnchorLeft:        "left",
	AnchorCenter:      "center",
}

func (a Anchor) String() string {
	if a < 0 || int(a) >= len(anchorNames) {
		return fmt.Sprintf("Anchor(%d)", int(a))
	}
	return anchorNames[a]
}

// ParseAnchor converts a name such as "bottom-left" to an Anchor.
func ParseAnchor(s string) (Anchor, error) {
	for i, name := range anchorNames {
		if name == s {
			return Anchor(i), nil
		}
	}
	return 0, perrors.E(perrors.Op("popover.ParseAnchor"), perrors.KindInvalid, fmt.Sprintf("unknown anchor %q", s))
}

// unit returns the anchor as fractions of a rectangle's width and height.
func (a Anchor) unit() (fx, fy float64) {
	switch a {
	case AnchorTopLeft:
		return 0, 0
	case AnchorTop:
		return 0.5, 0
	case AnchorTopRight:
		return 1, 0
	case AnchorRight:
		return 1, 0.5
	case AnchorBottomRight:
		return 1, 1
	case AnchorBottom:
		return 0.5, 1
	case AnchorBottomLeft:
		return 0, 1
	case AnchorLeft:
		return 0, 0.5
	default:
		return 0.5, 0.5
	}
}

// Point returns the anchor's location on r.
func (a Anchor) Point(r geometry.Rect) geometry.Point {
	fx, fy := a.unit()
	return geometry.Pt(r.Origin.X+fx*r.Size.Width, r.Origin.Y+fy*r.Size.Height)
}

// offsetIn returns the vector from a rectangle's origin to the anchor for a rectangle of size s.
func (a Anchor) offsetIn(s geometry.Size) geometry.Vector {
	fx, fy := a.unit()
	return geometry.Vec(fx*s.Width, fy*s.Height)
}

// PositionKind selects how a popover is placed relative to its source frame.
type PositionKind int

const (
	// PositionAbsolute pins one point of the popover to one point of the source frame.
	PositionAbsolute PositionKind = iota
	// PositionRelative places the popover inside the source frame at one of several anchors.
	PositionRelative
)

// Position describes where a popover goes.
type Position struct {
	Kind PositionKind

	// Absolute positioning: PopoverAnchor of the popover sits on OriginAnchor of the source frame.
	OriginAnchor  Anchor
	PopoverAnchor Anchor

	// Relative positioning candidates, in order of preference.
	Anchors []Anchor
}

// Absolute returns a position that places the popover's popoverAnchor on the source
// frame's originAnchor.
func Absolute(originAnchor, popoverAnchor Anchor) Position {
	return Position{Kind: PositionAbsolute, OriginAnchor: originAnchor, PopoverAnchor: popoverAnchor}
}

// Relative returns a position that picks among anchors inside the source frame.
func Relative(anchors ...Anchor) Position {
	return Position{Kind: PositionRelative, Anchors: append([]Anchor(nil), anchors...)}
}

// repositionable reports whether dragging can move the popover to a different anchor.
func (p Position) repositionable() bool {
	return p.Kind == PositionRelative && len(p.Anchors) > 1
}

// DismissMode is a set of ways a user can dismiss a popover.
type DismissMode uint8

const (
	DismissTapOutside DismissMode = 1 << iota
	DismissDragDown
	DismissDragUp

	DismissNone DismissMode = 0
)

// Has reports whether every mode in f is set.
func (m DismissMode) Has(f DismissMode) bool {
	return f != 0 && m&f == f
}

func (m DismissMode) String() string {
	if m == DismissNone {
		return "none"
	}
	var parts []string
	if m.Has(DismissTapOutside) {
		parts = append(parts, "tap-outside")
	}
	if m.Has(DismissDragDown) {
		parts = append(parts, "drag-down")
	}
	if m.Has(DismissDragUp) {
		parts = append(parts, "drag-up")
	}
	return strings.Join(parts, "|")
}

// ParseDismissMode combines names like "tap-outside" and "drag-down" into a DismissMode.
func ParseDismissMode(names []string) (DismissMode, error) {
	var m DismissMode
	for _, name := range names {
		switch name {
		case "tap-outside":
			m |= DismissTapOutside
		case "drag-down":
			m |= DismissDragDown
		case "drag-up":
			m |= DismissDragUp
		case "none":
		default:
			return 0, perrors.E(perrors.Op("popover.ParseDismissMode"), perrors.KindInvalid, fmt.Sprintf("unknown dismissal mode %q", name))
		}
	}
	return m, nil
}

// RubberBanding is the set of axes that resist dragging elastically.
type RubberBanding uint8

const (
	RubberBandX RubberBanding = 1 << iota
	RubberBandY

	RubberBandNone RubberBanding = 0
	RubberBandBoth               = RubberBandX | RubberBandY
)

// Has reports whether axis is set.
func (r RubberBanding) Has(axis RubberBanding) bool {
	return axis != 0 && r&axis == axis
}

// ParseRubberBanding combines "x" and "y" into a RubberBanding.
func ParseRubberBanding(axes []string) (RubberBanding, error) {
	var r RubberBanding
	for _, a := range axes {
		switch a {
		case "x":
			r |= RubberBandX
		case "y":
			r |= RubberBandY
		default:
			return 0, perrors.E(perrors.Op("popover.ParseRubberBanding"), perrors.KindInvalid, fmt.Sprintf("unknown rubber-banding axis %q", a))
		}
	}
	return r, nil
}

// TransitionKind says how the renderer brings a popover in or out.
type TransitionKind int

const (
	TransitionNone TransitionKind = iota
	TransitionOpacity
	TransitionSlide
)

// Transition describes a presentation or dismissal transition. The engine never
// interpolates; it hands this descriptor to the renderer.
type Transition struct {
	Kind TransitionKind
	// Edge is where a slide starts from (presentation) or goes to (dismissal).
	Edge Anchor
	// Spring parameters for animated geometry changes.
	Frequency float64
	Damping   float64
	Duration  time.Duration
}

// DefaultTransition is an opacity transition with a gently damped spring.
func DefaultTransition() Transition {
	return Transition{Kind: TransitionOpacity, Edge: AnchorBottom, Frequency: 6, Damping: 0.8, Duration: 300 * time.Millisecond}
}

// Source selects the host layer a popover is presented in.
type Source int

const (
	// SourceAboveWindow presents in the surface's own overlay container.
	SourceAboveWindow Source = iota
	// SourceStayAboveWindows is a legacy option kept for configuration compatibility.
	// It is not implemented and is rejected by New.
	SourceStayAboveWindows
)

func (s Source) String() string {
	switch s {
	case SourceAboveWindow:
		return "above-window"
	case SourceStayAboveWindows:
		return "stay-above-windows"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// Accessibility options forwarded to the host's announcer.
type Accessibility struct {
	// ShiftFocus announces Label when the popover is presented.
	ShiftFocus         bool
	Label              string
	DismissButtonLabel string
}

// Dismissal groups the dismissal policy.
type Dismissal struct {
	Mode       DismissMode
	Transition Transition
	// DragMovesPopoverOffScreen pushes the popover past the edge before removal
	// when it is dismissed by dragging.
	DragMovesPopoverOffScreen bool
	// DragDismissalProximity is the fraction of the surface height, measured from
	// the dismissal edge, that the predicted frame must reach.
	DragDismissalProximity float64
	// ExcludedFrames are regions where taps never count as "outside".
	ExcludedFrames []geometry.Rect
}

// Attributes is the caller-supplied configuration of one popover. The engine keeps
// its own copy and never mutates it.
type Attributes struct {
	Tag string

	Position Position
	// SourceFrame is what the popover is anchored to. The zero Rect means the whole surface.
	SourceFrame      geometry.Rect
	SourceFrameInset geometry.EdgeInsets

	ScreenEdgePadding geometry.EdgeInsets

	Presentation  Transition
	Dismissal     Dismissal
	RubberBanding RubberBanding
	Source        Source
	Accessibility Accessibility

	OnTapOutside    func()
	OnDismiss       func()
	OnContextChange func(*Context)
}

// DefaultAttributes returns attributes for a popover that sits below the center of its
// source frame and is dismissed by tapping outside.
func DefaultAttributes() Attributes {
	return Attributes{
		Position:          Absolute(AnchorBottom, AnchorTop),
		ScreenEdgePadding: geometry.Insets(1),
		Presentation:      DefaultTransition(),
		Dismissal: Dismissal{
			Mode:                   DismissTapOutside,
			Transition:             DefaultTransition(),
			DragDismissalProximity: 0.25,
		},
		RubberBanding: RubberBandBoth,
	}
}

// Validate reports configurations the engine cannot present.
func (a Attributes) Validate() error {
	if a.Source != SourceAboveWindow {
		return perrors.UnsupportedSource(a.Source.String())
	}
	if a.Position.Kind == PositionRelative && len(a.Position.Anchors) == 0 {
		return perrors.InvalidAttributes("relative position needs at least one anchor")
	}
	if p := a.Dismissal.DragDismissalProximity; p < 0 || p > 1 {
		return perrors.InvalidAttributes(fmt.Sprintf("drag dismissal proximity %v outside [0,1]", p))
	}
	pad := a.ScreenEdgePadding
	if pad.Top < 0 || pad.Left < 0 || pad.Bottom < 0 || pad.Right < 0 {
		return perrors.InvalidAttributes("screen edge padding must not be negative")
	}
	return nil
}

// clone copies the slices so callers cannot mutate the popover's attributes afterwards.
func (a Attributes) clone() Attributes {
	a.Position.Anchors = append([]Anchor(nil), a.Position.Anchors...)
	a.Dismissal.ExcludedFrames = append([]geometry.Rect(nil), a.Dismissal.ExcludedFrames...)
	return a
}
