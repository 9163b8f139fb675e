package popover

import (
	"math"

	"github.com/zhubert/popover/internal/geometry"
)

// ComputeFrame returns the on-screen frame of a popover of the given content size.
// It is a pure function of its inputs. Relative positions resolve their anchor with
// ResolveAnchor.
func ComputeFrame(attrs Attributes, size geometry.Size, bounds geometry.Rect) geometry.Rect {
	if attrs.Position.Kind == PositionRelative {
		return FrameForAnchor(attrs, ResolveAnchor(attrs, size, bounds), size, bounds)
	}
	return absoluteFrame(attrs, size, bounds)
}

// FrameForAnchor returns the frame for one specific relative anchor. For absolute
// positions the anchor is ignored. When the source is the screen itself the
// candidate is placed inside the screen-edge padding.
func FrameForAnchor(attrs Attributes, anchor Anchor, size geometry.Size, bounds geometry.Rect) geometry.Rect {
	if attrs.Position.Kind != PositionRelative {
		return absoluteFrame(attrs, size, bounds)
	}
	source := sourceFrame(attrs, bounds)
	if attrs.SourceFrame.IsZero() {
		source = source.Inset(attrs.ScreenEdgePadding)
	}
	origin := anchor.Point(source).Add(anchor.offsetIn(size).Scale(-1))
	return geometry.Rect{Origin: origin, Size: size}
}

// ResolveAnchor picks the relative anchor to use when the caller has not chosen one:
// the first candidate whose frame fits inside the padded bounds, then the first whose
// origin is inside them (overflow is inset at the bottom/right), then the last candidate.
func ResolveAnchor(attrs Attributes, size geometry.Size, bounds geometry.Rect) Anchor {
	anchors := attrs.Position.Anchors
	if len(anchors) == 0 {
		return AnchorCenter
	}
	padded := bounds.Inset(attrs.ScreenEdgePadding)
	for _, a := range anchors {
		if padded.ContainsRect(FrameForAnchor(attrs, a, size, bounds)) {
			return a
		}
	}
	for _, a := range anchors {
		if originInside(padded, FrameForAnchor(attrs, a, size, bounds).Origin) {
			return a
		}
	}
	return anchors[len(anchors)-1]
}

// ClosestAnchor returns the relative anchor whose frame origin is nearest to origin.
// Ties go to the earlier anchor.
func ClosestAnchor(attrs Attributes, size geometry.Size, bounds geometry.Rect, origin geometry.Point) Anchor {
	anchors := attrs.Position.Anchors
	if len(anchors) == 0 {
		return AnchorCenter
	}
	best := anchors[0]
	bestDist := math.Inf(1)
	for _, a := range anchors {
		d := FrameForAnchor(attrs, a, size, bounds).Origin.Distance(origin)
		if d < bestDist {
			best, bestDist = a, d
		}
	}
	return best
}

// LayoutInsets is the padding the renderer applies as a layout inset. Top and left
// padding are already part of the computed origin, so only bottom and right remain.
func LayoutInsets(attrs Attributes) geometry.EdgeInsets {
	return geometry.EdgeInsets{Bottom: attrs.ScreenEdgePadding.Bottom, Right: attrs.ScreenEdgePadding.Right}
}

// AvailableSize is the space between frame's origin and the bottom/right padded edges
// of bounds, capped at the frame's own size.
func AvailableSize(attrs Attributes, frame, bounds geometry.Rect) geometry.Size {
	in := LayoutInsets(attrs)
	avail := geometry.Size{
		Width:  math.Max(0, bounds.MaxX()-in.Right-frame.Origin.X),
		Height: math.Max(0, bounds.MaxY()-in.Bottom-frame.Origin.Y),
	}
	return frame.Size.Min(avail)
}

func absoluteFrame(attrs Attributes, size geometry.Size, bounds geometry.Rect) geometry.Rect {
	source := sourceFrame(attrs, bounds)
	pos := attrs.Position
	origin := pos.OriginAnchor.Point(source).Add(pos.PopoverAnchor.offsetIn(size).Scale(-1))

	pad := attrs.ScreenEdgePadding
	origin.X = geometry.Clamp(origin.X, bounds.MinX()+pad.Left, bounds.MaxX()-pad.Right-size.Width)
	origin.Y = geometry.Clamp(origin.Y, bounds.MinY()+pad.Top, bounds.MaxY()-pad.Bottom-size.Height)
	return geometry.Rect{Origin: origin, Size: size}
}

func sourceFrame(attrs Attributes, bounds geometry.Rect) geometry.Rect {
	src := attrs.SourceFrame
	if src.IsZero() {
		src = bounds
	}
	return src.Inset(attrs.SourceFrameInset)
}

func originInside(r geometry.Rect, p geometry.Point) bool {
	return p.X >= r.MinX() && p.X <= r.MaxX() && p.Y >= r.MinY() && p.Y <= r.MaxY()
}
