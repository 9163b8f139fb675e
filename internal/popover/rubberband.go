package popover

import (
	"math"

	"github.com/zhubert/popover/internal/geometry"
)

// rubberBandExponent controls how quickly resistance builds up.
const rubberBandExponent = 0.9

// RubberBand damps a drag translation on one axis. It is odd-symmetric and monotonic.
//
// The curve is sign(t)·((1+|t|)^0.9 − 1) rather than the plain sign(t)·|t|^0.9.
// The plain curve exceeds |t| below one cell and has an infinite slope at zero, so
// small drags would jump. The shifted curve is always within |t|, has slope 0.9 at
// zero, and stays within one cell of |t|^0.9 for large translations.
func RubberBand(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Copysign(math.Pow(1+math.Abs(t), rubberBandExponent)-1, t)
}

// RubberBandVector damps the axes of v selected by axes and zeroes the others.
func RubberBandVector(v geometry.Vector, axes RubberBanding) geometry.Vector {
	var out geometry.Vector
	if axes.Has(RubberBandX) {
		out.X = RubberBand(v.X)
	}
	if axes.Has(RubberBandY) {
		out.Y = RubberBand(v.Y)
	}
	return out
}

// DragOffset maps a raw drag translation to the live offset of a popover.
//
// A popover that can move between several relative anchors follows the pointer
// directly. Otherwise the vertical axis moves freely in a drag-dismissal direction
// and rubber-bands against it, and the horizontal axis follows the rubber-banding
// setting.
func DragOffset(attrs Attributes, translation geometry.Vector) geometry.Vector {
	if attrs.Position.repositionable() {
		return translation
	}

	offset := RubberBandVector(translation, attrs.RubberBanding)

	mode := attrs.Dismissal.Mode
	down, up := mode.Has(DismissDragDown), mode.Has(DismissDragUp)
	switch {
	case down && up:
		offset.Y = translation.Y
	case down:
		if translation.Y > 0 {
			offset.Y = translation.Y
		} else {
			offset.Y = RubberBand(translation.Y)
		}
	case up:
		if translation.Y < 0 {
			offset.Y = translation.Y
		} else {
			offset.Y = RubberBand(translation.Y)
		}
	}
	return offset
}
