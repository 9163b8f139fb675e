package popover

import (
	"math"
	"testing"

	"github.com/zhubert/popover/internal/geometry"
)

var rubberBandSamples = []float64{0.001, 0.25, 0.5, 1, 2, 7.5, 50, 80, 400, 1e6}

func TestRubberBand_OddSymmetric(t *testing.T) {
	for _, v := range rubberBandSamples {
		if got, want := RubberBand(-v), -RubberBand(v); got != want {
			t.Errorf("RubberBand(%v) = %v, want %v", -v, got, want)
		}
	}
	if RubberBand(0) != 0 {
		t.Errorf("RubberBand(0) = %v, want 0", RubberBand(0))
	}
}

func TestRubberBand_Contracts(t *testing.T) {
	for _, v := range rubberBandSamples {
		for _, tv := range []float64{v, -v} {
			if got := RubberBand(tv); math.Abs(got) >= math.Abs(tv) {
				t.Errorf("|RubberBand(%v)| = %v, want < %v", tv, math.Abs(got), math.Abs(tv))
			}
		}
	}
}

func TestRubberBand_MonotonicSubLinear(t *testing.T) {
	prev := 0.0
	for _, v := range rubberBandSamples {
		got := RubberBand(v)
		if got <= prev {
			t.Errorf("RubberBand(%v) = %v, not greater than %v", v, got, prev)
		}
		prev = got
	}
	// Resistance builds with distance: the damped/raw ratio shrinks.
	if RubberBand(400)/400 >= RubberBand(10)/10 {
		t.Error("expected growth slower than linear")
	}
}

func TestRubberBand_ShiftedPowerCurve(t *testing.T) {
	if got := RubberBand(0.5); got >= 0.5 {
		t.Errorf("RubberBand(0.5) = %v, want below the raw translation", got)
	}
	for _, v := range []float64{10, 100, 1000} {
		got, plain := RubberBand(v), math.Pow(v, rubberBandExponent)
		if d := plain - got; d <= 0 || d > 1 {
			t.Errorf("RubberBand(%v) = %v, want within one cell below %v", v, got, plain)
		}
	}
}

func TestRubberBandVector(t *testing.T) {
	v := geometry.Vec(10, -10)
	tests := []struct {
		name  string
		axes  RubberBanding
		wantX bool
		wantY bool
	}{
		{"none", RubberBandNone, false, false},
		{"x only", RubberBandX, true, false},
		{"y only", RubberBandY, false, true},
		{"both", RubberBandBoth, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RubberBandVector(v, tt.axes)
			if (got.X != 0) != tt.wantX || (got.Y != 0) != tt.wantY {
				t.Errorf("RubberBandVector() = %v", got)
			}
			if tt.wantX && got.X != RubberBand(10) {
				t.Errorf("X = %v, want %v", got.X, RubberBand(10))
			}
		})
	}
}

func dragAttrs(pos Position, mode DismissMode, axes RubberBanding) Attributes {
	a := DefaultAttributes()
	a.Position = pos
	a.Dismissal.Mode = mode
	a.RubberBanding = axes
	a.ScreenEdgePadding = geometry.EdgeInsets{}
	return a
}

func TestDragOffset_DragDown(t *testing.T) {
	a := dragAttrs(Absolute(AnchorCenter, AnchorCenter), DismissDragDown, RubberBandBoth)

	down := DragOffset(a, geometry.Vec(0, 50))
	if down.Y != 50 {
		t.Errorf("downward offset = %v, want 50", down.Y)
	}

	up := DragOffset(a, geometry.Vec(0, -50))
	if up.Y >= 0 || math.Abs(up.Y) >= 50 {
		t.Errorf("upward offset = %v, want rubber-banded in (-50, 0)", up.Y)
	}

	side := DragOffset(a, geometry.Vec(30, 0))
	if side.X != RubberBand(30) {
		t.Errorf("horizontal offset = %v, want %v", side.X, RubberBand(30))
	}
}

func TestDragOffset_DragDownHorizontalLocked(t *testing.T) {
	a := dragAttrs(Absolute(AnchorCenter, AnchorCenter), DismissDragDown, RubberBandY)
	got := DragOffset(a, geometry.Vec(30, 20))
	if got.X != 0 {
		t.Errorf("X = %v, want 0 without x rubber-banding", got.X)
	}
	if got.Y != 20 {
		t.Errorf("Y = %v, want 20", got.Y)
	}
}

func TestDragOffset_DragUp(t *testing.T) {
	a := dragAttrs(Absolute(AnchorCenter, AnchorCenter), DismissDragUp, RubberBandBoth)

	if got := DragOffset(a, geometry.Vec(0, -50)); got.Y != -50 {
		t.Errorf("upward offset = %v, want -50", got.Y)
	}
	if got := DragOffset(a, geometry.Vec(0, 50)); got.Y <= 0 || got.Y >= 50 {
		t.Errorf("downward offset = %v, want rubber-banded in (0, 50)", got.Y)
	}
}

func TestDragOffset_BothDirections(t *testing.T) {
	a := dragAttrs(Absolute(AnchorCenter, AnchorCenter), DismissDragDown|DismissDragUp, RubberBandBoth)
	for _, y := range []float64{-40, 40} {
		if got := DragOffset(a, geometry.Vec(0, y)); got.Y != y {
			t.Errorf("offset for %v = %v, want free movement", y, got.Y)
		}
	}
}

func TestDragOffset_NoDragDismissal(t *testing.T) {
	tr := geometry.Vec(-20, 35)

	a := dragAttrs(Absolute(AnchorCenter, AnchorCenter), DismissTapOutside, RubberBandBoth)
	if got, want := DragOffset(a, tr), RubberBandVector(tr, RubberBandBoth); got != want {
		t.Errorf("DragOffset() = %v, want %v", got, want)
	}

	a.RubberBanding = RubberBandNone
	if got := DragOffset(a, tr); !got.IsZero() {
		t.Errorf("DragOffset() = %v, want zero with no rubber-banding", got)
	}
}

func TestDragOffset_SingleAnchorMatchesAbsolute(t *testing.T) {
	abs := dragAttrs(Absolute(AnchorCenter, AnchorCenter), DismissDragDown, RubberBandBoth)
	rel := dragAttrs(Relative(AnchorBottom), DismissDragDown, RubberBandBoth)

	for _, tr := range []geometry.Vector{geometry.Vec(0, -80), geometry.Vec(12, 40), geometry.Vec(-5, -5)} {
		if a, r := DragOffset(abs, tr), DragOffset(rel, tr); a != r {
			t.Errorf("translation %v: absolute %v, relative single anchor %v", tr, a, r)
		}
	}
}

func TestDragOffset_MultiAnchorFollowsPointer(t *testing.T) {
	a := dragAttrs(Relative(AnchorTopLeft, AnchorBottomRight), DismissDragDown, RubberBandBoth)
	tr := geometry.Vec(-300, 500)
	if got := DragOffset(a, tr); got != tr {
		t.Errorf("DragOffset() = %v, want %v unclamped", got, tr)
	}
}
