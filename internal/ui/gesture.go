package ui

import (
	"time"

	"github.com/zhubert/popover/internal/geometry"
	"github.com/zhubert/popover/internal/popover"
)

// GestureKind says what a pointer event amounted to.
type GestureKind int

const (
	// GestureNone: nothing to report yet.
	GestureNone GestureKind = iota
	// GestureDragChanged: the pointer moved during a drag.
	GestureDragChanged
	// GestureDragEnded: the pointer was released after a drag.
	GestureDragEnded
	// GestureTap: the pointer was released without moving far enough to drag.
	GestureTap
)

// Gesture is the recognizer's output for one pointer event.
type Gesture struct {
	Kind  GestureKind
	Point geometry.Point
	Drag  popover.DragEvent
}

type pointerSample struct {
	at time.Time
	p  geometry.Point
}

// DragRecognizer turns raw press/move/release events into taps and drags. A
// press becomes a drag once the pointer travels MinimumDistance. On release the
// recent velocity is projected forward with DecelerationRate to predict where
// the gesture would have come to rest.
type DragRecognizer struct {
	MinimumDistance  float64
	DecelerationRate float64

	now      func() time.Time
	pressed  bool
	dragging bool
	start    geometry.Point
	samples  []pointerSample
}

// NewDragRecognizer creates a recognizer. Non-positive values select the defaults.
func NewDragRecognizer(minimumDistance, decelerationRate float64) *DragRecognizer {
	if minimumDistance <= 0 {
		minimumDistance = DefaultDragMinimumDistance
	}
	if decelerationRate <= 0 || decelerationRate >= 1 {
		decelerationRate = DefaultDecelerationRate
	}
	return &DragRecognizer{
		MinimumDistance:  minimumDistance,
		DecelerationRate: decelerationRate,
		now:              time.Now,
	}
}

// SetClock replaces time.Now as the source of sample timestamps, for replaying
// recorded input.
func (r *DragRecognizer) SetClock(now func() time.Time) {
	r.now = now
}

// Dragging reports whether a drag is in progress.
func (r *DragRecognizer) Dragging() bool {
	return r.dragging
}

// Press starts tracking at p.
func (r *DragRecognizer) Press(p geometry.Point) Gesture {
	r.pressed = true
	r.dragging = false
	r.start = p
	r.samples = append(r.samples[:0], pointerSample{at: r.now(), p: p})
	return Gesture{Kind: GestureNone, Point: p}
}

// Move reports pointer motion. It returns GestureDragChanged once the press has
// turned into a drag.
func (r *DragRecognizer) Move(p geometry.Point) Gesture {
	if !r.pressed {
		return Gesture{Kind: GestureNone, Point: p}
	}
	r.record(p)
	if !r.dragging && p.Distance(r.start) < r.MinimumDistance {
		return Gesture{Kind: GestureNone, Point: p}
	}
	r.dragging = true
	return Gesture{
		Kind:  GestureDragChanged,
		Point: p,
		Drag:  popover.DragEvent{Start: r.start, Translation: p.Sub(r.start)},
	}
}

// Release ends the gesture at p.
func (r *DragRecognizer) Release(p geometry.Point) Gesture {
	if !r.pressed {
		return Gesture{Kind: GestureNone, Point: p}
	}
	r.record(p)
	wasDragging := r.dragging
	r.pressed, r.dragging = false, false

	if !wasDragging {
		return Gesture{Kind: GestureTap, Point: r.start}
	}
	translation := p.Sub(r.start)
	return Gesture{
		Kind:  GestureDragEnded,
		Point: p,
		Drag: popover.DragEvent{
			Start:                   r.start,
			Translation:             translation,
			PredictedEndTranslation: translation.Add(r.projection()),
		},
	}
}

// Cancel abandons the gesture without reporting it.
func (r *DragRecognizer) Cancel() {
	r.pressed, r.dragging = false, false
	r.samples = r.samples[:0]
}

func (r *DragRecognizer) record(p geometry.Point) {
	now := r.now()
	r.samples = append(r.samples, pointerSample{at: now, p: p})
	cutoff := now.Add(-VelocityWindow)
	i := 0
	for i < len(r.samples)-1 && r.samples[i].at.Before(cutoff) {
		i++
	}
	r.samples = r.samples[i:]
}

// velocity is in cells per millisecond over the sample window.
func (r *DragRecognizer) velocity() geometry.Vector {
	if len(r.samples) < 2 {
		return geometry.Vector{}
	}
	first, last := r.samples[0], r.samples[len(r.samples)-1]
	ms := float64(last.at.Sub(first.at)) / float64(time.Millisecond)
	if ms <= 0 {
		return geometry.Vector{}
	}
	return last.p.Sub(first.p).Scale(1 / ms)
}

// projection is the distance the gesture would still travel if its velocity
// decayed by DecelerationRate every millisecond.
func (r *DragRecognizer) projection() geometry.Vector {
	d := r.DecelerationRate
	return r.velocity().Scale(d / (1 - d))
}
