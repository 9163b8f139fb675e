package ui

import (
	"cmp"
	"math"
	"slices"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/harmonica"
	"github.com/google/uuid"
	"github.com/zhubert/popover/internal/geometry"
	"github.com/zhubert/popover/internal/popover"
)

// AnimationTickMsg advances spring animations by one frame.
type AnimationTickMsg time.Time

// track is the drawn position of one popover easing toward its engine frame.
// An exiting track belongs to a dismissed popover that is still moving out; it
// is dropped once it settles.
type track struct {
	pos, vel, target geometry.Point
	spring           harmonica.Spring
	freq, damping    float64

	last    popover.Placement
	exiting bool
	exitSeq int
}

func (t *track) settled() bool {
	return t.pos.Distance(t.target) < AnimationSettleDistance &&
		math.Abs(t.vel.X) < AnimationSettleDistance && math.Abs(t.vel.Y) < AnimationSettleDistance
}

// Animator eases drawn popover positions toward the frames the engine computes.
// The engine never interpolates; it only flags changes as animated.
type Animator struct {
	fps     int
	freq    float64
	damping float64

	tracks  map[uuid.UUID]*track
	ticking bool
	exits   int
}

// NewAnimator creates an animator. Frequency and damping are used for popovers
// whose transition does not set its own.
func NewAnimator(fps int, frequency, damping float64) *Animator {
	if fps <= 0 {
		fps = DefaultAnimationFPS
	}
	return &Animator{
		fps:     fps,
		freq:    frequency,
		damping: damping,
		tracks:  make(map[uuid.UUID]*track),
	}
}

// Sync picks up the current placements. Animated changes ease from the drawn
// position; others jump. Newly visible popovers with a slide transition start
// one frame-height beyond their edge. Popovers that were dismissed keep moving
// out: to the frame the engine left them at when it differs from the drawn
// target, otherwise past their dismissal slide edge. It returns a command that
// starts ticking when anything is in motion.
func (a *Animator) Sync(placements []popover.Placement) tea.Cmd {
	seen := make(map[uuid.UUID]bool, len(placements))
	for _, pl := range placements {
		if !pl.Visible {
			continue
		}
		seen[pl.ID] = true
		target := pl.Frame.Origin

		t, ok := a.tracks[pl.ID]
		if ok && t.exiting {
			delete(a.tracks, pl.ID)
			ok = false
		}
		if !ok {
			t = &track{pos: target, target: target}
			if pl.Transition.Kind == popover.TransitionSlide {
				t.pos = slideStart(pl.Frame, pl.Transition.Edge)
			}
			a.tracks[pl.ID] = t
		}
		t.last = pl
		a.setSpring(t, pl.Transition)

		if target == t.target {
			continue
		}
		t.target = target
		if !pl.Animated {
			t.pos, t.vel = target, geometry.Point{}
		}
	}
	for id, t := range a.tracks {
		if seen[id] || t.exiting {
			continue
		}
		if !a.beginExit(t) {
			delete(a.tracks, id)
		}
	}
	return a.startTicking()
}

// beginExit turns t into an exiting track. It returns false when the popover
// should simply vanish.
func (a *Animator) beginExit(t *track) bool {
	p := t.last.Popover
	if p == nil || p.IsPresented() {
		return false
	}
	ctx := p.Context()
	if ctx.Phase != popover.PhaseDismissed || ctx.WasReplaced {
		return false
	}

	transition := p.Attributes().Dismissal.Transition
	target := ctx.Frame().Origin
	if target == t.target {
		if transition.Kind != popover.TransitionSlide {
			return false
		}
		target = slideStart(geometry.Rect{Origin: t.target, Size: t.last.Frame.Size}, transition.Edge)
	}

	a.setSpring(t, transition)
	t.target = target
	t.exiting = true
	t.exitSeq = a.exits
	a.exits++
	return !t.settled()
}

func (a *Animator) setSpring(t *track, tr popover.Transition) {
	freq, damping := a.freq, a.damping
	if tr.Frequency > 0 {
		freq, damping = tr.Frequency, tr.Damping
	}
	if t.spring == (harmonica.Spring{}) || t.freq != freq || t.damping != damping {
		t.spring = harmonica.NewSpring(harmonica.FPS(a.fps), freq, damping)
		t.freq, t.damping = freq, damping
	}
}

// Exiting returns the last placements of dismissed popovers that are still
// moving out, oldest first, with Frame moved to where each is drawn.
func (a *Animator) Exiting() []popover.Placement {
	var ts []*track
	for _, t := range a.tracks {
		if t.exiting {
			ts = append(ts, t)
		}
	}
	slices.SortFunc(ts, func(x, y *track) int { return cmp.Compare(x.exitSeq, y.exitSeq) })

	out := make([]popover.Placement, 0, len(ts))
	for _, t := range ts {
		pl := t.last
		pl.Frame.Origin = t.pos
		out = append(out, pl)
	}
	return out
}

// Position returns where the popover with id is drawn.
func (a *Animator) Position(id uuid.UUID) (geometry.Point, bool) {
	t, ok := a.tracks[id]
	if !ok {
		return geometry.Point{}, false
	}
	return t.pos, true
}

// Animating reports whether any popover is still moving.
func (a *Animator) Animating() bool {
	for _, t := range a.tracks {
		if !t.settled() {
			return true
		}
	}
	return false
}

// Tick advances every spring by one frame and returns the next tick, or nil
// once everything has settled. Exiting tracks are dropped when they settle.
func (a *Animator) Tick() tea.Cmd {
	for id, t := range a.tracks {
		if !t.settled() {
			t.pos.X, t.vel.X = t.spring.Update(t.pos.X, t.vel.X, t.target.X)
			t.pos.Y, t.vel.Y = t.spring.Update(t.pos.Y, t.vel.Y, t.target.Y)
		}
		if !t.settled() {
			continue
		}
		if t.exiting {
			delete(a.tracks, id)
			continue
		}
		t.pos, t.vel = t.target, geometry.Point{}
	}
	a.ticking = false
	return a.startTicking()
}

func (a *Animator) startTicking() tea.Cmd {
	if a.ticking || !a.Animating() {
		return nil
	}
	a.ticking = true
	return tea.Tick(time.Second/time.Duration(a.fps), func(t time.Time) tea.Msg {
		return AnimationTickMsg(t)
	})
}

// slideStart is where a popover sliding in from edge begins.
func slideStart(frame geometry.Rect, edge popover.Anchor) geometry.Point {
	o := frame.Origin
	switch edge {
	case popover.AnchorTop:
		return geometry.Pt(o.X, o.Y-frame.Size.Height)
	case popover.AnchorLeft:
		return geometry.Pt(o.X-frame.Size.Width, o.Y)
	case popover.AnchorRight:
		return geometry.Pt(o.X+frame.Size.Width, o.Y)
	default:
		return geometry.Pt(o.X, o.Y+frame.Size.Height)
	}
}
