package popover

import (
	"github.com/zhubert/popover/internal/geometry"
	"github.com/zhubert/popover/internal/logger"
)

// Announcer receives accessibility announcements from presented popovers.
type Announcer interface {
	Announce(label string)
}

// Surface is a presentation host: a screen region with its own model and container.
// Hosts pass the surface explicitly to Present; there is no global lookup.
type Surface struct {
	Bounds    geometry.Rect
	Scheduler Scheduler
	Announcer Announcer

	container *Container
}

// NewSurface creates a surface covering bounds.
func NewSurface(bounds geometry.Rect, scheduler Scheduler) *Surface {
	return &Surface{Bounds: bounds, Scheduler: scheduler}
}

// Container returns the surface's container, creating it on first use.
func (s *Surface) Container() *Container {
	if s.container == nil {
		s.container = NewContainer(NewModel(), s.Bounds, s.Scheduler)
	}
	return s.container
}

// Resize updates the surface bounds and re-lays out its popovers.
func (s *Surface) Resize(bounds geometry.Rect) {
	s.Bounds = bounds
	if s.container != nil {
		s.container.SetBounds(bounds)
	}
}

// Present adds p to the surface's model. When Present returns p is part of the model;
// it becomes visible once its size has been reported.
func Present(p *Popover, s *Surface) {
	c := s.Container()
	c.Model().Add(p)
	logger.ComponentLogger("presentation").Debug("presented", "id", p.ID, "tag", p.attrs.Tag)

	if a := p.attrs.Accessibility; a.ShiftFocus && s.Announcer != nil && a.Label != "" {
		s.Announcer.Announce(a.Label)
	}
}

// Dismiss removes p from whatever surface presents it.
func Dismiss(p *Popover) {
	p.Dismiss()
}

// Replace swaps old for next on old's surface. It returns false when old is not presented.
func Replace(old, next *Popover) bool {
	if old.model == nil {
		return false
	}
	return old.model.Replace(old, next)
}
