package popover

import (
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/zhubert/popover/internal/logger"
)

// ChangeKind identifies a model mutation.
type ChangeKind int

const (
	ChangeAdded ChangeKind = iota
	ChangeRemoved
	ChangeReplaced
	ChangeReloaded
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeAdded:
		return "added"
	case ChangeRemoved:
		return "removed"
	case ChangeReplaced:
		return "replaced"
	case ChangeReloaded:
		return "reloaded"
	default:
		return "unknown"
	}
}

// Change is delivered to observers after every mutation. Popover is nil for reloads;
// Previous is set only for replacements.
type Change struct {
	Kind     ChangeKind
	Popover  *Popover
	Previous *Popover
}

// Observer is notified synchronously of model changes.
type Observer func(Change)

type subscription struct {
	id int
	fn Observer
}

// Model is the ordered registry of popovers presented on one surface. It is not safe for
// concurrent use; all calls happen on the UI goroutine.
type Model struct {
	popovers  []*Popover
	observers []subscription
	nextID    int
	log       *slog.Logger
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{log: logger.ComponentLogger("popover-model")}
}

// Subscribe registers an observer and returns a function that removes it. Observers
// run in subscription order.
func (m *Model) Subscribe(fn Observer) (unsubscribe func()) {
	id := m.nextID
	m.nextID++
	m.observers = append(m.observers, subscription{id: id, fn: fn})
	return func() {
		m.observers = slices.DeleteFunc(m.observers, func(s subscription) bool { return s.id == id })
	}
}

// Add presents p. A new presentation ID is issued, so measurements from an earlier
// presentation are ignored. Adding a popover that is already in the model restarts
// its presentation in place and reports a reload.
func (m *Model) Add(p *Popover) {
	if p.model == m {
		p.ctx.beginPresentation()
		m.log.Debug("popover re-presented", "id", p.ID, "tag", p.attrs.Tag)
		m.notify(Change{Kind: ChangeReloaded})
		return
	}
	if p.model != nil {
		p.model.Remove(p)
	}
	p.ctx.beginPresentation()
	p.ctx.IsReplacement = false
	p.model = m
	m.popovers = append(m.popovers, p)
	m.log.Debug("popover added", "id", p.ID, "tag", p.attrs.Tag, "count", len(m.popovers))
	m.notify(Change{Kind: ChangeAdded, Popover: p})
}

// Remove dismisses p. Its disappearance callbacks run first, then its OnDismiss, each
// exactly once. It returns false when p is not in the model.
func (m *Model) Remove(p *Popover) bool {
	i := m.index(p)
	if i < 0 {
		return false
	}
	m.popovers = slices.Delete(m.popovers, i, i+1)
	p.model = nil
	p.ctx.Phase = PhaseDismissed
	m.log.Debug("popover removed", "id", p.ID, "tag", p.attrs.Tag, "count", len(m.popovers))

	p.disappeared()
	if p.attrs.OnDismiss != nil {
		p.attrs.OnDismiss()
	}
	m.notify(Change{Kind: ChangeRemoved, Popover: p})
	return true
}

// Replace puts next in old's slot. next starts a fresh presentation marked as a
// replacement and inherits old's frame so the renderer can move it from there.
// old disappears without being dismissed.
func (m *Model) Replace(old, next *Popover) bool {
	i := m.index(old)
	if i < 0 || old == next {
		return false
	}
	if next.model != nil {
		next.model.Remove(next)
		i = m.index(old)
	}

	next.ctx.beginPresentation()
	next.ctx.IsReplacement = true
	next.ctx.StaticFrame = old.ctx.StaticFrame
	next.model = m
	m.popovers[i] = next

	old.model = nil
	old.ctx.Phase = PhaseDismissed
	old.ctx.WasReplaced = true
	m.log.Debug("popover replaced", "old", old.ID, "new", next.ID)

	old.disappeared()
	m.notify(Change{Kind: ChangeReplaced, Popover: next, Previous: old})
	return true
}

// Reload asks observers to re-render without changing membership.
func (m *Model) Reload() {
	m.notify(Change{Kind: ChangeReloaded})
}

// Popovers returns the presented popovers in insertion order.
func (m *Model) Popovers() []*Popover {
	return slices.Clone(m.popovers)
}

// Len returns the number of presented popovers.
func (m *Model) Len() int {
	return len(m.popovers)
}

// Top returns the most recently presented popover, or nil.
func (m *Model) Top() *Popover {
	if len(m.popovers) == 0 {
		return nil
	}
	return m.popovers[len(m.popovers)-1]
}

// Popover looks up a presented popover by ID.
func (m *Model) Popover(id uuid.UUID) *Popover {
	for _, p := range m.popovers {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PopoverWithTag returns the first presented popover with the given tag.
func (m *Model) PopoverWithTag(tag string) *Popover {
	for _, p := range m.popovers {
		if p.attrs.Tag == tag {
			return p
		}
	}
	return nil
}

// Contains reports whether p is presented in m.
func (m *Model) Contains(p *Popover) bool {
	return p != nil && p.model == m
}

func (m *Model) index(p *Popover) int {
	if p == nil || p.model != m {
		return -1
	}
	return slices.Index(m.popovers, p)
}

func (m *Model) notify(c Change) {
	// Snapshot so observers may unsubscribe while being notified.
	for _, s := range slices.Clone(m.observers) {
		s.fn(c)
	}
}
