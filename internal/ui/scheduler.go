package ui

import tea "charm.land/bubbletea/v2"

// DeferredMsg tells the program to run work queued on a Scheduler.
type DeferredMsg struct{}

// Scheduler queues popover work for the next turn of the Bubble Tea event loop.
// It satisfies popover.Scheduler. Like the rest of the UI it is only touched from
// the program's Update goroutine.
type Scheduler struct {
	queue []func()
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule queues fn.
func (s *Scheduler) Schedule(fn func()) {
	s.queue = append(s.queue, fn)
}

// Pending returns the number of queued functions.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// Cmd returns a command that delivers DeferredMsg, or nil when nothing is queued.
func (s *Scheduler) Cmd() tea.Cmd {
	if len(s.queue) == 0 {
		return nil
	}
	return func() tea.Msg { return DeferredMsg{} }
}

// Run drains the queue and returns how many functions ran. Work scheduled while
// draining waits for the next DeferredMsg.
func (s *Scheduler) Run() int {
	pending := s.queue
	s.queue = nil
	for _, fn := range pending {
		fn()
	}
	return len(pending)
}
