package ui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/popover/internal/logger"
)

// StatusClearMsg clears an announcement once it has been shown long enough.
type StatusClearMsg struct {
	Seq int
}

// StatusAnnouncer shows accessibility announcements in the header. It satisfies
// popover.Announcer.
type StatusAnnouncer struct {
	header  *Header
	seq     int
	pending bool
}

// NewStatusAnnouncer creates an announcer that writes to header.
func NewStatusAnnouncer(header *Header) *StatusAnnouncer {
	return &StatusAnnouncer{header: header}
}

// Announce shows label until the next announcement or StatusTimeout.
func (a *StatusAnnouncer) Announce(label string) {
	a.seq++
	a.pending = true
	a.header.SetStatus(label)
	logger.ComponentLogger("a11y").Info("announce", "label", label)
}

// Cmd returns the timer for the latest announcement, once.
func (a *StatusAnnouncer) Cmd() tea.Cmd {
	if !a.pending {
		return nil
	}
	a.pending = false
	seq := a.seq
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg {
		return StatusClearMsg{Seq: seq}
	})
}

// Clear removes the announcement if msg belongs to the one still shown.
func (a *StatusAnnouncer) Clear(msg StatusClearMsg) {
	if msg.Seq == a.seq {
		a.header.SetStatus("")
	}
}
