package app

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/popover/internal/keys"
	"github.com/zhubert/popover/internal/popover"
	"github.com/zhubert/popover/internal/ui"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)

	case tea.KeyPressMsg:
		cmds = append(cmds, m.handleKey(msg))

	case tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg:
		m.handleMouse(msg)

	case ui.DeferredMsg:
		if n := m.scheduler.Run(); n > 0 {
			m.log.Debug("ran deferred work", "count", n)
		}

	case ui.AnimationTickMsg:
		cmds = append(cmds, m.animator.Tick())

	case ui.StatusClearMsg:
		m.announcer.Clear(msg)

	default:
		// Cursor blinks and form internals belong to the focused content.
		if p, in := m.renderer.Focused(); in != nil {
			done, cmd := in.Update(msg)
			cmds = append(cmds, cmd)
			if done {
				popover.Dismiss(p)
			}
		}
	}

	if m.quitting {
		return m, tea.Quit
	}
	cmds = append(cmds, m.sync())
	return m, tea.Batch(cmds...)
}

// sync runs after every update: it reports content sizes, hands new frames to
// the animator and refreshes the chrome.
func (m *Model) sync() tea.Cmd {
	m.renderer.Measure()

	m.header.SetPopoverCount(m.surface.Container().Model().Len())
	var contextual []key.Binding
	if _, in := m.renderer.Focused(); in != nil {
		contextual = in.Bindings()
	}
	m.footer.SetContext(m.surface.Container().Dragging() != nil, contextual...)

	return tea.Batch(
		m.renderer.Sync(),
		m.scheduler.Cmd(),
		m.announcer.Cmd(),
	)
}

// handleKey routes a key press. Interactive content on top takes every key
// except ctrl+c; esc always dismisses.
func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == keys.CtrlC {
		m.quitting = true
		return nil
	}

	if p, in := m.renderer.Focused(); in != nil {
		if msg.String() == keys.Escape {
			popover.Dismiss(p)
			return nil
		}
		done, cmd := in.Update(msg)
		if done {
			popover.Dismiss(p)
		}
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true

	case key.Matches(msg, m.keys.Dismiss):
		if top := m.surface.Container().Model().Top(); top != nil {
			popover.Dismiss(top)
		}

	case key.Matches(msg, m.keys.Reload):
		m.surface.Container().Model().Reload()
		m.announcer.Announce("Reloaded")

	case key.Matches(msg, m.keys.Copy):
		m.copyCode()

	case key.Matches(msg, m.keys.Present):
		if b, ok := m.buttonFor(msg.String()); ok {
			m.present(b)
		}
	}
	return nil
}

// copyCode puts the source of the top-most code popover on the clipboard.
func (m *Model) copyCode() {
	ps := m.Popovers()
	for i := len(ps) - 1; i >= 0; i-- {
		code, ok := ps[i].Content.(*ui.Code)
		if !ok {
			continue
		}
		if err := m.copyText(code.Source); err != nil {
			m.log.Warn("copy failed", "error", err)
			m.announcer.Announce("Clipboard unavailable")
			return
		}
		m.announcer.Announce("Copied " + code.Title)
		return
	}
}
