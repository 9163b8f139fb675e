package app

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/popover/internal/config"
	"github.com/zhubert/popover/internal/keys"
	"github.com/zhubert/popover/internal/popover"
	"github.com/zhubert/popover/internal/ui"
)

// testModel creates a playground with default config sized width×height. Mouse
// events are timestamped by a clock that advances a second per event, so
// released drags carry no velocity.
func testModel(t *testing.T, width, height int) *Model {
	t.Helper()
	t.Cleanup(func() { ui.SetTheme(ui.DefaultTheme) })

	m, err := New(config.DefaultConfig(), "0.0.0-test")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	m.copyText = func(string) error { return nil }
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m.SetClock(func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	})
	return setSize(m, width, height)
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "enter", "esc", "ctrl+c", "up", "down"
func keyPress(key string) tea.KeyPressMsg {
	return keys.Press(key)
}

// sendKey sends a key press to the model and returns the updated model.
func sendKey(m *Model, key string) *Model {
	result, _ := m.Update(keyPress(key))
	return result.(*Model)
}

// setSize sends a window size message to the model.
func setSize(m *Model, width, height int) *Model {
	result, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return result.(*Model)
}

// click presses and releases the left button at (x, y).
func click(m *Model, x, y int) *Model {
	m.Update(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
	result, _ := m.Update(tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft})
	return result.(*Model)
}

// drag presses at from, moves through each point in path and releases at the last one.
func drag(m *Model, fromX, fromY int, path ...[2]int) *Model {
	m.Update(tea.MouseClickMsg{X: fromX, Y: fromY, Button: tea.MouseLeft})
	for _, p := range path {
		m.Update(tea.MouseMotionMsg{X: p[0], Y: p[1], Button: tea.MouseLeft})
	}
	last := path[len(path)-1]
	result, _ := m.Update(tea.MouseReleaseMsg{X: last[0], Y: last[1], Button: tea.MouseLeft})
	return result.(*Model)
}

// presented returns the popover presented for preset name, failing if there is none.
func presented(t *testing.T, m *Model, name string) *popover.Popover {
	t.Helper()
	p := m.surface.Container().Model().PopoverWithTag(name)
	if p == nil {
		t.Fatalf("no %s popover presented", name)
	}
	return p
}
