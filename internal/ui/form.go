package ui

import (
	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/popover/internal/keys"
)

// ConfirmWidth is the width of confirmation forms
const ConfirmWidth = 36

// Confirm is a yes/no question backed by a huh form.
type Confirm struct {
	form      *huh.Form
	confirmed bool
	onResult  func(bool)
}

// NewConfirm creates a confirmation popover. onResult receives the answer when
// the form completes.
func NewConfirm(title, description string, onResult func(bool)) *Confirm {
	c := &Confirm{onResult: onResult}
	c.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&c.confirmed),
		),
	).WithTheme(FormTheme()).
		WithShowHelp(false).
		WithWidth(ConfirmWidth)

	// Initialize eagerly so the first View is already laid out.
	c.form.Init()
	return c
}

// Confirmed returns the current answer.
func (c *Confirm) Confirmed() bool {
	return c.confirmed
}

// Update implements Interactive.
func (c *Confirm) Update(msg tea.Msg) (bool, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && keyMsg.String() == keys.Escape {
		// Escape dismisses the popover at the app layer.
		return false, nil
	}

	m, cmd := c.form.Update(msg)
	c.form = m.(*huh.Form)

	switch c.form.State {
	case huh.StateCompleted:
		if c.onResult != nil {
			c.onResult(c.confirmed)
		}
		return true, cmd
	case huh.StateAborted:
		return true, cmd
	}
	return false, cmd
}

// Bindings implements Interactive.
func (c *Confirm) Bindings() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys(keys.Left, keys.Right), key.WithHelp("←/→", "choose")),
		key.NewBinding(key.WithKeys(keys.Enter), key.WithHelp("enter", "answer")),
		key.NewBinding(key.WithKeys(keys.Escape), key.WithHelp("esc", "cancel")),
	}
}

// View implements Content.
func (c *Confirm) View(st RenderState) string {
	return frame(c.form.View(), st)
}

// FormTheme returns a huh theme that matches the current popover palette.
func FormTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		t.Focused.Base = lipgloss.NewStyle()
		t.Focused.Card = t.Focused.Base
		t.Focused.Title = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
		t.Focused.Description = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)

		t.Focused.FocusedButton = lipgloss.NewStyle().
			Padding(0, 2).
			MarginRight(1).
			Foreground(ColorTextInverse).
			Background(ColorPrimary)
		t.Focused.BlurredButton = lipgloss.NewStyle().
			Padding(0, 2).
			MarginRight(1).
			Foreground(ColorTextMuted)

		t.Blurred = t.Focused

		t.Help = help.New().Styles
		return t
	})
}
