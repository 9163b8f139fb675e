package app

import (
	"charm.land/bubbles/v2/key"
	"github.com/zhubert/popover/internal/keys"
)

// KeyMap holds the playground's global bindings. It satisfies help.KeyMap.
type KeyMap struct {
	Present key.Binding
	Dismiss key.Binding
	Reload  key.Binding
	Copy    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the playground bindings.
func DefaultKeyMap() KeyMap {
	presetKeys := make([]string, 0, len(Presets()))
	for _, p := range Presets() {
		presetKeys = append(presetKeys, p.Key)
	}
	return KeyMap{
		Present: key.NewBinding(
			key.WithKeys(presetKeys...),
			key.WithHelp("1-6", "present"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys(keys.Escape),
			key.WithHelp("esc", "dismiss"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r", keys.CtrlR),
			key.WithHelp("r", "reload"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy code"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", keys.CtrlC),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Present, k.Dismiss, k.Reload, k.Copy, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Present, k.Dismiss, k.Reload},
		{k.Copy, k.Quit},
	}
}
