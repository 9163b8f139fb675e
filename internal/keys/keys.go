// Package keys holds the key strings the playground matches against.
//
// Each value comes from tea.KeyPressMsg{...}.String(), so it always agrees with
// what Bubble Tea reports at runtime ("esc", not "escape"). Printable single
// characters such as "q" or "1" are written inline where they are bound.
package keys

import tea "charm.land/bubbletea/v2"

// Cursor movement, used by menus and the confirm form
var (
	Up    = tea.KeyPressMsg{Code: tea.KeyUp}.String()    // "up"
	Down  = tea.KeyPressMsg{Code: tea.KeyDown}.String()  // "down"
	Left  = tea.KeyPressMsg{Code: tea.KeyLeft}.String()  // "left"
	Right = tea.KeyPressMsg{Code: tea.KeyRight}.String() // "right"
)

// Popover actions
var (
	Enter     = tea.KeyPressMsg{Code: tea.KeyEnter}.String()                    // "enter"
	Tab       = tea.KeyPressMsg{Code: tea.KeyTab}.String()                      // "tab"
	ShiftTab  = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}).String() // "shift+tab"
	Backspace = tea.KeyPressMsg{Code: tea.KeyBackspace}.String()                // "backspace"
	Escape    = tea.KeyPressMsg{Code: tea.KeyEscape}.String()                   // "esc"
)

// Ctrl combinations
var (
	CtrlC = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String() // "ctrl+c"
	CtrlN = (tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl}).String() // "ctrl+n"
	CtrlP = (tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl}).String() // "ctrl+p"
	CtrlR = (tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}).String() // "ctrl+r"
)

var named = map[string]tea.KeyPressMsg{
	Up:        {Code: tea.KeyUp},
	Down:      {Code: tea.KeyDown},
	Left:      {Code: tea.KeyLeft},
	Right:     {Code: tea.KeyRight},
	Enter:     {Code: tea.KeyEnter},
	Tab:       {Code: tea.KeyTab},
	ShiftTab:  {Code: tea.KeyTab, Mod: tea.ModShift},
	Backspace: {Code: tea.KeyBackspace},
	Escape:    {Code: tea.KeyEscape},
	CtrlC:     {Code: 'c', Mod: tea.ModCtrl},
	CtrlN:     {Code: 'n', Mod: tea.ModCtrl},
	CtrlP:     {Code: 'p', Mod: tea.ModCtrl},
	CtrlR:     {Code: 'r', Mod: tea.ModCtrl},
}

// Press builds the key press whose String() is key. Anything that is not one
// of the names above is taken as typed text.
func Press(key string) tea.KeyPressMsg {
	if msg, ok := named[key]; ok {
		return msg
	}
	r := []rune(key)
	if len(r) == 1 {
		return tea.KeyPressMsg{Code: r[0], Text: key}
	}
	return tea.KeyPressMsg{Text: key}
}
