package ui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sahilm/fuzzy"
	"github.com/zhubert/popover/internal/keys"
)

// MenuFilterCharLimit caps the filter input.
const MenuFilterCharLimit = 32

// menuRow is one visible item and the byte offsets the filter matched in it.
type menuRow struct {
	item    string
	matched []int
}

// Menu is a fuzzy-filtered list. Typing narrows the items, up/down moves the
// cursor and enter picks the highlighted item.
type Menu struct {
	Title    string
	Items    []string
	OnSelect func(item string)

	input  textinput.Model
	rows   []menuRow
	cursor int
	offset int
	width  int
}

// NewMenu creates a menu over items.
func NewMenu(title string, items []string, onSelect func(string)) *Menu {
	m := &Menu{Title: title, Items: items, OnSelect: onSelect}
	for _, it := range items {
		m.width = max(m.width, lipgloss.Width(it))
	}
	m.width = max(m.width, lipgloss.Width(title), 12)

	m.input = textinput.New()
	m.input.Placeholder = "filter..."
	m.input.CharLimit = MenuFilterCharLimit
	m.input.SetWidth(m.width - 2)
	m.input.Focus()

	m.filter()
	return m
}

// Query returns the current filter text.
func (m *Menu) Query() string {
	return m.input.Value()
}

// Highlighted returns the item under the cursor, if any.
func (m *Menu) Highlighted() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return "", false
	}
	return m.rows[m.cursor].item, true
}

// Update implements Interactive.
func (m *Menu) Update(msg tea.Msg) (bool, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up, keys.CtrlP:
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
			return false, nil
		case keys.Down, keys.CtrlN:
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				if m.cursor >= m.offset+MenuVisibleItems {
					m.offset = m.cursor - MenuVisibleItems + 1
				}
			}
			return false, nil
		case keys.Enter:
			item, ok := m.Highlighted()
			if !ok {
				return false, nil
			}
			if m.OnSelect != nil {
				m.OnSelect(item)
			}
			return true, nil
		}
	}

	var cmd tea.Cmd
	oldQuery := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != oldQuery {
		m.filter()
	}
	return false, cmd
}

// filter rebuilds the visible rows from the query. An empty query lists every
// item in order; otherwise items are ranked by fuzzy score.
func (m *Menu) filter() {
	m.cursor, m.offset = 0, 0
	query := m.input.Value()
	if query == "" {
		m.rows = make([]menuRow, len(m.Items))
		for i, it := range m.Items {
			m.rows[i] = menuRow{item: it}
		}
		return
	}
	matches := fuzzy.Find(query, m.Items)
	m.rows = make([]menuRow, len(matches))
	for i, match := range matches {
		m.rows[i] = menuRow{item: match.Str, matched: match.MatchedIndexes}
	}
}

// Bindings implements Interactive.
func (m *Menu) Bindings() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys(keys.Up, keys.Down), key.WithHelp("↑/↓", "move")),
		key.NewBinding(key.WithKeys(keys.Enter), key.WithHelp("enter", "select")),
		key.NewBinding(key.WithKeys(keys.Escape), key.WithHelp("esc", "close")),
	}
}

// View implements Content. The menu always renders MenuVisibleItems rows so
// filtering never changes its size.
func (m *Menu) View(st RenderState) string {
	lines := []string{PopoverTitleStyle.Render(m.Title), m.input.View()}

	for i := m.offset; i < m.offset+MenuVisibleItems; i++ {
		if i >= len(m.rows) {
			if i == 0 {
				lines = append(lines, MenuFilterStyle.Render(padRight("no matches", m.width)))
				continue
			}
			lines = append(lines, strings.Repeat(" ", m.width))
			continue
		}
		lines = append(lines, m.renderRow(m.rows[i], i == m.cursor))
	}
	return frame(strings.Join(lines, "\n"), st)
}

func (m *Menu) renderRow(row menuRow, selected bool) string {
	base := MenuItemStyle
	if selected {
		base = MenuSelectedStyle
	}
	match := MenuMatchStyle.Inherit(base)

	matched := make(map[int]bool, len(row.matched))
	for _, idx := range row.matched {
		matched[idx] = true
	}

	var b strings.Builder
	for i, r := range row.item {
		if matched[i] {
			b.WriteString(match.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	if pad := m.width - lipgloss.Width(row.item); pad > 0 {
		b.WriteString(base.Render(strings.Repeat(" ", pad)))
	}
	return b.String()
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
