package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// MenuItem is a single entry in a Menu.
type MenuItem struct {
	Name       string
	Action     func(*MenuItem)
	Data       map[string]string
	Selectable bool
	Visible    bool
}

// Menu is a titled, box-drawn list of selectable items with wrap-around
// keyboard navigation and optional number shortcuts.
type Menu struct {
	Title       string
	ShowNumbers bool

	items    []*MenuItem
	selected int
}

// NewMenu creates an empty menu.
func NewMenu(title string, showNumbers bool) *Menu {
	return &Menu{Title: title, ShowNumbers: showNumbers}
}

// AddItem appends a selectable, visible item and returns it for further
// configuration.
func (m *Menu) AddItem(name string, action func(*MenuItem)) *MenuItem {
	item := &MenuItem{
		Name:       name,
		Action:     action,
		Data:       make(map[string]string),
		Selectable: true,
		Visible:    true,
	}
	m.items = append(m.items, item)
	return item
}

// Clear removes all items and resets the selection.
func (m *Menu) Clear() {
	m.items = nil
	m.selected = 0
}

// Len returns the number of items, visible or not.
func (m *Menu) Len() int {
	return len(m.items)
}

// Selected returns the currently selected item, or nil for an empty menu.
func (m *Menu) Selected() *MenuItem {
	if m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return m.items[m.selected]
}

// SelectedIndex returns the index of the current selection.
func (m *Menu) SelectedIndex() int {
	return m.selected
}

// Next moves the selection forward, wrapping around and skipping
// unselectable items.
func (m *Menu) Next() {
	m.advance(1)
}

// Previous moves the selection backward, wrapping around and skipping
// unselectable items.
func (m *Menu) Previous() {
	m.advance(-1)
}

// advance walks the item list in the given direction until it finds a
// selectable item or comes back around.
func (m *Menu) advance(delta int) {
	if len(m.items) == 0 {
		return
	}
	original := m.selected
	for {
		m.selected = (m.selected + delta + len(m.items)) % len(m.items)
		if m.items[m.selected].Selectable || m.selected == original {
			return
		}
	}
}

// SelectIndex moves the selection to the given index if it is selectable.
func (m *Menu) SelectIndex(index int) bool {
	if index < 0 || index >= len(m.items) || !m.items[index].Selectable {
		return false
	}
	m.selected = index
	return true
}

// Activate invokes the selected item's action. Returns false if there is no
// selection or no action.
func (m *Menu) Activate() bool {
	item := m.Selected()
	if item == nil || item.Action == nil {
		return false
	}
	item.Action(item)
	return true
}

// HandleKey processes a key event: arrows or w/s navigate, enter or space
// activates, and digits jump-and-activate when numbering is on. Returns true
// if the event was consumed.
func (m *Menu) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		m.Previous()
		return true
	case tcell.KeyDown:
		m.Next()
		return true
	case tcell.KeyEnter:
		return m.Activate()
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == 'w' || r == 'W':
			m.Previous()
			return true
		case r == 's' || r == 'S':
			m.Next()
			return true
		case r == ' ':
			return m.Activate()
		case r >= '1' && r <= '9' && m.ShowNumbers:
			if m.SelectIndex(int(r - '1')) {
				return m.Activate()
			}
		}
	}
	return false
}

// Render draws the menu with its top-left corner at (x, y) inside a
// double-line box of the given width.
func (m *Menu) Render(s *Screen, x, y, width int) {
	border := tcell.StyleDefault.Foreground(tcell.ColorDarkCyan).Bold(true)
	row := y
	boxed := m.Title != ""

	if boxed {
		s.DrawText(x, row, "╔"+repeat('═', width-2)+"╗", border)
		row++
		s.SetContent(x, row, '║', border)
		s.DrawText(x+1, row, pad(" "+m.Title, width-2),
			tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
		s.SetContent(x+width-1, row, '║', border)
		row++
		s.DrawText(x, row, "╠"+repeat('═', width-2)+"╣", border)
		row++
	}

	for i, item := range m.items {
		if !item.Visible {
			continue
		}

		marker := "   "
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		if i == m.selected {
			marker = " ▶ "
			style = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
		}

		name := item.Name
		if m.ShowNumbers {
			name = fmt.Sprintf("%d. %s", i+1, name)
		}

		if boxed {
			s.SetContent(x, row, '║', border)
			s.SetContent(x+width-1, row, '║', border)
		}
		s.DrawText(x+1, row, marker, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
		s.DrawText(x+4, row, pad(name, width-5), style)
		row++
	}

	if boxed {
		s.DrawText(x, row, "╚"+repeat('═', width-2)+"╝", border)
	}
}

// pad right-pads or truncates a string to the given rune width.
func pad(text string, width int) string {
	runes := []rune(text)
	if len(runes) >= width {
		return string(runes[:width])
	}
	for len(runes) < width {
		runes = append(runes, ' ')
	}
	return string(runes)
}

func repeat(r rune, count int) string {
	if count < 0 {
		count = 0
	}
	runes := make([]rune, count)
	for i := range runes {
		runes[i] = r
	}
	return string(runes)
}
