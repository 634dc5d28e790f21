package ui

import (
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/mkessler/gridquest/internal/gamedata"
)

const maxNameLength = 20

// CharacterCreation walks the player through name entry and class selection.
type CharacterCreation struct {
	screen  *Screen
	classes *gamedata.ClassRegistry
}

// NewCharacterCreation creates the flow for the given screen and class
// registry.
func NewCharacterCreation(screen *Screen, classes *gamedata.ClassRegistry) *CharacterCreation {
	return &CharacterCreation{screen: screen, classes: classes}
}

// Run executes the full flow and returns the chosen name and class ID.
func (c *CharacterCreation) Run(title string) (name, classID string) {
	name = c.readName(title)
	classID = c.selectClass()
	return name, classID
}

// readName collects a non-empty player name, echoing keystrokes and handling
// backspace.
func (c *CharacterCreation) readName(title string) string {
	name := make([]rune, 0, maxNameLength)

	for {
		c.renderNamePrompt(title, string(name))

		ev, ok := c.screen.PollEvent().(*tcell.EventKey)
		if !ok {
			c.screen.Sync()
			continue
		}

		switch ev.Key() {
		case tcell.KeyEnter:
			if len(name) > 0 {
				return string(name)
			}
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(name) > 0 {
				name = name[:len(name)-1]
			}
		case tcell.KeyRune:
			if unicode.IsPrint(ev.Rune()) && len(name) < maxNameLength {
				name = append(name, ev.Rune())
			}
		}
	}
}

func (c *CharacterCreation) renderNamePrompt(title, name string) {
	c.screen.Clear()
	_, height := c.screen.Size()
	mid := height / 2

	c.screen.DrawTextCentered(mid-1, title,
		tcell.StyleDefault.Foreground(tcell.ColorDarkCyan).Bold(true))
	c.screen.DrawTextCentered(mid, "Enter your name:",
		tcell.StyleDefault.Foreground(tcell.ColorWhite))
	c.screen.DrawTextCentered(mid+1, name+"_",
		tcell.StyleDefault.Foreground(tcell.ColorLightCyan))
	c.screen.Show()
}

// selectClass presents the class registry as a menu and blocks until a class
// is chosen.
func (c *CharacterCreation) selectClass() string {
	menu := NewMenu("SELECT YOUR CLASS", true)
	chosen := ""

	for _, class := range c.classes.All() {
		id := class.ID
		label := fmt.Sprintf("%-10s %s", class.Name, class.Description)
		menu.AddItem(label, func(*MenuItem) {
			chosen = id
		})
	}

	for chosen == "" {
		c.renderClassMenu(menu)

		if ev, ok := c.screen.PollEvent().(*tcell.EventKey); ok {
			menu.HandleKey(ev)
		} else {
			c.screen.Sync()
		}
	}
	return chosen
}

func (c *CharacterCreation) renderClassMenu(menu *Menu) {
	c.screen.Clear()
	width, height := c.screen.Size()

	menuWidth := 56
	x := (width - menuWidth) / 2
	if x < 0 {
		x = 0
	}
	y := height/2 - c.classes.Count() - 2
	if y < 0 {
		y = 0
	}

	menu.Render(c.screen, x, y, menuWidth)

	// Stat line for the highlighted class.
	classes := c.classes.All()
	if i := menu.SelectedIndex(); i >= 0 && i < len(classes) {
		class := classes[i]
		stats := fmt.Sprintf("HP: %d | Attack: %d | Defense: %d | Luck: %d",
			class.HP, class.Attack, class.Defense, class.Luck)
		c.screen.DrawTextCentered(y+menu.Len()+5, stats,
			tcell.StyleDefault.Foreground(class.DisplayColor()))
	}

	c.screen.Show()
}
