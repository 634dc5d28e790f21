package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/mkessler/gridquest/internal/entity"
)

// DialogOption is a keyed action in a dialog's footer.
type DialogOption struct {
	Key    rune
	Label  string
	Action func()
}

// DialogItem is a purchasable entry in a shop-style dialog.
type DialogItem struct {
	Name        string
	Price       int
	Description string
	Owned       bool
	Action      func(*DialogItem)
}

// Dialog is a full-screen interaction overlay: ASCII art, a message, the
// player's gold, an optional priced item list, and keyed options. Pressing Q
// closes it and nudges the player one row forward so they step off whatever
// triggered it.
type Dialog struct {
	Art      string
	Message  string
	ShowGold bool
	Options  []DialogOption
	Items    []*DialogItem

	player *entity.Player
	open   bool
	status string
	style  tcell.Style
}

// NewDialog creates a closed dialog bound to the player whose gold it
// displays and spends.
func NewDialog(player *entity.Player) *Dialog {
	return &Dialog{
		player:   player,
		ShowGold: true,
	}
}

// IsOpen reports whether the dialog is currently displayed.
func (d *Dialog) IsOpen() bool {
	return d.open
}

// Open shows the dialog and clears any stale status message.
func (d *Dialog) Open() {
	d.open = true
	d.status = ""
}

// Close hides the dialog.
func (d *Dialog) Close() {
	d.open = false
}

// Render draws the dialog over a cleared screen and flushes the frame.
func (d *Dialog) Render(s *Screen) {
	s.Clear()
	row := 0

	if d.Art != "" {
		art := tcell.StyleDefault.Foreground(tcell.ColorYellow)
		for _, line := range strings.Split(d.Art, "\n") {
			s.DrawText(0, row, line, art)
			row++
		}
		row++
	}

	if d.Message != "" {
		s.DrawText(2, row, d.Message, tcell.StyleDefault.Foreground(tcell.ColorYellow))
		row += 2
	}

	if d.ShowGold {
		s.DrawText(2, row, "Your Gold: ", tcell.StyleDefault.Foreground(tcell.ColorWhite))
		s.DrawText(13, row, fmt.Sprintf("%d", d.player.Gold),
			tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
		row += 2
	}

	for i, item := range d.Items {
		tag := fmt.Sprintf("[%d Gold]", item.Price)
		tagStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
		if item.Owned {
			tag = "[OWNED]"
			tagStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
		}

		line := fmt.Sprintf("%d. %s ", i+1, item.Name)
		s.DrawText(2, row, line, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
		s.DrawText(2+len([]rune(line)), row, tag, tagStyle)
		row++
		if item.Description != "" {
			s.DrawText(5, row, item.Description, tcell.StyleDefault.Foreground(tcell.ColorWhite))
			row++
		}
		row++
	}

	divider := tcell.StyleDefault.Foreground(tcell.ColorDarkCyan).Bold(true)
	s.DrawText(0, row, strings.Repeat("=", 60), divider)
	row++
	s.DrawText(2, row, d.footer(), tcell.StyleDefault.Foreground(tcell.ColorWhite))
	row++
	s.DrawText(0, row, strings.Repeat("=", 60), divider)

	if d.status != "" {
		_, height := s.Size()
		s.DrawTextCentered(height-2, d.status, d.style)
	}

	s.Show()
}

// footer builds the "[K] Label | ... | [Q] Exit" option line.
func (d *Dialog) footer() string {
	parts := make([]string, 0, len(d.Options)+1)
	for _, opt := range d.Options {
		parts = append(parts, fmt.Sprintf("[%c] %s", toUpper(opt.Key), opt.Label))
	}
	parts = append(parts, "[Q] Exit")
	return strings.Join(parts, " | ")
}

// HandleKey processes a key press while the dialog is open.
func (d *Dialog) HandleKey(ev *tcell.EventKey) {
	if ev.Key() != tcell.KeyRune {
		return
	}
	r := ev.Rune()

	if r == 'q' || r == 'Q' {
		// Step the player off the trigger tile on the way out.
		d.player.Move(0, 1)
		d.Close()
		return
	}

	for _, opt := range d.Options {
		if toUpper(r) == toUpper(opt.Key) {
			if opt.Action != nil {
				opt.Action()
			}
			return
		}
	}

	if r >= '1' && r <= '9' {
		d.Purchase(int(r - '1'))
	}
}

// Purchase attempts to buy the item at the given index: checks ownership and
// gold, deducts the price, marks the item owned and invokes its action.
func (d *Dialog) Purchase(index int) {
	if index < 0 || index >= len(d.Items) {
		return
	}
	item := d.Items[index]

	if item.Owned {
		d.setStatus("You already own this!", tcell.ColorRed)
		return
	}
	if !d.player.SpendGold(item.Price) {
		d.setStatus("Not enough gold!", tcell.ColorRed)
		return
	}

	item.Owned = true
	if item.Action != nil {
		item.Action(item)
	}
	d.setStatus(fmt.Sprintf("Purchased %s!", item.Name), tcell.ColorGreen)
}

// Status returns the transient status message, if any.
func (d *Dialog) Status() string {
	return d.status
}

func (d *Dialog) setStatus(msg string, color tcell.Color) {
	d.status = msg
	d.style = tcell.StyleDefault.Foreground(color).Bold(true)
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
