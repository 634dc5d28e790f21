package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/mkessler/gridquest/internal/entity"
	"github.com/mkessler/gridquest/internal/world"
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the level, the player and the HUD, then flushes the frame.
func (r *Renderer) Render(level *world.Level, player *entity.Player) {
	r.screen.Clear()

	for y := 0; y < level.Height; y++ {
		for x := 0; x < level.Width; x++ {
			ch := level.Rune(x, y)
			r.screen.SetContent(x, y, ch, r.runeStyle(ch))
		}
	}

	playerStyle := tcell.StyleDefault.
		Foreground(tcell.ColorYellow).
		Bold(true)
	r.screen.SetContent(player.X, player.Y, player.Symbol, playerStyle)

	r.renderHUD(level, player)

	r.screen.Show()
}

// runeStyle returns the style for a level rune. Walls and floor get the map
// palette; anything else is overlay art drawn in the default style.
func (r *Renderer) runeStyle(ch rune) tcell.Style {
	switch world.Tile(ch) {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	default:
		return tcell.StyleDefault
	}
}

// renderHUD draws the status line and the active notification below the
// level.
func (r *Renderer) renderHUD(level *world.Level, player *entity.Player) {
	status := fmt.Sprintf("%s  Lv %d  HP %d/%d  Gold %d  XP %d/%d",
		player.Name, player.Level, player.HP, player.MaxHP,
		player.Gold, player.XP, player.XPToNext)
	r.screen.DrawText(0, level.Height, status,
		tcell.StyleDefault.Foreground(tcell.ColorWhite))

	if note := player.Notification(); note != "" {
		r.screen.DrawText(0, level.Height+1, note,
			tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	}
}

// RenderMessage displays a message on the given row without flushing.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.screen.DrawText(0, y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}
