package world

import "strings"

// Level is a named 2D rune buffer the game plays on. It is typically seeded
// from a generated Board and then overlaid with decorative art, portals and
// entities. The level treats the buffer as opaque characters; only the
// blocker set is meaningful for movement.
type Level struct {
	Name   string
	Width  int
	Height int

	cells    [][]rune
	blockers map[rune]bool
	portals  []Portal
}

// NewLevel creates an empty level filled with the floor rune.
func NewLevel(name string, width, height int) *Level {
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = make([]rune, width)
		for x := range cells[y] {
			cells[y][x] = rune(TileFloor)
		}
	}
	return newLevel(name, width, height, cells)
}

// NewLevelFromBoard creates a level backed by a copy of a generated board.
func NewLevelFromBoard(name string, b *Board) *Level {
	return newLevel(name, b.Width, b.Height, b.Rows())
}

func newLevel(name string, width, height int, cells [][]rune) *Level {
	return &Level{
		Name:     name,
		Width:    width,
		Height:   height,
		cells:    cells,
		blockers: map[rune]bool{rune(TileWall): true},
	}
}

// SetBlockers replaces the set of runes that block movement. The default set
// contains only the wall rune.
func (l *Level) SetBlockers(runes ...rune) {
	l.blockers = make(map[rune]bool, len(runes))
	for _, r := range runes {
		l.blockers[r] = true
	}
}

// Blocked returns true if the position is outside the level or holds a
// blocking rune.
func (l *Level) Blocked(x, y int) bool {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return true
	}
	return l.blockers[l.cells[y][x]]
}

// Rune returns the rune at the given position, or the floor rune when out of
// bounds.
func (l *Level) Rune(x, y int) rune {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return rune(TileFloor)
	}
	return l.cells[y][x]
}

// SetRune places a single rune, ignoring out-of-bounds positions.
func (l *Level) SetRune(x, y int, r rune) {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return
	}
	l.cells[y][x] = r
}

// PlaceArt overlays multiline ASCII art with its top-left corner at (x, y).
// Parts falling outside the level are clipped.
func (l *Level) PlaceArt(x, y int, art string) {
	for dy, line := range strings.Split(art, "\n") {
		for dx, r := range []rune(line) {
			l.SetRune(x+dx, y+dy, r)
		}
	}
}

// AddPortal registers a portal on the level and marks its position with the
// given rune.
func (l *Level) AddPortal(x, y int, marker rune, t Transition) {
	l.SetRune(x, y, marker)
	l.portals = append(l.portals, Portal{X: x, Y: y, Transition: t})
}

// PortalAt returns the transition for a portal at the given position, or nil
// if there is none.
func (l *Level) PortalAt(x, y int) *Transition {
	for i := range l.portals {
		if l.portals[i].X == x && l.portals[i].Y == y {
			return &l.portals[i].Transition
		}
	}
	return nil
}
