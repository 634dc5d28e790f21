package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Draggable is an ASCII-art element that can be moved around a grid within
// optional bounds.
type Draggable struct {
	ID   string
	X, Y int
	Art  string

	bounds  *bounds
	bounded bool
}

type bounds struct {
	minX, minY, maxX, maxY int
}

// NewDraggable creates an unbounded draggable element.
func NewDraggable(id string, x, y int, art string) *Draggable {
	return &Draggable{ID: id, X: x, Y: y, Art: art}
}

// SetBounds restricts the element's top-left corner to the given inclusive
// rectangle.
func (d *Draggable) SetBounds(minX, minY, maxX, maxY int) {
	d.bounds = &bounds{minX, minY, maxX, maxY}
	d.bounded = true
}

// Move shifts the element by the given delta. Returns false if the move
// would leave the bounds.
func (d *Draggable) Move(dx, dy int) bool {
	newX, newY := d.X+dx, d.Y+dy
	if d.bounded {
		b := d.bounds
		if newX < b.minX || newX > b.maxX || newY < b.minY || newY > b.maxY {
			return false
		}
	}
	d.X, d.Y = newX, newY
	return true
}

// ArtLines returns the element's art split into lines, with leading and
// trailing blank lines trimmed.
func (d *Draggable) ArtLines() []string {
	lines := strings.Split(d.Art, "\n")
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// GridEditor lets the player arrange draggable elements inside a box-drawn
// grid, e.g. furniture in a house.
type GridEditor struct {
	Width  int
	Height int

	elements []*Draggable
	selected int
}

// NewGridEditor creates an empty editor of the given size.
func NewGridEditor(width, height int) *GridEditor {
	return &GridEditor{Width: width, Height: height}
}

// Add registers an element, clamping its movement to the grid interior.
func (e *GridEditor) Add(element *Draggable) {
	element.SetBounds(1, 1, e.Width-2, e.Height-2)
	e.elements = append(e.elements, element)
}

// Remove deletes the element with the given ID.
func (e *GridEditor) Remove(id string) {
	kept := e.elements[:0]
	for _, el := range e.elements {
		if el.ID != id {
			kept = append(kept, el)
		}
	}
	e.elements = kept
	if e.selected >= len(e.elements) {
		e.selected = len(e.elements) - 1
		if e.selected < 0 {
			e.selected = 0
		}
	}
}

// Selected returns the currently selected element, or nil when empty.
func (e *GridEditor) Selected() *Draggable {
	if e.selected < 0 || e.selected >= len(e.elements) {
		return nil
	}
	return e.elements[e.selected]
}

// NextElement cycles the selection forward.
func (e *GridEditor) NextElement() {
	if len(e.elements) > 0 {
		e.selected = (e.selected + 1) % len(e.elements)
	}
}

// PreviousElement cycles the selection backward.
func (e *GridEditor) PreviousElement() {
	if len(e.elements) > 0 {
		e.selected = (e.selected - 1 + len(e.elements)) % len(e.elements)
	}
}

// Grid composes the bordered grid with all elements stamped onto it.
// Spaces in element art are transparent.
func (e *GridEditor) Grid() [][]rune {
	grid := make([][]rune, e.Height)
	for y := range grid {
		grid[y] = make([]rune, e.Width)
		for x := range grid[y] {
			switch {
			case y == 0 || y == e.Height-1:
				grid[y][x] = '═'
			case x == 0 || x == e.Width-1:
				grid[y][x] = '║'
			default:
				grid[y][x] = '.'
			}
		}
	}
	if e.Height > 1 && e.Width > 1 {
		grid[0][0] = '╔'
		grid[0][e.Width-1] = '╗'
		grid[e.Height-1][0] = '╚'
		grid[e.Height-1][e.Width-1] = '╝'
	}

	for _, el := range e.elements {
		for dy, line := range el.ArtLines() {
			for dx, r := range []rune(line) {
				y, x := el.Y+dy, el.X+dx
				if r != ' ' && y >= 0 && y < e.Height && x >= 0 && x < e.Width {
					grid[y][x] = r
				}
			}
		}
	}
	return grid
}

// Render draws the composed grid with its top-left corner at (x, y).
func (e *GridEditor) Render(s *Screen, x, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for dy, row := range e.Grid() {
		for dx, r := range row {
			s.SetContent(x+dx, y+dy, r, style)
		}
	}
}

// HandleKey moves the selected element with arrows or WASD and cycles the
// selection with tab. Returns true if the event changed anything.
func (e *GridEditor) HandleKey(ev *tcell.EventKey) bool {
	selected := e.Selected()

	switch ev.Key() {
	case tcell.KeyTab:
		e.NextElement()
		return true
	case tcell.KeyUp:
		return selected != nil && selected.Move(0, -1)
	case tcell.KeyDown:
		return selected != nil && selected.Move(0, 1)
	case tcell.KeyLeft:
		return selected != nil && selected.Move(-1, 0)
	case tcell.KeyRight:
		return selected != nil && selected.Move(1, 0)
	case tcell.KeyRune:
		if selected == nil {
			return false
		}
		switch ev.Rune() {
		case 'w', 'W':
			return selected.Move(0, -1)
		case 's', 'S':
			return selected.Move(0, 1)
		case 'a', 'A':
			return selected.Move(-1, 0)
		case 'd', 'D':
			return selected.Move(1, 0)
		}
	}
	return false
}
