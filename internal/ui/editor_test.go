package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestDraggableBounds(t *testing.T) {
	d := NewDraggable("bed", 2, 2, "[]")
	d.SetBounds(1, 1, 3, 3)

	if !d.Move(1, 0) {
		t.Error("Move inside bounds should succeed")
	}
	if d.Move(1, 0) {
		t.Error("Move past max bound should fail")
	}
	if d.X != 3 {
		t.Errorf("Expected x=3, got %d", d.X)
	}

	if !d.Move(-2, -1) {
		t.Error("Move back inside bounds should succeed")
	}
	if d.Move(-1, -1) {
		t.Error("Move past min bound should fail")
	}
}

func TestDraggableArtLines(t *testing.T) {
	d := NewDraggable("table", 0, 0, "\n_|_\n | \n")
	lines := d.ArtLines()
	if len(lines) != 2 || lines[0] != "_|_" || lines[1] != " | " {
		t.Errorf("Unexpected art lines: %q", lines)
	}
}

func TestGridEditorCompose(t *testing.T) {
	e := NewGridEditor(10, 6)
	e.Add(NewDraggable("bed", 2, 2, "[=]"))

	grid := e.Grid()

	if grid[0][0] != '╔' || grid[0][9] != '╗' || grid[5][0] != '╚' || grid[5][9] != '╝' {
		t.Error("Expected box corners")
	}
	if grid[0][4] != '═' || grid[3][0] != '║' {
		t.Error("Expected box edges")
	}
	if grid[2][2] != '[' || grid[2][3] != '=' || grid[2][4] != ']' {
		t.Errorf("Expected element stamped at row 2, got %q", string(grid[2]))
	}
	if grid[4][4] != '.' {
		t.Errorf("Expected floor at (4,4), got %q", grid[4][4])
	}
}

func TestGridEditorSelectionAndMovement(t *testing.T) {
	e := NewGridEditor(10, 10)
	e.Add(NewDraggable("bed", 2, 2, "[]"))
	e.Add(NewDraggable("chair", 5, 5, "h"))

	if e.Selected().ID != "bed" {
		t.Fatalf("Expected 'bed' selected, got %q", e.Selected().ID)
	}

	e.HandleKey(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	if e.Selected().ID != "chair" {
		t.Errorf("Expected tab to select 'chair', got %q", e.Selected().ID)
	}

	if !e.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone)) {
		t.Error("Expected movement key to be consumed")
	}
	if e.Selected().X != 6 {
		t.Errorf("Expected chair at x=6, got %d", e.Selected().X)
	}

	e.Remove("chair")
	if e.Selected().ID != "bed" {
		t.Errorf("Expected selection to fall back to 'bed', got %q", e.Selected().ID)
	}

	e.Remove("bed")
	if e.Selected() != nil {
		t.Error("Expected nil selection once empty")
	}
	if e.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)) {
		t.Error("Movement with no selection should not be consumed")
	}
}
