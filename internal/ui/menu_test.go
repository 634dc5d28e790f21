package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func keyRune(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestMenuNavigationWraps(t *testing.T) {
	m := NewMenu("TEST", true)
	m.AddItem("First", nil)
	m.AddItem("Second", nil)
	m.AddItem("Third", nil)

	if m.Selected().Name != "First" {
		t.Fatalf("Expected initial selection 'First', got %q", m.Selected().Name)
	}

	m.Next()
	m.Next()
	if m.Selected().Name != "Third" {
		t.Errorf("Expected 'Third', got %q", m.Selected().Name)
	}

	m.Next()
	if m.Selected().Name != "First" {
		t.Errorf("Expected wrap to 'First', got %q", m.Selected().Name)
	}

	m.Previous()
	if m.Selected().Name != "Third" {
		t.Errorf("Expected wrap back to 'Third', got %q", m.Selected().Name)
	}
}

func TestMenuSkipsUnselectable(t *testing.T) {
	m := NewMenu("TEST", false)
	m.AddItem("First", nil)
	divider := m.AddItem("----", nil)
	divider.Selectable = false
	m.AddItem("Third", nil)

	m.Next()
	if m.Selected().Name != "Third" {
		t.Errorf("Expected divider to be skipped, got %q", m.Selected().Name)
	}

	if m.SelectIndex(1) {
		t.Error("SelectIndex should refuse an unselectable item")
	}
}

func TestMenuEmpty(t *testing.T) {
	m := NewMenu("TEST", false)

	m.Next()
	m.Previous()
	if m.Selected() != nil {
		t.Error("Expected nil selection for empty menu")
	}
	if m.Activate() {
		t.Error("Activate on empty menu should return false")
	}
}

func TestMenuActivation(t *testing.T) {
	m := NewMenu("TEST", true)
	activated := ""
	m.AddItem("First", func(item *MenuItem) { activated = item.Name })
	m.AddItem("Second", func(item *MenuItem) { activated = item.Name })

	if !m.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)) {
		t.Fatal("Enter should activate")
	}
	if activated != "First" {
		t.Errorf("Expected 'First' activated, got %q", activated)
	}

	// Number shortcut jumps and activates in one press.
	if !m.HandleKey(keyRune('2')) {
		t.Fatal("Number shortcut should activate")
	}
	if activated != "Second" {
		t.Errorf("Expected 'Second' activated, got %q", activated)
	}
}

func TestMenuKeyNavigation(t *testing.T) {
	m := NewMenu("", false)
	m.AddItem("First", nil)
	m.AddItem("Second", nil)

	m.HandleKey(keyRune('s'))
	if m.Selected().Name != "Second" {
		t.Errorf("Expected 's' to move down, got %q", m.Selected().Name)
	}
	m.HandleKey(keyRune('w'))
	if m.Selected().Name != "First" {
		t.Errorf("Expected 'w' to move up, got %q", m.Selected().Name)
	}

	if m.HandleKey(keyRune('x')) {
		t.Error("Unbound key should not be consumed")
	}
}

func TestMenuRenderOnSimulationScreen(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer sim.Fini()
	sim.SetSize(80, 24)

	screen := NewScreenFrom(sim)
	m := NewMenu("INVENTORY", true)
	m.AddItem("Health Potion", nil)

	m.Render(screen, 0, 0, 30)
	screen.Show()

	// Top-left corner of the box border.
	r, _, _, _ := sim.GetContent(0, 0)
	if r != '╔' {
		t.Errorf("Expected box corner at (0,0), got %q", r)
	}
}
