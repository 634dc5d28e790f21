package gamedata

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// ClassDef defines a playable class loaded from JSON.
type ClassDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "rogue")
	Name        string `json:"name"`        // Display name (e.g., "Rogue")
	Symbol      string `json:"symbol"`      // Single character for rendering
	Description string `json:"description"` // One-line pitch shown during creation
	Color       string `json:"color"`       // Hex display color (e.g., "#00FF00")
	HP          int    `json:"hp"`          // Base hit points
	Attack      int    `json:"attack"`      // Base attack power
	Defense     int    `json:"defense"`     // Base defense value
	Luck        int    `json:"luck"`        // Base luck
}

// SymbolRune returns the symbol as a rune for rendering.
func (c *ClassDef) SymbolRune() rune {
	if len(c.Symbol) == 0 {
		return '?'
	}
	return []rune(c.Symbol)[0]
}

// DisplayColor returns the class color as a tcell.Color, falling back to
// white for missing or malformed values.
func (c *ClassDef) DisplayColor() tcell.Color {
	color, err := ParseHexColor(c.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// ClassesFile represents the structure of classes.json.
type ClassesFile struct {
	Classes []ClassDef `json:"classes"`
}

// LoadClasses loads class definitions from the embedded classes.json file.
func LoadClasses() ([]ClassDef, error) {
	file, err := Load[ClassesFile]("classes.json")
	if err != nil {
		return nil, err
	}
	return file.Classes, nil
}

// ClassRegistry holds loaded class definitions and provides lookup utilities.
type ClassRegistry struct {
	classes []ClassDef
	byID    map[string]*ClassDef
}

// NewClassRegistry creates a registry from loaded class definitions.
func NewClassRegistry(classes []ClassDef) *ClassRegistry {
	registry := &ClassRegistry{
		classes: classes,
		byID:    make(map[string]*ClassDef, len(classes)),
	}
	for i := range classes {
		registry.byID[classes[i].ID] = &classes[i]
	}
	return registry
}

// LoadClassRegistry loads and creates a registry from the embedded
// classes.json.
func LoadClassRegistry() (*ClassRegistry, error) {
	classes, err := LoadClasses()
	if err != nil {
		return nil, err
	}
	if len(classes) == 0 {
		return nil, errors.New("no classes loaded from classes.json")
	}
	return NewClassRegistry(classes), nil
}

// MustLoadClassRegistry loads a registry, panicking on error.
func MustLoadClassRegistry() *ClassRegistry {
	registry, err := LoadClassRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the class definition with the given ID, or nil if not
// found.
func (r *ClassRegistry) GetByID(id string) *ClassDef {
	return r.byID[id]
}

// All returns all class definitions in file order.
func (r *ClassRegistry) All() []ClassDef {
	return r.classes
}

// Count returns the number of classes in the registry.
func (r *ClassRegistry) Count() int {
	return len(r.classes)
}
