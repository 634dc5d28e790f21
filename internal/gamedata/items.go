package gamedata

import "errors"

// ItemDef defines an item loaded from JSON. The HP, Attack and Defense
// fields are the stat effects applied when the item is equipped or consumed.
type ItemDef struct {
	ID       string `json:"id"`       // Unique identifier (e.g., "health_potion")
	Name     string `json:"name"`     // Display name
	Price    int    `json:"price"`    // Shop price in gold
	Category string `json:"category"` // Grouping (e.g., "consumable", "weapon")
	Art      string `json:"art"`      // Optional ASCII art for shop dialogs
	HP       int    `json:"hp"`       // HP restored on use
	Attack   int    `json:"attack"`   // Attack bonus
	Defense  int    `json:"defense"`  // Defense bonus
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}

// ItemRegistry holds loaded item definitions and provides lookup utilities.
type ItemRegistry struct {
	items []ItemDef
	byID  map[string]*ItemDef
}

// NewItemRegistry creates a registry from loaded item definitions.
func NewItemRegistry(items []ItemDef) *ItemRegistry {
	registry := &ItemRegistry{
		items: items,
		byID:  make(map[string]*ItemDef, len(items)),
	}
	for i := range items {
		registry.byID[items[i].ID] = &items[i]
	}
	return registry
}

// LoadItemRegistry loads and creates a registry from the embedded items.json.
func LoadItemRegistry() (*ItemRegistry, error) {
	items, err := LoadItems()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("no items loaded from items.json")
	}
	return NewItemRegistry(items), nil
}

// MustLoadItemRegistry loads a registry, panicking on error.
func MustLoadItemRegistry() *ItemRegistry {
	registry, err := LoadItemRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the item definition with the given ID, or nil if not found.
func (r *ItemRegistry) GetByID(id string) *ItemDef {
	return r.byID[id]
}

// ByCategory returns all item definitions in the given category, in file
// order.
func (r *ItemRegistry) ByCategory(category string) []ItemDef {
	result := make([]ItemDef, 0)
	for _, item := range r.items {
		if item.Category == category {
			result = append(result, item)
		}
	}
	return result
}

// All returns all item definitions.
func (r *ItemRegistry) All() []ItemDef {
	return r.items
}

// Count returns the number of items in the registry.
func (r *ItemRegistry) Count() int {
	return len(r.items)
}
