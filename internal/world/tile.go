// Package world provides procedural board generation and level management.
package world

// Tile represents a single board tile.
type Tile rune

const (
	// TileWall represents an impassable wall tile.
	TileWall Tile = '#'
	// TileFloor represents a passable floor tile. It doubles as the "empty"
	// rune used by level overlays, so unreached cells render as open floor.
	TileFloor Tile = '.'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t != TileWall
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
