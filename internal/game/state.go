package game

// State represents the current game state.
type State int

const (
	// StateExplore is the default mode where the player roams the level.
	StateExplore State = iota
	// StateInventory is the inventory overlay.
	StateInventory
	// StateDialog is an open interaction dialog (shop, NPC).
	StateDialog
	// StateGameOver is reached when the player's HP hits zero.
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateInventory:
		return "inventory"
	case StateDialog:
		return "dialog"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
