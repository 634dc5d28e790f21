package world

// Transition describes what happens when the player steps onto a portal:
// which level they land in, where they spawn, and an optional message shown
// on arrival.
type Transition struct {
	Destination *Level
	SpawnX      int
	SpawnY      int
	Message     string
}

// Portal binds a level position to a transition.
type Portal struct {
	X, Y       int
	Transition Transition
}
