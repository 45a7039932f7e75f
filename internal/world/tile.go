package world

import "math/rand"

// Tile represents a single map cell. Walkable and SpeedMultiplier are
// copied from the kind table so traversal checks need no extra lookup.
type Tile struct {
	Kind            TerrainKind
	X, Y            int
	Walkable        bool
	SpeedMultiplier float64
	Decoration      Decoration
}

// NewTile creates a tile of the given kind at grid position (x, y).
// The decoration payload is rolled here, exactly once per tile.
func NewTile(kind TerrainKind, x, y int, rng *rand.Rand) Tile {
	return Tile{
		Kind:            kind,
		X:               x,
		Y:               y,
		Walkable:        kind.Walkable(),
		SpeedMultiplier: kind.SpeedMultiplier(),
		Decoration:      NewDecoration(kind, rng),
	}
}
