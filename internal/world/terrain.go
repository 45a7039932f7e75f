// Package world provides terrain generation and map management.
package world

// TerrainKind enumerates the terrain categories a tile can hold.
type TerrainKind int

const (
	// Grass is open, walkable ground at full speed.
	Grass TerrainKind = iota
	// Swamp is walkable ground at half speed.
	Swamp
	// Water is impassable.
	Water
)

// terrainKindCount is the number of kinds the generator can roll.
const terrainKindCount = 3

// String returns a human-readable kind name.
func (k TerrainKind) String() string {
	switch k {
	case Grass:
		return "grass"
	case Swamp:
		return "swamp"
	case Water:
		return "water"
	default:
		return "unknown"
	}
}

// Walkable returns true if entities may occupy tiles of this kind.
// Water is the only impassable kind.
func (k TerrainKind) Walkable() bool {
	return k != Water
}

// SpeedMultiplier returns the movement speed coefficient for the kind.
// Zero means impassable.
func (k TerrainKind) SpeedMultiplier() float64 {
	switch k {
	case Grass:
		return 1.0
	case Swamp:
		return 0.5
	default:
		return 0
	}
}

// DelayFactor returns the step-delay factor charged for leaving a tile of
// this kind: the inverse of its speed multiplier. Swamp doubles the cost
// of stepping off it.
func (k TerrainKind) DelayFactor() float64 {
	switch k {
	case Swamp:
		return 2
	default:
		return 1
	}
}

// Rune returns the kind's base display character.
func (k TerrainKind) Rune() rune {
	switch k {
	case Grass:
		return '.'
	case Swamp:
		return ','
	case Water:
		return '~'
	default:
		return '?'
	}
}
