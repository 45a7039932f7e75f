package world

import "math/rand"

// accentsPerTile is the number of detail glyphs rolled for each tile.
const accentsPerTile = 3

// Accent is a single detail glyph placed relative to the tile's projected
// center: grass blades, swamp puddles, water waves.
type Accent struct {
	DX, DY int     // cell offset from the tile center
	Glyph  rune    // detail character
	Shade  float64 // lightness jitter in [-0.15, 0.15)
}

// Decoration is the per-tile render detail payload. It is rolled exactly
// once when the tile is created and reused by every render; re-rolling per
// frame would make the map shimmer.
type Decoration struct {
	Accents [accentsPerTile]Accent
}

var accentGlyphs = map[TerrainKind][]rune{
	Grass: {'\'', '"', '`'},
	Swamp: {'o', '.', ','},
	Water: {'~', '-', '='},
}

// NewDecoration rolls the accent set for a tile of the given kind.
func NewDecoration(kind TerrainKind, rng *rand.Rand) Decoration {
	glyphs := accentGlyphs[kind]
	var d Decoration
	for i := range d.Accents {
		d.Accents[i] = Accent{
			DX:    rng.Intn(5) - 2,
			DY:    rng.Intn(3) - 1,
			Glyph: glyphs[rng.Intn(len(glyphs))],
			Shade: rng.Float64()*0.3 - 0.15,
		}
	}
	return d
}
