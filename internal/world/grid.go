package world

import (
	"errors"
	"math/rand"

	"github.com/cespare/xxhash/v2"
)

// ErrNoWalkableTile signals a grid with zero walkable tiles. Searching
// such a grid for a spawn position cannot succeed; it means generation
// produced a map that violates its own invariant.
var ErrNoWalkableTile = errors.New("grid has no walkable tile")

// Grid represents the playable world at a point in time. A grid is built
// once by Generate and replaced wholesale on regeneration; it is never
// mutated incrementally afterwards.
type Grid struct {
	Width  int
	Height int
	Tiles  [][]Tile // row-major, indexed [y][x]

	// Provenance, kept for reproducibility and debugging only. Game
	// logic never consults these after creation.
	Seed   int64
	Params GenerationParams
}

// InBounds returns true if (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// TileAt returns the tile at (x, y). Out-of-bounds positions report a
// Water tile so callers treat the map edge as impassable.
func (g *Grid) TileAt(x, y int) Tile {
	if !g.InBounds(x, y) {
		return Tile{Kind: Water, X: x, Y: y}
	}
	return g.Tiles[y][x]
}

// IsWalkable returns true if the given position can be stepped onto.
func (g *Grid) IsWalkable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.Tiles[y][x].Walkable
}

// WalkableCount returns the number of walkable tiles.
func (g *Grid) WalkableCount() int {
	count := 0
	for y := range g.Tiles {
		for x := range g.Tiles[y] {
			if g.Tiles[y][x].Walkable {
				count++
			}
		}
	}
	return count
}

// RandomWalkableTile picks a uniformly random walkable position, used for
// spawning and for relocating an entity after regeneration. Returns
// ErrNoWalkableTile if the grid has none.
func (g *Grid) RandomWalkableTile(rng *rand.Rand) (int, int, error) {
	var candidates []Tile
	for y := range g.Tiles {
		for x := range g.Tiles[y] {
			if g.Tiles[y][x].Walkable {
				candidates = append(candidates, g.Tiles[y][x])
			}
		}
	}
	if len(candidates) == 0 {
		return -1, -1, ErrNoWalkableTile
	}
	t := candidates[rng.Intn(len(candidates))]
	return t.X, t.Y, nil
}

// Fingerprint hashes the kind layout with xxhash. Two grids generated
// from the same seed and parameters share a fingerprint, which makes
// reproducibility cheap to assert in tests and telemetry.
func (g *Grid) Fingerprint() uint64 {
	h := xxhash.New()
	row := make([]byte, g.Width)
	for y := range g.Tiles {
		for x := range g.Tiles[y] {
			row[x] = byte(g.Tiles[y][x].Kind)
		}
		h.Write(row)
	}
	return h.Sum64()
}
