package world

import (
	"errors"
	"math/rand"
	"testing"
)

func TestGridEdgeIsImpassable(t *testing.T) {
	g := buildGrid(t, [][]TerrainKind{
		{Grass, Grass},
		{Grass, Grass},
	})

	tests := []struct{ x, y int }{
		{-1, 0}, {0, -1}, {2, 0}, {0, 2},
	}
	for _, tt := range tests {
		if g.IsWalkable(tt.x, tt.y) {
			t.Errorf("IsWalkable(%d,%d) = true outside the grid", tt.x, tt.y)
		}
		if got := g.TileAt(tt.x, tt.y).Kind; got != Water {
			t.Errorf("TileAt(%d,%d).Kind = %s, want water", tt.x, tt.y, got)
		}
	}
}

func TestRandomWalkableTileSkipsWater(t *testing.T) {
	g := buildGrid(t, [][]TerrainKind{
		{Water, Water, Water},
		{Water, Grass, Water},
		{Water, Water, Water},
	})
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 10; i++ {
		x, y, err := g.RandomWalkableTile(rng)
		if err != nil {
			t.Fatalf("RandomWalkableTile failed: %v", err)
		}
		if x != 1 || y != 1 {
			t.Fatalf("RandomWalkableTile = (%d,%d), want the only grass tile (1,1)", x, y)
		}
	}
}

func TestRandomWalkableTileAllWater(t *testing.T) {
	g := buildGrid(t, [][]TerrainKind{
		{Water, Water},
		{Water, Water},
	})
	rng := rand.New(rand.NewSource(1))

	_, _, err := g.RandomWalkableTile(rng)
	if !errors.Is(err, ErrNoWalkableTile) {
		t.Errorf("RandomWalkableTile on all-water grid error = %v, want ErrNoWalkableTile", err)
	}
}

func TestWalkableCount(t *testing.T) {
	g := buildGrid(t, [][]TerrainKind{
		{Grass, Water, Swamp},
		{Water, Grass, Water},
	})

	if got := g.WalkableCount(); got != 3 {
		t.Errorf("WalkableCount() = %d, want 3", got)
	}
}

func TestFingerprintTracksKindLayout(t *testing.T) {
	g1 := buildGrid(t, [][]TerrainKind{
		{Grass, Water},
		{Swamp, Grass},
	})
	g2 := buildGrid(t, [][]TerrainKind{
		{Grass, Water},
		{Swamp, Grass},
	})
	g3 := buildGrid(t, [][]TerrainKind{
		{Grass, Water},
		{Swamp, Swamp},
	})

	if g1.Fingerprint() != g2.Fingerprint() {
		t.Error("Identical layouts have different fingerprints")
	}
	if g1.Fingerprint() == g3.Fingerprint() {
		t.Error("Different layouts share a fingerprint")
	}
}
