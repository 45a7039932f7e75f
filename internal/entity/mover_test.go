package entity

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/samdwyer/isoworld/internal/iso"
	"github.com/samdwyer/isoworld/internal/world"
)

func testGrid(t *testing.T, kinds [][]world.TerrainKind) *world.Grid {
	t.Helper()
	rng := rand.New(rand.NewSource(1))

	g := &world.Grid{Width: len(kinds[0]), Height: len(kinds)}
	g.Tiles = make([][]world.Tile, g.Height)
	for y := range g.Tiles {
		g.Tiles[y] = make([]world.Tile, g.Width)
		for x := range g.Tiles[y] {
			g.Tiles[y][x] = world.NewTile(kinds[y][x], x, y, rng)
		}
	}
	return g
}

func TestNewMoverStartsIdle(t *testing.T) {
	m := NewMover(2, 3, 4.0, world.Grass)

	if m.ID == uuid.Nil {
		t.Error("NewMover() left ID unset")
	}
	if m.GridX != 2 || m.GridY != 3 {
		t.Errorf("NewMover() position = (%d,%d), want (2,3)", m.GridX, m.GridY)
	}
	if m.Facing != None {
		t.Errorf("NewMover().Facing = %s, want none", m.Facing)
	}
	if m.Stepping(0) || m.Stepping(1000) {
		t.Error("A mover that never stepped reports Stepping")
	}
}

func TestSteppingWindow(t *testing.T) {
	m := NewMover(0, 0, 4.0, world.Grass)
	m.LastStepAt = 1000

	tests := []struct {
		now      int64
		stepping bool
	}{
		{1000, true},
		{1049, true},
		{1050, false},
		{2000, false},
	}

	for _, tt := range tests {
		if got := m.Stepping(tt.now); got != tt.stepping {
			t.Errorf("Stepping(%d) = %v, want %v", tt.now, got, tt.stepping)
		}
	}
}

func TestCommit(t *testing.T) {
	m := NewMover(1, 1, 4.0, world.Grass)

	m.Commit(1, 2, world.Swamp, 5000)

	if m.GridX != 1 || m.GridY != 2 {
		t.Errorf("Commit position = (%d,%d), want (1,2)", m.GridX, m.GridY)
	}
	if m.OnKind != world.Swamp {
		t.Errorf("Commit OnKind = %s, want swamp", m.OnKind)
	}
	if m.LastStepAt != 5000 {
		t.Errorf("Commit LastStepAt = %d, want 5000", m.LastStepAt)
	}
}

func TestSyncRenderMatchesProjection(t *testing.T) {
	m := NewMover(3, 5, 4.0, world.Grass)

	m.SyncRender(200, 40)

	wantX, wantY := iso.Project(3, 5, 200, 40)
	if m.RenderX != wantX || m.RenderY != wantY {
		t.Errorf("SyncRender = (%d,%d), want (%d,%d)", m.RenderX, m.RenderY, wantX, wantY)
	}
}

func TestRelocateKeepsValidPosition(t *testing.T) {
	g := testGrid(t, [][]world.TerrainKind{
		{world.Grass, world.Swamp},
		{world.Grass, world.Grass},
	})
	m := NewMover(1, 0, 4.0, world.Grass)

	if err := m.Relocate(g, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("Relocate failed: %v", err)
	}
	if m.GridX != 1 || m.GridY != 0 {
		t.Errorf("Relocate moved a valid mover to (%d,%d)", m.GridX, m.GridY)
	}
	if m.OnKind != world.Swamp {
		t.Errorf("Relocate OnKind = %s, want swamp from the new grid", m.OnKind)
	}
}

func TestRelocateMovesOffInvalidPosition(t *testing.T) {
	g := testGrid(t, [][]world.TerrainKind{
		{world.Water, world.Water},
		{world.Water, world.Grass},
	})

	// Standing on water after regeneration.
	m := NewMover(0, 0, 4.0, world.Grass)
	if err := m.Relocate(g, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("Relocate failed: %v", err)
	}
	if m.GridX != 1 || m.GridY != 1 {
		t.Errorf("Relocate = (%d,%d), want the only walkable tile (1,1)", m.GridX, m.GridY)
	}

	// Out of bounds after the grid shrank.
	m = NewMover(10, 10, 4.0, world.Grass)
	if err := m.Relocate(g, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("Relocate failed: %v", err)
	}
	if m.GridX != 1 || m.GridY != 1 {
		t.Errorf("Relocate = (%d,%d), want the only walkable tile (1,1)", m.GridX, m.GridY)
	}
}

func TestRelocateAllWaterFails(t *testing.T) {
	g := testGrid(t, [][]world.TerrainKind{
		{world.Water, world.Water},
	})
	m := NewMover(0, 0, 4.0, world.Grass)

	if err := m.Relocate(g, rand.New(rand.NewSource(1))); err == nil {
		t.Error("Relocate on an all-water grid should fail")
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{None, 0, 0},
		{Up, 0, -1},
		{Down, 0, 1},
		{Left, -1, 0},
		{Right, 1, 0},
	}

	for _, tt := range tests {
		dx, dy := tt.dir.Delta()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%s.Delta() = (%d,%d), want (%d,%d)", tt.dir, dx, dy, tt.dx, tt.dy)
		}
	}
}
