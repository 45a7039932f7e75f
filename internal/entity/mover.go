package entity

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/samdwyer/isoworld/internal/iso"
	"github.com/samdwyer/isoworld/internal/world"
)

// SettleMillis is the minimum pause after an accepted step before another
// step may be accepted, independent of the terrain delay.
const SettleMillis = 50

// Mover is a controllable entity on the grid. GridX and GridY are the
// authoritative discrete position; RenderX and RenderY are the projected
// screen position, resolved instantly on every accepted step rather than
// animated.
type Mover struct {
	ID uuid.UUID

	GridX, GridY     int
	RenderX, RenderY int

	Facing     Direction
	LastStepAt int64   // ms timestamp of the last accepted step
	BaseSpeed  float64 // tiles per second on grass

	// OnKind is the kind of the tile currently occupied. It drives the
	// delay for leaving that tile.
	OnKind world.TerrainKind

	Symbol rune
}

// NewMover creates a mover at the given position.
func NewMover(x, y int, baseSpeed float64, kind world.TerrainKind) *Mover {
	return &Mover{
		ID:        uuid.New(),
		GridX:     x,
		GridY:     y,
		Facing:    None,
		BaseSpeed: baseSpeed,
		OnKind:    kind,
		Symbol:    '@',
	}
}

// Stepping reports whether the settle interval from the last accepted
// step is still running at the given timestamp. While it runs, all input
// is ignored. This is a pure elapsed-time check evaluated on each tick;
// there is no timer or scheduled callback to cancel.
func (m *Mover) Stepping(now int64) bool {
	return m.LastStepAt > 0 && now-m.LastStepAt < SettleMillis
}

// Commit records an accepted step onto the target cell.
func (m *Mover) Commit(x, y int, kind world.TerrainKind, now int64) {
	m.GridX = x
	m.GridY = y
	m.OnKind = kind
	m.LastStepAt = now
}

// SyncRender projects the grid position to screen space.
func (m *Mover) SyncRender(originX, originY int) {
	m.RenderX, m.RenderY = iso.Project(m.GridX, m.GridY, originX, originY)
}

// Relocate revalidates the mover against a freshly generated grid. The
// position is kept when it is still in bounds and walkable; otherwise the
// mover is dropped on a random walkable tile. Either way OnKind is
// refreshed from the new grid.
func (m *Mover) Relocate(g *world.Grid, rng *rand.Rand) error {
	if g.IsWalkable(m.GridX, m.GridY) {
		m.OnKind = g.TileAt(m.GridX, m.GridY).Kind
		return nil
	}
	x, y, err := g.RandomWalkableTile(rng)
	if err != nil {
		return err
	}
	m.GridX = x
	m.GridY = y
	m.OnKind = g.TileAt(x, y).Kind
	return nil
}
