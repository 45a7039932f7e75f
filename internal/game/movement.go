package game

import (
	"github.com/samdwyer/isoworld/internal/entity"
	"github.com/samdwyer/isoworld/internal/world"
)

// Step advances the movement state machine for one tick of input at the
// given millisecond timestamp.
//
// All rejections are silent no-ops: an unexpired settle interval, a
// missing direction, an out-of-bounds or unwalkable target, and an
// unexpired terrain delay each leave the position unchanged. Facing is
// still recorded for every resolved direction, even when the move itself
// is rejected, so the mover can turn in place against a wall.
func Step(m *entity.Mover, in InputState, grid *world.Grid, now int64) {
	if m.Stepping(now) {
		return
	}

	dir := in.Resolve()
	if dir == entity.None {
		return
	}
	m.Facing = dir

	dx, dy := dir.Delta()
	tx, ty := m.GridX+dx, m.GridY+dy
	if !grid.IsWalkable(tx, ty) {
		return
	}

	// The delay is charged for leaving the current tile: its factor is
	// the inverse of that tile's speed multiplier, so swamp doubles it.
	delay := int64(1000 / m.BaseSpeed * m.OnKind.DelayFactor())
	if now-m.LastStepAt < delay {
		return
	}

	m.Commit(tx, ty, grid.TileAt(tx, ty).Kind, now)
}
