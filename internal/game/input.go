package game

import "github.com/samdwyer/isoworld/internal/entity"

// InputState is a snapshot of the four movement keys for one tick.
type InputState struct {
	Up, Down, Left, Right bool
}

// Resolve collapses the snapshot to a single axis-aligned direction.
// Simultaneous keys resolve in fixed priority order: Up, Down, Left,
// Right. Diagonal movement is deliberately not supported; changing this
// would silently alter game feel.
func (in InputState) Resolve() entity.Direction {
	switch {
	case in.Up:
		return entity.Up
	case in.Down:
		return entity.Down
	case in.Left:
		return entity.Left
	case in.Right:
		return entity.Right
	default:
		return entity.None
	}
}
