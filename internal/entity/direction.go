// Package entity provides the movable entities that live on the grid.
package entity

// Direction is a facing or movement direction on the grid.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Delta returns the unit grid vector for the direction. None is (0, 0).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
