// Package iso implements the isometric projection between grid cells and
// screen pixels. The renderer and all position logic share this one
// transform; nothing else may compute screen coordinates from the grid.
package iso

import "math"

// Tile diamond footprint in pixels.
const (
	TileWidth  = 64
	TileHeight = 32
)

// Project maps a grid cell to screen pixel coordinates relative to the
// given origin:
//
//	screenX = (gridX - gridY) * TileWidth/2 + originX
//	screenY = (gridX + gridY) * TileHeight/2 + originY
func Project(gridX, gridY, originX, originY int) (screenX, screenY int) {
	screenX = (gridX-gridY)*(TileWidth/2) + originX
	screenY = (gridX+gridY)*(TileHeight/2) + originY
	return screenX, screenY
}

// Unproject inverts Project, solving the same two linear equations for
// the grid cell containing a screen pixel. Used for mouse hit-testing.
func Unproject(screenX, screenY, originX, originY int) (gridX, gridY int) {
	fx := float64(screenX-originX) / (TileWidth / 2)
	fy := float64(screenY-originY) / (TileHeight / 2)
	gridX = int(math.Floor((fx + fy) / 2))
	gridY = int(math.Floor((fy - fx) / 2))
	return gridX, gridY
}
