package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/isoworld/internal/entity"
	"github.com/samdwyer/isoworld/internal/iso"
	"github.com/samdwyer/isoworld/internal/world"
)

// Pixel-to-terminal-cell scale. The projection works in pixels with a
// 64x32 tile diamond; dividing by these puts one tile on an 8x4 cell
// footprint, which keeps the diamond shape readable in a monospace grid.
const (
	PixelsPerCellX = 8
	PixelsPerCellY = 8
)

// Surface is the drawing target for the renderer. *Screen satisfies it;
// tests substitute a recording implementation.
type Surface interface {
	Clear()
	SetContent(x, y int, r rune, style tcell.Style)
	Show()
	Size() (width, height int)
}

// Renderer draws the grid and the player in isometric projection.
type Renderer struct {
	surface Surface
}

// NewRenderer creates a renderer for the given surface.
func NewRenderer(surface Surface) *Renderer {
	return &Renderer{surface: surface}
}

// Origin returns the pixel origin that puts the grid's top corner at the
// horizontal center of the surface.
func (r *Renderer) Origin() (originX, originY int) {
	w, _ := r.surface.Size()
	return w / 2 * PixelsPerCellX, iso.TileHeight
}

// Render draws every tile in row-major order (increasing y, then
// increasing x), which is a sufficient painter's order because tile
// diamonds do not overlap, then the player and the status footer on top.
func (r *Renderer) Render(grid *world.Grid, player *entity.Mover, status string) {
	r.surface.Clear()
	originX, originY := r.Origin()

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			r.drawTile(grid.Tiles[y][x], originX, originY)
		}
	}

	if player != nil {
		player.SyncRender(originX, originY)
		style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
		r.surface.SetContent(player.RenderX/PixelsPerCellX, player.RenderY/PixelsPerCellY, player.Symbol, style)
	}

	r.drawStatus(status)
	r.surface.Show()
}

// drawTile places a tile's base glyph at its projected center and its
// decoration accents around it. The accents come from the payload rolled
// at tile creation, so the same grid always draws the same way.
func (r *Renderer) drawTile(t world.Tile, originX, originY int) {
	sx, sy := iso.Project(t.X, t.Y, originX, originY)
	cx, cy := sx/PixelsPerCellX, sy/PixelsPerCellY

	base := kindColor(t.Kind)
	r.surface.SetContent(cx, cy, t.Kind.Rune(), styleFor(base, 0))
	for _, a := range t.Decoration.Accents {
		r.surface.SetContent(cx+a.DX, cy+a.DY, a.Glyph, styleFor(base, a.Shade))
	}
}

// drawStatus writes the status line along the bottom row.
func (r *Renderer) drawStatus(status string) {
	_, h := r.surface.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range status {
		r.surface.SetContent(i, h-1, ch, style)
	}
}

// TileAtCell maps a terminal cell (e.g. a mouse position) back to the
// grid cell under it. ok is false outside the grid.
func (r *Renderer) TileAtCell(grid *world.Grid, cellX, cellY int) (gridX, gridY int, ok bool) {
	originX, originY := r.Origin()
	gx, gy := iso.Unproject(cellX*PixelsPerCellX, cellY*PixelsPerCellY, originX, originY)
	if !grid.InBounds(gx, gy) {
		return 0, 0, false
	}
	return gx, gy, true
}

// kindColor returns the base terrain color for a kind.
func kindColor(k world.TerrainKind) colorful.Color {
	var hex string
	switch k {
	case world.Grass:
		hex = "#3a7d44"
	case world.Swamp:
		hex = "#6b6b2f"
	case world.Water:
		hex = "#2b6cb0"
	default:
		hex = "#888888"
	}
	c, _ := colorful.Hex(hex)
	return c
}

// styleFor shades the base color by an accent's lightness jitter and
// converts it to a tcell style.
func styleFor(base colorful.Color, shade float64) tcell.Style {
	c := base
	if shade > 0 {
		c = base.BlendLuv(colorful.Color{R: 1, G: 1, B: 1}, shade)
	} else if shade < 0 {
		c = base.BlendLuv(colorful.Color{}, -shade)
	}
	cr, cg, cb := c.Clamped().RGB255()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(cr), int32(cg), int32(cb)))
}
