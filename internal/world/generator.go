package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/isoworld/internal/telemetry"
)

const (
	// Default map dimensions.
	DefaultWidth  = 32
	DefaultHeight = 32

	// Default generation tuning.
	DefaultWaterFraction   = 0.2
	DefaultSwampFraction   = 0.3
	DefaultNoiseFraction   = 0.6
	DefaultSmoothingPasses = 2
)

// ErrInvalidDimensions signals a generation request with a non-positive
// width or height. Generation fails outright rather than returning a
// degenerate grid.
var ErrInvalidDimensions = errors.New("grid dimensions must be positive")

// ErrInvalidParams signals generation parameters outside their valid range.
var ErrInvalidParams = errors.New("invalid generation parameters")

// GenerationParams tunes the terrain generator.
type GenerationParams struct {
	WaterFraction   float64 // fraction of cells seeded with water, in [0, 1]
	SwampFraction   float64 // fraction of cells seeded with swamp, in [0, 1]
	NoiseFraction   float64 // fraction of cells re-rolled randomly, in [0, 1]
	SmoothingPasses int     // rounds of the neighborhood smoothing rule
}

// DefaultParams returns the standard generation tuning.
func DefaultParams() GenerationParams {
	return GenerationParams{
		WaterFraction:   DefaultWaterFraction,
		SwampFraction:   DefaultSwampFraction,
		NoiseFraction:   DefaultNoiseFraction,
		SmoothingPasses: DefaultSmoothingPasses,
	}
}

// Validate checks that all fractions lie in [0, 1] and the pass count is
// non-negative.
func (p GenerationParams) Validate() error {
	for _, f := range []float64{p.WaterFraction, p.SwampFraction, p.NoiseFraction} {
		if f < 0 || f > 1 {
			return fmt.Errorf("%w: fraction %v outside [0, 1]", ErrInvalidParams, f)
		}
	}
	if p.SmoothingPasses < 0 {
		return fmt.Errorf("%w: negative smoothing passes %d", ErrInvalidParams, p.SmoothingPasses)
	}
	return nil
}

// Generate builds a width×height grid from the given seed: an all-grass
// base, scattered water and swamp seeds, a random-noise pass, then the
// smoothing passes that grow the seeds into coherent regions. The same
// seed and parameters always produce the same grid.
func Generate(ctx context.Context, width, height int, params GenerationParams, seed int64) (*Grid, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.generate")
	defer span.End()

	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	g := &Grid{
		Width:  width,
		Height: height,
		Seed:   seed,
		Params: params,
	}
	g.Tiles = make([][]Tile, height)
	for y := range g.Tiles {
		g.Tiles[y] = make([]Tile, width)
		for x := range g.Tiles[y] {
			g.Tiles[y][x] = NewTile(Grass, x, y, rng)
		}
	}

	scatterWater(g, params.WaterFraction, rng)
	scatterSwamp(g, params.SwampFraction, rng)
	scatterNoise(g, params.NoiseFraction, rng)

	for i := 0; i < params.SmoothingPasses; i++ {
		smoothPass(g, rng)
	}

	span.SetAttributes(
		attribute.Int("grid.width", width),
		attribute.Int("grid.height", height),
		attribute.Int("grid.smoothing_passes", params.SmoothingPasses),
		attribute.Int("grid.walkable_tiles", g.WalkableCount()),
		attribute.String("grid.fingerprint", fmt.Sprintf("%016x", g.Fingerprint())),
		attribute.Int64("grid.generation_ms", time.Since(start).Milliseconds()),
	)
	return g, nil
}

// scatterWater overwrites floor(w*h*fraction) uniformly random cells with
// water. Duplicate picks overwrite the same cell again and simply waste
// the iteration.
func scatterWater(g *Grid, fraction float64, rng *rand.Rand) {
	count := int(float64(g.Width*g.Height) * fraction)
	for i := 0; i < count; i++ {
		x, y := rng.Intn(g.Width), rng.Intn(g.Height)
		g.Tiles[y][x] = NewTile(Water, x, y, rng)
	}
}

// scatterSwamp overwrites floor(w*h*fraction) uniformly random cells with
// swamp, but only where the cell is still grass. Water is never
// downgraded at this stage.
func scatterSwamp(g *Grid, fraction float64, rng *rand.Rand) {
	count := int(float64(g.Width*g.Height) * fraction)
	for i := 0; i < count; i++ {
		x, y := rng.Intn(g.Width), rng.Intn(g.Height)
		if g.Tiles[y][x].Kind == Grass {
			g.Tiles[y][x] = NewTile(Swamp, x, y, rng)
		}
	}
}

// scatterNoise re-rolls floor(w*h*fraction) uniformly random cells to a
// uniformly random kind.
func scatterNoise(g *Grid, fraction float64, rng *rand.Rand) {
	count := int(float64(g.Width*g.Height) * fraction)
	for i := 0; i < count; i++ {
		x, y := rng.Intn(g.Width), rng.Intn(g.Height)
		kind := TerrainKind(rng.Intn(terrainKindCount))
		g.Tiles[y][x] = NewTile(kind, x, y, rng)
	}
}

// smoothPass rewrites every cell from its 8-connected neighborhood in the
// pre-pass grid. All decisions read only the previous tiles, so the pass
// is order-independent; the new grid replaces the old one atomically at
// the end.
func smoothPass(g *Grid, rng *rand.Rand) {
	next := make([][]Tile, g.Height)
	for y := range next {
		next[y] = make([]Tile, g.Width)
		for x := range next[y] {
			prev := g.Tiles[y][x]
			waterN, grassN := neighborCounts(g, x, y)

			kind := prev.Kind
			switch {
			case waterN >= 5:
				kind = Water
			case prev.Kind == Grass && waterN >= 2:
				kind = Swamp
			case prev.Kind != Grass && grassN >= 6:
				kind = Grass
			}

			if kind == prev.Kind {
				// Unchanged cells keep their tile, decoration included.
				next[y][x] = prev
			} else {
				next[y][x] = NewTile(kind, x, y, rng)
			}
		}
	}
	g.Tiles = next
}

// neighborCounts tallies water and grass cells in the Moore neighborhood
// of (x, y). Edge and corner cells simply have fewer neighbors; the grid
// does not wrap.
func neighborCounts(g *Grid, x, y int) (water, grass int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !g.InBounds(nx, ny) {
				continue
			}
			switch g.Tiles[ny][nx].Kind {
			case Water:
				water++
			case Grass:
				grass++
			}
		}
	}
	return water, grass
}
