// Package game provides the main loop, the movement controller, and
// ownership of the active grid.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/isoworld/internal/entity"
	"github.com/samdwyer/isoworld/internal/telemetry"
	"github.com/samdwyer/isoworld/internal/ui"
	"github.com/samdwyer/isoworld/internal/world"
)

// maxGenerateTries bounds the regeneration retry loop.
const maxGenerateTries = 5

// Game owns the authoritative grid and the player. Consumers read the
// grid through the game each tick; nothing retains a grid reference
// across a regeneration.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	grid     *world.Grid
	player   *entity.Mover
	rng      *rand.Rand
	seed     int64
	status   string
	running  bool
}

// New creates a game instance with an initialized terminal screen.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		rng:      rand.New(rand.NewSource(seed)),
		seed:     seed,
		running:  true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	if err := g.regenerate(ctx); err != nil {
		initSpan.End()
		g.screen.Close()
		return err
	}

	// The grid is guaranteed a walkable tile here; regenerate retries
	// until it has one.
	startX, startY, err := g.grid.RandomWalkableTile(g.rng)
	if err != nil {
		initSpan.End()
		g.screen.Close()
		return err
	}
	g.player = entity.NewMover(startX, startY, g.cfg.BaseSpeed, g.grid.TileAt(startX, startY).Kind)

	initSpan.SetAttributes(
		attribute.String("player.id", g.player.ID.String()),
		attribute.Int("player.start_x", startX),
		attribute.Int("player.start_y", startY),
		attribute.Int64("grid.seed", g.grid.Seed),
	)
	initSpan.End()

	for g.running {
		g.renderer.Render(g.grid, g.player, g.statusLine())
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// handleInput processes a single terminal event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		g.handleMouseEvent(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent maps keyboard input onto an input snapshot and feeds it
// to the movement controller.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	var in InputState

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return

	case tcell.KeyUp:
		in.Up = true
	case tcell.KeyDown:
		in.Down = true
	case tcell.KeyLeft:
		in.Left = true
	case tcell.KeyRight:
		in.Right = true

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
			return
		case 'r', 'R':
			if err := g.regenerate(ctx); err != nil {
				g.status = fmt.Sprintf("regenerate failed: %v", err)
			}
			return
		case 'k':
			in.Up = true
		case 'j':
			in.Down = true
		case 'h':
			in.Left = true
		case 'l':
			in.Right = true
		}
	}

	Step(g.player, in, g.grid, time.Now().UnixMilli())
}

// handleMouseEvent maps the hovered terminal cell back to a grid tile and
// reports it in the status line.
func (g *Game) handleMouseEvent(ev *tcell.EventMouse) {
	cellX, cellY := ev.Position()
	gx, gy, ok := g.renderer.TileAtCell(g.grid, cellX, cellY)
	if !ok {
		g.status = ""
		return
	}
	g.status = fmt.Sprintf("tile (%d,%d) %s", gx, gy, g.grid.TileAt(gx, gy).Kind)
}

// regenerate discards the active grid and builds a replacement wholesale.
// A generated grid with zero walkable tiles violates the generation
// invariant; in that case retry with a fresh seed and safer parameters
// before giving up. The player is revalidated against the new grid, since
// their old position may no longer exist.
func (g *Game) regenerate(ctx context.Context) error {
	params := g.cfg.Params

	grid, err := backoff.Retry(ctx, func() (*world.Grid, error) {
		seed := g.seed
		g.seed++

		grid, err := world.Generate(ctx, g.cfg.Width, g.cfg.Height, params, seed)
		if err != nil {
			// Bad dimensions or parameters will not heal on retry.
			return nil, backoff.Permanent(err)
		}
		if grid.WalkableCount() == 0 {
			params.WaterFraction /= 2
			params.NoiseFraction /= 2
			return nil, world.ErrNoWalkableTile
		}
		return grid, nil
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(maxGenerateTries))
	if err != nil {
		return err
	}

	g.grid = grid
	g.status = ""
	if g.player != nil {
		if err := g.player.Relocate(g.grid, g.rng); err != nil {
			return err
		}
	}
	return nil
}

// statusLine summarizes the session for the debug footer.
func (g *Game) statusLine() string {
	line := fmt.Sprintf("seed %d  map %dx%d fp %016x  pos (%d,%d) facing %s",
		g.grid.Seed, g.grid.Width, g.grid.Height, g.grid.Fingerprint(),
		g.player.GridX, g.player.GridY, g.player.Facing)
	if g.status != "" {
		line += "  " + g.status
	}
	return line
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
