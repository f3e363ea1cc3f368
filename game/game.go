package game

import (
	"context"
	"fmt"
	"log/slog"

	"snake-arcade/game/entity"
	"snake-arcade/game/input"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

// DefaultTickRate is the number of game ticks per second.
const DefaultTickRate = 10

// Display is the drawing side of the window the game runs in.
type Display interface {
	entity.Surface
	Clear(c types.Color)
	Present()
}

// EventSource hands out the input events queued since the last call without
// blocking.
type EventSource interface {
	PollEvents() []input.Event
}

// Clock paces the loop. Tick blocks until the next frame boundary for the
// given rate in ticks per second.
type Clock interface {
	Tick(rate int)
}

// Recorder observes what happens during a tick.
type Recorder interface {
	TickDone(length int)
	FoodEaten()
	SnakeReset(lengthLost int)
}

type Options struct {
	Grid     types.Grid
	TickRate int
	Palette  types.Palette
	Seed     uint64
	Logger   *slog.Logger
	// Recorders receive tick events in addition to the game's own stats.
	Recorders []Recorder
}

type Game struct {
	grid     types.Grid
	tickRate int
	palette  types.Palette

	snake *entity.Snake
	food  *entity.Food
	stats *manager.StateManager

	display   Display
	events    EventSource
	clock     Clock
	mapper    *input.Mapper
	recorders []Recorder
	logger    *slog.Logger
}

// NewGame creates the snake at the board center and places the first food.
func NewGame(opts Options, display Display, events EventSource, clock Clock) (*Game, error) {
	if err := opts.Grid.Validate(); err != nil {
		return nil, err
	}
	if opts.TickRate <= 0 {
		opts.TickRate = DefaultTickRate
	}
	if opts.Palette == (types.Palette{}) {
		opts.Palette = types.DefaultPalette
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	snake := entity.NewSnake(opts.Grid, opts.Palette.Snake, opts.Palette.Border)
	rng := rand.New(rand.NewSource(opts.Seed))
	food, err := entity.NewFood(opts.Grid, rng, snake.Occupied(), opts.Palette.Food, opts.Palette.Border)
	if err != nil {
		return nil, fmt.Errorf("placing initial food: %w", err)
	}

	stats := manager.NewStateManager(snake.Len())
	recorders := append([]Recorder{stats}, opts.Recorders...)

	return &Game{
		grid:      opts.Grid,
		tickRate:  opts.TickRate,
		palette:   opts.Palette,
		snake:     snake,
		food:      food,
		stats:     stats,
		display:   display,
		events:    events,
		clock:     clock,
		mapper:    input.NewMapper(logger.With("component", "input")),
		recorders: recorders,
		logger:    logger,
	}, nil
}

func (g *Game) Snake() *entity.Snake {
	return g.snake
}

func (g *Game) Food() *entity.Food {
	return g.food
}

// Stats returns a snapshot of the run statistics.
func (g *Game) Stats() manager.Stats {
	return g.stats.Snapshot()
}

// Run ticks the game until a quit event arrives or ctx is cancelled. Both end
// the loop between ticks and return nil.
func (g *Game) Run(ctx context.Context) error {
	g.logger.Info("game started",
		"board", fmt.Sprintf("%dx%d", g.grid.Width, g.grid.Height),
		"cell", g.grid.CellSize,
		"tick_rate", g.tickRate)

	for {
		g.clock.Tick(g.tickRate)

		if err := ctx.Err(); err != nil {
			g.logger.Info("game cancelled", "reason", err)
			return nil
		}
		if g.mapper.ApplyAll(g.events.PollEvents(), g.snake) {
			g.logger.Info("quit requested")
			return nil
		}
		if err := g.Step(); err != nil {
			return err
		}
		g.Draw()
	}
}

// Step advances the game state by one tick without pacing or input.
func (g *Game) Step() error {
	g.snake.CommitDirection()

	ate := g.snake.Head() == g.food.Position()
	if ate {
		// The new food position is chosen against the body before it grows
		// into the old food cell.
		if err := g.food.Relocate(g.snake.Occupied()); err != nil {
			return fmt.Errorf("relocating food at length %d: %w", g.snake.Len(), err)
		}
		g.logger.Debug("food eaten", "at", g.snake.Head(), "next", g.food.Position())
		for _, r := range g.recorders {
			r.FoodEaten()
		}
	}
	g.snake.Move(ate)

	if g.snake.HasSelfCollision() {
		lost := g.snake.Len()
		g.snake.Reset()
		g.logger.Info("snake reset after self-collision", "length", lost)
		for _, r := range g.recorders {
			r.SnakeReset(lost)
		}
	}

	for _, r := range g.recorders {
		r.TickDone(g.snake.Len())
	}
	return nil
}

// Draw renders one frame: background, food, then snake.
func (g *Game) Draw() {
	g.display.Clear(g.palette.Background)
	g.food.Render(g.display)
	g.snake.Render(g.display)
	g.display.Present()
}
