package game

import (
	"time"

	"grid-snake/game/entity"
	"grid-snake/game/grid"
	"grid-snake/game/manager"
	"grid-snake/game/types"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Game is one play session: a board, the snake on it, the score and the
// apple placement policy. It is not safe for concurrent use; a frontend
// drives it from a single loop.
type Game struct {
	UUID      string
	Config    types.Config
	StartTime time.Time
	Steps     int

	grid     *grid.Grid
	snake    *entity.Snake
	food     types.Point
	hasFood  bool
	lastHit  types.CollisionType
	foodMgr  *manager.FoodManager
	stateMgr *manager.StateManager
	log      zerolog.Logger
}

// Snapshot is a read-only summary for display.
type Snapshot struct {
	UUID          string
	Score         int
	HighScore     int
	GamesPlayed   int
	AverageScore  float64
	Steps         int
	Head          types.Point
	Length        int
	Direction     types.Point
	Food          types.Point
	HasFood       bool
	LastCollision types.CollisionType
}

// NewGame validates cfg and starts a session in its initial state.
func NewGame(cfg types.Config, logger zerolog.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	g := &Game{
		UUID:      id,
		Config:    cfg,
		StartTime: time.Now(),
		foodMgr:   manager.NewFoodManager(cfg.Seed),
		stateMgr:  manager.NewStateManager(),
		log:       logger.With().Str("session", id).Logger(),
	}
	g.Reset()

	g.log.Info().
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Dur("tick", cfg.TickInterval).
		Msg("Session started")
	return g, nil
}

// Reset replaces the board with an empty one, lays a fresh snake at the
// configured start, zeroes the score and spawns an apple.
func (g *Game) Reset() {
	cfg := g.Config
	g.grid = grid.New(cfg.Width, cfg.Height)
	g.snake = entity.NewSnake(g.grid, cfg.StartHead, cfg.StartDirection, cfg.SnakeLength)
	g.stateMgr.ResetScore()
	g.hasFood = false
	g.SpawnApple()
}

// SpawnApple places an apple on a random Empty cell. It reports false only
// when the board has no Empty cell left.
func (g *Game) SpawnApple() bool {
	food, ok := g.foodMgr.GenerateFood(g.grid)
	if !ok {
		g.log.Warn().Int("length", g.snake.Len()).Msg("Board full, no apple spawned")
		g.hasFood = false
		return false
	}
	g.food = food
	g.hasFood = true
	g.log.Debug().
		Int("x", food.X).
		Int("y", food.Y).
		Int("attempts", g.foodMgr.LastAttempts()).
		Msg("Apple spawned")
	return true
}

// Tick advances the session by one step and returns what the snake did.
func (g *Game) Tick() types.Outcome {
	g.Steps++

	outcome := g.snake.Advance(g.grid)
	switch outcome {
	case types.Died:
		final := g.stateMgr.EndGame()
		g.lastHit = g.snake.LastCollisionType
		g.log.Info().
			Str("cause", g.lastHit.String()).
			Int("score", final).
			Int("high_score", g.stateMgr.GetHighScore()).
			Int("step", g.Steps).
			Msg("Snake died, resetting")
		g.Reset()
	case types.Grown:
		g.stateMgr.AddPoint()
		g.hasFood = false
		g.log.Debug().Int("score", g.stateMgr.GetScore()).Int("length", g.snake.Len()).Msg("Apple eaten")
		g.SpawnApple()
	}
	return outcome
}

// Steer forwards a player intent to the snake. It takes effect on the next
// Tick; reversing onto the body is ignored.
func (g *Game) Steer(d types.Direction) {
	g.snake.SetDirection(d)
}

func (g *Game) Width() int {
	return g.grid.Width
}

func (g *Game) Height() int {
	return g.grid.Height
}

// Cell returns the state of (x, y). The coordinate must be on the board.
func (g *Game) Cell(x, y int) types.CellState {
	return g.grid.Get(x, y)
}

func (g *Game) Score() int {
	return g.stateMgr.GetScore()
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetGrid() *grid.Grid {
	return g.grid
}

func (g *Game) Snapshot() Snapshot {
	stats := g.stateMgr.Stats()
	return Snapshot{
		UUID:          g.UUID,
		Score:         stats.Score,
		HighScore:     stats.HighScore,
		GamesPlayed:   stats.GamesPlayed,
		AverageScore:  g.stateMgr.AverageScore(),
		Steps:         g.Steps,
		Head:          g.snake.GetHead(),
		Length:        g.snake.Len(),
		Direction:     g.snake.Direction,
		Food:          g.food,
		HasFood:       g.hasFood,
		LastCollision: g.lastHit,
	}
}
