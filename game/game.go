package game

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"snake-astar/ai"
	"snake-astar/game/entity"
	"snake-astar/game/manager"
	"snake-astar/game/types"
)

// Causes recorded when a game ends without a collision.
const (
	CauseFilled  = "filled"
	CauseStalled = "stalled"
)

type Game struct {
	UUID      string
	Grid      types.Grid
	Snake     *entity.Snake
	Steps     int
	Over      bool
	Won       bool
	Cause     string
	StartTime time.Time

	controller   ai.Controller
	logger       *slog.Logger
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	spawnMgr     *manager.SpawnManager
	stateMgr     *manager.StateManager
}

// NewGame sets up a session on grid. A zero seed picks one from the clock.
func NewGame(grid types.Grid, seed uint64, controller ai.Controller, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))
	collisionMgr := manager.NewCollisionManager(grid)

	g := &Game{
		UUID:         uuid.New().String(),
		Grid:         grid,
		controller:   controller,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, rng, collisionMgr),
		spawnMgr:     manager.NewSpawnManager(grid, rng),
		stateMgr:     manager.NewStateManager(),
	}
	g.logger = logger.With("game", g.UUID)
	g.logger.Info("game created", "width", grid.Width, "height", grid.Height, "seed", seed)
	g.Restart()
	return g
}

// Restart spawns a fresh snake and food. Score history is kept.
func (g *Game) Restart() {
	g.Snake = g.spawnMgr.Spawn()
	g.Steps = 0
	g.Over = false
	g.Won = false
	g.Cause = ""
	g.StartTime = time.Now()
	if r, ok := g.controller.(interface{ Reset() }); ok {
		r.Reset()
	}
	g.foodMgr.Spawn(g.Snake)
	g.logger.Debug("snake spawned", "head", g.Snake.Head(), "direction", g.Snake.Direction)
}

// Food returns the food cell, false when none is placed.
func (g *Game) Food() (types.Point, bool) {
	return g.foodMgr.Current()
}

func (g *Game) Controller() ai.Controller {
	return g.controller
}

// SetController swaps who steers, e.g. when the player toggles the autopilot.
func (g *Game) SetController(c ai.Controller) {
	g.controller = c
}

func (g *Game) Stats() *manager.StateManager {
	return g.stateMgr
}

// Update advances the game by one tick.
func (g *Game) Update() {
	if g.Over {
		return
	}
	g.Steps++

	food, hasFood := g.foodMgr.Current()
	dir := g.controller.NextDirection(ai.View{
		Snake:   g.Snake,
		Food:    food,
		HasFood: hasFood,
		Grid:    g.Grid,
	})
	g.Snake.SetDirection(dir)

	newHead := g.Snake.NextHead()
	if collision := g.collisionMgr.Check(newHead, g.Snake); collision != manager.NoCollision {
		g.end(collision.String(), false)
		return
	}

	ate := g.foodMgr.Eaten(newHead)
	if ate {
		g.Snake.Grow()
		g.Snake.Score++
	}
	g.Snake.Move(newHead)
	if !ate {
		return
	}

	g.logger.Debug("food eaten", "score", g.Snake.Score, "length", g.Snake.Len(), "steps", g.Steps)
	if _, ok := g.foodMgr.Spawn(g.Snake); !ok {
		g.end(CauseFilled, true)
	}
}

// Run ticks until the game ends or maxTicks have passed, and returns the
// number of ticks taken. A game still running after maxTicks ends as stalled.
func (g *Game) Run(maxTicks int) int {
	ticks := 0
	for !g.Over && ticks < maxTicks {
		g.Update()
		ticks++
	}
	if !g.Over {
		g.end(CauseStalled, false)
	}
	return ticks
}

func (g *Game) end(cause string, won bool) {
	g.Over = true
	g.Won = won
	g.Cause = cause
	g.Snake.Dead = !won
	g.stateMgr.RecordGame(manager.GameRecord{
		Score: g.Snake.Score,
		Steps: g.Steps,
		Cause: cause,
	})
	g.logger.Info("game over",
		"cause", cause,
		"score", g.Snake.Score,
		"steps", g.Steps,
		"duration", time.Since(g.StartTime).Round(time.Millisecond),
		"high_score", g.stateMgr.HighScore())
}
