package ai

import (
	"fmt"
	"log/slog"

	"snake-astar/game/types"
	"snake-astar/pathfinding"
)

// NoPathPolicy decides the heading when the food cannot be reached.
type NoPathPolicy int

const (
	// HoldDirection keeps the current heading.
	HoldDirection NoPathPolicy = iota
	// SafeMove takes the first neighbor, in grid order, that does not
	// collide this tick.
	SafeMove
)

func (p NoPathPolicy) String() string {
	switch p {
	case SafeMove:
		return "safe"
	default:
		return "hold"
	}
}

// ParseNoPathPolicy accepts "hold" or "safe".
func ParseNoPathPolicy(s string) (NoPathPolicy, error) {
	switch s {
	case "hold", "":
		return HoldDirection, nil
	case "safe":
		return SafeMove, nil
	default:
		return HoldDirection, fmt.Errorf("unknown no-path policy %q", s)
	}
}

// Autopilot steers the snake along a freshly searched path to the food on
// every tick, treating the whole body as obstacles.
type Autopilot struct {
	policy     NoPathPolicy
	options    []pathfinding.Option
	logger     *slog.Logger
	lastPath   pathfinding.Path
	lastResult pathfinding.Result
}

func NewAutopilot(policy NoPathPolicy, logger *slog.Logger, options ...pathfinding.Option) *Autopilot {
	if logger == nil {
		logger = slog.Default()
	}
	return &Autopilot{
		policy:  policy,
		options: options,
		logger:  logger,
	}
}

func (a *Autopilot) NextDirection(view View) types.Direction {
	head := view.Snake.Head()
	if !view.HasFood {
		a.lastPath = nil
		a.lastResult = pathfinding.Result{}
		return a.fallback(view)
	}

	a.lastResult = pathfinding.Search(head, view.Food, view.Snake.Obstacles(), view.Grid, a.options...)
	if a.lastResult.Found && len(a.lastResult.Path) > 0 {
		if dir, ok := types.DirectionBetween(head, a.lastResult.Path[0]); ok {
			a.lastPath = a.lastResult.Path
			return dir
		}
	}

	a.lastPath = nil
	a.logger.Debug("no path to food",
		"head", head,
		"food", view.Food,
		"expanded", a.lastResult.Expanded,
		"limited", a.lastResult.Limited,
		"policy", a.policy)
	return a.fallback(view)
}

// LastPath is the path chosen on the latest tick, nil when none was found.
func (a *Autopilot) LastPath() pathfinding.Path {
	return a.lastPath
}

// LastResult is the latest search outcome.
func (a *Autopilot) LastResult() pathfinding.Result {
	return a.lastResult
}

func (a *Autopilot) fallback(view View) types.Direction {
	current := view.Snake.Direction
	if a.policy != SafeMove {
		return current
	}

	body := view.Snake.Body
	if !view.Snake.Growing() {
		body = body[1:]
	}
	head := view.Snake.Head()
	for _, dir := range types.Directions {
		next := head.Add(dir)
		if !view.Grid.InBounds(next) || contains(body, next) {
			continue
		}
		if view.Snake.Len() > 1 && dir == current.Opposite() {
			continue
		}
		return dir
	}
	return current
}

func contains(cells []types.Point, p types.Point) bool {
	for _, c := range cells {
		if c == p {
			return true
		}
	}
	return false
}
