package pathfinding

import (
	"math"

	"snake-astar/game/types"
)

// Heuristic returns the estimated cost from one cell to another.
type Heuristic func(from, to types.Point) float64

// Euclidean is the straight-line distance. It never overestimates the step
// count, but is weaker than Manhattan on a 4-connected grid.
func Euclidean(from, to types.Point) float64 {
	dx := float64(from.X - to.X)
	dy := float64(from.Y - to.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Manhattan is the exact step count on an empty 4-connected grid. Using it
// changes which of several equal-length paths is returned.
func Manhattan(from, to types.Point) float64 {
	return float64(types.ManhattanDistance(from, to))
}
