package manager

import (
	"golang.org/x/exp/rand"

	"snake-astar/game/entity"
	"snake-astar/game/types"
)

// SpawnManager creates snakes for new and restarted games.
type SpawnManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewSpawnManager(grid types.Grid, rng *rand.Rand) *SpawnManager {
	return &SpawnManager{
		grid: grid,
		rng:  rng,
	}
}

// Spawn puts a one-cell snake in the middle of the grid with a random heading.
func (sm *SpawnManager) Spawn() *entity.Snake {
	dir := types.Directions[sm.rng.Intn(len(types.Directions))]
	return entity.NewSnake(sm.grid.Center(), dir, sm.randomColor())
}

func (sm *SpawnManager) randomColor() entity.Color {
	return entity.Color{
		R: uint8(sm.rng.Intn(200) + 55),
		G: uint8(sm.rng.Intn(200) + 55),
		B: uint8(sm.rng.Intn(200) + 55),
	}
}
