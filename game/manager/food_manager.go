package manager

import (
	"golang.org/x/exp/rand"

	"snake-astar/game/entity"
	"snake-astar/game/types"
)

// FoodManager owns the single food cell the snake is chasing.
type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
	food         types.Point
	present      bool
}

func NewFoodManager(grid types.Grid, rng *rand.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// Spawn places food on a uniformly chosen free cell. It returns false when
// the snake fills the whole grid.
func (fm *FoodManager) Spawn(snake *entity.Snake) (types.Point, bool) {
	free := make([]types.Point, 0, fm.grid.Cells())
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if fm.collisionMgr.ValidateSpawnPosition(p, snake) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		fm.present = false
		return types.Point{}, false
	}
	fm.food = free[fm.rng.Intn(len(free))]
	fm.present = true
	return fm.food, true
}

// Current returns the food position, false when none is placed.
func (fm *FoodManager) Current() (types.Point, bool) {
	return fm.food, fm.present
}

// Eaten reports whether pos is on the food.
func (fm *FoodManager) Eaten(pos types.Point) bool {
	return fm.present && fm.collisionMgr.IsFoodCollision(pos, fm.food)
}
