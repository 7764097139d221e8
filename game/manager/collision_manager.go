package manager

import (
	"snake-astar/game/entity"
	"snake-astar/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Check reports what the snake's head would hit at pos.
func (cm *CollisionManager) Check(pos types.Point, snake *entity.Snake) CollisionType {
	if cm.isWallCollision(pos) {
		return WallCollision
	}
	if cm.isSelfCollision(pos, snake) {
		return SelfCollision
	}
	return NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.InBounds(pos)
}

// isSelfCollision checks pos against the body. The tail cell is vacated on
// the same tick unless the snake is growing, so it does not count then.
func (cm *CollisionManager) isSelfCollision(pos types.Point, snake *entity.Snake) bool {
	body := snake.Body
	if !snake.Growing() {
		body = body[1:]
	}
	for _, part := range body {
		if pos == part {
			return true
		}
	}
	return false
}

// ValidateSpawnPosition checks if a position is free for placing food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	return snake == nil || !snake.Occupies(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
