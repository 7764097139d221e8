package ai

import (
	"snake-astar/game/entity"
	"snake-astar/game/types"
)

// View is what a controller may look at when choosing the next heading.
type View struct {
	Snake   *entity.Snake
	Food    types.Point
	HasFood bool
	Grid    types.Grid
}

// Controller decides the snake's heading once per tick.
type Controller interface {
	NextDirection(view View) types.Direction
}

const maxQueuedTurns = 3

// Manual replays key presses, one per tick, so quick double turns are not lost.
type Manual struct {
	queue []types.Direction
}

func NewManual() *Manual {
	return &Manual{queue: make([]types.Direction, 0, maxQueuedTurns)}
}

// Press queues a heading. Presses beyond the queue limit are dropped.
func (m *Manual) Press(dir types.Direction) {
	if dir == types.None || len(m.queue) >= maxQueuedTurns {
		return
	}
	if n := len(m.queue); n > 0 && m.queue[n-1] == dir {
		return
	}
	m.queue = append(m.queue, dir)
}

// Reset drops any queued presses.
func (m *Manual) Reset() {
	m.queue = m.queue[:0]
}

func (m *Manual) NextDirection(view View) types.Direction {
	if len(m.queue) == 0 {
		return view.Snake.Direction
	}
	dir := m.queue[0]
	m.queue = m.queue[1:]
	return dir
}
