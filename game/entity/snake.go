package entity

import (
	"github.com/zyedidia/generic/mapset"

	"snake-astar/game/types"
)

type Color struct {
	R, G, B uint8
}

// Snake keeps its body tail first: Body[0] is the tail, the last element is the head.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
	Score     int
	Dead      bool
	Color     Color
	growth    int
}

func NewSnake(startPos types.Point, dir types.Direction, color Color) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: dir,
		Color:     color,
	}
}

func (s *Snake) Head() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Tail() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Growing reports whether the next Move keeps the tail in place.
func (s *Snake) Growing() bool {
	return s.growth > 0
}

// SetDirection changes heading. A 180-degree turn is ignored unless the
// snake is a single cell, since it would drive the head into the neck.
func (s *Snake) SetDirection(dir types.Direction) {
	if dir == types.None {
		return
	}
	if len(s.Body) > 1 && dir == s.Direction.Opposite() {
		return
	}
	s.Direction = dir
}

// NextHead returns where the head moves on the next tick.
func (s *Snake) NextHead() types.Point {
	return s.Head().Add(s.Direction)
}

// Move appends newHead and drops the tail unless growth is pending.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, newHead)
	if s.growth > 0 {
		s.growth--
		return
	}
	s.Body = s.Body[1:]
}

// Grow lengthens the snake by one cell over the next move.
func (s *Snake) Grow() {
	s.growth++
}

func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Obstacles snapshots every body cell, head included, as a fresh set.
func (s *Snake) Obstacles() mapset.Set[types.Point] {
	set := mapset.New[types.Point]()
	for _, part := range s.Body {
		set.Put(part)
	}
	return set
}
