package types

// Point is a cell position in grid units.
type Point struct {
	X, Y int
}

// Add returns p moved by the vector of d.
func (p Point) Add(d Direction) Point {
	v := d.Vector()
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// InBounds reports whether p lies within [0, Width) x [0, Height).
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Neighbors returns the 4-connected neighbors of p in the fixed order
// up, down, left, right. Out-of-bounds cells are included; callers filter.
func (g Grid) Neighbors(p Point) [4]Point {
	return [4]Point{
		{X: p.X, Y: p.Y - 1},
		{X: p.X, Y: p.Y + 1},
		{X: p.X - 1, Y: p.Y},
		{X: p.X + 1, Y: p.Y},
	}
}

// Center returns the middle cell of the grid.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Cells returns the number of cells in the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Direction is a cardinal heading. The zero value is None.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Directions lists the headings in neighbor order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Vector converts a Direction into a one-cell displacement.
func (d Direction) Vector() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

// TurnLeft returns the heading after a 90° counter-clockwise turn.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Right:
		return Up
	case Down:
		return Right
	case Left:
		return Down
	default:
		return d
	}
}

// TurnRight returns the heading after a 90° clockwise turn.
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// DirectionBetween returns the heading that moves from a to the adjacent cell b.
// ok is false when b is not 4-adjacent to a.
func DirectionBetween(a, b Point) (Direction, bool) {
	for _, d := range Directions {
		if a.Add(d) == b {
			return d, true
		}
	}
	return None, false
}

// ManhattanDistance returns |dx| + |dy| between two cells.
func ManhattanDistance(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
