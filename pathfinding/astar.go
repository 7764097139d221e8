package pathfinding

import (
	"github.com/zyedidia/generic/mapset"

	"snake-astar/game/types"
)

// Obstacles is the set of impassable cells for one search.
// mapset.Set[types.Point] satisfies it.
type Obstacles interface {
	Has(p types.Point) bool
}

// Path is the sequence of cells after start, up to and including the target.
type Path []types.Point

// Result contains the outcome of a search
type Result struct {
	Path     Path
	Found    bool
	Expanded int  // cells taken off the open set
	Limited  bool // stopped by WithMaxExpansions before finishing
}

// Options defines parameters for the search.
type Options struct {
	Heuristic     Heuristic
	MaxExpansions int // 0 means unbounded
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithHeuristic replaces the default Euclidean heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(options *Options) { options.Heuristic = h }
}

// WithMaxExpansions stops the search after n expansions and reports no path.
func WithMaxExpansions(n int) Option {
	return func(options *Options) { options.MaxExpansions = n }
}

// FindPath returns a shortest path from start to target that avoids
// obstacles, or false when the target cannot be reached. Start is excluded
// from the path; start == target yields an empty path and true.
//
// Start is never checked against obstacles, only the cells stepped into are.
// A start or target outside grid yields false.
func FindPath(start, target types.Point, obstacles Obstacles, grid types.Grid, options ...Option) (Path, bool) {
	result := Search(start, target, obstacles, grid, options...)
	return result.Path, result.Found
}

// Search runs the search to completion.
func Search(start, target types.Point, obstacles Obstacles, grid types.Grid, options ...Option) Result {
	s := newSearch(start, target, obstacles, grid, options)
	for !s.step() {
	}
	return s.result()
}

type search struct {
	grid          types.Grid
	start, target types.Point
	obstacles     Obstacles
	heuristic     Heuristic
	maxExpansions int

	open    *openSet
	closed  mapset.Set[types.Point]
	parents map[types.Point]types.Point

	current  types.Point
	expanded int
	done     bool
	found    bool
	limited  bool
	path     Path
}

func newSearch(start, target types.Point, obstacles Obstacles, grid types.Grid, options []Option) *search {
	opts := Options{Heuristic: Euclidean}
	for _, o := range options {
		o(&opts)
	}
	if opts.Heuristic == nil {
		opts.Heuristic = Euclidean
	}

	s := &search{
		grid:          grid,
		start:         start,
		target:        target,
		obstacles:     obstacles,
		heuristic:     opts.Heuristic,
		maxExpansions: opts.MaxExpansions,
		open:          newOpenSet(),
		closed:        mapset.New[types.Point](),
		parents:       make(map[types.Point]types.Point),
		current:       start,
	}

	if !grid.InBounds(start) || !grid.InBounds(target) {
		s.done = true
		return s
	}
	s.open.push(start, 0, s.heuristic(start, target))
	return s
}

// step expands one cell and reports whether the search has finished.
func (s *search) step() bool {
	if s.done {
		return true
	}
	if s.open.Len() == 0 {
		s.done = true
		return true
	}
	if s.maxExpansions > 0 && s.expanded >= s.maxExpansions {
		s.done = true
		s.limited = true
		return true
	}

	item := s.open.pop()
	s.current = item.cell
	s.expanded++

	if item.cell == s.target {
		s.done = true
		s.found = true
		s.path = s.reconstruct(item.cell, item.g)
		return true
	}

	s.closed.Put(item.cell)
	for _, neighbor := range s.grid.Neighbors(item.cell) {
		if !s.grid.InBounds(neighbor) || s.closed.Has(neighbor) || s.blocked(neighbor) {
			continue
		}
		g := item.g + 1
		existing, inOpen := s.open.get(neighbor)
		if inOpen && g >= existing.g {
			continue
		}
		s.parents[neighbor] = item.cell
		f := float64(g) + s.heuristic(neighbor, s.target)
		if inOpen {
			s.open.decrease(existing, g, f)
		} else {
			s.open.push(neighbor, g, f)
		}
	}
	return false
}

func (s *search) blocked(p types.Point) bool {
	return s.obstacles != nil && s.obstacles.Has(p)
}

// reconstruct walks parent links back from the target. The start has no
// parent, so it is left out.
func (s *search) reconstruct(current types.Point, steps int) Path {
	path := make(Path, 0, steps)
	for {
		parent, ok := s.parents[current]
		if !ok {
			break
		}
		path = append(path, current)
		current = parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func (s *search) result() Result {
	return Result{
		Path:     s.path,
		Found:    s.found,
		Expanded: s.expanded,
		Limited:  s.limited,
	}
}
