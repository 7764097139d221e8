package pathfinding

import (
	"github.com/zyedidia/generic/mapset"

	"snake-astar/game/types"
)

// Snapshot exposes the per-iteration state of the search
type Snapshot struct {
	Current   types.Point
	Open      mapset.Set[types.Point]
	Closed    mapset.Set[types.Point]
	Done      bool
	Found     bool
	Path      Path
	StepIndex int
}

// Stepper runs the same search as Search, one expansion per Step call.
type Stepper struct {
	s *search
}

// NewStepper prepares a search without expanding anything.
func NewStepper(start, target types.Point, obstacles Obstacles, grid types.Grid, options ...Option) *Stepper {
	return &Stepper{s: newSearch(start, target, obstacles, grid, options)}
}

// Step advances the search by one expansion and returns a snapshot.
// Once the search is done further calls return the final snapshot.
func (st *Stepper) Step() Snapshot {
	st.s.step()
	return st.snapshot()
}

// Done reports whether the search has finished.
func (st *Stepper) Done() bool {
	return st.s.done
}

// Result returns the outcome so far. It matches Search once Done is true.
func (st *Stepper) Result() Result {
	return st.s.result()
}

func (st *Stepper) snapshot() Snapshot {
	open := mapset.New[types.Point]()
	for cell := range st.s.open.items {
		open.Put(cell)
	}
	closed := mapset.New[types.Point]()
	st.s.closed.Each(func(cell types.Point) {
		closed.Put(cell)
	})

	var path Path
	if st.s.found {
		path = append(Path{}, st.s.path...)
	}
	return Snapshot{
		Current:   st.s.current,
		Open:      open,
		Closed:    closed,
		Done:      st.s.done,
		Found:     st.s.found,
		Path:      path,
		StepIndex: st.s.expanded,
	}
}
