package pathfinding

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/rand"

	"snake-astar/game/types"
)

func pts(coords ...[2]int) []types.Point {
	out := make([]types.Point, 0, len(coords))
	for _, c := range coords {
		out = append(out, types.Point{X: c[0], Y: c[1]})
	}
	return out
}

func setOf(cells ...types.Point) mapset.Set[types.Point] {
	s := mapset.New[types.Point]()
	for _, c := range cells {
		s.Put(c)
	}
	return s
}

// bfsDistance is the test oracle: exact step distance, -1 when unreachable.
// The start cell is allowed even when it is an obstacle.
func bfsDistance(start, target types.Point, obstacles mapset.Set[types.Point], grid types.Grid) int {
	if !grid.InBounds(start) || !grid.InBounds(target) {
		return -1
	}
	dist := map[types.Point]int{start: 0}
	queue := []types.Point{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == target {
			return dist[cur]
		}
		for _, n := range grid.Neighbors(cur) {
			if _, seen := dist[n]; seen || !grid.InBounds(n) || obstacles.Has(n) {
				continue
			}
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		}
	}
	return -1
}

func requireValidPath(t *testing.T, start, target types.Point, path Path, obstacles mapset.Set[types.Point], grid types.Grid) {
	t.Helper()
	if len(path) == 0 {
		require.Equal(t, start, target, "empty path only when already at target")
		return
	}
	require.Equal(t, target, path[len(path)-1])
	prev := start
	for i, cell := range path {
		require.True(t, grid.InBounds(cell), "step %d out of bounds: %v", i, cell)
		require.False(t, obstacles.Has(cell), "step %d is an obstacle: %v", i, cell)
		require.Equal(t, 1, types.ManhattanDistance(prev, cell), "step %d not adjacent: %v -> %v", i, prev, cell)
		prev = cell
	}
}

func TestFindPathOpenGrid(t *testing.T) {
	grid := types.Grid{Width: 5, Height: 5}
	start, target := types.Point{X: 0, Y: 0}, types.Point{X: 4, Y: 4}

	path, ok := FindPath(start, target, nil, grid)
	require.True(t, ok)
	require.Len(t, path, 8)
	requireValidPath(t, start, target, path, mapset.New[types.Point](), grid)

	prev := start
	for _, cell := range path {
		assert.True(t, cell.X >= prev.X && cell.Y >= prev.Y, "step %v -> %v moves away from target", prev, cell)
		prev = cell
	}
}

func TestFindPathAlreadyAtTarget(t *testing.T) {
	grid := types.Grid{Width: 5, Height: 5}
	path, ok := FindPath(types.Point{}, types.Point{}, nil, grid)
	require.True(t, ok)
	assert.NotNil(t, path)
	assert.Empty(t, path)
}

func TestFindPathTargetWalledOff(t *testing.T) {
	grid := types.Grid{Width: 5, Height: 5}
	ring := setOf(pts(
		[2]int{1, 1}, [2]int{2, 1}, [2]int{3, 1},
		[2]int{1, 2}, [2]int{3, 2},
		[2]int{1, 3}, [2]int{2, 3}, [2]int{3, 3},
	)...)

	result := Search(types.Point{X: 0, Y: 0}, types.Point{X: 2, Y: 2}, ring, grid)
	assert.False(t, result.Found)
	assert.Nil(t, result.Path)
	assert.False(t, result.Limited)
	// every cell outside the ring was expanded before giving up
	assert.Equal(t, 25-9, result.Expanded)
}

func TestFindPathBlockedStart(t *testing.T) {
	grid := types.Grid{Width: 5, Height: 5}
	start := types.Point{X: 2, Y: 2}
	target := types.Point{X: 2, Y: 3}

	path, ok := FindPath(start, target, setOf(start), grid)
	require.True(t, ok)
	assert.Equal(t, Path{target}, path)
}

func TestFindPathTieBreak(t *testing.T) {
	for _, tc := range []struct {
		name      string
		grid      types.Grid
		start     types.Point
		target    types.Point
		obstacles []types.Point
		want      Path
		expanded  int
	}{
		{
			name:   "2x2 open",
			grid:   types.Grid{Width: 2, Height: 2},
			start:  types.Point{X: 0, Y: 0},
			target: types.Point{X: 1, Y: 1},
			want:   Path(pts([2]int{0, 1}, [2]int{1, 1})),
			// (0,0) (0,1) (1,0) (1,1)
			expanded: 4,
		},
		{
			name:      "3x3 pillar",
			grid:      types.Grid{Width: 3, Height: 3},
			start:     types.Point{X: 1, Y: 0},
			target:    types.Point{X: 1, Y: 2},
			obstacles: pts([2]int{1, 1}),
			want:      Path(pts([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 2})),
			expanded:  8,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			obstacles := setOf(tc.obstacles...)
			for i := 0; i < 5; i++ {
				result := Search(tc.start, tc.target, obstacles, tc.grid)
				require.True(t, result.Found)
				assert.Equal(t, tc.want, result.Path)
				assert.Equal(t, tc.expanded, result.Expanded)
			}
		})
	}
}

func TestFindPathOutOfBounds(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 4}
	for _, tc := range []struct {
		name          string
		start, target types.Point
	}{
		{"start left of grid", types.Point{X: -1, Y: 0}, types.Point{X: 2, Y: 2}},
		{"start below grid", types.Point{X: 0, Y: 4}, types.Point{X: 2, Y: 2}},
		{"target right of grid", types.Point{X: 0, Y: 0}, types.Point{X: 4, Y: 0}},
		{"both outside", types.Point{X: -5, Y: -5}, types.Point{X: -5, Y: -5}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			result := Search(tc.start, tc.target, nil, grid)
			assert.False(t, result.Found)
			assert.Nil(t, result.Path)
			assert.Zero(t, result.Expanded)
		})
	}
}

func TestFindPathTargetIsObstacle(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 4}
	target := types.Point{X: 3, Y: 3}
	_, ok := FindPath(types.Point{}, target, setOf(target), grid)
	assert.False(t, ok)
}

func TestFindPathPartitionedGrid(t *testing.T) {
	grid := types.Grid{Width: 7, Height: 5}
	wall := mapset.New[types.Point]()
	for y := 0; y < grid.Height; y++ {
		wall.Put(types.Point{X: 3, Y: y})
	}

	result := Search(types.Point{X: 0, Y: 2}, types.Point{X: 6, Y: 2}, wall, grid)
	assert.False(t, result.Found)
	assert.Equal(t, 3*grid.Height, result.Expanded)
}

func TestFindPathMaxExpansions(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	start, target := types.Point{}, types.Point{X: 9, Y: 9}

	result := Search(start, target, nil, grid, WithMaxExpansions(3))
	assert.False(t, result.Found)
	assert.True(t, result.Limited)
	assert.Equal(t, 3, result.Expanded)

	result = Search(start, target, nil, grid, WithMaxExpansions(grid.Cells()))
	assert.True(t, result.Found)
	assert.False(t, result.Limited)
	assert.Len(t, result.Path, 18)
}

func TestFindPathMatchesBFS(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	heuristics := map[string]Heuristic{"euclidean": Euclidean, "manhattan": Manhattan}

	for i := 0; i < 200; i++ {
		grid := types.Grid{Width: 2 + rng.Intn(7), Height: 2 + rng.Intn(7)}
		obstacles := mapset.New[types.Point]()
		for y := 0; y < grid.Height; y++ {
			for x := 0; x < grid.Width; x++ {
				if rng.Float64() < 0.3 {
					obstacles.Put(types.Point{X: x, Y: y})
				}
			}
		}
		start := types.Point{X: rng.Intn(grid.Width), Y: rng.Intn(grid.Height)}
		target := types.Point{X: rng.Intn(grid.Width), Y: rng.Intn(grid.Height)}
		want := bfsDistance(start, target, obstacles, grid)

		for name, h := range heuristics {
			t.Run(fmt.Sprintf("case%d/%s", i, name), func(t *testing.T) {
				path, ok := FindPath(start, target, obstacles, grid, WithHeuristic(h))
				if want < 0 {
					assert.False(t, ok)
					return
				}
				require.True(t, ok, "oracle found distance %d", want)
				assert.Len(t, path, want)
				requireValidPath(t, start, target, path, obstacles, grid)
			})
		}
	}
}

func TestFindPathDeterministic(t *testing.T) {
	grid := types.Grid{Width: 12, Height: 9}
	obstacles := setOf(pts([2]int{4, 0}, [2]int{4, 1}, [2]int{4, 2}, [2]int{4, 3}, [2]int{4, 5}, [2]int{8, 8}, [2]int{8, 7})...)
	start, target := types.Point{X: 1, Y: 1}, types.Point{X: 10, Y: 6}

	first, ok := FindPath(start, target, obstacles, grid)
	require.True(t, ok)
	for i := 0; i < 20; i++ {
		again, ok := FindPath(start, target, obstacles, grid)
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestFindPathConcurrent(t *testing.T) {
	grid := types.Grid{Width: 30, Height: 30}
	obstacles := mapset.New[types.Point]()
	for y := 0; y < 25; y++ {
		obstacles.Put(types.Point{X: 15, Y: y})
	}
	start, target := types.Point{X: 2, Y: 2}, types.Point{X: 28, Y: 3}
	want, ok := FindPath(start, target, obstacles, grid)
	require.True(t, ok)

	var wg sync.WaitGroup
	paths := make([]Path, 8)
	for i := range paths {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			paths[i], _ = FindPath(start, target, obstacles, grid)
		}(i)
	}
	wg.Wait()
	for _, p := range paths {
		assert.Equal(t, want, p)
	}
}

func TestHeuristics(t *testing.T) {
	a, b := types.Point{X: 0, Y: 0}, types.Point{X: 3, Y: 4}
	assert.InDelta(t, 5.0, Euclidean(a, b), 1e-12)
	assert.Equal(t, 7.0, Manhattan(a, b))
	assert.Zero(t, Euclidean(b, b))
}
