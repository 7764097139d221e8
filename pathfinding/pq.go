package pathfinding

import (
	"container/heap"

	"snake-astar/game/types"
)

type openItem struct {
	cell  types.Point
	g     int
	f     float64
	seq   int // order of first insertion, breaks f ties
	index int
}

type priorityQueue []*openItem

func (q priorityQueue) Len() int { return len(q) }
func (q priorityQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}
func (q priorityQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *priorityQueue) Push(x any) {
	item := x.(*openItem)
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *priorityQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

// openSet is a min-priority queue on (f, insertion order) with decrease-key
// and O(1) membership.
type openSet struct {
	queue priorityQueue
	items map[types.Point]*openItem
	seq   int
}

func newOpenSet() *openSet {
	return &openSet{items: make(map[types.Point]*openItem)}
}

func (o *openSet) Len() int { return o.queue.Len() }

func (o *openSet) push(cell types.Point, g int, f float64) {
	item := &openItem{cell: cell, g: g, f: f, seq: o.seq}
	o.seq++
	heap.Push(&o.queue, item)
	o.items[cell] = item
}

func (o *openSet) pop() *openItem {
	item := heap.Pop(&o.queue).(*openItem)
	delete(o.items, item.cell)
	return item
}

func (o *openSet) get(cell types.Point) (*openItem, bool) {
	item, ok := o.items[cell]
	return item, ok
}

// decrease lowers the scores of an item already in the queue. The item keeps
// its insertion order.
func (o *openSet) decrease(item *openItem, g int, f float64) {
	item.g = g
	item.f = f
	heap.Fix(&o.queue, item.index)
}
