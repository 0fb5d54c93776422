package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/micromouse/maze"
)

// ShortestPath returns a shortest path from start to end, both inclusive.
// A path from a cell to itself is that single cell.
//
// Steps:
//  1. Validate grid and endpoints.
//  2. Reset scratch: Distance = Infinity, Prev = NoPos, Visited = false.
//  3. Pop the closest unfinalized cell, mark it Visited and relax its passages.
//  4. Follow Prev from end and reverse.
//
// Complexity: O(N log N), N = n².
func ShortestPath(g *maze.Grid, start, end maze.Pos) (maze.Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(start) || !g.InBounds(end) {
		return nil, ErrOutOfBounds
	}

	r := &runner{
		g:  g,
		pq: make(nodePQ, 0, g.Size()),
	}
	r.init(start)
	r.process()

	return r.path(end)
}

// runner holds per-call state. Distances live on the grid cells.
type runner struct {
	g  *maze.Grid
	pq nodePQ
}

// init resets every cell and seeds the queue with start.
func (r *runner) init(start maze.Pos) {
	r.g.ResetScratch()
	cells := r.g.Cells()
	for i := range cells {
		cells[i].Distance = Infinity
	}
	r.g.At(start).Distance = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{pos: start, dist: 0})
}

// process drains the queue; stale entries are skipped.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := r.g.At(item.pos)
		if u.Visited {
			continue
		}
		u.Visited = true
		r.relax(u)
	}
}

// relax tries to improve every passage neighbour of u by one step.
func (r *runner) relax(u *maze.Cell) {
	newDist := u.Distance + 1
	for _, p := range r.g.Passages(u.Pos) {
		v := r.g.At(p)
		if v.Visited || newDist >= v.Distance {
			continue
		}
		v.Distance = newDist
		v.Prev = u.Pos
		heap.Push(&r.pq, &nodeItem{pos: p, dist: newDist})
	}
}

// path follows predecessors back from end.
func (r *runner) path(end maze.Pos) (maze.Path, error) {
	if r.g.At(end).Distance == Infinity {
		return nil, ErrNoPath
	}
	var out maze.Path
	for cur := end; cur != maze.NoPos; cur = r.g.At(cur).Prev {
		out = append(out, cur)
	}

	return out.Reverse(), nil
}

// nodeItem is a heap entry; several may exist per cell (lazy decrease-key).
type nodeItem struct {
	pos  maze.Pos
	dist int
}

// nodePQ implements heap.Interface as a min-heap on dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
