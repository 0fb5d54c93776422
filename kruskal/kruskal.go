package kruskal

import (
	"math/rand"

	"github.com/katalvlaran/micromouse/maze"
)

// wall is a candidate passage between two adjacent cells.
type wall struct {
	a, b maze.Pos
}

// generator holds the mutable state of a single Generate call.
type generator struct {
	g     *maze.Grid
	ds    *disjointSet
	walls []wall
	cand  []wall
	res   Result
}

// Generate turns g into a random maze with a single goal entrance.
//
// The grid is fully reset first: every passage is closed and per-cell scratch
// fields are cleared. See the package documentation for the algorithm.
//
// Errors: maze.ErrEmptyGrid for nil g, ErrDimensionTooSmall for n < 3,
// ErrNegativeEdges for k < 0. On error g is not modified.
//
// Complexity: O(n²·α(n²)) time, O(n²) memory.
func Generate(g *maze.Grid, opts ...Option) (*Result, error) {
	// 1) Validate input and options
	if g == nil {
		return nil, maze.ErrEmptyGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g.Dim() < MinDimension {
		return nil, ErrDimensionTooSmall
	}
	if o.NonTreeEdges < 0 {
		return nil, ErrNegativeEdges
	}
	r := o.Rand
	if r == nil {
		r = rngFromSeed(o.Seed)
	}

	// 2) Reset grid
	g.CloseAll()
	g.ResetScratch()

	gen := &generator{
		g:  g,
		ds: newDisjointSet(g.Size()),
	}
	// 3) Goal entrance, spanning tree, then loops
	gen.enumerateWalls()
	gen.joinGoal(r)
	gen.carve(r)
	gen.addLoops(r, o.NonTreeEdges)

	res := gen.res
	return &res, nil
}

// enumerateWalls lists every adjacent pair once: east and south of each cell.
func (gen *generator) enumerateWalls() {
	n := gen.g.Dim()
	gen.walls = make([]wall, 0, maze.FullyOpenCount(n))
	for _, c := range gen.g.Cells() {
		for _, d := range [2]maze.Direction{maze.East, maze.South} {
			if q, ok := gen.g.Neighbor(c.Pos, d); ok {
				gen.walls = append(gen.walls, wall{a: c.Pos, b: q})
			}
		}
	}
}

// joinGoal pre-joins the even-n goal block, opens one random entrance and
// removes every other entrance candidate from the wall list.
func (gen *generator) joinGoal(r *rand.Rand) {
	g := gen.g
	goal := g.GoalCells()

	// 1) Join the even-n block
	if len(goal) == 4 {
		// Spanning path through the block: [0]-[1], [0]-[2], [2]-[3].
		// The fourth internal pair stays a regular wall and becomes a loop candidate.
		for _, pair := range [3][2]int{{0, 1}, {0, 2}, {2, 3}} {
			gen.open(goal[pair[0]], goal[pair[1]])
		}
	}

	// 2) Split entrance candidates off the wall list
	var entrances []wall
	kept := gen.walls[:0]
	for _, w := range gen.walls {
		inA, inB := g.IsGoal(w.a), g.IsGoal(w.b)
		switch {
		case inA && inB:
			if g.HasPassage(w.a, w.b) {
				continue
			}
			kept = append(kept, w)
		case inA:
			entrances = append(entrances, w)
		case inB:
			entrances = append(entrances, wall{a: w.b, b: w.a})
		default:
			kept = append(kept, w)
		}
	}
	gen.walls = kept

	// 3) Open exactly one entrance
	e := entrances[r.Intn(len(entrances))]
	gen.open(e.a, e.b)
	gen.res.Entrance = [2]maze.Pos{e.a, e.b}
}

// carve drains the wall list in random order, building the spanning tree.
func (gen *generator) carve(r *rand.Rand) {
	for len(gen.walls) > 0 {
		w := popRandom(&gen.walls, r)
		if !gen.open(w.a, w.b) {
			gen.cand = append(gen.cand, w)
		}
	}
	gen.res.Candidates = len(gen.cand)
}

// addLoops opens up to k random non-tree candidates.
func (gen *generator) addLoops(r *rand.Rand, k int) {
	for i := 0; i < k && len(gen.cand) > 0; i++ {
		w := popRandom(&gen.cand, r)
		_ = gen.g.Open(w.a, w.b)
		gen.res.NonTreeEdges++
	}
}

// open unions a and b and opens their passage if they were in different sets.
func (gen *generator) open(a, b maze.Pos) bool {
	if !gen.ds.union(gen.g.Index(a), gen.g.Index(b)) {
		return false
	}
	_ = gen.g.Open(a, b)
	gen.res.TreeEdges++
	return true
}
