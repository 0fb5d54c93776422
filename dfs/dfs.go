package dfs

import (
	"github.com/katalvlaran/micromouse/maze"
)

// walker carries the state of one FindPath call. Visited flags live on the
// grid cells.
type walker struct {
	g     *maze.Grid
	end   maze.Pos
	found bool
	path  maze.Path
}

// FindPath returns the first path from start to end discovered by a
// depth-first search. It resets every cell's Visited flag first.
// Returns ErrGridNil, ErrOutOfBounds or ErrNoPath.
func FindPath(g *maze.Grid, start, end maze.Pos) (maze.Path, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if !g.InBounds(start) || !g.InBounds(end) {
		return nil, ErrOutOfBounds
	}
	for i := range g.Cells() {
		g.Cells()[i].Visited = false
	}

	w := &walker{g: g, end: end}
	w.traverse(start)
	if !w.found {
		return nil, ErrNoPath
	}

	return w.path, nil
}

// traverse reports whether end was reached through p. Cells are prepended
// while the successful branch unwinds.
func (w *walker) traverse(p maze.Pos) bool {
	w.g.At(p).Visited = true
	if p == w.end {
		w.found = true
	}

	onPath := w.found
	for _, next := range w.g.Passages(p) {
		if w.found {
			break
		}
		if !w.g.At(next).Visited && w.traverse(next) {
			onPath = true
		}
	}
	if onPath {
		w.path = append(maze.Path{p}, w.path...)
	}

	return onPath
}

// CountLoops returns the number of independent loops in g: open passages
// beyond those of a spanning forest. Scratch fields are not touched.
//
// Complexity: O(N) time and memory.
func CountLoops(g *maze.Grid) (int, error) {
	if g == nil {
		return 0, ErrGridNil
	}
	state := make([]int, g.Size())
	loops := 0

	var visit func(p, parent maze.Pos)
	visit = func(p, parent maze.Pos) {
		state[g.Index(p)] = Gray
		for _, next := range g.Passages(p) {
			if next == parent {
				continue
			}
			switch state[g.Index(next)] {
			case White:
				visit(next, p)
			case Gray:
				loops++
			}
		}
		state[g.Index(p)] = Black
	}

	for i := range state {
		if state[i] == White {
			visit(g.PosOf(i), maze.NoPos)
		}
	}

	return loops, nil
}
