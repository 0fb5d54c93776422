package navigator

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/micromouse/bfs"
	"github.com/katalvlaran/micromouse/maze"
	"github.com/katalvlaran/micromouse/telemetry"
)

// Navigator is a flood-fill mouse exploring one maze.
type Navigator struct {
	ref    *maze.Grid
	belief *maze.Grid
	logger *zap.Logger

	visited      []bool
	visitedCount int
	stack        []maze.Pos
	targets      []maze.Pos

	start       maze.Pos
	heading     maze.Direction
	orientation maze.Direction
	pos         maze.Pos
	runStart    maze.Pos

	prevPath maze.Path
	lastPath maze.Path
	runs     int
	steps    int
	done     bool
}

// New creates a navigator that starts at start inside ref. ref may be nil,
// in which case WithDimension must give the maze size and the mouse learns
// walls only from Observe.
func New(ref *maze.Grid, start maze.Pos, opts ...Option) (*Navigator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := o.Dimension
	if ref != nil {
		n = ref.Dim()
	}
	if n == 0 {
		return nil, ErrNoDimension
	}
	belief, err := maze.New(n)
	if err != nil {
		return nil, err
	}
	if !belief.InBounds(start) {
		return nil, ErrStartOutOfBounds
	}

	nav := &Navigator{
		ref:     ref,
		belief:  belief,
		logger:  o.Logger,
		start:   start,
		heading: o.Orientation,
		visited: make([]bool, belief.Size()),
	}
	nav.Restart()

	return nav, nil
}

// Restart returns the navigator to its initial state without reallocating
// its grids: belief fully open, distances seeded toward the goal, stack
// holding only the start cell.
func (nav *Navigator) Restart() {
	nav.belief.ClearWalls()
	nav.belief.ResetScratch()
	for i := range nav.belief.Cells() {
		c := &nav.belief.Cells()[i]
		c.Distance = nav.belief.GoalDistance(c.Pos)
	}
	for i := range nav.visited {
		nav.visited[i] = false
	}

	nav.visitedCount = 0
	nav.stack = append(nav.stack[:0], nav.start)
	nav.targets = nav.belief.GoalCells()
	nav.orientation = nav.heading
	nav.pos = nav.start
	nav.runStart = nav.start
	nav.prevPath = nil
	nav.lastPath = nil
	nav.runs = 0
	nav.steps = 0
	nav.done = false
}

// Step performs exactly one transition and reports whether the navigator
// has converged. Once done, Step does nothing.
func (nav *Navigator) Step() bool {
	if nav.done {
		return true
	}
	nav.steps++

	// 1) Empty stack: the run is over
	if len(nav.stack) == 0 {
		nav.completeRun()
		return nav.done
	}

	// 2) Turn toward the next cell and move unless a wall shows up
	c := nav.pop()
	if c != nav.pos {
		d, adjacent := nav.pos.DirectionTo(c)
		if !adjacent || !nav.belief.InBounds(c) {
			// Stale entry, e.g. after Observe moved the mouse.
			nav.push(nav.pos)
			return false
		}
		nav.orientation = d
		nav.sense()
		if !nav.belief.IsOpen(nav.pos, d) {
			for len(nav.stack) > 0 && nav.stack[len(nav.stack)-1] == c {
				nav.pop()
			}
			nav.recalibrate(nav.pos)
			nav.push(nav.pos)
			return false
		}
		nav.pos = c
	}

	// 3) Sense, repair the distance field, choose what comes next
	nav.markVisited(c)
	nav.sense()
	nav.recalibrate(c)
	nav.plan(c)

	return false
}

// plan pushes the next cell(s) to explore from c.
func (nav *Navigator) plan(c maze.Pos) {
	d := nav.belief.At(c).Distance

	if d == 0 {
		for _, nb := range nav.belief.Passages(c) {
			if nav.belief.At(nb).Distance == 0 && !nav.visited[nav.belief.Index(nb)] {
				nav.push(c)
				nav.push(nb)
				return
			}
		}
		return
	}

	for _, nb := range nav.belief.Passages(c) {
		if nav.belief.At(nb).Distance != d-1 {
			continue
		}
		nav.push(nb)
		if d-1 == 0 {
			nav.push(nb)
		}
		return
	}
	nav.push(c)
}

// completeRun records the finished run and either converges or starts the
// next run back toward where this one began.
func (nav *Navigator) completeRun() {
	// 1) Record the path just driven
	path := nav.reconstruct()
	nav.lastPath = path

	logger := nav.logger.With(
		zap.Int("run", nav.runs+1),
		zap.Stringer("from", path.Start()),
		zap.Stringer("to", path.End()),
		zap.Int("length", path.Len()),
		zap.Int("visited", nav.visitedCount),
	)

	// 2) Two matching runs in a row: converged
	if nav.prevPath != nil && nav.prevPath.Len() == path.Len() && nav.prevPath.SameEndpoints(path) {
		nav.done = true
		logger.Debug("navigator converged", zap.Int("steps", nav.steps))
		return
	}

	// 3) Head back to where this run began
	target := nav.runStart
	nav.targets = []maze.Pos{target}
	nav.reflood(target)

	nav.push(nav.pos)
	nav.runs++
	nav.prevPath = path
	nav.runStart = nav.pos
	logger.Debug("run complete", zap.Stringer("next_target", target))
}

// reconstruct rebuilds the run path from runStart to the current cell by
// walking back along visited cells whose BFS distance from runStart is one
// less at each step.
func (nav *Navigator) reconstruct() maze.Path {
	dist, err := bfs.Distances(nav.belief, []maze.Pos{nav.runStart},
		bfs.WithFilter(func(p maze.Pos) bool { return nav.visited[nav.belief.Index(p)] }))
	if err != nil || dist[nav.belief.Index(nav.pos)] == bfs.Unreachable {
		return maze.Path{nav.pos}
	}

	path := maze.Path{nav.pos}
	for cur := nav.pos; cur != nav.runStart; {
		want := dist[nav.belief.Index(cur)] - 1
		next := cur
		for _, nb := range nav.belief.Passages(cur) {
			idx := nav.belief.Index(nb)
			if (nav.visited[idx] || nb == nav.runStart) && dist[idx] == want {
				next = nb
				break
			}
		}
		if next == cur {
			break
		}
		path = append(path, next)
		cur = next
	}

	return path.Reverse()
}

// reflood replaces the distance field with exact BFS distances to target
// over the belief grid; unreachable cells get n².
func (nav *Navigator) reflood(target maze.Pos) {
	limit := nav.belief.Size()
	dist, err := bfs.Distances(nav.belief, []maze.Pos{target})
	cells := nav.belief.Cells()
	for i := range cells {
		switch {
		case err != nil || dist[i] == bfs.Unreachable:
			cells[i].Distance = limit
		default:
			cells[i].Distance = dist[i]
		}
	}
}

// sense removes belief passages on the front, left and right of the mouse
// that the reference grid reports closed. Without a matching reference grid
// sensing is a no-op.
func (nav *Navigator) sense() {
	if nav.ref == nil || nav.ref.Dim() != nav.belief.Dim() {
		return
	}
	o := nav.orientation
	for _, side := range [3]maze.Direction{o, o.Left(), o.Right()} {
		if nav.belief.IsOpen(nav.pos, side) && !nav.ref.IsOpen(nav.pos, side) {
			_ = nav.belief.SetPassage(nav.pos, side, false)
		}
	}
}

// recalibrate restores the invariant that every non-target cell has a
// belief neighbour exactly one closer to the target.
func (nav *Navigator) recalibrate(from maze.Pos) {
	limit := nav.belief.Size()
	work := []maze.Pos{from}
	for budget := 4 * limit * (limit + 1); len(work) > 0 && budget > 0; budget-- {
		p := work[len(work)-1]
		work = work[:len(work)-1]

		cell := nav.belief.At(p)
		if cell == nil || cell.Distance == 0 {
			continue
		}

		best := limit
		stale := true
		for _, nb := range nav.belief.Passages(p) {
			nd := nav.belief.At(nb).Distance
			if nd == cell.Distance-1 {
				stale = false
				break
			}
			if nd < best {
				best = nd
			}
		}
		if !stale {
			continue
		}

		updated := min(best+1, limit)
		if updated == cell.Distance {
			continue
		}
		cell.Distance = updated
		for _, d := range maze.Directions {
			if q, ok := nav.belief.Neighbor(p, d); ok {
				work = append(work, q)
			}
		}
	}
}

// Observe applies one telemetry event. A size change replaces the belief
// grid and restarts the navigator from the declared position. The mouse is
// then turned and moved as declared and the single reported wall, if any,
// is closed in the belief grid. Events whose position lies outside the maze
// are ignored.
func (nav *Navigator) Observe(ev telemetry.Event) {
	if ev.Width < 1 || ev.Width != ev.Height || !ev.Orientation.Valid() {
		return
	}
	p := ev.Pos()
	if p.Row < 0 || p.Row >= ev.Height || p.Col < 0 || p.Col >= ev.Width {
		return
	}

	if ev.Width != nav.belief.Dim() {
		belief, err := maze.New(ev.Width)
		if err != nil {
			return
		}
		nav.belief = belief
		nav.visited = make([]bool, belief.Size())
		nav.start = p
		nav.heading = ev.Orientation
		nav.Restart()
		nav.logger.Debug("belief resized", zap.Int("dimension", ev.Width))
	}

	nav.orientation = ev.Orientation
	nav.pos = p
	nav.markVisited(p)
	if side, ok := ev.Wall.Direction(ev.Orientation); ok {
		_ = nav.belief.SetPassage(p, side, false)
	}
	nav.recalibrate(p)
	nav.stack = append(nav.stack[:0], p)
}

func (nav *Navigator) markVisited(p maze.Pos) {
	idx := nav.belief.Index(p)
	if !nav.visited[idx] {
		nav.visited[idx] = true
		nav.visitedCount++
	}
}

func (nav *Navigator) push(p maze.Pos) {
	nav.stack = append(nav.stack, p)
}

func (nav *Navigator) pop() maze.Pos {
	p := nav.stack[len(nav.stack)-1]
	nav.stack = nav.stack[:len(nav.stack)-1]
	return p
}
