package navigator

import "github.com/katalvlaran/micromouse/maze"

// Done reports whether two consecutive runs agreed.
func (nav *Navigator) Done() bool { return nav.done }

// Runs returns the number of completed runs that did not converge.
func (nav *Navigator) Runs() int { return nav.runs }

// Steps returns the number of Step calls that performed a transition.
func (nav *Navigator) Steps() int { return nav.steps }

// VisitedCount returns the number of distinct cells the mouse has visited.
func (nav *Navigator) VisitedCount() int { return nav.visitedCount }

// Visited reports whether the mouse has been in p.
func (nav *Navigator) Visited(p maze.Pos) bool {
	return nav.belief.InBounds(p) && nav.visited[nav.belief.Index(p)]
}

// Path returns a copy of the most recently recorded run path, nil before the
// first run ends.
func (nav *Navigator) Path() maze.Path { return nav.lastPath.Clone() }

// Position returns the current cell.
func (nav *Navigator) Position() maze.Pos { return nav.pos }

// Orientation returns the current heading.
func (nav *Navigator) Orientation() maze.Direction { return nav.orientation }

// Distance returns the distance estimate of p, or -1 outside the maze.
func (nav *Navigator) Distance(p maze.Pos) int {
	c := nav.belief.At(p)
	if c == nil {
		return -1
	}
	return c.Distance
}

// Targets returns the cells the current run is heading for.
func (nav *Navigator) Targets() []maze.Pos {
	out := make([]maze.Pos, len(nav.targets))
	copy(out, nav.targets)
	return out
}

// Belief returns the belief grid. Callers must treat it as read-only.
func (nav *Navigator) Belief() *maze.Grid { return nav.belief }

// Start returns the cell the navigator restarts from.
func (nav *Navigator) Start() maze.Pos { return nav.start }
