package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/micromouse/maze"
)

// Unreachable marks cells the search never reached.
const Unreachable = -1

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrSourceNotFound is returned when a source lies outside the grid.
	ErrSourceNotFound = errors.New("bfs: source cell out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable is returned by PathTo for cells the search did not reach.
	ErrUnreachable = errors.New("bfs: destination not reached")
)

// Option configures BFS behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds parameters customizing a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// Filter admits cells into the search. Sources are always admitted.
	Filter func(p maze.Pos) bool

	err error
}

// DefaultOptions returns background context, no depth limit and no filter.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: 0,
		Filter:   func(maze.Pos) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilter skips cells for which fn returns false.
func WithFilter(fn func(p maze.Pos) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Filter = fn
		}
	}
}

// Result holds the outcome of a search. Dist and Parent are indexed like
// the grid (row-major).
type Result struct {
	Order  []maze.Pos
	Dist   []int
	Parent []maze.Pos

	n int
}

// DistTo returns the distance of p, or Unreachable.
func (r *Result) DistTo(p maze.Pos) int {
	if p.Row < 0 || p.Row >= r.n || p.Col < 0 || p.Col >= r.n {
		return Unreachable
	}
	return r.Dist[p.Row*r.n+p.Col]
}

// PathTo reconstructs the path from the nearest source to dest.
// Returns ErrUnreachable if dest was not reached.
func (r *Result) PathTo(dest maze.Pos) (maze.Path, error) {
	if r.DistTo(dest) == Unreachable {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, dest)
	}
	var path maze.Path
	for cur := dest; cur != maze.NoPos; cur = r.Parent[cur.Row*r.n+cur.Col] {
		path = append(path, cur)
	}

	return path.Reverse(), nil
}
