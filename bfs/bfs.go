package bfs

import (
	"context"

	"github.com/katalvlaran/micromouse/maze"
)

// walker encapsulates mutable BFS state.
type walker struct {
	g     *maze.Grid
	opts  Options
	ctx   context.Context
	queue []maze.Pos
	res   *Result
}

// Search runs a multi-source breadth-first search over g's open passages.
// All sources start at distance 0. Duplicate sources are ignored.
// Returns ErrGridNil, ErrSourceNotFound, ErrOptionViolation or ctx.Err().
func Search(g *maze.Grid, sources []maze.Pos, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for _, s := range sources {
		if !g.InBounds(s) {
			return nil, ErrSourceNotFound
		}
	}

	size := g.Size()
	w := &walker{
		g:     g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]maze.Pos, 0, size),
		res: &Result{
			Order:  make([]maze.Pos, 0, size),
			Dist:   make([]int, size),
			Parent: make([]maze.Pos, size),
			n:      g.Dim(),
		},
	}
	for i := range w.res.Dist {
		w.res.Dist[i] = Unreachable
		w.res.Parent[i] = maze.NoPos
	}
	for _, s := range sources {
		if w.res.Dist[g.Index(s)] == Unreachable {
			w.enqueue(s, 0, maze.NoPos)
		}
	}

	return w.res, w.loop()
}

// Distances is Search reduced to the distance field.
func Distances(g *maze.Grid, sources []maze.Pos, opts ...Option) ([]int, error) {
	res, err := Search(g, sources, opts...)
	if err != nil {
		return nil, err
	}
	return res.Dist, nil
}

// enqueue records p at depth d with its parent and appends it to the queue.
func (w *walker) enqueue(p maze.Pos, d int, parent maze.Pos) {
	idx := w.g.Index(p)
	w.res.Dist[idx] = d
	w.res.Parent[idx] = parent
	w.queue = append(w.queue, p)
}

// loop processes the queue until empty or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		cur := w.queue[head]
		w.res.Order = append(w.res.Order, cur)
		next := w.res.Dist[w.g.Index(cur)] + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.g.Passages(cur) {
			if w.res.Dist[w.g.Index(nbr)] != Unreachable || !w.opts.Filter(nbr) {
				continue
			}
			w.enqueue(nbr, next, cur)
		}
	}
	return nil
}
