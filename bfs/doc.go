// Package bfs provides breadth-first search over the open passages of a
// maze.Grid, returning exact edge-count distances, parent links and visit
// order.
//
// What
//
//   - Explore cells in non-decreasing distance from one or more source cells.
//   - Search returns a Result containing:
//   - Dist:   per-cell distance (row-major, Unreachable when not reached)
//   - Parent: per-cell predecessor in the BFS forest (maze.NoPos for sources)
//   - Order:  visit sequence
//   - Distances is the common shortcut returning only the distance field.
//   - WithFilter restricts the search to cells the caller admits, e.g. the
//     cells a mouse has physically visited.
//   - WithMaxDepth bounds the search radius.
//
// Why
//
//   - Exact flood-fill distances for a navigator once walls are known.
//   - A connectivity oracle for generators: a full search from any cell of a
//     perfect maze must reach all n² cells.
//
// Determinism
//
//	Neighbours are expanded in maze.Grid.Passages order (up, down, left,
//	right), so Order and Parent are fully reproducible.
//
// Complexity (n = grid side)
//
//   - Time:   O(n²)  (each cell dequeued once, at most four passages each)
//   - Memory: O(n²)  (queue, distance and parent slices)
//
// Usage
//
//	dist, err := bfs.Distances(g, []maze.Pos{target})
//
//	res, err := bfs.Search(
//	    g, []maze.Pos{start},
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(10),
//	    bfs.WithFilter(func(p maze.Pos) bool { return visited[p] }),
//	)
//	path, err := res.PathTo(goal)
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrSourceNotFound   if a source lies outside the grid.
//   - ErrOptionViolation  if an invalid Option was supplied (negative depth).
//   - ErrUnreachable      from PathTo when the destination was not reached.
//   - ctx.Err()           when the context is cancelled mid-search.
package bfs
