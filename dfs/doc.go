// Package dfs implements depth-first path search and loop detection on a
// maze.Grid.
//
// What:
//
//   - FindPath: recursive depth-first descent from start, expanding passages
//     in maze.Grid.Passages order (up, down, left, right). The search stops
//     once end is reached, the active frames unwind, and each frame on the
//     successful branch prepends its cell to the path. The result is the
//     first-discovered path, not necessarily the shortest.
//   - CountLoops: classic White/Gray/Black coloring over the whole grid.
//     Every passage leading back to a Gray ancestor closes one independent
//     loop, so a perfect maze reports 0 and a maze with k extra passages
//     reports k.
//
// Complexity (N = n² cells):
//
//   - Time:   O(N) for both operations.
//   - Memory: O(N) recursion depth in the worst case (a single corridor).
//
// Errors:
//
//   - ErrGridNil:     nil grid.
//   - ErrOutOfBounds: start or end outside the grid.
//   - ErrNoPath:      end is not reachable from start.
package dfs
