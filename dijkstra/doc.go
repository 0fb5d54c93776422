// Package dijkstra computes shortest paths on a maze.Grid with Dijkstra's
// algorithm, every open passage costing 1.
//
// Overview:
//
//   - ShortestPath resets every cell's Distance, Prev and Visited scratch
//     fields, relaxes passages from the start cell using a min-heap, runs
//     until the heap is empty, then rebuilds the path by following Prev from
//     the end cell and reversing.
//   - The result is a shortest path by edge count. On a perfect maze it is
//     the unique path; on a maze with loops it is one of the shortest.
//   - The search state stays on the grid after the call: Distance holds the
//     exact distance of every reachable cell from start and Prev the
//     shortest-path tree.
//
// Performance and complexity (N = n² cells):
//
//   - Time:  O(N log N), each cell finalized once, at most 4N heap pushes
//     under the lazy decrease-key strategy.
//   - Space: O(N) heap entries.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:     nil grid.
//   - ErrOutOfBounds: start or end outside the grid.
//   - ErrNoPath:      end is not reachable from start.
package dijkstra
