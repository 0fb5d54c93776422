// Package maze models the square micromouse maze as a dense grid graph.
//
// What:
//
//   - Grid is a fixed n×n array of Cells stored row-major.
//   - Passages are two boolean planes (right, down) owned by the Grid, so
//     adjacency is symmetric by construction and an edge can only ever join
//     geometric neighbours.
//   - Cells carry per-algorithm scratch fields (Visited, Distance, Prev) that
//     searches reset before use.
//   - The goal region is the centre cell for odd n and the central 2×2 block
//     for even n.
//
// Lifecycle:
//
//   - New builds a Grid with every passage closed; generators and decoders
//     open passages from there.
//   - ClearWalls opens every passage, which is the starting belief of a mouse
//     that has seen nothing yet; walls are then closed as they are discovered.
//   - ResetScratch clears search fields only; geometry is never touched by it.
//
// Complexity:
//
//   - New, ClearWalls, CloseAll, ResetScratch, PassageCount: O(n²).
//   - Neighbor, IsOpen, Open, Close, Passages: O(1).
//
// Errors:
//
//   - ErrEmptyGrid:   dimension < 1.
//   - ErrOutOfBounds: a position lies outside the grid.
//   - ErrNotAdjacent: two positions are not geometric neighbours.
//
// Thread safety: a Grid is not safe for concurrent mutation; confine it to a
// single goroutine at a time.
package maze
