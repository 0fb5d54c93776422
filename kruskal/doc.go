// Package kruskal carves a perfect maze out of a closed maze.Grid using
// randomized Kruskal's algorithm, then optionally knocks down extra walls to
// create loops (alternate solution paths).
//
// What & Why
//
//   - A perfect maze is a spanning tree over the n×n cells: every cell is
//     reachable and there is exactly one simple path between any two cells.
//   - Randomized Kruskal treats every interior wall as a candidate edge,
//     visits the candidates in uniformly random order, and removes a wall
//     only when it joins two cells that are not yet connected. The disjoint
//     set (union-find, union by rank, iterative two-pass full path
//     compression) answers "already connected?" in near-constant time.
//   - Competition mazes give the goal region a single entrance. Generate
//     picks one goal entrance at random, opens it, and permanently drops every
//     other entrance candidate. For even n the 2×2 goal block is pre-joined by
//     three internal passages before the main loop starts.
//   - Walls whose endpoints were already connected are remembered as
//     "non-tree" candidates; up to k of them are opened at the end.
//
// Algorithm
//
//  1. Reset the grid (every passage closed, scratch cleared).
//  2. Enumerate every adjacent pair as the working wall list.
//  3. Pre-join the goal block (even n), collect the entrance pairs, open one
//     at random and remove the rest from the wall list.
//  4. Pop random walls until the list is empty: union and open when the ends
//     are in different sets, otherwise record a non-tree candidate.
//  5. Open min(k, len(candidates)) random candidates.
//
// Properties
//
//   - k = 0: exactly n²−1 open passages, all cells connected.
//   - k > 0: n²−1 + min(k, candidates) open passages.
//   - Deterministic for a fixed seed (see WithSeed). Seed 0 maps to a fixed
//     default seed; callers wanting a fresh maze per run must supply their
//     own seed.
//
// Complexity
//
//   - Time:   O(n² · α(n²)), α the inverse Ackermann function.
//   - Memory: O(n²) for the wall list and the disjoint-set arena. The arena
//     lives only for the duration of one Generate call.
//
// Errors
//
//   - ErrDimensionTooSmall: n < 3; the grid is left untouched.
//   - ErrNegativeEdges:     k < 0; the grid is left untouched.
//   - maze.ErrEmptyGrid:    nil grid.
package kruskal
