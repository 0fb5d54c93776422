// Package navigator implements a flood-fill micromouse: a simulated mouse
// that explores an unknown maze, discovers walls with three side sensors
// and keeps running between its start and the goal until two consecutive
// runs agree.
//
// Model
//
//   - The reference grid is the real maze. It is only read, through the
//     sensors: front, left and right of the current orientation.
//   - The belief grid is what the mouse thinks the maze looks like. It starts
//     with every passage open and only ever loses passages, so every open
//     belief passage is also open in the reference grid.
//   - Every belief cell carries a distance estimate to the current target.
//     The first run targets the goal region, seeded with the Manhattan
//     distance to the closest goal cell. Later runs shuttle back to where the
//     previous run started, with exact BFS distances over the belief grid.
//   - An explicit stack drives traversal; one Step performs one transition.
//
// Step
//
//   - Stack empty: a run has ended. The run path is rebuilt from the cells
//     the mouse visited. If it has the same length and endpoints as the
//     previous run the navigator is done; otherwise a new run starts.
//   - Otherwise the top cell is popped, the mouse turns to it, senses, and
//     moves unless a wall was just found in the way. Then it recalibrates
//     stale distances and pushes the next cell: the first neighbour one step
//     closer to the target.
//
// Recalibration
//
//	A non-target cell with no belief neighbour at distance d−1 takes
//	1 + the minimum of its belief neighbours and its four geometric
//	neighbours are re-checked. A worklist replaces recursion, and distances
//	are capped at n² (unreachable).
//
// Telemetry
//
//	Observe applies a sensor message from a physical mouse instead of the
//	reference grid: it may resize the belief grid, teleports the mouse and
//	closes at most one relative wall. A navigator created without a
//	reference grid is driven by Observe alone.
//
// Concurrency
//
//	A Navigator and its grids are owned by one goroutine. The reference grid
//	must not change while the navigator uses it.
package navigator
