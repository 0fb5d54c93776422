package dfs

import "errors"

var (
	// ErrGridNil is returned when a nil grid is passed.
	ErrGridNil = errors.New("dfs: grid is nil")

	// ErrOutOfBounds is returned when start or end lies outside the grid.
	ErrOutOfBounds = errors.New("dfs: endpoint out of bounds")

	// ErrNoPath is returned when end cannot be reached from start.
	ErrNoPath = errors.New("dfs: no path between endpoints")
)

// Vertex coloring used by CountLoops.
const (
	White = iota // not yet discovered
	Gray         // on the current recursion stack
	Black        // fully explored
)
