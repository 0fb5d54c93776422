package dijkstra

import "errors"

var (
	// ErrNilGrid is returned when a nil grid is passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrOutOfBounds is returned when start or end lies outside the grid.
	ErrOutOfBounds = errors.New("dijkstra: endpoint out of bounds")

	// ErrNoPath is returned when end cannot be reached from start.
	ErrNoPath = errors.New("dijkstra: no path between endpoints")
)

// Infinity is the Distance left on cells the search never reached.
const Infinity = int(^uint(0) >> 1)
