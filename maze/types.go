// Package maze defines positions, directions, cells and sentinel errors
// shared by every maze algorithm in this module.
package maze

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a dimension smaller than one.
	ErrEmptyGrid = errors.New("maze: dimension must be at least 1")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("maze: position out of bounds")
	// ErrNotAdjacent indicates two positions that are not geometric neighbours.
	ErrNotAdjacent = errors.New("maze: positions are not adjacent")
)

// Pos is a cell coordinate. It is also the identity of a cell: two cells are
// the same cell iff their positions are equal.
type Pos struct {
	Row int // Row index, 0 at the top
	Col int // Column index, 0 at the left
}

// NoPos marks an absent predecessor.
var NoPos = Pos{Row: -1, Col: -1}

// String renders the position as "(row, col)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Step returns the position one cell away in direction d.
// The result may be out of bounds.
func (p Pos) Step(d Direction) Pos {
	dr, dc := d.Delta()
	return Pos{Row: p.Row + dr, Col: p.Col + dc}
}

// Manhattan returns |Δrow| + |Δcol| between p and q.
func (p Pos) Manhattan(q Pos) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

// DirectionTo returns the direction leading from p to the adjacent position q.
// ok is false when q is not a geometric neighbour of p.
func (p Pos) DirectionTo(q Pos) (Direction, bool) {
	for _, d := range Directions {
		if p.Step(d) == q {
			return d, true
		}
	}
	return North, false
}

// Direction is a compass direction. The order North, East, South, West is
// fixed: Left, Right and Back are offsets −1, +1, +2 modulo 4.
type Direction int

const (
	North Direction = iota // row − 1
	East                   // col + 1
	South                  // row + 1
	West                   // col − 1
)

// Directions lists the four compass directions in cyclic order.
var Directions = [4]Direction{North, East, South, West}

// neighborOffsets maps a Direction to its (row, col) delta.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

var directionNames = [4]string{"NORTH", "EAST", "SOUTH", "WEST"}

// Left returns the direction 90° counter-clockwise from d.
func (d Direction) Left() Direction { return (d + 3) % 4 }

// Right returns the direction 90° clockwise from d.
func (d Direction) Right() Direction { return (d + 1) % 4 }

// Back returns the opposite direction.
func (d Direction) Back() Direction { return (d + 2) % 4 }

// Delta returns the (row, col) offset of one step in direction d.
func (d Direction) Delta() (int, int) {
	o := neighborOffsets[d.normalize()]
	return o[0], o[1]
}

// Valid reports whether d is one of the four compass directions.
func (d Direction) Valid() bool { return d >= North && d <= West }

// String returns the upper-case compass name.
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

func (d Direction) normalize() Direction {
	return ((d % 4) + 4) % 4
}

// ParseDirection parses a compass name (case-insensitive).
func ParseDirection(s string) (Direction, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, name := range directionNames {
		if s == name {
			return Direction(i), true
		}
	}
	return North, false
}

// Cell is one grid position plus per-algorithm scratch fields.
// The meaning of Visited, Distance and Prev is reassigned by every algorithm
// that uses them; callers reset them (Grid.ResetScratch) before use.
type Cell struct {
	Pos

	Visited  bool // search visited flag
	Distance int  // search distance or flood-fill estimate
	Prev     Pos  // search predecessor, NoPos when absent
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
