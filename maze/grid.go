package maze

// Grid is a fixed n×n maze. Cells are stored row-major; passages are kept in
// two planes: right[i] joins cell i with its east neighbour, down[i] joins it
// with its south neighbour. Edges on the outer boundary are never stored.
type Grid struct {
	n     int
	cells []Cell
	right []bool
	down  []bool
}

// New constructs an n×n Grid with every passage closed.
// Returns ErrEmptyGrid if n < 1.
// Complexity: O(n²) time and memory.
func New(n int) (*Grid, error) {
	if n < 1 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		n:     n,
		cells: make([]Cell, n*n),
		right: make([]bool, n*n),
		down:  make([]bool, n*n),
	}
	for i := range g.cells {
		g.cells[i].Pos = g.PosOf(i)
	}
	g.ResetScratch()

	return g, nil
}

// Dim returns the side length n.
func (g *Grid) Dim() int { return g.n }

// Size returns the number of cells, n².
func (g *Grid) Size() int { return g.n * g.n }

// InBounds reports whether p lies within the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.n && p.Col >= 0 && p.Col < g.n
}

// Index maps p to its row-major index: Row*n + Col.
// The caller guarantees p is in bounds.
func (g *Grid) Index(p Pos) int {
	return p.Row*g.n + p.Col
}

// PosOf converts a row-major index back to a position.
func (g *Grid) PosOf(idx int) Pos {
	return Pos{Row: idx / g.n, Col: idx % g.n}
}

// At returns the cell at p, or nil if p is out of bounds.
func (g *Grid) At(p Pos) *Cell {
	if !g.InBounds(p) {
		return nil
	}
	return &g.cells[g.Index(p)]
}

// Cells returns the backing slice of cells in row-major order.
func (g *Grid) Cells() []Cell { return g.cells }

// Neighbor returns the geometric neighbour of p in direction d, regardless of
// walls. ok is false when that neighbour would be outside the grid.
func (g *Grid) Neighbor(p Pos, d Direction) (Pos, bool) {
	q := p.Step(d)
	return q, g.InBounds(q)
}

// edge resolves the passage slot between p and its neighbour in direction d.
// ok is false for boundary edges and out-of-bounds positions.
func (g *Grid) edge(p Pos, d Direction) (plane []bool, idx int, ok bool) {
	q, in := g.Neighbor(p, d)
	if !g.InBounds(p) || !in {
		return nil, 0, false
	}
	switch d.normalize() {
	case East:
		return g.right, g.Index(p), true
	case West:
		return g.right, g.Index(q), true
	case South:
		return g.down, g.Index(p), true
	default: // North
		return g.down, g.Index(q), true
	}
}

// IsOpen reports whether a passage leads from p in direction d.
// Boundary sides are always closed.
func (g *Grid) IsOpen(p Pos, d Direction) bool {
	plane, idx, ok := g.edge(p, d)
	return ok && plane[idx]
}

// SetPassage opens or closes the edge from p in direction d.
// Returns ErrOutOfBounds if p or its neighbour lies outside the grid.
func (g *Grid) SetPassage(p Pos, d Direction, open bool) error {
	plane, idx, ok := g.edge(p, d)
	if !ok {
		return ErrOutOfBounds
	}
	plane[idx] = open

	return nil
}

// HasPassage reports whether a and b are adjacent and joined by an open passage.
func (g *Grid) HasPassage(a, b Pos) bool {
	d, ok := a.DirectionTo(b)
	return ok && g.IsOpen(a, d)
}

// Open removes the wall between adjacent positions a and b.
func (g *Grid) Open(a, b Pos) error {
	return g.setBetween(a, b, true)
}

// Close builds a wall between adjacent positions a and b.
func (g *Grid) Close(a, b Pos) error {
	return g.setBetween(a, b, false)
}

func (g *Grid) setBetween(a, b Pos, open bool) error {
	if !g.InBounds(a) || !g.InBounds(b) {
		return ErrOutOfBounds
	}
	d, ok := a.DirectionTo(b)
	if !ok {
		return ErrNotAdjacent
	}

	return g.SetPassage(a, d, open)
}

// Passages returns the open neighbours of p in the fixed order
// up, down, left, right.
func (g *Grid) Passages(p Pos) []Pos {
	out := make([]Pos, 0, 4)
	for _, d := range [4]Direction{North, South, West, East} {
		if g.IsOpen(p, d) {
			out = append(out, p.Step(d))
		}
	}
	return out
}

// ClearWalls opens every interior passage.
func (g *Grid) ClearWalls() {
	for i := range g.cells {
		p := g.PosOf(i)
		g.right[i] = p.Col < g.n-1
		g.down[i] = p.Row < g.n-1
	}
}

// CloseAll closes every passage.
func (g *Grid) CloseAll() {
	for i := range g.cells {
		g.right[i] = false
		g.down[i] = false
	}
}

// ResetScratch clears Visited, Distance and Prev on every cell.
func (g *Grid) ResetScratch() {
	for i := range g.cells {
		g.cells[i].Visited = false
		g.cells[i].Distance = 0
		g.cells[i].Prev = NoPos
	}
}

// PassageCount returns the number of open passages.
func (g *Grid) PassageCount() int {
	count := 0
	for i := range g.cells {
		if g.right[i] {
			count++
		}
		if g.down[i] {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the grid, scratch fields included.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		n:     g.n,
		cells: make([]Cell, len(g.cells)),
		right: make([]bool, len(g.right)),
		down:  make([]bool, len(g.down)),
	}
	copy(c.cells, g.cells)
	copy(c.right, g.right)
	copy(c.down, g.down)

	return c
}

// SameLayout reports whether g and other have the same dimension and the
// same open/closed passages. Scratch fields are ignored.
func (g *Grid) SameLayout(other *Grid) bool {
	if other == nil || g.n != other.n {
		return false
	}
	for i := range g.right {
		if g.right[i] != other.right[i] || g.down[i] != other.down[i] {
			return false
		}
	}
	return true
}

// FullyOpenCount returns the passage count of an n×n grid with no walls,
// 2·n·(n−1).
func FullyOpenCount(n int) int {
	return 2 * n * (n - 1)
}
