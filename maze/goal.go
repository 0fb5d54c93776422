package maze

// GoalCells returns the goal region: the centre cell for odd n, or the
// central 2×2 block (row-major order) for even n.
func (g *Grid) GoalCells() []Pos {
	h := g.n / 2
	if g.n%2 == 1 {
		return []Pos{{Row: h, Col: h}}
	}
	return []Pos{
		{Row: h - 1, Col: h - 1}, {Row: h - 1, Col: h},
		{Row: h, Col: h - 1}, {Row: h, Col: h},
	}
}

// IsGoal reports whether p belongs to the goal region.
func (g *Grid) IsGoal(p Pos) bool {
	h := g.n / 2
	if g.n%2 == 1 {
		return p.Row == h && p.Col == h
	}
	return (p.Row == h-1 || p.Row == h) && (p.Col == h-1 || p.Col == h)
}

// ClosestGoal returns the goal cell geometrically closest to p. For even n
// the block cell lying in the same quadrant as p is chosen.
func (g *Grid) ClosestGoal(p Pos) Pos {
	h := g.n / 2
	if g.n%2 == 1 {
		return Pos{Row: h, Col: h}
	}
	c := Pos{Row: h, Col: h}
	if p.Row < h {
		c.Row = h - 1
	}
	if p.Col < h {
		c.Col = h - 1
	}
	return c
}

// GoalDistance returns the Manhattan distance from p to its closest goal cell.
// It never overestimates the true maze distance, so it is an admissible seed
// for flood-fill.
func (g *Grid) GoalDistance(p Pos) int {
	return p.Manhattan(g.ClosestGoal(p))
}
