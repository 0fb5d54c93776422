package maze

// Path is an ordered, non-cyclic sequence of positions. It is a value copy
// and never aliases grid storage.
type Path []Pos

// Len returns the number of edges in the path (cells − 1), or 0 when empty.
func (p Path) Len() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Start returns the first position, or NoPos when the path is empty.
func (p Path) Start() Pos {
	if len(p) == 0 {
		return NoPos
	}
	return p[0]
}

// End returns the last position, or NoPos when the path is empty.
func (p Path) End() Pos {
	if len(p) == 0 {
		return NoPos
	}
	return p[len(p)-1]
}

// Equal reports whether p and q visit the same positions in the same order.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// SameEndpoints reports whether p and q join the same two positions,
// in either direction.
func (p Path) SameEndpoints(q Path) bool {
	if len(p) == 0 || len(q) == 0 {
		return false
	}
	return (p.Start() == q.Start() && p.End() == q.End()) ||
		(p.Start() == q.End() && p.End() == q.Start())
}

// Reverse returns a reversed copy of p.
func (p Path) Reverse() Path {
	out := make(Path, len(p))
	for i, pos := range p {
		out[len(p)-1-i] = pos
	}
	return out
}

// Clone returns a copy of p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Connected reports whether every consecutive pair of p is joined by an open
// passage in g.
func (p Path) Connected(g *Grid) bool {
	for i := 1; i < len(p); i++ {
		if !g.HasPassage(p[i-1], p[i]) {
			return false
		}
	}
	return true
}
