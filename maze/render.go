package maze

import "strings"

// String provides a textual representation of the maze: "+---+" segments
// for horizontal walls and "|" for vertical walls. Goal cells are marked "G".
func (g *Grid) String() string {
	return g.Render(nil)
}

// Render draws the maze like String and additionally marks every cell of
// path with "*". The path start and end keep the "*" marker as well.
func (g *Grid) Render(path Path) string {
	onPath := make(map[Pos]struct{}, len(path))
	for _, p := range path {
		onPath[p] = struct{}{}
	}

	var b strings.Builder

	// Top boundary
	b.WriteString("+" + strings.Repeat("---+", g.n) + "\n")

	for row := 0; row < g.n; row++ {
		// Cell row
		b.WriteString("|")
		for col := 0; col < g.n; col++ {
			p := Pos{Row: row, Col: col}
			switch _, marked := onPath[p]; {
			case marked:
				b.WriteString(" * ")
			case g.IsGoal(p):
				b.WriteString(" G ")
			default:
				b.WriteString("   ")
			}
			if g.IsOpen(p, East) {
				b.WriteString(" ")
			} else {
				b.WriteString("|")
			}
		}
		b.WriteString("\n")

		// Wall row
		b.WriteString("+")
		for col := 0; col < g.n; col++ {
			if g.IsOpen(Pos{Row: row, Col: col}, South) {
				b.WriteString("   +")
			} else {
				b.WriteString("---+")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
