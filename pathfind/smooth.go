package pathfind

import (
	"fmt"

	"github.com/katalvlaran/micromouse/maze"
)

// Waypoint is a display coordinate; halves mark midpoints between cells.
type Waypoint struct {
	Row float64
	Col float64
}

func (w Waypoint) String() string {
	return fmt.Sprintf("(%g, %g)", w.Row, w.Col)
}

// Smooth returns p with a midpoint waypoint inserted between every
// consecutive pair: 2·len(p)−1 waypoints for a non-empty path.
func Smooth(p maze.Path) []Waypoint {
	if len(p) == 0 {
		return nil
	}
	out := make([]Waypoint, 0, 2*len(p)-1)
	for i, pos := range p {
		if i > 0 {
			prev := p[i-1]
			out = append(out, Waypoint{
				Row: float64(prev.Row+pos.Row) / 2,
				Col: float64(prev.Col+pos.Col) / 2,
			})
		}
		out = append(out, Waypoint{Row: float64(pos.Row), Col: float64(pos.Col)})
	}
	return out
}
