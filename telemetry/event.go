package telemetry

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/micromouse/maze"
)

// Wall is the relative side reported as blocked by a message.
type Wall int

const (
	WallNone  Wall = iota // no wall reported
	WallUp                // in front of the mouse
	WallRight             // to the mouse's right
	WallDown              // behind the mouse
	WallLeft              // to the mouse's left
)

var wallNames = [...]string{"none", "up", "right", "down", "left"}

// String returns the wire token of w.
func (w Wall) String() string {
	if w < WallNone || w > WallLeft {
		return fmt.Sprintf("Wall(%d)", int(w))
	}
	return wallNames[w]
}

// Direction resolves w to a compass direction for a mouse facing o.
// ok is false for WallNone.
func (w Wall) Direction(o maze.Direction) (maze.Direction, bool) {
	switch w {
	case WallUp:
		return o, true
	case WallRight:
		return o.Right(), true
	case WallDown:
		return o.Back(), true
	case WallLeft:
		return o.Left(), true
	default:
		return o, false
	}
}

func parseWall(s string) (Wall, bool) {
	s = strings.ToLower(s)
	for i, name := range wallNames {
		if s == name {
			return Wall(i), true
		}
	}
	return WallNone, false
}

// Event is one validated sensor message.
type Event struct {
	Width       int
	Height      int
	Row         int
	Col         int
	Orientation maze.Direction
	Wall        Wall
}

// Pos returns the declared mouse position.
func (e Event) Pos() maze.Pos {
	return maze.Pos{Row: e.Row, Col: e.Col}
}

// String formats e in wire form; Parse(e.String()) returns e.
func (e Event) String() string {
	return fmt.Sprintf("%dx%d %d %d %s %s", e.Width, e.Height, e.Row, e.Col, e.Orientation, e.Wall)
}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// Parse decodes one message. ok is false for any malformed input: wrong
// field count, non-numeric or non-positive sizes, non-square mazes,
// positions outside the maze, unknown orientation or wall token.
func Parse(line string) (Event, bool) {
	fields := strings.FieldsFunc(line, isSeparator)
	if len(fields) != 5 {
		return Event{}, false
	}

	dims := strings.Split(strings.ToLower(fields[0]), "x")
	if len(dims) != 2 {
		return Event{}, false
	}
	w, errW := strconv.Atoi(dims[0])
	h, errH := strconv.Atoi(dims[1])
	if errW != nil || errH != nil || w < 1 || w != h {
		return Event{}, false
	}

	row, errR := strconv.Atoi(fields[1])
	col, errC := strconv.Atoi(fields[2])
	if errR != nil || errC != nil || row < 0 || row >= h || col < 0 || col >= w {
		return Event{}, false
	}

	o, ok := maze.ParseDirection(fields[3])
	if !ok {
		return Event{}, false
	}
	wall, ok := parseWall(fields[4])
	if !ok {
		return Event{}, false
	}

	return Event{Width: w, Height: h, Row: row, Col: col, Orientation: o, Wall: wall}, true
}
