package pathfind

import (
	"fmt"

	"github.com/katalvlaran/micromouse/dfs"
	"github.com/katalvlaran/micromouse/dijkstra"
	"github.com/katalvlaran/micromouse/maze"
)

// Finder caches search results for a single grid. It is not safe for
// concurrent use; like the grid it belongs to one goroutine at a time.
type Finder struct {
	g        *maze.Grid
	shortest maze.Path
	depth    maze.Path
}

// NewFinder returns a Finder with an empty cache.
func NewFinder(g *maze.Grid) *Finder {
	return &Finder{g: g}
}

// Grid returns the grid the finder searches.
func (f *Finder) Grid() *maze.Grid { return f.g }

// Dijkstra returns a shortest path from start to end, or the cached
// Dijkstra path when one exists.
func (f *Finder) Dijkstra(start, end maze.Pos) (maze.Path, error) {
	if len(f.shortest) > 0 {
		return f.shortest.Clone(), nil
	}
	p, err := dijkstra.ShortestPath(f.g, start, end)
	if err != nil {
		return nil, fmt.Errorf("pathfind: dijkstra %v→%v: %w", start, end, err)
	}
	f.shortest = p

	return p.Clone(), nil
}

// DFS returns the first depth-first path from start to end, or the cached
// DFS path when one exists.
func (f *Finder) DFS(start, end maze.Pos) (maze.Path, error) {
	if len(f.depth) > 0 {
		return f.depth.Clone(), nil
	}
	p, err := dfs.FindPath(f.g, start, end)
	if err != nil {
		return nil, fmt.Errorf("pathfind: dfs %v→%v: %w", start, end, err)
	}
	f.depth = p

	return p.Clone(), nil
}

// Invalidate empties both caches.
func (f *Finder) Invalidate() {
	f.shortest = nil
	f.depth = nil
}

// Cached reports whether each cache currently holds a path.
func (f *Finder) Cached() (shortest, depthFirst bool) {
	return len(f.shortest) > 0, len(f.depth) > 0
}
