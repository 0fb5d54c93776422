package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/micromouse/bfs"
	"github.com/katalvlaran/micromouse/maze"
)

// corridor builds an n×n grid whose only passages form a serpentine path
// from (0,0) through every row.
func corridor(t *testing.T, n int) *maze.Grid {
	t.Helper()
	g, err := maze.New(n)
	require.NoError(t, err)
	for r := 0; r < n; r++ {
		for c := 0; c+1 < n; c++ {
			require.NoError(t, g.Open(maze.Pos{Row: r, Col: c}, maze.Pos{Row: r, Col: c + 1}))
		}
		if r+1 < n {
			col := n - 1
			if r%2 == 1 {
				col = 0
			}
			require.NoError(t, g.Open(maze.Pos{Row: r, Col: col}, maze.Pos{Row: r + 1, Col: col}))
		}
	}
	return g
}

//----------------------------------------------------------------------------//
// Errors
//----------------------------------------------------------------------------//

func TestSearch_Errors(t *testing.T) {
	_, err := bfs.Search(nil, nil)
	assert.ErrorIs(t, err, bfs.ErrGridNil)

	g, _ := maze.New(3)
	_, err = bfs.Search(g, []maze.Pos{{Row: 3, Col: 0}})
	assert.ErrorIs(t, err, bfs.ErrSourceNotFound)

	_, err = bfs.Search(g, []maze.Pos{{Row: 0, Col: 0}}, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.Search(g, []maze.Pos{{Row: 0, Col: 0}}, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

//----------------------------------------------------------------------------//
// Distances
//----------------------------------------------------------------------------//

func TestDistances_OpenGrid(t *testing.T) {
	g, _ := maze.New(5)
	g.ClearWalls()
	src := maze.Pos{Row: 2, Col: 2}
	dist, err := bfs.Distances(g, []maze.Pos{src})
	require.NoError(t, err)
	for i, d := range dist {
		assert.Equal(t, src.Manhattan(g.PosOf(i)), d)
	}
}

func TestDistances_ClosedGrid(t *testing.T) {
	g, _ := maze.New(3)
	dist, err := bfs.Distances(g, []maze.Pos{{Row: 0, Col: 0}})
	require.NoError(t, err)
	assert.Zero(t, dist[0])
	for _, d := range dist[1:] {
		assert.Equal(t, bfs.Unreachable, d)
	}
}

func TestDistances_MultiSource(t *testing.T) {
	g, _ := maze.New(6)
	g.ClearWalls()
	goal := g.GoalCells()
	dist, err := bfs.Distances(g, goal)
	require.NoError(t, err)
	for i, d := range dist {
		assert.Equal(t, g.GoalDistance(g.PosOf(i)), d)
	}
}

func TestSearch_Corridor(t *testing.T) {
	const n = 4
	g := corridor(t, n)
	res, err := bfs.Search(g, []maze.Pos{{Row: 0, Col: 0}})
	require.NoError(t, err)
	assert.Len(t, res.Order, n*n)

	end := maze.Pos{Row: n - 1, Col: 0}
	assert.Equal(t, n*n-1, res.DistTo(end))
	path, err := res.PathTo(end)
	require.NoError(t, err)
	assert.Equal(t, n*n, len(path))
	assert.True(t, path.Connected(g))
	assert.Equal(t, maze.Pos{Row: 0, Col: 0}, path.Start())
	assert.Equal(t, bfs.Unreachable, res.DistTo(maze.Pos{Row: -1, Col: 0}))
}

//----------------------------------------------------------------------------//
// Options
//----------------------------------------------------------------------------//

func TestSearch_Filter(t *testing.T) {
	g, _ := maze.New(3)
	g.ClearWalls()
	allowed := map[maze.Pos]bool{
		{Row: 0, Col: 0}: true, {Row: 0, Col: 1}: true, {Row: 0, Col: 2}: true, {Row: 1, Col: 2}: true,
	}
	res, err := bfs.Search(g, []maze.Pos{{Row: 0, Col: 0}}, bfs.WithFilter(func(p maze.Pos) bool { return allowed[p] }))
	require.NoError(t, err)
	assert.Len(t, res.Order, 4)
	assert.Equal(t, 3, res.DistTo(maze.Pos{Row: 1, Col: 2}))
	assert.Equal(t, bfs.Unreachable, res.DistTo(maze.Pos{Row: 1, Col: 1}))

	_, err = res.PathTo(maze.Pos{Row: 2, Col: 2})
	assert.ErrorIs(t, err, bfs.ErrUnreachable)
}

func TestSearch_MaxDepth(t *testing.T) {
	g := corridor(t, 4)
	res, err := bfs.Search(g, []maze.Pos{{Row: 0, Col: 0}}, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Len(t, res.Order, 3)
	assert.Equal(t, bfs.Unreachable, res.DistTo(maze.Pos{Row: 0, Col: 3}))
}
