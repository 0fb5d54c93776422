package kruskal_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/micromouse/bfs"
	"github.com/katalvlaran/micromouse/kruskal"
	"github.com/katalvlaran/micromouse/maze"
)

// generate builds an n×n maze with k loops from a fixed seed.
func generate(t *testing.T, n, k int, seed int64) (*maze.Grid, *kruskal.Result) {
	t.Helper()
	g, err := maze.New(n)
	require.NoError(t, err)
	res, err := kruskal.Generate(g, kruskal.WithNonTreeEdges(k), kruskal.WithSeed(seed))
	require.NoError(t, err)

	return g, res
}

// requireConnected asserts that every cell is reachable from (0,0).
func requireConnected(t *testing.T, g *maze.Grid) {
	t.Helper()
	dist, err := bfs.Distances(g, []maze.Pos{{Row: 0, Col: 0}})
	require.NoError(t, err)
	for i, d := range dist {
		require.NotEqual(t, bfs.Unreachable, d, "cell %v unreachable", g.PosOf(i))
	}
}

// goalEntrances counts open passages joining the goal region to the outside.
func goalEntrances(g *maze.Grid) int {
	count := 0
	for _, p := range g.GoalCells() {
		for _, q := range g.Passages(p) {
			if !g.IsGoal(q) {
				count++
			}
		}
	}
	return count
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

func TestGenerate_Errors(t *testing.T) {
	_, err := kruskal.Generate(nil)
	assert.ErrorIs(t, err, maze.ErrEmptyGrid)

	for _, n := range []int{1, 2} {
		g, _ := maze.New(n)
		g.ClearWalls()
		before := g.PassageCount()
		_, err := kruskal.Generate(g)
		assert.ErrorIs(t, err, kruskal.ErrDimensionTooSmall)
		assert.Equal(t, before, g.PassageCount(), "grid must stay untouched")
	}

	g, _ := maze.New(5)
	_, err = kruskal.Generate(g, kruskal.WithNonTreeEdges(-1))
	assert.ErrorIs(t, err, kruskal.ErrNegativeEdges)
	assert.Zero(t, g.PassageCount())
}

//----------------------------------------------------------------------------//
// Spanning-tree properties
//----------------------------------------------------------------------------//

func TestGenerate_PerfectMaze(t *testing.T) {
	for n := 3; n <= 12; n++ {
		for seed := int64(1); seed <= 5; seed++ {
			g, res := generate(t, n, 0, seed)
			assert.Equal(t, n*n-1, g.PassageCount(), "n=%d seed=%d", n, seed)
			assert.Equal(t, n*n-1, res.TreeEdges)
			assert.Zero(t, res.NonTreeEdges)
			requireConnected(t, g)
			assert.Equal(t, 1, goalEntrances(g), "n=%d seed=%d", n, seed)
		}
	}
}

func TestGenerate_FiveByFive(t *testing.T) {
	g, res := generate(t, 5, 0, 42)
	assert.Equal(t, 24, g.PassageCount())
	assert.Equal(t, 24, res.Passages())
	assert.True(t, g.IsGoal(res.Entrance[0]))
	assert.False(t, g.IsGoal(res.Entrance[1]))
	assert.True(t, g.HasPassage(res.Entrance[0], res.Entrance[1]))
}

func TestGenerate_EvenGoalBlock(t *testing.T) {
	g, res := generate(t, 6, 0, 7)
	goal := g.GoalCells()
	internal := 0
	for i := range goal {
		for j := i + 1; j < len(goal); j++ {
			if g.HasPassage(goal[i], goal[j]) {
				internal++
			}
		}
	}
	assert.Equal(t, 3, internal)
	assert.GreaterOrEqual(t, res.Candidates, 1, "fourth block pair is a loop candidate")
}

func TestGenerate_NonTreeEdges(t *testing.T) {
	cases := []struct {
		name string
		n, k int
	}{
		{"few", 8, 3},
		{"many", 6, 5},
		{"more-than-candidates", 4, 1000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, res := generate(t, tc.n, tc.k, 3)
			want := tc.n*tc.n - 1 + min(tc.k, res.Candidates)
			assert.Equal(t, want, g.PassageCount())
			assert.Equal(t, min(tc.k, res.Candidates), res.NonTreeEdges)
			requireConnected(t, g)
			assert.Equal(t, 1, goalEntrances(g), "loops never open a second entrance")
		})
	}
}

//----------------------------------------------------------------------------//
// Determinism and reset
//----------------------------------------------------------------------------//

func TestGenerate_Deterministic(t *testing.T) {
	a, _ := generate(t, 9, 4, 99)
	b, _ := generate(t, 9, 4, 99)
	assert.True(t, a.SameLayout(b))

	c, _ := generate(t, 9, 4, 100)
	assert.False(t, a.SameLayout(c), "different seeds should differ on a 9×9 grid")

	z1, _ := generate(t, 7, 0, 0)
	z2, _ := generate(t, 7, 0, 1)
	assert.True(t, z1.SameLayout(z2), "seed 0 maps to the default seed")
}

func TestGenerate_WithRand(t *testing.T) {
	g1, _ := maze.New(6)
	g2, _ := maze.New(6)
	_, err := kruskal.Generate(g1, kruskal.WithRand(rand.New(rand.NewSource(5))))
	require.NoError(t, err)
	_, err = kruskal.Generate(g2, kruskal.WithSeed(5))
	require.NoError(t, err)
	assert.True(t, g1.SameLayout(g2))
}

func TestGenerate_ResetsGrid(t *testing.T) {
	g, _ := maze.New(5)
	g.ClearWalls()
	g.At(maze.Pos{Row: 1, Col: 1}).Visited = true

	_, err := kruskal.Generate(g, kruskal.WithSeed(11))
	require.NoError(t, err)
	assert.Equal(t, 24, g.PassageCount())
	assert.False(t, g.At(maze.Pos{Row: 1, Col: 1}).Visited)
}

func TestDeriveSeed(t *testing.T) {
	assert.Equal(t, kruskal.DeriveSeed(7, 1), kruskal.DeriveSeed(7, 1))
	assert.NotEqual(t, kruskal.DeriveSeed(7, 1), kruskal.DeriveSeed(7, 2))
	assert.NotEqual(t, kruskal.DeriveSeed(7, 1), kruskal.DeriveSeed(8, 1))
}
