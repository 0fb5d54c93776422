package dfs_test

import (
	"testing"

	"github.com/katalvlaran/micromouse/dfs"
	"github.com/katalvlaran/micromouse/kruskal"
	"github.com/katalvlaran/micromouse/maze"
)

// BenchmarkFindPath64 measures DFS across a generated 64×64 maze.
func BenchmarkFindPath64(b *testing.B) {
	g, _ := maze.New(64)
	_, _ = kruskal.Generate(g, kruskal.WithSeed(1), kruskal.WithNonTreeEdges(50))
	start, end := maze.Pos{Row: 63, Col: 0}, maze.Pos{Row: 0, Col: 63}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.FindPath(g, start, end)
	}
}
