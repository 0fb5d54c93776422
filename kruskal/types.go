package kruskal

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/micromouse/maze"
)

// MinDimension is the smallest grid side Generate accepts.
const MinDimension = 3

// ErrDimensionTooSmall indicates a grid smaller than MinDimension×MinDimension.
var ErrDimensionTooSmall = errors.New("kruskal: dimension must be at least 3")

// ErrNegativeEdges indicates a negative non-tree edge count.
var ErrNegativeEdges = errors.New("kruskal: non-tree edge count must be non-negative")

// Options configures Generate.
//
// Fields:
//
//	NonTreeEdges int        — extra walls to remove after the spanning tree (k ≥ 0).
//	Seed         int64      — RNG seed; 0 selects a fixed default seed.
//	Rand         *rand.Rand — explicit RNG; takes precedence over Seed when non-nil.
type Options struct {
	NonTreeEdges int
	Seed         int64
	Rand         *rand.Rand
}

// Option mutates Options.
type Option func(*Options)

// WithNonTreeEdges sets the number of extra passages (loops) to open.
func WithNonTreeEdges(k int) Option {
	return func(o *Options) {
		o.NonTreeEdges = k
	}
}

// WithSeed makes generation reproducible for the given seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand supplies the random source directly. The source is consumed by
// Generate and must not be shared across goroutines.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// DefaultOptions returns a perfect-maze setup: no extra edges, seed 0.
func DefaultOptions() Options {
	return Options{
		NonTreeEdges: 0,
		Seed:         0,
	}
}

// Result summarizes one generation.
type Result struct {
	// Entrance is the single opened pair joining the goal region to the rest
	// of the maze: Entrance[0] is the goal cell, Entrance[1] its outside neighbour.
	Entrance [2]maze.Pos

	// TreeEdges counts passages of the spanning tree, always n²−1.
	TreeEdges int

	// NonTreeEdges counts the extra passages opened from the candidate list.
	NonTreeEdges int

	// Candidates is the size of the non-tree candidate list before sampling.
	Candidates int
}

// Passages returns the total number of open passages produced.
func (r *Result) Passages() int {
	return r.TreeEdges + r.NonTreeEdges
}
