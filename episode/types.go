package episode

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/micromouse/maze"
	"github.com/katalvlaran/micromouse/store"
)

var (
	// ErrNilConfig is returned when a Runner has no configuration.
	ErrNilConfig = errors.New("episode: nil config")

	// ErrBadBatch is returned for a negative episode count or fewer than one
	// worker.
	ErrBadBatch = errors.New("episode: invalid batch size")
)

// Options configures a Runner.
type Options struct {
	Logger *zap.Logger
	Store  store.Store
}

// Option mutates Options.
type Option func(*Options)

// WithLogger sets the episode logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithStore persists every generated maze under its episode ID.
func WithStore(s store.Store) Option {
	return func(o *Options) {
		o.Store = s
	}
}

// DefaultOptions returns a silent runner that stores nothing.
func DefaultOptions() Options {
	return Options{
		Logger: zap.NewNop(),
		Store:  store.Discard{},
	}
}

// Result summarises one episode.
type Result struct {
	ID           string
	Dimension    int
	NonTreeEdges int
	Seed         int64
	Passages     int

	ShortestLen  int // Dijkstra, start to closest goal cell
	DFSLen       int // first depth-first path, same endpoints
	GoalDistance int // true distance from start to the nearest goal cell

	Steps         int
	Runs          int
	Visited       int
	Converged     bool
	NavigatorPath maze.Path
}

// Optimality returns GoalDistance divided by the navigator path length: 1
// for an optimal path, 0 when the navigator did not converge. On even
// mazes the navigator sweeps the goal block before turning back, so its
// path may end one or more cells past the nearest goal cell.
func (r *Result) Optimality() float64 {
	if !r.Converged || r.NavigatorPath.Len() == 0 {
		return 0
	}
	return float64(r.GoalDistance) / float64(r.NavigatorPath.Len())
}

// String returns a one-line report.
func (r *Result) String() string {
	return fmt.Sprintf("%s n=%d k=%d seed=%d shortest=%d dfs=%d nav=%d steps=%d runs=%d visited=%d converged=%t",
		r.ID, r.Dimension, r.NonTreeEdges, r.Seed, r.ShortestLen, r.DFSLen,
		r.NavigatorPath.Len(), r.Steps, r.Runs, r.Visited, r.Converged)
}

// Summary aggregates a batch.
type Summary struct {
	Episodes       int
	Converged      int
	MeanSteps      float64
	MeanOptimality float64 // over converged episodes
	WorstOptimal   float64 // lowest optimality among converged episodes
}

// Summarize aggregates results; nil entries are skipped.
func Summarize(results []*Result) Summary {
	var s Summary
	var steps, opt float64
	s.WorstOptimal = math.Inf(1)
	for _, r := range results {
		if r == nil {
			continue
		}
		s.Episodes++
		steps += float64(r.Steps)
		if r.Converged {
			s.Converged++
			o := r.Optimality()
			opt += o
			s.WorstOptimal = math.Min(s.WorstOptimal, o)
		}
	}
	if s.Episodes > 0 {
		s.MeanSteps = steps / float64(s.Episodes)
	}
	if s.Converged > 0 {
		s.MeanOptimality = opt / float64(s.Converged)
	} else {
		s.WorstOptimal = 0
	}
	return s
}
