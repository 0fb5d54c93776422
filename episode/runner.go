package episode

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/micromouse/bfs"
	"github.com/katalvlaran/micromouse/config"
	"github.com/katalvlaran/micromouse/kruskal"
	"github.com/katalvlaran/micromouse/maze"
	"github.com/katalvlaran/micromouse/navigator"
	"github.com/katalvlaran/micromouse/pathfind"
	"github.com/katalvlaran/micromouse/store"
)

// ctxCheckInterval is how many navigator steps run between context checks.
const ctxCheckInterval = 256

// Runner executes episodes for one configuration.
type Runner struct {
	cfg    *config.Config
	logger *zap.Logger
	store  store.Store
}

// NewRunner returns a Runner for cfg.
func NewRunner(cfg *config.Config, opts ...Option) *Runner {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Store == nil {
		o.Store = store.Discard{}
	}
	return &Runner{cfg: cfg, logger: o.Logger, store: o.Store}
}

// Seed returns the configured base seed, or a time-derived one when the
// configuration leaves it at zero.
func (r *Runner) Seed() int64 {
	if r.cfg != nil && r.cfg.Maze.Seed != 0 {
		return r.cfg.Maze.Seed
	}
	return time.Now().UnixNano()
}

// Run generates a maze from seed and lets a navigator explore it. A
// navigator that reaches the step ceiling is reported with Converged false,
// not as an error. Cancelling ctx stops stepping and returns the partial
// result with ctx's error.
func (r *Runner) Run(ctx context.Context, seed int64) (*Result, error) {
	if r.cfg == nil {
		return nil, ErrNilConfig
	}
	n := r.cfg.Maze.Dimension
	k := r.cfg.Maze.NonTreeEdges

	g, err := maze.New(n)
	if err != nil {
		return nil, err
	}
	gen, err := kruskal.Generate(g, kruskal.WithSeed(seed), kruskal.WithNonTreeEdges(k))
	if err != nil {
		return nil, fmt.Errorf("episode: generate: %w", err)
	}

	start := r.cfg.Start(n)
	res := &Result{
		ID:           uuid.NewString(),
		Dimension:    n,
		NonTreeEdges: gen.NonTreeEdges,
		Seed:         seed,
		Passages:     g.PassageCount(),
	}
	log := r.logger.With(zap.String("episode", res.ID), zap.Int64("seed", seed))

	if err := r.measure(g, start, res); err != nil {
		return nil, err
	}
	if err := r.store.Save(ctx, res.ID, g); err != nil {
		return nil, fmt.Errorf("episode: save %s: %w", res.ID, err)
	}

	nav, err := navigator.New(g, start,
		navigator.WithOrientation(r.cfg.Heading()),
		navigator.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("episode: navigator: %w", err)
	}

	limit := r.cfg.StepLimit()
	for !nav.Done() && nav.Steps() < limit {
		if nav.Steps()%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				collect(nav, res)
				return res, err
			}
		}
		nav.Step()
	}
	collect(nav, res)

	if res.Converged {
		log.Info("episode converged",
			zap.Int("steps", res.Steps),
			zap.Int("runs", res.Runs),
			zap.Int("path", res.NavigatorPath.Len()),
			zap.Int("shortest", res.GoalDistance))
	} else {
		log.Warn("episode hit step ceiling", zap.Int("steps", res.Steps))
	}
	return res, nil
}

// measure fills the oracle fields of res.
func (r *Runner) measure(g *maze.Grid, start maze.Pos, res *Result) error {
	finder := pathfind.NewFinder(g)
	goal := g.ClosestGoal(start)

	shortest, err := finder.Dijkstra(start, goal)
	if err != nil {
		return fmt.Errorf("episode: %w", err)
	}
	depth, err := finder.DFS(start, goal)
	if err != nil {
		return fmt.Errorf("episode: %w", err)
	}
	res.ShortestLen = shortest.Len()
	res.DFSLen = depth.Len()

	dist, err := bfs.Distances(g, g.GoalCells())
	if err != nil {
		return fmt.Errorf("episode: %w", err)
	}
	res.GoalDistance = dist[g.Index(start)]
	return nil
}

func collect(nav *navigator.Navigator, res *Result) {
	res.Steps = nav.Steps()
	res.Runs = nav.Runs()
	res.Visited = nav.VisitedCount()
	res.Converged = nav.Done()
	res.NavigatorPath = nav.Path()
}

// RunBatch runs count episodes on at most workers goroutines. Episode i uses
// the seed derived from the runner's base seed and i, so a fixed base seed
// reproduces the batch. Results are ordered by episode index. The first
// failing episode cancels the rest.
func (r *Runner) RunBatch(ctx context.Context, count, workers int) ([]*Result, error) {
	if count < 0 || workers < 1 {
		return nil, fmt.Errorf("%w: %d episodes on %d workers", ErrBadBatch, count, workers)
	}
	base := r.Seed()
	results := make([]*Result, count)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := 0; i < count; i++ {
		i := i
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			res, err := r.Run(egCtx, kruskal.DeriveSeed(base, uint64(i)))
			if err != nil {
				return fmt.Errorf("episode %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return results, err
	}

	r.logger.Debug("batch complete", zap.Int("episodes", count), zap.Int("workers", workers))
	return results, nil
}
