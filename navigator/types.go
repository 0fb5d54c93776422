package navigator

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/micromouse/maze"
)

var (
	// ErrNoDimension is returned by New when neither a reference grid nor
	// WithDimension supplies the maze size.
	ErrNoDimension = errors.New("navigator: maze dimension unknown")

	// ErrStartOutOfBounds is returned by New when start lies outside the maze.
	ErrStartOutOfBounds = errors.New("navigator: start out of bounds")
)

// Options configures a Navigator.
type Options struct {
	Orientation maze.Direction
	Dimension   int
	Logger      *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithOrientation sets the initial heading (default maze.North).
func WithOrientation(d maze.Direction) Option {
	return func(o *Options) {
		if d.Valid() {
			o.Orientation = d
		}
	}
}

// WithDimension sets the maze size when no reference grid is given.
// Ignored when a reference grid is present.
func WithDimension(n int) Option {
	return func(o *Options) {
		o.Dimension = n
	}
}

// WithLogger sets the logger used for run events.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns a north-facing navigator with a no-op logger.
func DefaultOptions() Options {
	return Options{
		Orientation: maze.North,
		Logger:      zap.NewNop(),
	}
}
