// Package store persists generated mazes in the codec wire format, on the
// local file system or in Redis.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/micromouse/config"
	"github.com/katalvlaran/micromouse/maze"
)

var (
	// ErrNotFound is returned when no maze is stored under a name.
	ErrNotFound = errors.New("store: maze not found")

	// ErrInvalidName is returned for empty names or names containing path
	// separators.
	ErrInvalidName = errors.New("store: invalid maze name")

	// ErrUnknownBackend is returned by Open for an unsupported backend.
	ErrUnknownBackend = errors.New("store: unknown backend")
)

// Store keeps mazes by name.
type Store interface {
	Save(ctx context.Context, name string, g *maze.Grid) error
	Load(ctx context.Context, name string) (*maze.Grid, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]string, error)
	Close() error
}

// Open returns the store selected by cfg.Backend.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Backend {
	case config.BackendFile:
		return NewFileStore(cfg.Dir)
	case config.BackendRedis:
		return NewRedisStore(ctx, cfg)
	case config.BackendNone, "":
		return Discard{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

func validName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Discard is a Store that keeps nothing.
type Discard struct{}

func (Discard) Save(context.Context, string, *maze.Grid) error { return nil }

func (Discard) Load(_ context.Context, name string) (*maze.Grid, error) {
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

func (Discard) Delete(_ context.Context, name string) error {
	return fmt.Errorf("%w: %q", ErrNotFound, name)
}

func (Discard) List(context.Context) ([]string, error) { return nil, nil }

func (Discard) Close() error { return nil }
