package store

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/katalvlaran/micromouse/codec"
	"github.com/katalvlaran/micromouse/maze"
)

// Extension is appended to every maze file name.
const Extension = ".maze"

// FileStore keeps one <name>.maze file per maze in Dir.
type FileStore struct {
	Dir string
}

// NewFileStore creates dir if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("store: create %s: %w", dir, err)
	}
	return &FileStore{Dir: dir}, nil
}

// Path returns the file backing name.
func (s *FileStore) Path(name string) string {
	return filepath.Join(s.Dir, name+Extension)
}

// Save writes g to a temporary file and renames it over <name>.maze.
func (s *FileStore) Save(ctx context.Context, name string, g *maze.Grid) error {
	if err := validName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.Dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	if err := codec.Encode(w, g); err != nil {
		tmp.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path(name)); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	return nil
}

// Load reads <name>.maze into a new grid.
func (s *FileStore) Load(ctx context.Context, name string) (*maze.Grid, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	defer f.Close()

	g, err := codec.ReadGrid(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("store: load %q: %w", name, err)
	}
	return g, nil
}

// Delete removes <name>.maze.
func (s *FileStore) Delete(_ context.Context, name string) error {
	if err := validName(name); err != nil {
		return err
	}
	err := os.Remove(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	return nil
}

// List returns the stored names in lexical order.
func (s *FileStore) List(context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), Extension) {
			names = append(names, strings.TrimSuffix(e.Name(), Extension))
		}
	}
	sort.Strings(names)
	return names, nil
}

// Close is a no-op.
func (s *FileStore) Close() error { return nil }
