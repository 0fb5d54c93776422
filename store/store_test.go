package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/micromouse/codec"
	"github.com/katalvlaran/micromouse/config"
	"github.com/katalvlaran/micromouse/kruskal"
	"github.com/katalvlaran/micromouse/maze"
	"github.com/katalvlaran/micromouse/store"
)

func generated(t *testing.T, n, k int, seed int64) *maze.Grid {
	t.Helper()
	g, err := maze.New(n)
	require.NoError(t, err)
	_, err = kruskal.Generate(g, kruskal.WithSeed(seed), kruskal.WithNonTreeEdges(k))
	require.NoError(t, err)
	return g
}

// exerciseStore runs the behaviour every backend shares.
func exerciseStore(t *testing.T, s store.Store) {
	ctx := context.Background()
	g := generated(t, 9, 4, 17)
	name := uuid.NewString()

	_, err := s.Load(ctx, name)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Save(ctx, name, g))
	got, err := s.Load(ctx, name)
	require.NoError(t, err)
	assert.True(t, g.SameLayout(got))

	// Overwrite with a different maze.
	h := generated(t, 9, 0, 18)
	require.NoError(t, s.Save(ctx, name, h))
	got, err = s.Load(ctx, name)
	require.NoError(t, err)
	assert.True(t, h.SameLayout(got))

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, names, name)

	require.NoError(t, s.Delete(ctx, name))
	require.ErrorIs(t, s.Delete(ctx, name), store.ErrNotFound)
	_, err = s.Load(ctx, name)
	require.ErrorIs(t, err, store.ErrNotFound)
}

//----------------------------------------------------------------------------//
// FileStore
//----------------------------------------------------------------------------//

func TestFileStore(t *testing.T) {
	s, err := store.NewFileStore(filepath.Join(t.TempDir(), "nested", "mazes"))
	require.NoError(t, err)
	defer s.Close()

	exerciseStore(t, s)
}

func TestFileStore_ListSorted(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := store.NewFileStore(dir)
	require.NoError(t, err)

	g := generated(t, 5, 0, 1)
	for _, name := range []string{"charlie", "alpha", "bravo"} {
		require.NoError(t, s.Save(ctx, name, g))
	}
	// Foreign files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, names)
	assert.FileExists(t, s.Path("alpha"))
}

func TestFileStore_InvalidName(t *testing.T) {
	ctx := context.Background()
	s, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	g := generated(t, 3, 0, 1)

	for _, name := range []string{"", ".", "..", "a/b", `a\b`} {
		assert.ErrorIs(t, s.Save(ctx, name, g), store.ErrInvalidName, name)
		_, err := s.Load(ctx, name)
		assert.ErrorIs(t, err, store.ErrInvalidName, name)
		assert.ErrorIs(t, s.Delete(ctx, name), store.ErrInvalidName, name)
	}
}

func TestFileStore_Corrupt(t *testing.T) {
	ctx := context.Background()
	s, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(s.Path("broken"), []byte{0, 0, 0, 5, 0, 0, 0, 5, 0xFF}, 0644))
	_, err = s.Load(ctx, "broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrNotFound)
}

func TestFileStore_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	assert.ErrorIs(t, s.Save(ctx, "m", generated(t, 3, 0, 1)), context.Canceled)
}

//----------------------------------------------------------------------------//
// RedisStore
//----------------------------------------------------------------------------//

func newMiniRedisStore(t *testing.T, prefix string) (*store.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := store.NewRedisStoreWithClient(client, prefix)
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

func TestRedisStore(t *testing.T) {
	s, _ := newMiniRedisStore(t, "micromouse:maze:")
	exerciseStore(t, s)
}

func TestRedisStore_Keys(t *testing.T) {
	ctx := context.Background()
	s, mr := newMiniRedisStore(t, "mm:")
	g := generated(t, 5, 1, 3)

	require.NoError(t, s.Save(ctx, "beta", g))
	require.NoError(t, s.Save(ctx, "alpha", g))
	mr.Set("other:gamma", "x")

	assert.True(t, mr.Exists("mm:alpha"))
	assert.True(t, mr.Exists("mm:beta"))
	stored, err := mr.Get("mm:alpha")
	require.NoError(t, err)
	want, err := codec.Marshal(g)
	require.NoError(t, err)
	assert.Equal(t, string(want), stored)

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, names)

	require.NoError(t, s.Delete(ctx, "alpha"))
	assert.False(t, mr.Exists("mm:alpha"))
	assert.True(t, mr.Exists("other:gamma"))
}

func TestRedisStore_Corrupt(t *testing.T) {
	ctx := context.Background()
	s, mr := newMiniRedisStore(t, "mm:")
	mr.Set("mm:broken", string([]byte{0, 0, 0, 9, 0, 0, 0, 9, 0xFF}))

	_, err := s.Load(ctx, "broken")
	require.ErrorIs(t, err, codec.ErrTruncated)
	assert.NotErrorIs(t, err, store.ErrNotFound)

	_, err = s.Load(ctx, "a/b")
	assert.ErrorIs(t, err, store.ErrInvalidName)
}

func TestRedisStore_Open(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	s, err := store.Open(ctx, config.StoreConfig{
		Backend:     config.BackendRedis,
		RedisAddr:   mr.Addr(),
		RedisPrefix: "mm:",
	})
	require.NoError(t, err)
	defer s.Close()
	assert.IsType(t, &store.RedisStore{}, s)

	require.NoError(t, s.Save(ctx, "m", generated(t, 3, 0, 1)))
	assert.True(t, mr.Exists("mm:m"))

	gone := miniredis.NewMiniRedis()
	require.NoError(t, gone.Start())
	addr := gone.Addr()
	gone.Close()
	_, err = store.Open(ctx, config.StoreConfig{Backend: config.BackendRedis, RedisAddr: addr})
	assert.Error(t, err)
}

func TestRedisStore_Live(t *testing.T) {
	addr := os.Getenv("MICROMOUSE_REDIS_ADDR")
	if addr == "" {
		t.Skip("MICROMOUSE_REDIS_ADDR not set")
	}
	cfg := config.StoreConfig{
		Backend:     config.BackendRedis,
		RedisAddr:   addr,
		RedisPrefix: "micromouse:test:" + uuid.NewString() + ":",
	}
	s, err := store.Open(context.Background(), cfg)
	require.NoError(t, err)
	defer s.Close()

	exerciseStore(t, s)
}

//----------------------------------------------------------------------------//
// Open / Discard
//----------------------------------------------------------------------------//

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, err := store.Open(ctx, config.StoreConfig{Backend: config.BackendFile, Dir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &store.FileStore{}, s)

	s, err = store.Open(ctx, config.StoreConfig{Backend: config.BackendNone})
	require.NoError(t, err)
	assert.IsType(t, store.Discard{}, s)

	_, err = store.Open(ctx, config.StoreConfig{Backend: "tape"})
	assert.ErrorIs(t, err, store.ErrUnknownBackend)
}

func TestDiscard(t *testing.T) {
	ctx := context.Background()
	var s store.Store = store.Discard{}

	require.NoError(t, s.Save(ctx, "m", generated(t, 3, 0, 1)))
	_, err := s.Load(ctx, "m")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "m"), store.ErrNotFound)
	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
	assert.NoError(t, s.Close())
}
