package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/katalvlaran/micromouse/codec"
	"github.com/katalvlaran/micromouse/config"
	"github.com/katalvlaran/micromouse/maze"
)

// RedisStore keeps each maze as one string value under Prefix+name.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to cfg.RedisAddr and pings it.
func NewRedisStore(ctx context.Context, cfg config.StoreConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("store: redis %s: %w", cfg.RedisAddr, err)
	}
	return NewRedisStoreWithClient(client, cfg.RedisPrefix), nil
}

// NewRedisStoreWithClient wraps an existing client.
func NewRedisStoreWithClient(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(name string) string {
	return s.prefix + name
}

// Save stores the encoded maze.
func (s *RedisStore) Save(ctx context.Context, name string, g *maze.Grid) error {
	if err := validName(name); err != nil {
		return err
	}
	data, err := codec.Marshal(g)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key(name), data, 0).Err(); err != nil {
		return fmt.Errorf("store: redis set %q: %w", name, err)
	}
	return nil
}

// Load fetches and decodes a maze.
func (s *RedisStore) Load(ctx context.Context, name string) (*maze.Grid, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	data, err := s.client.Get(ctx, s.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("store: redis get %q: %w", name, err)
	}
	g, err := codec.ReadGrid(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("store: load %q: %w", name, err)
	}
	return g, nil
}

// Delete removes a maze.
func (s *RedisStore) Delete(ctx context.Context, name string) error {
	if err := validName(name); err != nil {
		return err
	}
	n, err := s.client.Del(ctx, s.key(name)).Result()
	if err != nil {
		return fmt.Errorf("store: redis del %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return nil
}

// List scans the key space for the prefix and returns names in lexical order.
func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	var names []string
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		names = append(names, strings.TrimPrefix(iter.Val(), s.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("store: redis scan: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
