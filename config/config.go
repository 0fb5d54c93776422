// Package config loads micromouse settings from a YAML file, a .env file and
// MICROMOUSE_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/micromouse/maze"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "micromouse.yaml"

// Store backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds all micromouse configuration.
type Config struct {
	Maze      MazeConfig      `yaml:"maze"`
	Navigator NavigatorConfig `yaml:"navigator"`
	Store     StoreConfig     `yaml:"store"`
	Logging   LoggingConfig   `yaml:"logging"`
	Batch     BatchConfig     `yaml:"batch"`
}

// MazeConfig configures generation.
type MazeConfig struct {
	Dimension    int   `yaml:"dimension"`
	NonTreeEdges int   `yaml:"non_tree_edges"`
	Seed         int64 `yaml:"seed"` // 0: pick a fresh seed per run
}

// NavigatorConfig configures the simulated mouse.
type NavigatorConfig struct {
	StartRow    int    `yaml:"start_row"` // -1: bottom row
	StartCol    int    `yaml:"start_col"`
	Orientation string `yaml:"orientation"`
	MaxSteps    int    `yaml:"max_steps"` // 0: 1000·n²
}

// StoreConfig selects where generated mazes are kept.
type StoreConfig struct {
	Backend     string `yaml:"backend"` // file, redis, none
	Dir         string `yaml:"dir"`
	RedisAddr   string `yaml:"redis_addr"`
	RedisPrefix string `yaml:"redis_prefix"`
	RedisDB     int    `yaml:"redis_db"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// BatchConfig configures parallel episodes.
type BatchConfig struct {
	Episodes int `yaml:"episodes"`
	Workers  int `yaml:"workers"`
}

// DefaultConfig returns the default configuration: a 16×16 competition
// maze, mouse in the bottom-left corner facing north, file store.
func DefaultConfig() *Config {
	return &Config{
		Maze: MazeConfig{
			Dimension:    16,
			NonTreeEdges: 0,
			Seed:         0,
		},
		Navigator: NavigatorConfig{
			StartRow:    -1,
			StartCol:    0,
			Orientation: "NORTH",
			MaxSteps:    0,
		},
		Store: StoreConfig{
			Backend:     BackendFile,
			Dir:         "mazes",
			RedisAddr:   "localhost:6379",
			RedisPrefix: "micromouse:maze:",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Batch: BatchConfig{
			Episodes: 10,
			Workers:  4,
		},
	}
}

// Load reads path over the defaults, then applies .env and environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// A missing .env is not an error; variables already set win.
	_ = godotenv.Load()

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies MICROMOUSE_* environment variables.
func (c *Config) applyEnvOverrides() error {
	ints := []struct {
		key string
		dst *int
	}{
		{"MICROMOUSE_DIMENSION", &c.Maze.Dimension},
		{"MICROMOUSE_NON_TREE_EDGES", &c.Maze.NonTreeEdges},
		{"MICROMOUSE_MAX_STEPS", &c.Navigator.MaxSteps},
		{"MICROMOUSE_WORKERS", &c.Batch.Workers},
	}
	for _, e := range ints {
		if v := os.Getenv(e.key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, e.key, v)
			}
			*e.dst = n
		}
	}
	if v := os.Getenv("MICROMOUSE_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: MICROMOUSE_SEED=%q is not an integer", ErrInvalid, v)
		}
		c.Maze.Seed = n
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"MICROMOUSE_STORE", &c.Store.Backend},
		{"MICROMOUSE_STORE_DIR", &c.Store.Dir},
		{"MICROMOUSE_REDIS_ADDR", &c.Store.RedisAddr},
		{"MICROMOUSE_LOG_LEVEL", &c.Logging.Level},
		{"MICROMOUSE_LOG_FORMAT", &c.Logging.Format},
	}
	for _, e := range strs {
		if v := os.Getenv(e.key); v != "" {
			*e.dst = v
		}
	}
	return nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.Maze.Dimension < 3 {
		return fmt.Errorf("%w: maze.dimension must be at least 3, got %d", ErrInvalid, c.Maze.Dimension)
	}
	if c.Maze.NonTreeEdges < 0 {
		return fmt.Errorf("%w: maze.non_tree_edges must be non-negative, got %d", ErrInvalid, c.Maze.NonTreeEdges)
	}
	n := c.Maze.Dimension
	if c.Navigator.StartRow < -1 || c.Navigator.StartRow >= n || c.Navigator.StartCol < 0 || c.Navigator.StartCol >= n {
		return fmt.Errorf("%w: navigator start (%d, %d) outside a %dx%d maze",
			ErrInvalid, c.Navigator.StartRow, c.Navigator.StartCol, n, n)
	}
	if _, ok := maze.ParseDirection(c.Navigator.Orientation); !ok {
		return fmt.Errorf("%w: navigator.orientation %q", ErrInvalid, c.Navigator.Orientation)
	}
	if c.Navigator.MaxSteps < 0 {
		return fmt.Errorf("%w: navigator.max_steps must be non-negative", ErrInvalid)
	}
	switch c.Store.Backend {
	case BackendFile, BackendRedis, BackendNone:
	default:
		return fmt.Errorf("%w: store.backend %q (valid: file, redis, none)", ErrInvalid, c.Store.Backend)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: logging.format %q (valid: json, console)", ErrInvalid, c.Logging.Format)
	}
	if c.Batch.Workers < 1 || c.Batch.Episodes < 0 {
		return fmt.Errorf("%w: batch needs at least one worker and a non-negative episode count", ErrInvalid)
	}
	return nil
}

// Start returns the configured start cell inside an n×n maze, resolving
// StartRow -1 to the bottom row. n is usually Maze.Dimension, but a maze
// loaded from a store carries its own size.
func (c *Config) Start(n int) maze.Pos {
	row := c.Navigator.StartRow
	if row < 0 {
		row = n - 1
	}
	return maze.Pos{Row: row, Col: c.Navigator.StartCol}
}

// Heading returns the configured initial orientation, NORTH when unset.
func (c *Config) Heading() maze.Direction {
	d, _ := maze.ParseDirection(c.Navigator.Orientation)
	return d
}

// StepLimit returns the navigator step ceiling, defaulting to 1000·n².
func (c *Config) StepLimit() int {
	if c.Navigator.MaxSteps > 0 {
		return c.Navigator.MaxSteps
	}
	return 1000 * c.Maze.Dimension * c.Maze.Dimension
}
