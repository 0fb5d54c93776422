// Command micromouse generates mazes, solves them with the search oracle and
// lets a simulated flood-fill mouse explore them.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/micromouse/config"
	"github.com/katalvlaran/micromouse/logging"
	"github.com/katalvlaran/micromouse/store"
)

var (
	// Global flags
	verbose    bool
	configPath string
	dimension  int
	loops      int
	seed       int64

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "micromouse",
	Short: "Micromouse maze generator, solver and flood-fill simulator",
	Long: `micromouse builds square mazes with randomized Kruskal, stores them in a
compact binary format, checks them with Dijkstra and depth-first search, and
runs a flood-fill mouse that discovers the walls one cell at a time.

Settings come from micromouse.yaml, a .env file and MICROMOUSE_* variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		applyFlagOverrides(cmd)
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		logger.Debug("configuration loaded",
			zap.String("path", configPath),
			zap.Int("dimension", cfg.Maze.Dimension),
			zap.String("store", cfg.Store.Backend))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file")
	rootCmd.PersistentFlags().IntVarP(&dimension, "dimension", "n", 0, "Maze dimension (overrides config)")
	rootCmd.PersistentFlags().IntVarP(&loops, "loops", "k", 0, "Non-tree edges to add (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Generator seed, 0 for a fresh one (overrides config)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// applyFlagOverrides copies explicitly set global flags into cfg.
func applyFlagOverrides(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("dimension") {
		cfg.Maze.Dimension = dimension
	}
	if flags.Changed("loops") {
		cfg.Maze.NonTreeEdges = loops
	}
	if flags.Changed("seed") {
		cfg.Maze.Seed = seed
	}
}

// openStore opens the configured maze store.
func openStore(ctx context.Context) (store.Store, error) {
	s, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return s, nil
}
