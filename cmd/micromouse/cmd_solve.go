package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/micromouse/maze"
	"github.com/katalvlaran/micromouse/pathfind"
)

var (
	solveFile   string
	solveSmooth bool
	solvePrint  bool
)

// solveCmd runs the search oracle on a stored maze
var solveCmd = &cobra.Command{
	Use:   "solve [name]",
	Short: "Find the shortest and the depth-first path to the goal",
	Long: `Loads a maze from the store (or from --file) and searches from the
configured start cell to the closest goal cell with Dijkstra and with
depth-first search.

Example:
  micromouse solve demo --print
  micromouse solve --file demo.maze --smooth`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "Read the maze from an encoded file instead of the store")
	solveCmd.Flags().BoolVar(&solveSmooth, "smooth", false, "Print the smoothed shortest path")
	solveCmd.Flags().BoolVarP(&solvePrint, "print", "p", false, "Print the maze with the shortest path")
}

func runSolve(cmd *cobra.Command, args []string) error {
	g, err := loadMaze(cmd.Context(), args)
	if err != nil {
		return err
	}
	start := cfg.Start(g.Dim())
	goal := g.ClosestGoal(start)

	finder := pathfind.NewFinder(g)
	shortest, err := finder.Dijkstra(start, goal)
	if err != nil {
		return err
	}
	depth, err := finder.DFS(start, goal)
	if err != nil {
		return err
	}
	logger.Debug("maze solved",
		zap.Stringer("start", start),
		zap.Stringer("goal", goal),
		zap.Int("dijkstra", shortest.Len()),
		zap.Int("dfs", depth.Len()))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "dijkstra %d %v\n", shortest.Len(), shortest)
	fmt.Fprintf(out, "dfs %d %v\n", depth.Len(), depth)
	if solveSmooth {
		fmt.Fprintf(out, "smooth %v\n", pathfind.Smooth(shortest))
	}
	if solvePrint {
		fmt.Fprint(out, g.Render(shortest))
	}
	return nil
}

// loadMaze reads the maze named by args[0] from the store, or --file.
func loadMaze(ctx context.Context, args []string) (*maze.Grid, error) {
	if solveFile != "" {
		return readMazeFile(solveFile)
	}
	if len(args) == 0 {
		return nil, errors.New("a maze name or --file is required")
	}
	st, err := openStore(ctx)
	if err != nil {
		return nil, err
	}
	defer st.Close()
	return st.Load(ctx, args[0])
}
