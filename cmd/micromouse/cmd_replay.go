package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/micromouse/navigator"
	"github.com/katalvlaran/micromouse/telemetry"
)

var replaySteps int

// replayCmd feeds recorded telemetry to a navigator
var replayCmd = &cobra.Command{
	Use:   "replay [file]",
	Short: "Replay mouse telemetry into a navigator",
	Long: `Reads telemetry messages, one per line, from file (or stdin when file is
omitted or "-") and applies each to a navigator that has no reference maze.
Messages have the form

  <W>x<H> <row> <col> <ORIENTATION> <wall>

where wall is one of none, up, right, down, left relative to the
orientation. Malformed messages are skipped.

Example:
  micromouse replay run.log --steps 1`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().IntVar(&replaySteps, "steps", 0, "Navigator steps to take after each message")
}

func runReplay(cmd *cobra.Command, args []string) error {
	var src io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open telemetry: %w", err)
		}
		defer f.Close()
		src = f
	}

	n := cfg.Maze.Dimension
	nav, err := navigator.New(nil, cfg.Start(n),
		navigator.WithDimension(n),
		navigator.WithOrientation(cfg.Heading()),
		navigator.WithLogger(logger))
	if err != nil {
		return err
	}

	rd := telemetry.NewReader(src, telemetry.WithReaderLogger(logger))
	events := 0
	for {
		ev, err := rd.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read telemetry: %w", err)
		}
		nav.Observe(ev)
		events++
		for i := 0; i < replaySteps && !nav.Step(); i++ {
		}
	}
	logger.Info("replay finished",
		zap.Int("events", events),
		zap.Int("discarded", rd.Discarded()))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "events=%d discarded=%d position=%v orientation=%s visited=%d distance=%d\n",
		events, rd.Discarded(), nav.Position(), nav.Orientation(), nav.VisitedCount(), nav.Distance(nav.Position()))
	fmt.Fprint(out, nav.Belief().String())
	return nil
}
