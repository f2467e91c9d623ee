package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/platform/headless"
)

var (
	flagTicks     int
	flagFast      bool
	flagKeys      string
	flagCols      int
	flagRows      int
	flagShowFrame bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the game without a display",
	Long: `Run the game headless with scripted input and print the result.

The key script is a comma-separated list of steps. Each step is a set of
keys (L, R, U, D, or . for none) followed by a tick count; the script
loops when it runs out.

Examples:
  pacman sim --ticks 600 --fast
  pacman sim --seed 42 --keys R60,DL30,.20 --fast
  pacman sim --ticks 0 --keys R40,D40,L40,U40`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Quit after this many ticks (0 = until caught)")
	simCmd.Flags().BoolVar(&flagFast, "fast", false, "Run as fast as possible instead of at --fps")
	simCmd.Flags().StringVar(&flagKeys, "keys", "", "Key script, e.g. R60,DL30,.20")
	simCmd.Flags().IntVar(&flagCols, "cols", 80, "Width of the printed frame")
	simCmd.Flags().IntVar(&flagRows, "rows", 24, "Height of the printed frame")
	simCmd.Flags().BoolVar(&flagShowFrame, "frame", true, "Print the final frame")
}

func runSim(cmd *cobra.Command, _ []string) error {
	script, err := headless.ParseScript(flagKeys)
	if err != nil {
		return err
	}

	s, err := newSession("headless")
	if err != nil {
		return err
	}

	res, frame, runErr := headless.Run(cmd.Context(), s.state, flagFPS, headless.Options{
		Cols:     flagCols,
		Rows:     flagRows,
		MaxTicks: flagTicks,
		Fast:     flagFast,
		Script:   script,
	})
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	s.finish(res)

	if flagShowFrame {
		fmt.Println(frame.String())
	}
	fmt.Printf("run=%s seed=%d reason=%s score=%d ticks=%d\n",
		s.runID, s.seed, res.Reason, res.Score, res.Ticks)
	return nil
}
