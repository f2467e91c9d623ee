package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in a desktop window sized to the field.

Controls:
  Arrows/WASD  - Move
  Q/Esc        - Quit (closing the window also quits)`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	s, err := newSession("window")
	if err != nil {
		return err
	}

	res, runErr := window.Run(s.state, window.Options{
		TickRate: flagFPS,
		Title:    "Pacman",
	})
	s.finish(res)
	if runErr != nil {
		return runErr
	}

	fmt.Printf("Game over (%s). Score: %d\n", res.Reason, res.Score)
	return nil
}
