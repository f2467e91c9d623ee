package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD  - Move (hold for continuous movement)
  Ctrl+S       - Save a text screenshot to ~/.arcade/screenshots
  Q/Esc/Ctrl+C - Quit

Examples:
  pacman play
  pacman play --seed 7
  pacman play --config ./my-pacman.yaml --log-file pacman.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("play needs a terminal; try 'pacman sim' instead")
	}

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	s, err := newSession("tui")
	if err != nil {
		return err
	}

	quietStderr()
	res, runErr := tui.Run(cmd.Context(), s.state, tui.Options{
		TickRate:  flagFPS,
		HoldTicks: s.cfg.TUI.HoldTicks,
		Width:     width,
		Height:    height,
	})
	s.finish(res)
	if runErr != nil {
		return runErr
	}

	fmt.Printf("Game over (%s). Score: %d\n", res.Reason, res.Score)
	return nil
}
