package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded high scores",
	Long: `Display the top high scores recorded with --db.

Examples:
  pacman scores --db ~/.arcade/pacman.db
  pacman scores --db ~/.arcade/pacman.db --interactive`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a scrollable table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, _ []string) error {
	if flagDBPath == "" {
		return errors.New("no scores database: pass --db <path>")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	scores, err := store.TopScores(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Pacman")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'pacman play --db %s' to set the first high score!\n", flagDBPath)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-7s  %-9s  %s\n", "Rank", "Score", "Ticks", "End", "Backend", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-7s  %-9s  %s\n", "----", "-----", "-----", "---", "-------", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8d  %-8d  %-7s  %-9s  %s\n",
			i+1, entry.Run.Score, entry.Run.Ticks, entry.Run.Reason, entry.Run.Backend,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	return nil
}
