// pacman is a single-screen arcade game: eat pellets, avoid the ghosts.
//
// Usage:
//
//	pacman play              - Play in the terminal
//	pacman window            - Play in a desktop window
//	pacman sim               - Run without a display and print the result
//	pacman scores            - Show recorded high scores
//	pacman config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Custom config YAML
//	--db <path>         - Record final scores in a SQLite database
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

// logger is configured by the root command before any subcommand runs.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "pacman",
})

// logFile is the open --log-file, if any.
var logFile *os.File

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	closeLog()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Pacman - eat pellets, dodge ghosts",
	Long: `A single-screen Pacman. Steer with the arrow keys, eat the pellets
(+10 each, they respawn immediately) and avoid the wandering ghosts.
Touching a ghost ends the game.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  sim      - Run headless with scripted input
  scores   - View recorded high scores
  config   - Print the effective configuration

Examples:
  pacman play
  pacman play --seed 42 --db ~/.arcade/pacman.db
  pacman window --fps 30
  pacman sim --ticks 600 --fast --keys R60,D60,L60,U60
  pacman scores --db ~/.arcade/pacman.db`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (empty = do not record)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogger applies --log-level and --log-file.
func setupLogger(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	if flagLogFile == "" {
		return nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f
	logger.SetOutput(f)
	return nil
}

// quietStderr discards logs bound for stderr while the terminal UI owns the
// screen. A --log-file keeps receiving them.
func quietStderr() {
	if logFile == nil {
		logger.SetOutput(io.Discard)
	}
}

func closeLog() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
