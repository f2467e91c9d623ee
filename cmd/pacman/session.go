package main

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// session is one game from setup to the recorded result.
type session struct {
	runID   string
	backend string
	seed    int64
	cfg     config.PacmanConfig
	state   *pacman.State
}

// newSession loads the config, resolves the seed and builds the game state.
func newSession(backend string) (*session, error) {
	cfg, source, err := config.LoadPacman(flagConfig)
	if err != nil {
		return nil, err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &session{
		runID:   uuid.NewString(),
		backend: backend,
		seed:    seed,
		cfg:     cfg,
		state:   pacman.NewState(cfg, seed),
	}

	logger.Info("game starting",
		"run", s.runID,
		"backend", backend,
		"seed", seed,
		"config", source,
		"fps", flagFPS,
	)
	return s, nil
}

// finish logs the result and records it when --db is set.
// A failed save is logged and does not fail the run.
func (s *session) finish(res pacman.Result) {
	gs := s.state.GameState()
	if !gs.GameOver {
		logger.Warn("backend returned before the game ended", "run", s.runID, "ticks", gs.Ticks)
	}
	logger.Info("game ended",
		"run", s.runID,
		"reason", string(res.Reason),
		"score", res.Score,
		"ticks", res.Ticks,
	)

	if flagDBPath == "" {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return
	}
	defer store.Close()

	prev, err := store.HighScore()
	if err != nil && !errors.Is(err, storage.ErrNoScores) {
		logger.Warn("could not read high score", "error", err)
	}

	_, err = store.SaveRun(storage.Run{
		RunID:   s.runID,
		Backend: s.backend,
		Seed:    s.seed,
		Score:   res.Score,
		Ticks:   res.Ticks,
		Reason:  string(res.Reason),
	})
	if err != nil {
		logger.Warn("could not save score", "error", err)
		return
	}

	if res.Score > prev {
		logger.Info("new high score", "score", res.Score, "previous", prev)
	}
}
