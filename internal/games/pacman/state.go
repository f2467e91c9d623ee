// Package pacman implements a single-screen Pacman: the player eats pellets
// that respawn at random while avoiding ghosts that wander without a plan.
// Touching a ghost ends the game.
//
// The package is display-agnostic. All state lives in State, owned by the
// caller, and a tick is driven through the core.Backend contract.
package pacman

import (
	"math/rand"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Phase is the loop state.
type Phase string

const (
	PhaseRunning Phase = "running"
	PhaseEnded   Phase = "ended"
)

// EndReason records why the loop stopped.
type EndReason string

const (
	EndNone   EndReason = ""
	EndQuit   EndReason = "quit"
	EndCaught EndReason = "caught"
)

// State is the complete simulation state. It is mutated only by Step and
// RunTick on the goroutine that owns it.
type State struct {
	Field      Field
	Background core.Color
	Player     Player
	Pellets    []Pellet
	Ghosts     []Ghost
	Score      ScoreTracker
	Reward     int
	Wander     Wander
	HUDPos     core.Vec
	HUDColor   core.Color

	Phase  Phase
	Reason EndReason
	Tick   uint64

	rng *rand.Rand
}

// NewState builds a fresh game from a validated config.
// The same config and seed always produce the same game.
func NewState(cfg config.PacmanConfig, seed int64) *State {
	rng := rand.New(rand.NewSource(seed))
	field := Field{W: cfg.Field.Width, H: cfg.Field.Height}

	s := &State{
		Field:      field,
		Background: config.ColorOf(cfg.Field.Background),
		Player: Player{
			Pos:        field.Center(),
			Radius:     cfg.Player.Radius,
			Speed:      cfg.Player.Speed,
			Color:      config.ColorOf(cfg.Player.Color),
			Facing:     DirRight,
			MouthAngle: cfg.Player.MouthMax,
			MouthDir:   1,
			MouthMax:   cfg.Player.MouthMax,
			MouthStep:  cfg.Player.MouthStep,
		},
		Reward: cfg.Pellets.Reward,
		Wander: Wander{
			RerollChance:  cfg.Ghosts.RerollChance,
			RerollOnClamp: cfg.Ghosts.RerollOnClamp,
		},
		HUDPos:   core.V(cfg.HUD.X, cfg.HUD.Y),
		HUDColor: config.ColorOf(cfg.HUD.Color),
		Phase:    PhaseRunning,
		rng:      rng,
	}

	s.Pellets = make([]Pellet, cfg.Pellets.Count)
	for i := range s.Pellets {
		s.Pellets[i] = Pellet{
			Radius: cfg.Pellets.Radius,
			Color:  config.ColorOf(cfg.Pellets.Color),
		}
		s.Pellets[i].Relocate(rng, field)
	}

	s.Ghosts = make([]Ghost, len(cfg.Ghosts.Colors))
	for i, name := range cfg.Ghosts.Colors {
		s.Ghosts[i] = Ghost{
			Pos:       field.RandomPosition(rng, cfg.Ghosts.Radius),
			Radius:    cfg.Ghosts.Radius,
			Speed:     cfg.Ghosts.Speed,
			Color:     config.ColorOf(name),
			Dir:       randomDirection(rng),
			EyeColor:  config.ColorOf(cfg.Ghosts.EyeColor),
			EyeRadius: cfg.Ghosts.EyeRadius,
			EyeOffset: cfg.Ghosts.EyeOffset,
		}
	}

	return s
}

// Running reports whether the loop should keep ticking.
func (s *State) Running() bool {
	return s.Phase == PhaseRunning
}

// GameState summarises the state for the platform layer.
func (s *State) GameState() core.GameState {
	return core.GameState{
		Score:    s.Score.Value(),
		Ticks:    int(s.Tick),
		GameOver: !s.Running(),
	}
}

// end moves the loop to Ended. The first reason sticks.
func (s *State) end(reason EndReason) {
	if s.Phase == PhaseEnded {
		return
	}
	s.Phase = PhaseEnded
	s.Reason = reason
}
