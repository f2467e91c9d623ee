package pacman

import (
	"context"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Result is the outcome of a finished Run.
type Result struct {
	Score  int
	Ticks  uint64
	Reason EndReason
}

// RunTick executes one tick: drain events, read keys, simulate, render.
// Hosts that own their own loop (Bubble Tea, ebiten) call it once per
// host tick and stop when it returns core.Ended.
func RunTick(s *State, b core.Backend) core.LoopSignal {
	if !s.Running() {
		return core.Ended
	}

	if core.HasQuit(b.PollEvents()) {
		s.end(EndQuit)
		return core.Ended
	}

	Step(s, b.KeyState())
	Render(s, b)

	if !s.Running() {
		return core.Ended
	}
	return core.Continue
}

// Step advances the simulation by one tick with the given keys held.
// Pellet collisions are resolved before ghost collisions, so a tick that
// both eats a pellet and touches a ghost still scores the pellet.
func Step(s *State, keys core.KeyState) {
	if !s.Running() {
		return
	}
	s.Tick++

	s.Player.Advance(keys, s.Field)

	for i := range s.Ghosts {
		s.Ghosts[i].Advance(s.rng, s.Field, s.Wander)
	}

	for i := range s.Pellets {
		p := &s.Pellets[i]
		if p.Eaten || !p.Overlaps(&s.Player) {
			continue
		}
		p.Eaten = true
		s.Score.Award(s.Reward)
		p.Relocate(s.rng, s.Field)
	}

	for i := range s.Ghosts {
		if s.Ghosts[i].Overlaps(&s.Player) {
			s.end(EndCaught)
			break
		}
	}
}

// Render draws one full frame and presents it.
func Render(s *State, r core.Renderer) {
	r.Clear(s.Background)
	for i := range s.Pellets {
		s.Pellets[i].Render(r)
	}
	for i := range s.Ghosts {
		s.Ghosts[i].Render(r)
	}
	s.Player.Render(r, s.Background)
	s.Score.Render(r, s.HUDPos, s.HUDColor)
	r.Present()
}

// Run drives the loop itself, pacing with the backend, until the game ends
// or ctx is cancelled. Cancellation is checked once per tick.
func Run(ctx context.Context, s *State, b core.Backend, hz int) (Result, error) {
	for {
		if err := ctx.Err(); err != nil {
			return s.Result(), err
		}
		if RunTick(s, b) == core.Ended {
			return s.Result(), nil
		}
		b.SleepToRate(hz)
	}
}

// Result reports the outcome so far.
func (s *State) Result() Result {
	return Result{
		Score:  s.Score.Value(),
		Ticks:  s.Tick,
		Reason: s.Reason,
	}
}
