package pacman

import (
	"math/rand"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Wander holds the ghost movement policy shared by all ghosts.
type Wander struct {
	// RerollChance is the per-tick probability of picking a new random direction.
	RerollChance float64
	// RerollOnClamp also re-rolls when a wall stops the ghost. When false a
	// ghost keeps pushing into the wall, sliding nowhere, until a random re-roll.
	RerollOnClamp bool
}

// Ghost wanders the field in straight lines, changing direction at random.
// It never looks at the player.
type Ghost struct {
	Pos    core.Vec
	Radius float64
	Speed  float64
	Color  core.Color
	Dir    Direction

	EyeColor  core.Color
	EyeRadius float64
	EyeOffset float64
}

// Advance possibly re-rolls the direction, then moves one step and clamps.
func (g *Ghost) Advance(rng *rand.Rand, f Field, w Wander) {
	if rng.Float64() < w.RerollChance {
		g.Dir = randomDirection(rng)
	}

	want := g.Pos.Add(g.Dir.Delta().Scale(g.Speed))
	g.Pos = f.Clamp(want, g.Radius)

	if w.RerollOnClamp && g.Pos != want {
		g.Dir = randomDirection(rng)
	}
}

// Overlaps reports whether the ghost's circle intersects the player's.
func (g *Ghost) Overlaps(pl *Player) bool {
	return core.CirclesOverlap(pl.Pos, pl.Radius, g.Pos, g.Radius)
}

// Render draws the body and two eyes up-left and up-right of centre.
func (g *Ghost) Render(r core.Renderer) {
	r.DrawCircle(g.Pos, g.Radius, g.Color)
	if g.EyeRadius <= 0 {
		return
	}
	r.DrawCircle(g.Pos.Add(core.V(-g.EyeOffset, -g.EyeOffset)), g.EyeRadius, g.EyeColor)
	r.DrawCircle(g.Pos.Add(core.V(g.EyeOffset, -g.EyeOffset)), g.EyeRadius, g.EyeColor)
}

func randomDirection(rng *rand.Rand) Direction {
	return Directions[rng.Intn(len(Directions))]
}
