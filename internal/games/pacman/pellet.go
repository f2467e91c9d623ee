package pacman

import (
	"math/rand"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Pellet is a piece of food. Eaten pellets are relocated in the same tick,
// so the pellet count never changes.
type Pellet struct {
	Pos    core.Vec
	Radius float64
	Color  core.Color
	Eaten  bool
}

// Relocate moves the pellet to a uniformly random spot and makes it edible again.
func (p *Pellet) Relocate(rng *rand.Rand, f Field) {
	p.Pos = f.RandomPosition(rng, p.Radius)
	p.Eaten = false
}

// Overlaps reports whether the player's circle touches the pellet.
func (p *Pellet) Overlaps(pl *Player) bool {
	return core.CirclesOverlap(pl.Pos, pl.Radius, p.Pos, p.Radius)
}

// Render draws the pellet unless it has been eaten.
func (p *Pellet) Render(r core.Renderer) {
	if p.Eaten {
		return
	}
	r.DrawCircle(p.Pos, p.Radius, p.Color)
}
