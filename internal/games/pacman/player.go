package pacman

import (
	"math"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// moveOrder is the order keys are evaluated in each tick.
// Facing ends up as the last pressed key in this order.
var moveOrder = [...]struct {
	key core.Key
	dir Direction
}{
	{core.KeyLeft, DirLeft},
	{core.KeyRight, DirRight},
	{core.KeyUp, DirUp},
	{core.KeyDown, DirDown},
}

// Player is the mouth-animated circle steered by the keyboard.
type Player struct {
	Pos    core.Vec
	Radius float64
	Speed  float64
	Color  core.Color

	Facing     Direction
	MouthAngle float64 // Half-opening in degrees, within [0, MouthMax]
	MouthDir   float64 // +1 opening, -1 closing
	MouthMax   float64
	MouthStep  float64
}

// Advance moves the player for one tick and animates the mouth.
// Each held key moves its own axis, so diagonal movement is possible.
func (p *Player) Advance(keys core.KeyState, f Field) {
	for _, m := range moveOrder {
		if !keys.Pressed(m.key) {
			continue
		}
		step := m.dir.Delta().Scale(p.Speed)
		if step.X != 0 {
			p.Pos.X = f.ClampX(p.Pos.X+step.X, p.Radius)
		}
		if step.Y != 0 {
			p.Pos.Y = f.ClampY(p.Pos.Y+step.Y, p.Radius)
		}
		p.Facing = m.dir
	}

	p.animateMouth()
}

// animateMouth oscillates the mouth between closed and MouthMax.
func (p *Player) animateMouth() {
	p.MouthAngle = core.ClampF(p.MouthAngle+p.MouthDir*p.MouthStep, 0, p.MouthMax)
	if p.MouthAngle >= p.MouthMax {
		p.MouthDir = -1
	} else if p.MouthAngle <= 0 {
		p.MouthDir = 1
	}
}

// BodySpan returns the angular span (degrees) covered by the body.
// The rest of the circle is the mouth.
func (p *Player) BodySpan() (start, end float64) {
	base := p.Facing.BaseAngle()
	return base + p.MouthAngle, base + 360 - p.MouthAngle
}

// MouthWedge returns the mouth polygon: the centre followed by points on
// the rim across the opening. A closed mouth yields a single rim point.
func (p *Player) MouthWedge() []core.Vec {
	start, end := p.BodySpan()
	// The opening runs from the end of the body round to its start.
	from, to := end-360, start
	steps := int(math.Ceil(to - from))

	// Slightly past the rim so anti-aliased edges are covered too
	rim := p.Radius + 1
	points := []core.Vec{p.Pos}
	if steps < 1 {
		return append(points, core.PolarPoint(p.Pos, rim, from))
	}
	for i := 0; i <= steps; i++ {
		angle := from + (to-from)*float64(i)/float64(steps)
		points = append(points, core.PolarPoint(p.Pos, rim, angle))
	}
	return points
}

// Render draws the body and cuts the mouth out in the background colour.
func (p *Player) Render(r core.Renderer, bg core.Color) {
	r.DrawCircle(p.Pos, p.Radius, p.Color)

	wedge := p.MouthWedge()
	if len(wedge)-1 < 2 {
		return
	}
	r.DrawPolygon(wedge, bg)
}
