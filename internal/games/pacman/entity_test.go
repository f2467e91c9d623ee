package pacman

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

var testField = Field{W: 800, H: 600}

func newPlayer() Player {
	return Player{
		Pos:        testField.Center(),
		Radius:     20,
		Speed:      5,
		Color:      core.ColorYellow,
		Facing:     DirRight,
		MouthAngle: 45,
		MouthDir:   1,
		MouthMax:   45,
		MouthStep:  3,
	}
}

func TestDirectionLookup(t *testing.T) {
	tests := []struct {
		dir   Direction
		angle float64
		delta core.Vec
	}{
		{DirRight, 0, core.V(1, 0)},
		{DirDown, 90, core.V(0, 1)},
		{DirLeft, 180, core.V(-1, 0)},
		{DirUp, 270, core.V(0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := tt.dir.BaseAngle(); got != tt.angle {
				t.Errorf("BaseAngle() = %v, want %v", got, tt.angle)
			}
			if got := tt.dir.Delta(); got != tt.delta {
				t.Errorf("Delta() = %v, want %v", got, tt.delta)
			}
		})
	}
}

func TestPlayerMovesAndClampsPerAxis(t *testing.T) {
	tests := []struct {
		name  string
		start core.Vec
		keys  core.KeyState
		want  core.Vec
	}{
		{"no keys", core.V(100, 100), core.NewKeyState(), core.V(100, 100)},
		{"right", core.V(100, 100), core.Keys(core.KeyRight), core.V(105, 100)},
		{"up", core.V(100, 100), core.Keys(core.KeyUp), core.V(100, 95)},
		{"diagonal", core.V(100, 100), core.Keys(core.KeyLeft, core.KeyDown), core.V(95, 105)},
		{"left and right cancel", core.V(100, 100), core.Keys(core.KeyLeft, core.KeyRight), core.V(100, 100)},
		{"left wall", core.V(22, 100), core.Keys(core.KeyLeft), core.V(20, 100)},
		{"right wall", core.V(779, 100), core.Keys(core.KeyRight), core.V(780, 100)},
		{"top wall", core.V(100, 20), core.Keys(core.KeyUp), core.V(100, 20)},
		{"bottom corner", core.V(778, 578), core.Keys(core.KeyRight, core.KeyDown), core.V(780, 580)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPlayer()
			p.Pos = tt.start
			p.Advance(tt.keys, testField)
			if p.Pos != tt.want {
				t.Errorf("Pos = %v, want %v", p.Pos, tt.want)
			}
		})
	}
}

func TestPlayerFacingLastPressedWins(t *testing.T) {
	tests := []struct {
		name string
		keys core.KeyState
		want Direction
	}{
		{"none keeps facing", core.NewKeyState(), DirRight},
		{"left", core.Keys(core.KeyLeft), DirLeft},
		{"left and right", core.Keys(core.KeyLeft, core.KeyRight), DirRight},
		{"left and up", core.Keys(core.KeyLeft, core.KeyUp), DirUp},
		{"right and down", core.Keys(core.KeyRight, core.KeyDown), DirDown},
		{"up and down", core.Keys(core.KeyUp, core.KeyDown), DirDown},
		{"all four", core.Keys(core.KeyLeft, core.KeyRight, core.KeyUp, core.KeyDown), DirDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPlayer()
			p.Advance(tt.keys, testField)
			if p.Facing != tt.want {
				t.Errorf("Facing = %v, want %v", p.Facing, tt.want)
			}
		})
	}
}

func TestPlayerMouthOscillatesWithinBounds(t *testing.T) {
	p := newPlayer()

	// First advance must flip to closing without overshooting.
	p.Advance(core.NewKeyState(), testField)
	if p.MouthAngle != 45 || p.MouthDir != -1 {
		t.Fatalf("after first advance: angle=%v dir=%v, want 45 -1", p.MouthAngle, p.MouthDir)
	}

	sawClosed := false
	prev := p.MouthAngle
	for i := 0; i < 300; i++ {
		p.Advance(core.NewKeyState(), testField)

		if p.MouthAngle < 0 || p.MouthAngle > 45 {
			t.Fatalf("tick %d: mouth %v out of [0,45]", i, p.MouthAngle)
		}
		if d := p.MouthAngle - prev; d > 3 || d < -3 {
			t.Fatalf("tick %d: mouth jumped by %v", i, d)
		}
		if p.MouthAngle == 45 && p.MouthDir != -1 {
			t.Fatalf("tick %d: at max but dir=%v", i, p.MouthDir)
		}
		if p.MouthAngle == 0 {
			sawClosed = true
			if p.MouthDir != 1 {
				t.Fatalf("tick %d: at zero but dir=%v", i, p.MouthDir)
			}
		}
		prev = p.MouthAngle
	}

	if !sawClosed {
		t.Error("mouth never closed")
	}
}

func TestPlayerBodySpan(t *testing.T) {
	tests := []struct {
		facing     Direction
		mouth      float64
		start, end float64
	}{
		{DirRight, 45, 45, 315},
		{DirDown, 30, 120, 420},
		{DirLeft, 0, 180, 540},
		{DirUp, 45, 315, 585},
	}

	for _, tt := range tests {
		t.Run(tt.facing.String(), func(t *testing.T) {
			p := newPlayer()
			p.Facing = tt.facing
			p.MouthAngle = tt.mouth
			start, end := p.BodySpan()
			if start != tt.start || end != tt.end {
				t.Errorf("BodySpan() = (%v, %v), want (%v, %v)", start, end, tt.start, tt.end)
			}
		})
	}
}

func TestPlayerMouthWedge(t *testing.T) {
	p := newPlayer()
	p.Pos = core.V(100, 100)

	wedge := p.MouthWedge()
	// Centre plus one rim point per degree across the 90 degree opening.
	if len(wedge) != 92 {
		t.Fatalf("len(wedge) = %d, want 92", len(wedge))
	}
	if wedge[0] != p.Pos {
		t.Errorf("wedge starts at %v, want centre", wedge[0])
	}
	// The opening faces right, so every rim point is right of the centre.
	for _, pt := range wedge[1:] {
		if pt.X <= p.Pos.X {
			t.Fatalf("rim point %v is not right of centre", pt)
		}
	}
	if !core.PointInPolygon(core.V(115, 100), wedge) {
		t.Error("point inside the mouth is not covered by the wedge")
	}
	if core.PointInPolygon(core.V(85, 100), wedge) {
		t.Error("point behind the centre is covered by the wedge")
	}
}

func TestPlayerClosedMouthDrawsFullCircle(t *testing.T) {
	p := newPlayer()
	p.MouthAngle = 0

	if got := len(p.MouthWedge()) - 1; got >= 2 {
		t.Fatalf("closed mouth has %d rim points, want fewer than 2", got)
	}

	rec := &recorder{}
	p.Render(rec, core.ColorBlack)
	if rec.count("circle") != 1 || rec.count("polygon") != 0 {
		t.Errorf("ops = %v, want a single circle", rec.ops)
	}
}

func TestPlayerRenderCutsMouthInBackground(t *testing.T) {
	p := newPlayer()
	rec := &recorder{}
	p.Render(rec, core.ColorBlack)

	if len(rec.ops) != 2 || rec.ops[0] != "circle yellow" || rec.ops[1] != "polygon black" {
		t.Errorf("ops = %v, want [circle yellow, polygon black]", rec.ops)
	}
}

func TestGhostStaysOnLeftWall(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g := Ghost{Pos: core.V(20, 300), Radius: 20, Speed: 3, Dir: DirLeft}

	for i := 0; i < 200; i++ {
		g.Advance(rng, testField, Wander{})
		if g.Pos != core.V(20, 300) {
			t.Fatalf("tick %d: ghost moved to %v", i, g.Pos)
		}
		if g.Dir != DirLeft {
			t.Fatalf("tick %d: direction changed to %v without a re-roll", i, g.Dir)
		}
	}
}

func TestGhostRerollOnClampLeavesWall(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := Ghost{Pos: core.V(20, 300), Radius: 20, Speed: 3, Dir: DirLeft}
	w := Wander{RerollOnClamp: true}

	for i := 0; i < 100; i++ {
		g.Advance(rng, testField, w)
		if g.Pos.X > 20 || g.Pos.Y != 300 {
			return
		}
	}
	t.Error("ghost never left the wall with re-roll on clamp")
}

func TestGhostStaysInField(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	g := Ghost{Pos: testField.Center(), Radius: 20, Speed: 3, Dir: DirUp}
	w := Wander{RerollChance: 0.02}

	for i := 0; i < 20000; i++ {
		g.Advance(rng, testField, w)
		if !testField.Contains(g.Pos, g.Radius) {
			t.Fatalf("tick %d: ghost at %v left the field", i, g.Pos)
		}
	}
}

func TestPlayerStaysInField(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	p := newPlayer()
	all := []core.Key{core.KeyLeft, core.KeyRight, core.KeyUp, core.KeyDown}

	for i := 0; i < 5000; i++ {
		keys := core.NewKeyState()
		for _, k := range all {
			if rng.Intn(3) == 0 {
				keys.Set(k)
			}
		}
		p.Advance(keys, testField)
		if !testField.Contains(p.Pos, p.Radius) {
			t.Fatalf("tick %d: player at %v left the field", i, p.Pos)
		}
	}
}

func TestGhostRender(t *testing.T) {
	g := Ghost{
		Pos: core.V(100, 100), Radius: 20, Color: core.ColorRed,
		EyeColor: core.ColorWhite, EyeRadius: 3, EyeOffset: 5,
	}
	rec := &recorder{}
	g.Render(rec)

	want := []string{"circle red", "circle white", "circle white"}
	if len(rec.ops) != len(want) {
		t.Fatalf("ops = %v, want %v", rec.ops, want)
	}
	for i := range want {
		if rec.ops[i] != want[i] {
			t.Errorf("op %d = %q, want %q", i, rec.ops[i], want[i])
		}
	}
	if rec.centers[1] != core.V(95, 95) || rec.centers[2] != core.V(105, 95) {
		t.Errorf("eyes at %v and %v, want (95,95) and (105,95)", rec.centers[1], rec.centers[2])
	}
}

func TestPelletRelocateIsUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	p := Pellet{Radius: 5, Eaten: true}

	const (
		trials = 20000
		bins   = 10
	)
	var xs, ys [bins]int
	for i := 0; i < trials; i++ {
		p.Relocate(rng, testField)
		if p.Eaten {
			t.Fatal("Relocate left pellet eaten")
		}
		if !testField.Contains(p.Pos, p.Radius) {
			t.Fatalf("pellet relocated outside the field: %v", p.Pos)
		}
		xs[bucket(p.Pos.X, 5, 795, bins)]++
		ys[bucket(p.Pos.Y, 5, 595, bins)]++
	}

	expected := trials / bins
	lo, hi := expected*85/100, expected*115/100
	for i := 0; i < bins; i++ {
		if xs[i] < lo || xs[i] > hi {
			t.Errorf("x bin %d has %d draws, want within [%d,%d]", i, xs[i], lo, hi)
		}
		if ys[i] < lo || ys[i] > hi {
			t.Errorf("y bin %d has %d draws, want within [%d,%d]", i, ys[i], lo, hi)
		}
	}
}

func TestGhostDirectionRollIsUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	counts := map[Direction]int{}
	const trials = 8000
	for i := 0; i < trials; i++ {
		counts[randomDirection(rng)]++
	}
	for _, d := range Directions {
		if c := counts[d]; c < trials/4*85/100 || c > trials/4*115/100 {
			t.Errorf("direction %v rolled %d times", d, c)
		}
	}
}

func TestScoreTracker(t *testing.T) {
	var s ScoreTracker
	s.Award(10)
	s.Award(-5)
	s.Award(0)
	s.Award(10)

	if s.Value() != 20 {
		t.Errorf("Value() = %d, want 20", s.Value())
	}
	if s.Text() != "Score: 20" {
		t.Errorf("Text() = %q", s.Text())
	}

	rec := &recorder{}
	s.Render(rec, core.V(10, 10), core.ColorWhite)
	if len(rec.texts) != 1 || rec.texts[0] != "Score: 20" {
		t.Errorf("rendered texts = %v", rec.texts)
	}
}

func bucket(v, lo, hi float64, n int) int {
	i := int((v - lo) / (hi - lo) * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
