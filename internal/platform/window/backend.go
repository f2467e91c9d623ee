// Package window runs the game in a desktop window through ebiten.
// Ebiten owns the loop: Update advances one tick, Draw replays the frame
// the tick presented.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Input reports the raw window input for one tick.
type Input interface {
	Pressed(k core.Key) bool
	QuitRequested() bool
}

// keyBindings lists the physical keys for each directional key.
var keyBindings = map[core.Key][]ebiten.Key{
	core.KeyLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.KeyRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	core.KeyUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	core.KeyDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
}

// ebitenInput reads the live keyboard and window state.
type ebitenInput struct{}

func (ebitenInput) Pressed(k core.Key) bool {
	for _, ek := range keyBindings[k] {
		if ebiten.IsKeyPressed(ek) {
			return true
		}
	}
	return false
}

func (ebitenInput) QuitRequested() bool {
	return ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ)
}

type cmdKind int

const (
	cmdClear cmdKind = iota
	cmdCircle
	cmdPolygon
	cmdText
)

// drawCmd is one buffered primitive.
type drawCmd struct {
	kind   cmdKind
	color  core.Color
	center core.Vec
	radius float64
	points []core.Vec
	text   string
}

// Backend implements core.Backend by buffering draw calls. Present
// publishes the buffer as the frame Draw replays.
type Backend struct {
	input   Input
	pending []drawCmd
	frame   []drawCmd
}

// NewBackend creates a backend reading the given input.
// A nil input reads the live ebiten keyboard.
func NewBackend(input Input) *Backend {
	if input == nil {
		input = ebitenInput{}
	}
	return &Backend{input: input}
}

// presented returns the commands of the last presented frame.
func (b *Backend) presented() []drawCmd {
	return b.frame
}

func (b *Backend) PollEvents() []core.Event {
	if b.input.QuitRequested() {
		return []core.Event{core.EventQuit}
	}
	return nil
}

func (b *Backend) KeyState() core.KeyState {
	ks := core.NewKeyState()
	for _, k := range []core.Key{core.KeyLeft, core.KeyRight, core.KeyUp, core.KeyDown} {
		if b.input.Pressed(k) {
			ks.Set(k)
		}
	}
	return ks
}

func (b *Backend) Clear(bg core.Color) {
	b.pending = append(b.pending[:0], drawCmd{kind: cmdClear, color: bg})
}

func (b *Backend) DrawCircle(center core.Vec, radius float64, c core.Color) {
	b.pending = append(b.pending, drawCmd{kind: cmdCircle, color: c, center: center, radius: radius})
}

func (b *Backend) DrawPolygon(points []core.Vec, c core.Color) {
	pts := make([]core.Vec, len(points))
	copy(pts, points)
	b.pending = append(b.pending, drawCmd{kind: cmdPolygon, color: c, points: pts})
}

func (b *Backend) DrawText(text string, pos core.Vec, c core.Color) {
	b.pending = append(b.pending, drawCmd{kind: cmdText, color: c, center: pos, text: text})
}

func (b *Backend) Present() {
	b.frame = append(b.frame[:0], b.pending...)
	b.pending = b.pending[:0]
}

// SleepToRate is a no-op: ebiten.SetTPS paces Update.
func (b *Backend) SleepToRate(int) {}
