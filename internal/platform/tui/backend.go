package tui

import (
	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Backend implements core.Backend on top of a character canvas.
// The Bubble Tea model feeds it key presses and quit requests between ticks.
type Backend struct {
	canvas *core.Canvas
	hold   *KeyHold
	events []core.Event
	tick   int
}

// NewBackend creates a backend with a cols x rows canvas over the field.
func NewBackend(cols, rows int, fieldW, fieldH float64, holdTicks int) *Backend {
	return &Backend{
		canvas: core.NewCanvas(cols, rows, fieldW, fieldH),
		hold:   NewKeyHold(holdTicks),
	}
}

// Press records a directional key-down.
func (b *Backend) Press(k core.Key) {
	b.hold.Press(k, b.tick)
}

// RequestQuit queues a quit event for the next tick.
func (b *Backend) RequestQuit() {
	b.events = append(b.events, core.EventQuit)
}

// Advance moves the key-hold clock to the next tick.
func (b *Backend) Advance() {
	b.tick++
}

// Resize changes the canvas grid.
func (b *Backend) Resize(cols, rows int) {
	b.canvas.Resize(max(cols, 0), max(rows, 0))
}

// Frame returns the last presented frame.
func (b *Backend) Frame() *core.Screen {
	return b.canvas.Frame()
}

func (b *Backend) PollEvents() []core.Event {
	events := b.events
	b.events = nil
	return events
}

func (b *Backend) KeyState() core.KeyState {
	return b.hold.State(b.tick)
}

func (b *Backend) Clear(bg core.Color) { b.canvas.Clear(bg) }

func (b *Backend) DrawCircle(center core.Vec, radius float64, c core.Color) {
	b.canvas.DrawCircle(center, radius, c)
}

func (b *Backend) DrawPolygon(points []core.Vec, c core.Color) {
	b.canvas.DrawPolygon(points, c)
}

func (b *Backend) DrawText(text string, pos core.Vec, c core.Color) {
	b.canvas.DrawText(text, pos, c)
}

func (b *Backend) Present() { b.canvas.Present() }

// SleepToRate is a no-op: tea.Tick paces the program.
func (b *Backend) SleepToRate(int) {}
