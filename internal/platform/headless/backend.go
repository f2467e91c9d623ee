package headless

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

// Options configures a headless run.
type Options struct {
	Cols, Rows int  // Size of the character frame
	MaxTicks   int  // Quit after this many ticks; 0 runs until caught
	Fast       bool // Skip pacing
	Script     Script
}

// Backend implements core.Backend without a display.
type Backend struct {
	canvas   *core.Canvas
	script   Script
	maxTicks int
	fast     bool
	tick     int
	ticker   *time.Ticker
	hz       int
}

// NewBackend creates a backend over a field of the given size.
func NewBackend(fieldW, fieldH float64, opts Options) *Backend {
	if opts.Cols <= 0 {
		opts.Cols = 80
	}
	if opts.Rows <= 0 {
		opts.Rows = 24
	}
	return &Backend{
		canvas:   core.NewCanvas(opts.Cols, opts.Rows, fieldW, fieldH),
		script:   opts.Script,
		maxTicks: opts.MaxTicks,
		fast:     opts.Fast,
	}
}

// Frame returns the last presented frame.
func (b *Backend) Frame() *core.Screen {
	return b.canvas.Frame()
}

// PollEvents reports a quit once the tick budget is spent.
func (b *Backend) PollEvents() []core.Event {
	if b.maxTicks > 0 && b.tick >= b.maxTicks {
		return []core.Event{core.EventQuit}
	}
	return nil
}

// KeyState returns the scripted keys for the current tick and advances it.
func (b *Backend) KeyState() core.KeyState {
	ks := b.script.KeysAt(b.tick)
	b.tick++
	return ks
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

// SleepToRate blocks until the next tick boundary of a fixed-rate ticker.
func (b *Backend) SleepToRate(hz int) {
	if b.fast || hz <= 0 {
		return
	}
	if b.ticker == nil || b.hz != hz {
		if b.ticker != nil {
			b.ticker.Stop()
		}
		b.ticker = time.NewTicker(time.Second / time.Duration(hz))
		b.hz = hz
	}
	<-b.ticker.C
}

// Close stops the pacing ticker.
func (b *Backend) Close() {
	if b.ticker != nil {
		b.ticker.Stop()
		b.ticker = nil
	}
}

// Run plays the game to completion and returns the result with the final frame.
func Run(ctx context.Context, state *pacman.State, hz int, opts Options) (pacman.Result, *core.Screen, error) {
	b := NewBackend(state.Field.W, state.Field.H, opts)
	defer b.Close()

	res, err := pacman.Run(ctx, state, b, hz)
	return res, b.Frame(), err
}
