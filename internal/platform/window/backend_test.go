package window

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

type stubInput struct {
	held map[core.Key]bool
	quit bool
}

func (s *stubInput) Pressed(k core.Key) bool { return s.held[k] }
func (s *stubInput) QuitRequested() bool     { return s.quit }

func TestBackendKeyState(t *testing.T) {
	in := &stubInput{held: map[core.Key]bool{core.KeyLeft: true, core.KeyDown: true}}
	b := NewBackend(in)

	ks := b.KeyState()
	for _, k := range []core.Key{core.KeyLeft, core.KeyRight, core.KeyUp, core.KeyDown} {
		if got, want := ks.Pressed(k), in.held[k]; got != want {
			t.Errorf("%v pressed = %v, want %v", k, got, want)
		}
	}
}

func TestBackendPollEvents(t *testing.T) {
	in := &stubInput{}
	b := NewBackend(in)

	if len(b.PollEvents()) != 0 {
		t.Error("events without a quit request")
	}
	in.quit = true
	if !core.HasQuit(b.PollEvents()) {
		t.Error("quit request not reported")
	}
}

func TestBackendPresentSwapsFrame(t *testing.T) {
	b := NewBackend(&stubInput{})

	b.Clear(core.ColorBlack)
	b.DrawCircle(core.V(1, 2), 3, core.ColorRed)
	if len(b.presented()) != 0 {
		t.Fatal("frame visible before Present")
	}
	b.Present()

	poly := []core.Vec{core.V(0, 0), core.V(10, 0), core.V(0, 10)}
	b.Clear(core.ColorBlack)
	b.DrawPolygon(poly, core.ColorBlack)
	b.DrawText("Score: 0", core.V(10, 10), core.ColorWhite)
	poly[0] = core.V(99, 99)

	frame := b.presented()
	if len(frame) != 2 || frame[1].kind != cmdCircle || frame[1].color != core.ColorRed {
		t.Fatalf("first frame = %+v", frame)
	}

	b.Present()
	frame = b.presented()
	if len(frame) != 3 {
		t.Fatalf("second frame has %d commands, want 3", len(frame))
	}
	if frame[1].kind != cmdPolygon || frame[1].points[0] != core.V(0, 0) {
		t.Errorf("polygon command = %+v", frame[1])
	}
	if frame[2].kind != cmdText || frame[2].text != "Score: 0" {
		t.Errorf("text command = %+v", frame[2])
	}
}

func TestGameUpdateTerminatesOnQuit(t *testing.T) {
	state := pacman.NewState(config.DefaultPacmanConfig(), 5)
	for i := range state.Ghosts {
		state.Ghosts[i].Pos = core.V(700, 500)
	}
	in := &stubInput{}
	g := NewGame(state, NewBackend(in))

	if err := g.Update(); err != nil {
		t.Fatalf("Update() = %v, want nil", err)
	}
	if len(g.backend.presented()) == 0 {
		t.Error("tick did not present a frame")
	}

	in.quit = true
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("Update() = %v, want ebiten.Termination", err)
	}
	if state.Reason != pacman.EndQuit {
		t.Errorf("reason = %q, want quit", state.Reason)
	}
}

func TestLayoutIsFieldSize(t *testing.T) {
	state := pacman.NewState(config.DefaultPacmanConfig(), 5)
	g := NewGame(state, NewBackend(&stubInput{}))

	if w, h := g.Layout(1920, 1080); w != 800 || h != 600 {
		t.Errorf("Layout() = %dx%d, want 800x600", w, h)
	}
}
