package window

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

// textAscent moves text so pos is its top-left corner.
const textAscent = 11

// Game adapts a pacman.State to ebiten.Game.
type Game struct {
	state   *pacman.State
	backend *Backend
	white   *ebiten.Image
}

// NewGame wraps a state and backend for ebiten.
func NewGame(state *pacman.State, backend *Backend) *Game {
	return &Game{state: state, backend: backend}
}

// Update runs one simulation tick.
func (g *Game) Update() error {
	if pacman.RunTick(g.state, g.backend) == core.Ended {
		return ebiten.Termination
	}
	return nil
}

// Draw replays the last presented frame.
func (g *Game) Draw(screen *ebiten.Image) {
	for _, cmd := range g.backend.presented() {
		switch cmd.kind {
		case cmdClear:
			screen.Fill(rgba(cmd.color))
		case cmdCircle:
			vector.DrawFilledCircle(screen, float32(cmd.center.X), float32(cmd.center.Y), float32(cmd.radius), rgba(cmd.color), true)
		case cmdPolygon:
			g.fillPolygon(screen, cmd.points, cmd.color)
		case cmdText:
			text.Draw(screen, cmd.text, basicfont.Face7x13, int(cmd.center.X), int(cmd.center.Y)+textAscent, rgba(cmd.color))
		}
	}
}

// fillPolygon fills a closed path with a solid colour.
func (g *Game) fillPolygon(screen *ebiten.Image, points []core.Vec, c core.Color) {
	if len(points) < 3 {
		return
	}
	if g.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		g.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, gr, b := c.RGB()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 255
		vs[i].ColorG = float32(gr) / 255
		vs[i].ColorB = float32(b) / 255
		vs[i].ColorA = 1
	}
	screen.DrawTriangles(vs, is, g.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// Layout keeps the logical screen at the field size.
func (g *Game) Layout(int, int) (int, int) {
	return int(g.state.Field.W), int(g.state.Field.H)
}

func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Options configures the desktop window.
type Options struct {
	TickRate int
	Title    string
}

// Run opens a window and plays until the game ends or the window closes.
func Run(state *pacman.State, opts Options) (pacman.Result, error) {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Title == "" {
		opts.Title = "Pacman"
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowSize(int(state.Field.W), int(state.Field.H))
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(opts.TickRate)

	err := ebiten.RunGame(NewGame(state, NewBackend(nil)))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return state.Result(), fmt.Errorf("window: %w", err)
	}
	return state.Result(), nil
}
