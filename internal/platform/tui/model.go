package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

// helpHeight is the number of rows reserved for the help footer.
const helpHeight = 1

// Options configures a terminal session.
type Options struct {
	TickRate  int // Ticks per second
	HoldTicks int // Ticks a key stays held after a press
	Width     int // Initial terminal size; updated by WindowSizeMsg
	Height    int
}

// Model is the Bubble Tea model for a running game.
type Model struct {
	state    *pacman.State
	backend  *Backend
	keys     KeyMap
	help     help.Model
	opts     Options
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game state.
func NewModel(state *pacman.State, opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}

	h := help.New()
	h.Width = opts.Width

	return Model{
		state:   state,
		backend: NewBackend(opts.Width, opts.Height-helpHeight, state.Field.W, state.Field.H, opts.HoldTicks),
		keys:    DefaultKeyMap(),
		help:    h,
		opts:    opts,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Quit is delivered to the game as an
// event so it is seen at the top of the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.backend.RequestQuit()
		return m, nil
	}
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if k, ok := m.keys.Direction(msg); ok {
		m.backend.Press(k)
	}
	return m, nil
}

// handleResize rescales the canvas. The field keeps its size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Width = msg.Width
	m.opts.Height = msg.Height
	m.backend.Resize(msg.Width, msg.Height-helpHeight)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	sig := pacman.RunTick(m.state, m.backend)
	m.backend.Advance()

	if sig == core.Ended {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.opts.TickRate)
}

// saveScreenshot saves the current frame to a text file.
func (m *Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("pacman_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.backend.Frame().String()), 0o600)
}

// View renders the last presented frame with a help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.backend.Frame()) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run plays the game in the terminal until it ends or ctx is cancelled.
func Run(ctx context.Context, state *pacman.State, opts Options) (pacman.Result, error) {
	model := NewModel(state, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		return state.Result(), fmt.Errorf("tui: %w", err)
	}
	return state.Result(), nil
}
