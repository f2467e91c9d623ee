package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Quit},
	}
}

// DefaultKeyMap returns arrows plus WASD and vim-style bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Direction maps a key message to a directional key.
func (k KeyMap) Direction(msg tea.KeyMsg) (core.Key, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return core.KeyLeft, true
	case key.Matches(msg, k.Right):
		return core.KeyRight, true
	case key.Matches(msg, k.Up):
		return core.KeyUp, true
	case key.Matches(msg, k.Down):
		return core.KeyDown, true
	}
	return 0, false
}

// KeyHold turns key-down events into held key state.
// Terminals never report key releases, so a key stays held for a fixed
// number of ticks after its last press. Auto-repeat refreshes it.
type KeyHold struct {
	hold  int
	until map[core.Key]int
}

// NewKeyHold creates a tracker that holds each key for ticks ticks.
func NewKeyHold(ticks int) *KeyHold {
	if ticks < 1 {
		ticks = 1
	}
	return &KeyHold{
		hold:  ticks,
		until: make(map[core.Key]int),
	}
}

// Press records a key-down seen before the given tick.
func (h *KeyHold) Press(k core.Key, tick int) {
	h.until[k] = tick + h.hold
}

// State returns the keys still held at tick.
func (h *KeyHold) State(tick int) core.KeyState {
	ks := core.NewKeyState()
	for k, until := range h.until {
		if tick < until {
			ks.Set(k)
		} else {
			delete(h.until, k)
		}
	}
	return ks
}
