// Package config provides YAML-based game configuration loading and
// validation for the arcade platform.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// PacmanConfig contains all configuration for the Pacman game.
type PacmanConfig struct {
	Field   PacmanField   `yaml:"field"`
	Player  PacmanPlayer  `yaml:"player"`
	Pellets PacmanPellets `yaml:"pellets"`
	Ghosts  PacmanGhosts  `yaml:"ghosts"`
	HUD     PacmanHUD     `yaml:"hud"`
	TUI     PacmanTUI     `yaml:"tui"`
}

// PacmanField defines the bounded play area.
type PacmanField struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Background string  `yaml:"background"`
}

// PacmanPlayer defines the player's body and mouth animation.
type PacmanPlayer struct {
	Radius    float64 `yaml:"radius"`
	Speed     float64 `yaml:"speed"`      // Field units per tick per axis
	MouthMax  float64 `yaml:"mouth_max"`  // Degrees, fully open
	MouthStep float64 `yaml:"mouth_step"` // Degrees per tick
	Color     string  `yaml:"color"`
}

// PacmanPellets defines the food pellets.
type PacmanPellets struct {
	Count  int     `yaml:"count"`
	Radius float64 `yaml:"radius"`
	Reward int     `yaml:"reward"`
	Color  string  `yaml:"color"`
}

// PacmanGhosts defines the wandering ghosts. One ghost is created per colour.
type PacmanGhosts struct {
	Radius        float64  `yaml:"radius"`
	Speed         float64  `yaml:"speed"`
	RerollChance  float64  `yaml:"reroll_chance"`   // Per-tick probability of a new random direction
	RerollOnClamp bool     `yaml:"reroll_on_clamp"` // Also re-roll when a wall stops the ghost
	Colors        []string `yaml:"colors"`
	EyeColor      string   `yaml:"eye_color"`
	EyeRadius     float64  `yaml:"eye_radius"`
	EyeOffset     float64  `yaml:"eye_offset"`
}

// PacmanHUD defines where the score is drawn.
type PacmanHUD struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Color string  `yaml:"color"`
}

// PacmanTUI holds terminal-only tuning.
type PacmanTUI struct {
	// HoldTicks is how long a key counts as held after its last press.
	// Terminals send no key-up events, so auto-repeat keeps keys alive.
	HoldTicks int `yaml:"hold_ticks"`
}

// Validate checks the config for values the simulation cannot honour.
func (c PacmanConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0, "field must have positive size, got %gx%g", c.Field.Width, c.Field.Height)

	check(c.Player.Radius > 0, "player.radius must be positive, got %g", c.Player.Radius)
	check(c.Player.Speed > 0, "player.speed must be positive, got %g", c.Player.Speed)
	check(c.Player.MouthMax > 0 && c.Player.MouthMax < 180, "player.mouth_max must be in (0, 180), got %g", c.Player.MouthMax)
	check(c.Player.MouthStep > 0, "player.mouth_step must be positive, got %g", c.Player.MouthStep)
	check(fits(c.Field, c.Player.Radius), "player (radius %g) does not fit the field", c.Player.Radius)

	check(c.Pellets.Count >= 0, "pellets.count must not be negative, got %d", c.Pellets.Count)
	check(c.Pellets.Radius > 0, "pellets.radius must be positive, got %g", c.Pellets.Radius)
	check(c.Pellets.Reward > 0, "pellets.reward must be positive, got %d", c.Pellets.Reward)
	check(fits(c.Field, c.Pellets.Radius), "pellet (radius %g) does not fit the field", c.Pellets.Radius)

	check(c.Ghosts.Radius > 0, "ghosts.radius must be positive, got %g", c.Ghosts.Radius)
	check(c.Ghosts.Speed > 0, "ghosts.speed must be positive, got %g", c.Ghosts.Speed)
	check(c.Ghosts.RerollChance >= 0 && c.Ghosts.RerollChance <= 1, "ghosts.reroll_chance must be in [0, 1], got %g", c.Ghosts.RerollChance)
	check(c.Ghosts.EyeRadius >= 0, "ghosts.eye_radius must not be negative, got %g", c.Ghosts.EyeRadius)
	check(fits(c.Field, c.Ghosts.Radius), "ghost (radius %g) does not fit the field", c.Ghosts.Radius)

	check(c.TUI.HoldTicks >= 1, "tui.hold_ticks must be at least 1, got %d", c.TUI.HoldTicks)

	named := map[string]string{
		"field.background": c.Field.Background,
		"player.color":     c.Player.Color,
		"pellets.color":    c.Pellets.Color,
		"ghosts.eye_color": c.Ghosts.EyeColor,
		"hud.color":        c.HUD.Color,
	}
	for i, name := range c.Ghosts.Colors {
		named[fmt.Sprintf("ghosts.colors[%d]", i)] = name
	}
	for field, name := range named {
		_, ok := core.ParseColor(name)
		check(ok, "%s: unknown colour %q", field, name)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// fits reports whether a circle of radius r has room to exist inside the field.
func fits(f PacmanField, r float64) bool {
	return 2*r <= f.Width && 2*r <= f.Height
}

// ColorOf resolves a palette name, falling back to white for unknown names.
// Validate reports unknown names before a game ever sees them.
func ColorOf(name string) core.Color {
	if c, ok := core.ParseColor(name); ok {
		return c
	}
	return core.ColorWhite
}
