package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the default Pacman configuration.
// The values reproduce the classic 800x600 single-screen arcade setup.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Field: PacmanField{
			Width:      800,
			Height:     600,
			Background: "black",
		},
		Player: PacmanPlayer{
			Radius:    20,
			Speed:     5,
			MouthMax:  45,
			MouthStep: 3,
			Color:     "yellow",
		},
		Pellets: PacmanPellets{
			Count:  10,
			Radius: 5,
			Reward: 10,
			Color:  "white",
		},
		Ghosts: PacmanGhosts{
			Radius:        20,
			Speed:         3,
			RerollChance:  0.02,
			RerollOnClamp: false,
			Colors:        []string{"red", "pink"},
			EyeColor:      "white",
			EyeRadius:     3,
			EyeOffset:     5,
		},
		HUD: PacmanHUD{
			X:     10,
			Y:     10,
			Color: "white",
		},
		TUI: PacmanTUI{
			HoldTicks: 8,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pacman":
		return defaultPacmanYAML
	default:
		return nil
	}
}
