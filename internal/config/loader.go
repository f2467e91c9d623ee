package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names for configs that do not come from a file.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadPacman loads Pacman configuration and reports where it came from.
// Search order: customPath -> ~/.arcade/configs/pacman.yaml -> ./configs/pacman.yaml -> embedded default.
// Files are layered over the defaults, so a file may set only the keys it changes.
func LoadPacman(customPath string) (PacmanConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PacmanConfig{}, customPath, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parsePacman(data)
		if err != nil {
			return PacmanConfig{}, customPath, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return PacmanConfig{}, customPath, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath("pacman.yaml"), filepath.Join("configs", "pacman.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := parsePacman(data)
		if err != nil {
			return PacmanConfig{}, path, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		if err := cfg.Validate(); err != nil {
			return PacmanConfig{}, path, fmt.Errorf("config %s: %w", path, err)
		}
		return cfg, path, nil
	}

	// Use embedded default YAML
	cfg, err := parsePacman(defaultPacmanYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultPacmanConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// parsePacman decodes YAML on top of the hardcoded defaults.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func parsePacman(data []byte) (PacmanConfig, error) {
	cfg := DefaultPacmanConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// An empty document leaves the defaults untouched
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return PacmanConfig{}, err
	}
	return cfg, nil
}

// Marshal renders a config as YAML.
func Marshal(cfg PacmanConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
