// Package settings loads lca settings from YAML files and environment
// variables. Settings shape how a run is rendered and logged; the automaton
// itself is always configured from the token stream.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lca/internal/automaton"
	"lca/internal/render"

	"gopkg.in/yaml.v3"
)

// Settings contains all lca settings.
type Settings struct {
	// Output controls what is written to stdout.
	Output OutputSettings `json:"output" yaml:"output"`

	// Evolve selects how generations are computed.
	Evolve EvolveSettings `json:"evolve" yaml:"evolve"`

	// Limits guards against oversized input.
	Limits LimitSettings `json:"limits" yaml:"limits"`

	// Logging contains settings for diagnostic logging.
	Logging LoggingSettings `json:"logging" yaml:"logging"`
}

// OutputSettings configures the text renderer.
type OutputSettings struct {
	// Enabled turns generation output on or off. The run still evolves
	// every generation when disabled.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Dead and Alive are the single-byte glyphs for 0 and 1 cells.
	Dead  string `json:"dead" yaml:"dead"`
	Alive string `json:"alive" yaml:"alive"`
}

// EvolveSettings configures the transition.
type EvolveSettings struct {
	// Neighborhood is "pair" (cell and right neighbour) or "triple".
	Neighborhood string `json:"neighborhood" yaml:"neighborhood"`
}

// LimitSettings bounds the accepted input.
type LimitSettings struct {
	// MaxCells rejects larger cell counts. 0 keeps the decoder's built-in
	// ceiling (config.MaxCells).
	MaxCells int `json:"max_cells" yaml:"max_cells"`
}

// LoggingSettings configures diagnostic logging.
type LoggingSettings struct {
	// Level is "info" (default), "debug" or "trace".
	Level string `json:"level" yaml:"level"`
}

// Default returns the settings used when no file is present.
func Default() *Settings {
	return &Settings{
		Output: OutputSettings{
			Enabled: true,
			Dead:    " ",
			Alive:   "*",
		},
		Evolve: EvolveSettings{
			Neighborhood: "pair",
		},
		Logging: LoggingSettings{
			Level: "info",
		},
	}
}

// DefaultPath returns ~/.lca/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(homeDir, ".lca", "config.yaml"), nil
}

// Load loads settings from DefaultPath when it exists, then applies
// environment overrides.
func Load() (*Settings, error) {
	s := Default()

	path, err := DefaultPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			fileSettings, loadErr := LoadFromFile(path)
			if loadErr != nil {
				return nil, fmt.Errorf("loading settings file: %w", loadErr)
			}
			s = fileSettings
		}
	}

	applyEnvOverrides(s)
	return s, nil
}

// LoadFromFile loads settings from a specific YAML file on top of the
// defaults.
func LoadFromFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings file: %w", err)
	}

	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing settings file: %w", err)
	}
	return s, nil
}

// Validate checks that the settings are usable.
func (s *Settings) Validate() error {
	if _, err := s.Glyphs(); err != nil {
		return err
	}
	if _, err := s.Neighborhood(); err != nil {
		return err
	}
	if s.Limits.MaxCells < 0 {
		return fmt.Errorf("max_cells must be non-negative, got %d", s.Limits.MaxCells)
	}
	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if s.Logging.Level != "" && !validLevels[s.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", s.Logging.Level)
	}
	return nil
}

// Glyphs returns the configured output glyphs.
func (s *Settings) Glyphs() (render.Glyphs, error) {
	return render.ParseGlyphs(s.Output.Dead, s.Output.Alive)
}

// Neighborhood returns the configured neighbourhood.
func (s *Settings) Neighborhood() (automaton.Neighborhood, error) {
	return automaton.ParseNeighborhood(s.Evolve.Neighborhood)
}

// Save writes the settings as YAML, creating parent directories.
func (s *Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	return nil
}

// applyEnvOverrides applies LCA_* environment variables.
func applyEnvOverrides(s *Settings) {
	if v := os.Getenv("LCA_LOG_LEVEL"); v != "" {
		s.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("LCA_OUTPUT"); v != "" {
		switch strings.ToLower(v) {
		case "0", "false", "off", "no":
			s.Output.Enabled = false
		case "1", "true", "on", "yes":
			s.Output.Enabled = true
		}
	}
	if v := os.Getenv("LCA_NEIGHBORHOOD"); v != "" {
		s.Evolve.Neighborhood = v
	}
}
