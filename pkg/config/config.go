package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ducminhle1904/tab-composer/internal/fitness"
)

// Default composition parameter values
const (
	DefaultMaxFret          = 15
	DefaultMelodyLength     = 30
	DefaultPopulationSize   = 100
	DefaultGenerations      = 200
	DefaultMutationRate     = 0.1
	DefaultBreedingFraction = 0.3
	DefaultEliteCount       = 1
	DefaultTempo            = 120
	DefaultTonic            = 0 // C
	DefaultDominant         = 7 // G

	// Config files are resolved against this directory when given by name
	ConfigDir = "configs"
)

// DefaultTuning returns standard guitar tuning: E2 A2 D3 G3 B3 E4.
func DefaultTuning() []int {
	return []int{40, 45, 50, 55, 59, 64}
}

// DefaultScale returns the C major pitch-class set.
func DefaultScale() []int {
	return []int{0, 2, 4, 5, 7, 9, 11}
}

// DefaultDurations returns the note duration choices, in beats.
func DefaultDurations() []float64 {
	return []float64{0.5, 1.0}
}

// ComposerConfig holds all configuration for one composition run. Every
// field is fixed before the search starts; nothing here mutates mid-run.
type ComposerConfig struct {
	// Fretboard and key
	Tuning   []int `json:"tuning"`
	MaxFret  int   `json:"max_fret"`
	Scale    []int `json:"scale"`
	Tonic    int   `json:"tonic"`
	Dominant int   `json:"dominant"`

	// Search parameters
	MelodyLength     int     `json:"melody_length"`
	PopulationSize   int     `json:"population_size"`
	Generations      int     `json:"generations"`
	MutationRate     float64 `json:"mutation_rate"`
	BreedingFraction float64 `json:"breeding_fraction"`
	EliteCount       int     `json:"elite_count"`
	MaxWorkers       int     `json:"max_workers,omitempty"`

	// Rendering parameters (the search optimizes pitch only)
	Durations []float64 `json:"durations"`
	Tempo     int       `json:"tempo"`

	// Optional scoring weight overrides
	Weights *fitness.Weights `json:"weights,omitempty"`
}

// NewDefaultComposerConfig returns the classic C major run over a standard
// six-string guitar.
func NewDefaultComposerConfig() *ComposerConfig {
	return &ComposerConfig{
		Tuning:           DefaultTuning(),
		MaxFret:          DefaultMaxFret,
		Scale:            DefaultScale(),
		Tonic:            DefaultTonic,
		Dominant:         DefaultDominant,
		MelodyLength:     DefaultMelodyLength,
		PopulationSize:   DefaultPopulationSize,
		Generations:      DefaultGenerations,
		MutationRate:     DefaultMutationRate,
		BreedingFraction: DefaultBreedingFraction,
		EliteCount:       DefaultEliteCount,
		Durations:        DefaultDurations(),
		Tempo:            DefaultTempo,
	}
}

// ScoringWeights returns the configured weights, falling back to the
// defaults when the config carries no override.
func (c *ComposerConfig) ScoringWeights() fitness.Weights {
	if c.Weights != nil {
		return *c.Weights
	}
	return fitness.DefaultWeights()
}

// ResolveConfigPath turns a bare config name into configs/<name>.json.
// Anything that already looks like a path is returned unchanged.
func ResolveConfigPath(name string) string {
	if name == "" || strings.ContainsAny(name, "/\\") {
		return name
	}
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return filepath.Join(ConfigDir, name)
}

// LoadComposerConfig reads a JSON config file over the defaults. An empty
// path yields the default configuration.
func LoadComposerConfig(path string) (*ComposerConfig, error) {
	cfg := NewDefaultComposerConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes a configuration as indented JSON.
func SaveConfig(cfg *ComposerConfig, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
