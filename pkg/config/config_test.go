package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducminhle1904/tab-composer/internal/fitness"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := NewDefaultComposerConfig()
	assert.NoError(t, NewComposerValidator().Validate(cfg))
}

func TestValidate_RejectsMalformedConfigs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *ComposerConfig)
	}{
		{"empty tuning", func(c *ComposerConfig) { c.Tuning = nil }},
		{"zero max fret", func(c *ComposerConfig) { c.MaxFret = 0 }},
		{"melody too short", func(c *ComposerConfig) { c.MelodyLength = 1 }},
		{"empty scale", func(c *ComposerConfig) { c.Scale = []int{} }},
		{"scale chroma out of range", func(c *ComposerConfig) { c.Scale = []int{0, 12} }},
		{"tonic out of range", func(c *ComposerConfig) { c.Tonic = -1 }},
		{"dominant out of range", func(c *ComposerConfig) { c.Dominant = 12 }},
		{"zero population", func(c *ComposerConfig) { c.PopulationSize = 0 }},
		{"zero generations", func(c *ComposerConfig) { c.Generations = 0 }},
		{"mutation rate above one", func(c *ComposerConfig) { c.MutationRate = 1.5 }},
		{"negative mutation rate", func(c *ComposerConfig) { c.MutationRate = -0.1 }},
		{"zero breeding fraction", func(c *ComposerConfig) { c.BreedingFraction = 0 }},
		{"empty breeding pool", func(c *ComposerConfig) { c.PopulationSize = 2; c.BreedingFraction = 0.3 }},
		{"zero elite count", func(c *ComposerConfig) { c.EliteCount = 0 }},
		{"elite count above population", func(c *ComposerConfig) { c.EliteCount = c.PopulationSize + 1 }},
		{"empty durations", func(c *ComposerConfig) { c.Durations = nil }},
		{"negative duration", func(c *ComposerConfig) { c.Durations = []float64{-0.5} }},
		{"zero tempo", func(c *ComposerConfig) { c.Tempo = 0 }},
		{"dissonance cheaper than consonance", func(c *ComposerConfig) {
			w := fitness.DefaultWeights()
			w.OutOfKeyPenalty = 10
			c.Weights = &w
		}},
	}

	validator := NewComposerValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultComposerConfig()
			tt.mutate(cfg)
			assert.Error(t, validator.Validate(cfg))
		})
	}
}

func TestResolveConfigPath(t *testing.T) {
	assert.Equal(t, filepath.Join("configs", "standard.json"), ResolveConfigPath("standard"))
	assert.Equal(t, filepath.Join("configs", "drop_d.json"), ResolveConfigPath("drop_d.json"))
	assert.Equal(t, "my/own/path.json", ResolveConfigPath("my/own/path.json"))
	assert.Equal(t, "", ResolveConfigPath(""))
}

func TestLoadComposerConfig(t *testing.T) {
	// Empty path yields the defaults
	cfg, err := LoadComposerConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultMelodyLength, cfg.MelodyLength)

	// A partial file overrides only what it names
	path := filepath.Join(t.TempDir(), "short.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"melody_length": 8, "generations": 20}`), 0644))

	cfg, err = LoadComposerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.MelodyLength)
	assert.Equal(t, 20, cfg.Generations)
	assert.Equal(t, DefaultTuning(), cfg.Tuning)
	assert.Equal(t, DefaultMutationRate, cfg.MutationRate)

	// Missing and malformed files are reported
	_, err = LoadComposerConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0644))
	_, err = LoadComposerConfig(bad)
	assert.Error(t, err)
}

func TestScoringWeights_Fallback(t *testing.T) {
	cfg := NewDefaultComposerConfig()
	assert.Equal(t, fitness.DefaultWeights(), cfg.ScoringWeights())

	w := fitness.DefaultWeights()
	w.WideLeapPenalty = 40
	cfg.Weights = &w
	assert.Equal(t, 40.0, cfg.ScoringWeights().WideLeapPenalty)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	cfg := NewDefaultComposerConfig()
	cfg.MelodyLength = 12

	path := filepath.Join(t.TempDir(), "out", "saved.json")
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadComposerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 12, loaded.MelodyLength)
	assert.Equal(t, cfg.Tuning, loaded.Tuning)
}
