package config

import "fmt"

// ComposerValidator implements validation for composer configurations
type ComposerValidator struct{}

// NewComposerValidator creates a new composer validator
func NewComposerValidator() *ComposerValidator {
	return &ComposerValidator{}
}

// Validate performs fail-fast validation on all configuration parameters.
// A malformed configuration is fatal: the search has no recoverable error
// states once it starts, so everything is rejected here.
func (v *ComposerValidator) Validate(cfg *ComposerConfig) error {
	if len(cfg.Tuning) == 0 {
		return fmt.Errorf("tuning table must not be empty")
	}
	if cfg.MaxFret < 1 {
		return fmt.Errorf("max fret must be positive, got: %d", cfg.MaxFret)
	}
	if cfg.MelodyLength < 2 {
		return fmt.Errorf("melody length must be at least 2, got: %d", cfg.MelodyLength)
	}

	if len(cfg.Scale) == 0 {
		return fmt.Errorf("pitch-class set must not be empty")
	}
	for _, pc := range cfg.Scale {
		if pc < 0 || pc > 11 {
			return fmt.Errorf("scale pitch class must be in [0, 11], got: %d", pc)
		}
	}
	if cfg.Tonic < 0 || cfg.Tonic > 11 {
		return fmt.Errorf("tonic chroma must be in [0, 11], got: %d", cfg.Tonic)
	}
	if cfg.Dominant < 0 || cfg.Dominant > 11 {
		return fmt.Errorf("dominant chroma must be in [0, 11], got: %d", cfg.Dominant)
	}

	if cfg.PopulationSize < 1 {
		return fmt.Errorf("population size must be positive, got: %d", cfg.PopulationSize)
	}
	if cfg.Generations < 1 {
		return fmt.Errorf("generation budget must be positive, got: %d", cfg.Generations)
	}
	if cfg.MutationRate < 0 || cfg.MutationRate > 1 {
		return fmt.Errorf("mutation rate must be in [0, 1], got: %.3f", cfg.MutationRate)
	}
	if cfg.BreedingFraction <= 0 || cfg.BreedingFraction > 1 {
		return fmt.Errorf("breeding fraction must be in (0, 1], got: %.3f", cfg.BreedingFraction)
	}
	if int(float64(cfg.PopulationSize)*cfg.BreedingFraction) < 1 {
		return fmt.Errorf("breeding fraction %.3f leaves an empty pool for population %d",
			cfg.BreedingFraction, cfg.PopulationSize)
	}
	if cfg.EliteCount < 1 || cfg.EliteCount > cfg.PopulationSize {
		return fmt.Errorf("elite count must be in [1, %d], got: %d", cfg.PopulationSize, cfg.EliteCount)
	}

	if len(cfg.Durations) == 0 {
		return fmt.Errorf("duration set must not be empty")
	}
	for _, d := range cfg.Durations {
		if d <= 0 {
			return fmt.Errorf("note duration must be positive, got: %.3f", d)
		}
	}
	if cfg.Tempo < 1 {
		return fmt.Errorf("tempo must be positive, got: %d", cfg.Tempo)
	}

	if w := cfg.Weights; w != nil {
		// The search only steers toward the key when dissonance nets
		// negative against the best consonance case.
		if w.OutOfKeyPenalty <= w.InKeyReward+w.DegreeBonus {
			return fmt.Errorf("out-of-key penalty (%.1f) must exceed in-key reward plus degree bonus (%.1f)",
				w.OutOfKeyPenalty, w.InKeyReward+w.DegreeBonus)
		}
	}

	return nil
}
