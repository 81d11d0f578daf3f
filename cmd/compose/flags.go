package main

import (
	"flag"
	"fmt"
)

// ComposeFlags holds all command line flags for the compose command
type ComposeFlags struct {
	// Configuration
	ConfigFile *string
	EnvFile    *string

	// Search overrides (0 means "use the config value")
	MelodyLength *int
	Population   *int
	Generations  *int
	MutationRate *float64
	MaxWorkers   *int
	Seed         *int64

	// Output options
	OutputDir   *string
	JSONOutput  *bool
	ExcelOutput *bool
	LogToFile   *bool
	Play        *bool
	MetricsAddr *string

	// Version and help
	ShowVersion *bool
	ShowHelp    *bool
}

// NewComposeFlags creates and registers all command line flags
func NewComposeFlags() *ComposeFlags {
	return &ComposeFlags{
		ConfigFile: flag.String("config", "standard", "Config name under configs/ or a path to a JSON file"),
		EnvFile:    flag.String("env", ".env", "Environment file to load"),

		MelodyLength: flag.Int("length", 0, "Override melody length"),
		Population:   flag.Int("population", 0, "Override population size"),
		Generations:  flag.Int("generations", 0, "Override generation budget"),
		MutationRate: flag.Float64("mutation", -1, "Override mutation rate [0..1]"),
		MaxWorkers:   flag.Int("workers", 0, "Concurrent scoring workers (0 = sequential)"),
		Seed:         flag.Int64("seed", 0, "Random seed (0 = time-based)"),

		OutputDir:   flag.String("output", "results", "Directory for generated files"),
		JSONOutput:  flag.Bool("json", false, "Save the melody as JSON"),
		ExcelOutput: flag.Bool("excel", false, "Save the melody as an Excel workbook"),
		LogToFile:   flag.Bool("log", false, "Write a session log under logs/"),
		Play:        flag.Bool("play", false, "Play the melody through the speaker"),
		MetricsAddr: flag.String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)"),

		ShowVersion: flag.Bool("version", false, "Show version information"),
		ShowHelp:    flag.Bool("help", false, "Show detailed help"),
	}
}

// ValidateComposeFlags rejects override values that can never be valid.
// Full configuration validation happens after the config file is merged in.
func ValidateComposeFlags(f *ComposeFlags) error {
	if *f.MelodyLength < 0 {
		return fmt.Errorf("length must be non-negative, got: %d", *f.MelodyLength)
	}
	if *f.Population < 0 {
		return fmt.Errorf("population must be non-negative, got: %d", *f.Population)
	}
	if *f.Generations < 0 {
		return fmt.Errorf("generations must be non-negative, got: %d", *f.Generations)
	}
	if *f.MutationRate > 1 {
		return fmt.Errorf("mutation rate must be at most 1, got: %.3f", *f.MutationRate)
	}
	if *f.MaxWorkers < 0 {
		return fmt.Errorf("workers must be non-negative, got: %d", *f.MaxWorkers)
	}
	return nil
}
