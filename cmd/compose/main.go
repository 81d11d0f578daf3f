package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/ducminhle1904/tab-composer/internal/fitness"
	"github.com/ducminhle1904/tab-composer/internal/fretboard"
	"github.com/ducminhle1904/tab-composer/internal/logger"
	"github.com/ducminhle1904/tab-composer/internal/monitoring"
	"github.com/ducminhle1904/tab-composer/internal/playback"
	"github.com/ducminhle1904/tab-composer/pkg/config"
	"github.com/ducminhle1904/tab-composer/pkg/evolution"
	"github.com/ducminhle1904/tab-composer/pkg/reporting"
)

const (
	AppName    = "Tab Composer"
	AppVersion = "1.0.0"
)

func main() {
	// Create and parse command line flags
	flags := NewComposeFlags()
	flag.Parse()

	if err := ValidateComposeFlags(flags); err != nil {
		log.Fatalf("❌ Flag validation error: %v", err)
	}

	// Version and help
	if *flags.ShowVersion {
		fmt.Printf("%s v%s\n", AppName, AppVersion)
		return
	}
	if *flags.ShowHelp {
		printUsageHelp()
		return
	}

	printHeader()
	loadEnvironment(*flags.EnvFile)

	cfg, err := loadConfiguration(flags)
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	seed := *flags.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	board, err := fretboard.New(cfg.Tuning, cfg.MaxFret)
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}
	evaluator, err := fitness.NewEvaluator(board, cfg.Scale, cfg.Tonic, cfg.Dominant, cfg.ScoringWeights())
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}
	ops, err := evolution.NewOperators(board, cfg.MelodyLength, cfg.MutationRate, rng)
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}
	engine, err := evolution.NewEngine(evolution.Params{
		PopulationSize:   cfg.PopulationSize,
		Generations:      cfg.Generations,
		BreedingFraction: cfg.BreedingFraction,
		EliteCount:       cfg.EliteCount,
		MaxWorkers:       cfg.MaxWorkers,
	}, ops, evaluator, rng)
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	var sessionLog *logger.Logger
	if *flags.LogToFile {
		sessionLog, err = logger.NewLogger("compose")
		if err != nil {
			log.Printf("⚠️  Could not open session log: %v", err)
		} else {
			defer sessionLog.Close()
			sessionLog.LogInfo("Seed: %d, population: %d, generations: %d",
				seed, cfg.PopulationSize, cfg.Generations)
		}
	}

	health := monitoring.NewHealthChecker()
	if *flags.MetricsAddr != "" {
		startMetricsServer(*flags.MetricsAddr, health)
	}

	engine.OnGeneration = func(gen int, best, avg float64) {
		health.MarkGeneration()
		if sessionLog != nil {
			sessionLog.LogGeneration(gen, best, avg)
		}
	}

	log.Printf("🧬 Evolutionary composition in progress (seed %d)...", seed)
	start := time.Now()
	best := engine.Run()
	elapsed := time.Since(start)
	log.Printf("✅ Search complete after %d generations: best score %.0f", cfg.Generations, best.Fitness)

	result := reporting.NewResult(board, best.Melody, best.Fitness, cfg.Durations, cfg.Tempo, rng)
	result.Generations = cfg.Generations
	result.Elapsed = elapsed
	result.ElapsedSeconds = elapsed.Seconds()

	reporting.NewDefaultConsoleReporter().OutputResult(board, result)
	if sessionLog != nil {
		sessionLog.LogResult(result.Score, reporting.TablatureLines(board, result.Notes))
	}

	stamp := time.Now().Format("20060102_150405")
	if *flags.JSONOutput {
		path := filepath.Join(*flags.OutputDir, fmt.Sprintf("melody_%s.json", stamp))
		if err := reporting.WriteResultJSON(result, path); err != nil {
			log.Printf("⚠️  Could not write JSON: %v", err)
		} else {
			log.Printf("💾 Saved %s", path)
		}
	}
	if *flags.ExcelOutput {
		path := filepath.Join(*flags.OutputDir, fmt.Sprintf("melody_%s.xlsx", stamp))
		if err := reporting.NewDefaultExcelReporter().WriteResultXLSX(result, path); err != nil {
			log.Printf("⚠️  Could not write Excel workbook: %v", err)
		} else {
			log.Printf("💾 Saved %s", path)
		}
	}

	if *flags.Play {
		log.Printf("🔊 Playing melody at %d BPM...", cfg.Tempo)
		if err := playback.NewPlayer().Play(playbackNotes(result)); err != nil {
			log.Printf("⚠️  Playback failed: %v", err)
		}
	}
}

// playbackNotes converts a rendered result into synthesizer input.
func playbackNotes(result *reporting.Result) []playback.Note {
	notes := make([]playback.Note, len(result.Notes))
	for i, n := range result.Notes {
		notes[i] = playback.Note{
			Frequency: playback.MIDIToFrequency(n.Pitch),
			Duration:  playback.BeatsToDuration(n.Duration, result.Tempo),
		}
	}
	return notes
}

// loadConfiguration merges the config file with flag overrides and
// validates the final parameter set.
func loadConfiguration(flags *ComposeFlags) (*config.ComposerConfig, error) {
	path := config.ResolveConfigPath(*flags.ConfigFile)
	cfg, err := config.LoadComposerConfig(path)
	if err != nil {
		return nil, err
	}

	if *flags.MelodyLength > 0 {
		cfg.MelodyLength = *flags.MelodyLength
	}
	if *flags.Population > 0 {
		cfg.PopulationSize = *flags.Population
	}
	if *flags.Generations > 0 {
		cfg.Generations = *flags.Generations
	}
	if *flags.MutationRate >= 0 {
		cfg.MutationRate = *flags.MutationRate
	}
	if *flags.MaxWorkers > 0 {
		cfg.MaxWorkers = *flags.MaxWorkers
	}

	if err := config.NewComposerValidator().Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadEnvironment(envFile string) {
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("⚠️  Could not load %s (%v)", envFile, err)
	}
}

func startMetricsServer(addr string, health *monitoring.HealthChecker) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", monitoring.NewMetricsHandler())
	mux.Handle("/health", health)

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("⚠️  Metrics server stopped: %v", err)
		}
	}()
	log.Printf("📊 Metrics available at http://%s/metrics", addr)
}

func printHeader() {
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("🎸 %s v%s\n", AppName, AppVersion)
	fmt.Println(strings.Repeat("=", 50))
}

func printUsageHelp() {
	fmt.Printf("%s v%s - evolutionary guitar melody composition\n\n", AppName, AppVersion)
	fmt.Println("Usage: compose [options]")
	fmt.Println()
	fmt.Println("The composer evolves a playable melody over a configured fretboard and")
	fmt.Println("key, prints it as ASCII tablature and can export or play the result.")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  compose                          # classic C major run from configs/standard.json")
	fmt.Println("  compose -seed 42 -generations 500")
	fmt.Println("  compose -config drop_d -json -excel")
	fmt.Println("  compose -play -metrics-addr :9090")
}
