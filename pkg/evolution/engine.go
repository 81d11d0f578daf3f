package evolution

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/ducminhle1904/tab-composer/internal/fretboard"
	"github.com/ducminhle1904/tab-composer/internal/monitoring"
)

// Progress is reported every progressInterval generations.
const progressInterval = 50

// Scorer evaluates one melody. Implementations must be deterministic and
// side-effect free so that scoring may be fanned out across goroutines.
type Scorer interface {
	Score(positions []fretboard.Position) float64
}

// Params configures one evolutionary run. Everything is fixed before the
// first generation; Validate catches malformed parameter sets up front.
type Params struct {
	PopulationSize   int
	Generations      int
	BreedingFraction float64 // top fraction of each ranked generation eligible as parents
	EliteCount       int     // best individuals carried over unchanged
	MaxWorkers       int     // concurrent scoring workers; <= 1 means sequential
}

// Validate checks the parameter set and returns a configuration error for
// the first violation found.
func (p Params) Validate() error {
	if p.PopulationSize < 1 {
		return fmt.Errorf("population size must be positive, got: %d", p.PopulationSize)
	}
	if p.Generations < 1 {
		return fmt.Errorf("generation budget must be positive, got: %d", p.Generations)
	}
	if p.BreedingFraction <= 0 || p.BreedingFraction > 1 {
		return fmt.Errorf("breeding fraction must be in (0, 1], got: %.3f", p.BreedingFraction)
	}
	if int(float64(p.PopulationSize)*p.BreedingFraction) < 1 {
		return fmt.Errorf("breeding fraction %.3f leaves an empty pool for population %d", p.BreedingFraction, p.PopulationSize)
	}
	if p.EliteCount < 1 || p.EliteCount > p.PopulationSize {
		return fmt.Errorf("elite count must be in [1, %d], got: %d", p.PopulationSize, p.EliteCount)
	}
	return nil
}

// Engine drives the generational loop: score, rank, select, breed, replace.
// Each generation depends on the complete ranked previous one, so the loop
// itself is sequential; only scoring inside a generation is parallelized.
type Engine struct {
	params Params
	ops    *Operators
	scorer Scorer
	rng    *rand.Rand

	// OnGeneration, when set, observes each ranked generation before
	// breeding. It is also the hook point for alternative stopping rules;
	// the engine itself runs the fixed generation budget and nothing else.
	OnGeneration func(gen int, best, avg float64)
}

// NewEngine wires an engine from validated parameters, operators, a scorer
// and a caller-owned random source.
func NewEngine(params Params, ops *Operators, scorer Scorer, rng *rand.Rand) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if ops == nil {
		return nil, fmt.Errorf("operators must not be nil")
	}
	if scorer == nil {
		return nil, fmt.Errorf("scorer must not be nil")
	}
	if rng == nil {
		return nil, fmt.Errorf("random source must not be nil")
	}
	return &Engine{params: params, ops: ops, scorer: scorer, rng: rng}, nil
}

// Run executes the full generation budget and returns the best individual
// of the final population, scored.
func (e *Engine) Run() Individual {
	population := make([]Individual, e.params.PopulationSize)
	for i := range population {
		population[i] = Individual{Melody: e.ops.RandomMelody()}
	}

	for gen := 0; gen < e.params.Generations; gen++ {
		start := time.Now()
		e.scorePopulation(population)
		sortByFitness(population)

		best, avg := population[0].Fitness, averageFitness(population)
		monitoring.RecordGeneration(best, avg, time.Since(start))
		if e.OnGeneration != nil {
			e.OnGeneration(gen, best, avg)
		}
		if gen%progressInterval == 0 {
			log.Printf("🎸 Gen %d: best=%.0f avg=%.1f", gen, best, avg)
		}

		population = e.nextGeneration(population)
	}

	e.scorePopulation(population)
	sortByFitness(population)
	return population[0].Clone()
}

// scorePopulation refreshes every individual's fitness. With MaxWorkers > 1
// the work is fanned out through bounded worker slots; scoring is pure, so
// the slot channel is the only shared state.
func (e *Engine) scorePopulation(pop []Individual) {
	if e.params.MaxWorkers <= 1 {
		for i := range pop {
			pop[i].Fitness = e.scorer.Score(pop[i].Melody)
		}
		return
	}

	var wg sync.WaitGroup
	slots := make(chan struct{}, e.params.MaxWorkers)
	for i := range pop {
		wg.Add(1)
		go func(ind *Individual) {
			defer wg.Done()

			slots <- struct{}{}
			defer func() { <-slots }()

			ind.Fitness = e.scorer.Score(ind.Melody)
		}(&pop[i])
	}
	wg.Wait()
}

// nextGeneration carries the elites over unchanged, then fills the rest with
// crossover+mutation children of parents drawn uniformly, with replacement,
// from the top BreedingFraction of the ranked population.
func (e *Engine) nextGeneration(ranked []Individual) []Individual {
	poolSize := int(float64(len(ranked)) * e.params.BreedingFraction)
	if poolSize < 1 {
		poolSize = 1
	}
	pool := ranked[:poolSize]

	next := make([]Individual, 0, len(ranked))
	for i := 0; i < e.params.EliteCount && i < len(ranked); i++ {
		next = append(next, ranked[i].Clone())
	}
	for len(next) < len(ranked) {
		p1 := pool[e.rng.Intn(poolSize)]
		p2 := pool[e.rng.Intn(poolSize)]
		child := e.ops.Mutate(e.ops.Crossover(p1.Melody, p2.Melody))
		next = append(next, Individual{Melody: child})
	}
	return next
}
