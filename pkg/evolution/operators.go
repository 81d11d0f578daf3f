package evolution

import (
	"fmt"
	"math/rand"

	"github.com/ducminhle1904/tab-composer/internal/fretboard"
)

// Operators generates and recombines fixed-length melodies over one
// fretboard. The rng is owned by the caller and is the only mutable state;
// Operators never reseeds or replaces it.
type Operators struct {
	board        *fretboard.Fretboard
	length       int
	mutationRate float64
	rng          *rand.Rand
}

// NewOperators creates the operator set for melodies of the given length.
// Single-point crossover needs an interior split, so the length must be at
// least 2.
func NewOperators(board *fretboard.Fretboard, length int, mutationRate float64, rng *rand.Rand) (*Operators, error) {
	if board == nil {
		return nil, fmt.Errorf("fretboard must not be nil")
	}
	if length < 2 {
		return nil, fmt.Errorf("melody length must be at least 2, got: %d", length)
	}
	if mutationRate < 0 || mutationRate > 1 {
		return nil, fmt.Errorf("mutation rate must be in [0, 1], got: %.3f", mutationRate)
	}
	if rng == nil {
		return nil, fmt.Errorf("random source must not be nil")
	}
	return &Operators{board: board, length: length, mutationRate: mutationRate, rng: rng}, nil
}

// RandomPosition draws a uniformly random in-bounds position.
func (o *Operators) RandomPosition() fretboard.Position {
	return fretboard.Position{
		String: o.rng.Intn(o.board.StringCount()),
		Fret:   o.rng.Intn(o.board.MaxFret() + 1),
	}
}

// RandomMelody draws length independent random positions.
func (o *Operators) RandomMelody() Melody {
	m := make(Melody, o.length)
	for i := range m {
		m[i] = o.RandomPosition()
	}
	return m
}

// Crossover performs single-point crossover: the child takes a's positions
// up to a split drawn uniformly from [1, L-1] and b's from the split on, so
// it always inherits from both parents.
func (o *Operators) Crossover(a, b Melody) Melody {
	o.mustMatchLength(a)
	o.mustMatchLength(b)

	split := 1 + o.rng.Intn(o.length-1)
	child := make(Melody, o.length)
	copy(child, a[:split])
	copy(child[split:], b[split:])
	return child
}

// Mutate returns a copy of m in which, with probability mutationRate,
// exactly one uniformly chosen position has been replaced by a fresh random
// one. The decision is per melody, not per position.
func (o *Operators) Mutate(m Melody) Melody {
	o.mustMatchLength(m)

	mutant := m.Clone()
	if o.rng.Float64() < o.mutationRate {
		idx := o.rng.Intn(o.length)
		mutant[idx] = o.RandomPosition()
		o.board.MustContain(mutant[idx])
	}
	return mutant
}

// A wrong-length melody means an operator upstream broke the length
// invariant; clamping or truncating here would corrupt the fitness
// landscape, so fail loudly instead.
func (o *Operators) mustMatchLength(m Melody) {
	if len(m) != o.length {
		panic(fmt.Sprintf("evolution: melody length invariant broken: got %d, want %d", len(m), o.length))
	}
}
