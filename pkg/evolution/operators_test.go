package evolution

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducminhle1904/tab-composer/internal/fretboard"
)

const testLength = 8

func newTestOperators(t *testing.T, mutationRate float64, seed int64) (*Operators, *fretboard.Fretboard) {
	t.Helper()
	board, err := fretboard.New([]int{40, 45, 50, 55, 59, 64}, 15)
	require.NoError(t, err)
	ops, err := NewOperators(board, testLength, mutationRate, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return ops, board
}

func TestNewOperators_Validation(t *testing.T) {
	board, err := fretboard.New([]int{40, 45}, 12)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1))

	_, err = NewOperators(nil, 4, 0.1, rng)
	assert.Error(t, err)

	_, err = NewOperators(board, 1, 0.1, rng)
	assert.Error(t, err, "crossover needs an interior split point")

	_, err = NewOperators(board, 4, 1.5, rng)
	assert.Error(t, err)

	_, err = NewOperators(board, 4, 0.1, nil)
	assert.Error(t, err)
}

func TestRandomMelody_LengthAndBounds(t *testing.T) {
	ops, board := newTestOperators(t, 0.1, 42)

	for trial := 0; trial < 200; trial++ {
		m := ops.RandomMelody()
		require.Len(t, m, testLength)
		for _, p := range m {
			assert.True(t, board.Contains(p), "random position %+v out of bounds", p)
		}
	}
}

func TestCrossover_PrefixSuffix(t *testing.T) {
	ops, _ := newTestOperators(t, 0, 42)

	// Parents are distinguishable by string index, so the split point can be
	// recovered from the child.
	a := make(Melody, testLength)
	b := make(Melody, testLength)
	for i := range a {
		a[i] = fretboard.Position{String: 0, Fret: i}
		b[i] = fretboard.Position{String: 1, Fret: i}
	}

	seenSplits := map[int]bool{}
	for trial := 0; trial < 500; trial++ {
		child := ops.Crossover(a, b)
		require.Len(t, child, testLength)

		split := testLength
		for i, p := range child {
			if p.String == 1 {
				split = i
				break
			}
		}
		require.GreaterOrEqual(t, split, 1, "child must start with parent A material")
		require.LessOrEqual(t, split, testLength-1, "child must end with parent B material")
		seenSplits[split] = true

		for i := 0; i < split; i++ {
			assert.Equal(t, a[i], child[i])
		}
		for i := split; i < testLength; i++ {
			assert.Equal(t, b[i], child[i])
		}
	}

	// Every interior split point should show up across 500 draws.
	assert.Len(t, seenSplits, testLength-1)
}

func TestCrossover_DoesNotAliasParents(t *testing.T) {
	ops, _ := newTestOperators(t, 0, 7)

	a := ops.RandomMelody()
	b := ops.RandomMelody()
	aCopy := a.Clone()

	child := ops.Crossover(a, b)
	child[0] = fretboard.Position{String: 5, Fret: 15}

	assert.Equal(t, aCopy, a, "mutating the child must not touch a parent")
}

func TestCrossover_LengthMismatchPanics(t *testing.T) {
	ops, _ := newTestOperators(t, 0, 7)

	short := make(Melody, testLength-1)
	full := ops.RandomMelody()

	assert.Panics(t, func() { ops.Crossover(short, full) })
	assert.Panics(t, func() { ops.Crossover(full, short) })
}

func TestMutate_ZeroRateIsIdentity(t *testing.T) {
	ops, _ := newTestOperators(t, 0, 42)

	m := ops.RandomMelody()
	for trial := 0; trial < 100; trial++ {
		out := ops.Mutate(m)
		assert.Equal(t, m, out)
	}
}

func TestMutate_ReturnsIndependentCopy(t *testing.T) {
	ops, _ := newTestOperators(t, 0, 42)

	m := ops.RandomMelody()
	original := m.Clone()

	out := ops.Mutate(m)
	out[0] = fretboard.Position{String: 5, Fret: 15}

	assert.Equal(t, original, m)
}

func TestMutate_FullRateChangesAtMostOneLocus(t *testing.T) {
	ops, board := newTestOperators(t, 1, 42)

	// A melody no random draw can reproduce elsewhere is not constructible,
	// so check the weaker invariant: at most one locus differs, and any
	// replacement stays in bounds.
	m := ops.RandomMelody()
	lociHit := map[int]bool{}
	for trial := 0; trial < 1000; trial++ {
		out := ops.Mutate(m)
		require.Len(t, out, testLength)

		changed := 0
		for i := range out {
			if out[i] != m[i] {
				changed++
				lociHit[i] = true
				assert.True(t, board.Contains(out[i]))
			}
		}
		assert.LessOrEqual(t, changed, 1)
	}

	// Uniform locus choice: every index should be hit across 1000 trials.
	assert.Len(t, lociHit, testLength)
}

func TestMelody_Clone(t *testing.T) {
	m := Melody{{String: 0, Fret: 1}, {String: 1, Fret: 2}}
	c := m.Clone()
	c[0].Fret = 9

	assert.Equal(t, 1, m[0].Fret)
}
