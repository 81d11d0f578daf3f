package reporting

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducminhle1904/tab-composer/internal/fretboard"
	"github.com/ducminhle1904/tab-composer/pkg/evolution"
)

func newTestBoard(t *testing.T) *fretboard.Fretboard {
	t.Helper()
	board, err := fretboard.New([]int{40, 45, 50, 55, 59, 64}, 15)
	require.NoError(t, err)
	return board
}

func TestTablatureLines(t *testing.T) {
	board := newTestBoard(t)

	notes := []Note{
		{String: 5, Fret: 0},
		{String: 0, Fret: 3},
		{String: 2, Fret: 12},
	}

	lines := TablatureLines(board, notes)
	require.Len(t, lines, 6)

	assert.Equal(t, "e|-0----------", lines[0])
	assert.Equal(t, "B|------------", lines[1])
	assert.Equal(t, "G|------------", lines[2])
	assert.Equal(t, "D|---------12-", lines[3])
	assert.Equal(t, "A|------------", lines[4])
	assert.Equal(t, "E|-----3------", lines[5])
}

func TestTablatureLines_EmptyMelody(t *testing.T) {
	board := newTestBoard(t)

	lines := TablatureLines(board, nil)
	require.Len(t, lines, 6)
	assert.Equal(t, "e|", lines[0])
	assert.Equal(t, "E|", lines[5])
}

func TestStringOrder_NonStandardTuning(t *testing.T) {
	// Open pitches out of order: the tab must still come out highest first.
	board, err := fretboard.New([]int{64, 40, 59}, 12)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 1}, stringOrder(board))
}

func TestNewResult(t *testing.T) {
	board := newTestBoard(t)
	rng := rand.New(rand.NewSource(7))

	melody := evolution.Melody{{String: 1, Fret: 3}, {String: 5, Fret: 0}}
	durations := []float64{0.5, 1.0}

	result := NewResult(board, melody, 42.0, durations, 120, rng)

	require.Len(t, result.Notes, 2)
	assert.Equal(t, 42.0, result.Score)
	assert.Equal(t, 120, result.Tempo)

	first := result.Notes[0]
	assert.Equal(t, 1, first.String)
	assert.Equal(t, 3, first.Fret)
	assert.Equal(t, 48, first.Pitch)
	assert.Equal(t, "C3", first.Name)
	assert.Contains(t, durations, first.Duration)

	second := result.Notes[1]
	assert.Equal(t, 64, second.Pitch)
	assert.Equal(t, "E4", second.Name)
	assert.Contains(t, durations, second.Duration)
}
