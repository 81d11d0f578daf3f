package reporting

import (
	"math/rand"
	"time"

	"github.com/ducminhle1904/tab-composer/internal/fretboard"
	"github.com/ducminhle1904/tab-composer/pkg/evolution"
)

// Note is one rendered melody note with everything the output surfaces
// need: where it is played, what it sounds like, and for how long.
type Note struct {
	String   int     `json:"string"`
	Fret     int     `json:"fret"`
	Pitch    int     `json:"pitch"`
	Name     string  `json:"name"`
	Duration float64 `json:"duration"` // beats
}

// Result is a finished composition handed to the reporters.
type Result struct {
	Notes          []Note        `json:"notes"`
	Score          float64       `json:"score"`
	Tempo          int           `json:"tempo"`
	Generations    int           `json:"generations"`
	ElapsedSeconds float64       `json:"elapsed_seconds"`
	Elapsed        time.Duration `json:"-"`
}

// NewResult maps a melody onto notes, drawing each duration from the
// configured duration set. Durations are cosmetic variety for rendering and
// playback: the search optimizes pitch only.
func NewResult(board *fretboard.Fretboard, melody evolution.Melody, score float64, durations []float64, tempo int, rng *rand.Rand) *Result {
	notes := make([]Note, len(melody))
	for i, p := range melody {
		pitch := board.PitchOf(p)
		notes[i] = Note{
			String:   p.String,
			Fret:     p.Fret,
			Pitch:    pitch,
			Name:     fretboard.NoteName(pitch),
			Duration: durations[rng.Intn(len(durations))],
		}
	}
	return &Result{Notes: notes, Score: score, Tempo: tempo}
}
