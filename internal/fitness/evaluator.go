package fitness

import (
	"fmt"

	"github.com/ducminhle1904/tab-composer/internal/fretboard"
)

// Weights is the scoring policy table. The defaults are empirically tuned
// magnitudes; the out-of-key penalty must stay larger than the in-key reward
// plus degree bonus so that a dissonant note always nets negative.
type Weights struct {
	InKeyReward       float64 `json:"in_key_reward"`
	DegreeBonus       float64 `json:"degree_bonus"`
	OutOfKeyPenalty   float64 `json:"out_of_key_penalty"`
	FretShiftWeight   float64 `json:"fret_shift_weight"`
	StringCrossWeight float64 `json:"string_cross_weight"`
	WideLeapPenalty   float64 `json:"wide_leap_penalty"`
	RepeatPenalty     float64 `json:"repeat_penalty"`
	ResolutionBonus   float64 `json:"resolution_bonus"`
}

// DefaultWeights returns the classic scoring constants.
func DefaultWeights() Weights {
	return Weights{
		InKeyReward:       10,
		DegreeBonus:       5,
		OutOfKeyPenalty:   50,
		FretShiftWeight:   2,
		StringCrossWeight: 5,
		WideLeapPenalty:   20,
		RepeatPenalty:     5,
		ResolutionBonus:   30,
	}
}

// Intervals wider than an octave take the wide-leap penalty.
const octave = 12

// Evaluator scores melodies against a fixed key and fretboard. Scoring is
// deterministic and side-effect free, so a single evaluator may be shared
// by concurrent scoring workers.
type Evaluator struct {
	board    *fretboard.Fretboard
	inKey    [12]bool
	tonic    int
	dominant int
	weights  Weights
}

// NewEvaluator creates an evaluator for the given fretboard, pitch-class set
// and key degrees. All parameters are validated up front.
func NewEvaluator(board *fretboard.Fretboard, scale []int, tonic, dominant int, weights Weights) (*Evaluator, error) {
	if board == nil {
		return nil, fmt.Errorf("fretboard must not be nil")
	}
	if len(scale) == 0 {
		return nil, fmt.Errorf("pitch-class set must not be empty")
	}
	if tonic < 0 || tonic > 11 {
		return nil, fmt.Errorf("tonic chroma must be in [0, 11], got: %d", tonic)
	}
	if dominant < 0 || dominant > 11 {
		return nil, fmt.Errorf("dominant chroma must be in [0, 11], got: %d", dominant)
	}
	e := &Evaluator{board: board, tonic: tonic, dominant: dominant, weights: weights}
	for _, pc := range scale {
		if pc < 0 || pc > 11 {
			return nil, fmt.Errorf("pitch class must be in [0, 11], got: %d", pc)
		}
		e.inKey[pc] = true
	}
	return e, nil
}

// Score rates a melody; higher is better. Three per-note/per-pair criteria
// plus a final resolution bonus:
//
//  1. Harmony: in-key notes are rewarded, tonic and dominant degrees a bit
//     more, out-of-key notes penalized hard.
//  2. Technique: consecutive notes pay for fret travel and, more heavily,
//     for string crossings.
//  3. Contour: leaps wider than an octave and immediate repetitions are
//     penalized.
//
// Total over any in-bounds melody, including length 1 (no pair terms then).
func (e *Evaluator) Score(positions []fretboard.Position) float64 {
	if len(positions) == 0 {
		return 0
	}

	pitches := make([]int, len(positions))
	for i, p := range positions {
		pitches[i] = e.board.PitchOf(p)
	}

	score := 0.0
	for i, p := range positions {
		chroma := fretboard.PitchClass(pitches[i])
		if e.inKey[chroma] {
			score += e.weights.InKeyReward
			if chroma == e.tonic || chroma == e.dominant {
				score += e.weights.DegreeBonus
			}
		} else {
			score -= e.weights.OutOfKeyPenalty
		}

		if i == 0 {
			continue
		}
		prev := positions[i-1]
		score -= float64(abs(p.Fret-prev.Fret)) * e.weights.FretShiftWeight
		score -= float64(abs(p.String-prev.String)) * e.weights.StringCrossWeight

		interval := abs(pitches[i] - pitches[i-1])
		if interval > octave {
			score -= e.weights.WideLeapPenalty
		} else if interval == 0 {
			score -= e.weights.RepeatPenalty
		}
	}

	if fretboard.PitchClass(pitches[len(pitches)-1]) == e.tonic {
		score += e.weights.ResolutionBonus
	}

	return score
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
