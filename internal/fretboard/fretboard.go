package fretboard

import "fmt"

// Position identifies a single playable note as a (string, fret) pair.
// String 0 is the first entry of the tuning table (the lowest string in
// standard guitar tuning).
type Position struct {
	String int `json:"string"`
	Fret   int `json:"fret"`
}

// Fretboard maps positions to MIDI pitches for a fixed tuning. It is
// immutable after construction and safe to share across goroutines.
type Fretboard struct {
	tuning  []int
	maxFret int
}

// New creates a fretboard from a tuning table of open-string MIDI pitches
// and the highest playable fret.
func New(tuning []int, maxFret int) (*Fretboard, error) {
	if len(tuning) == 0 {
		return nil, fmt.Errorf("tuning table must not be empty")
	}
	if maxFret < 1 {
		return nil, fmt.Errorf("max fret must be positive, got: %d", maxFret)
	}
	t := make([]int, len(tuning))
	copy(t, tuning)
	return &Fretboard{tuning: t, maxFret: maxFret}, nil
}

// StringCount returns the number of strings.
func (f *Fretboard) StringCount() int {
	return len(f.tuning)
}

// MaxFret returns the highest playable fret.
func (f *Fretboard) MaxFret() int {
	return f.maxFret
}

// OpenPitch returns the MIDI pitch of an open string.
func (f *Fretboard) OpenPitch(str int) int {
	return f.tuning[str]
}

// PitchOf computes the MIDI pitch of a position: open-string pitch plus fret.
func (f *Fretboard) PitchOf(p Position) int {
	return f.tuning[p.String] + p.Fret
}

// Contains reports whether a position is within the board's bounds.
func (f *Fretboard) Contains(p Position) bool {
	return p.String >= 0 && p.String < len(f.tuning) && p.Fret >= 0 && p.Fret <= f.maxFret
}

// MustContain panics when a position is out of bounds. An out-of-bounds
// position can only come from a defective operator, never from user input,
// so it is not a recoverable error.
func (f *Fretboard) MustContain(p Position) {
	if !f.Contains(p) {
		panic(fmt.Sprintf("fretboard: position out of bounds: string=%d fret=%d (strings=%d, max fret=%d)",
			p.String, p.Fret, len(f.tuning), f.maxFret))
	}
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// PitchClass reduces a MIDI pitch to its chroma in [0, 11].
func PitchClass(pitch int) int {
	pc := pitch % 12
	if pc < 0 {
		pc += 12
	}
	return pc
}

// NoteName renders a MIDI pitch in scientific pitch notation (60 -> "C4").
func NoteName(pitch int) string {
	return fmt.Sprintf("%s%d", noteNames[PitchClass(pitch)], pitch/12-1)
}

// ClassName renders just the chroma letter of a MIDI pitch (64 -> "E").
func ClassName(pitch int) string {
	return noteNames[PitchClass(pitch)]
}
