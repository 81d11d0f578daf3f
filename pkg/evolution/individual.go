package evolution

import "github.com/ducminhle1904/tab-composer/internal/fretboard"

// Melody is an ordered, fixed-length sequence of fretboard positions, the
// chromosome of the search. Order is performance order.
type Melody []fretboard.Position

// Clone returns an independent copy so population slots never alias.
func (m Melody) Clone() Melody {
	c := make(Melody, len(m))
	copy(c, m)
	return c
}

// Individual pairs a melody with its most recent fitness score.
type Individual struct {
	Melody  Melody
	Fitness float64
}

// Clone deep-copies the individual.
func (i Individual) Clone() Individual {
	return Individual{Melody: i.Melody.Clone(), Fitness: i.Fitness}
}
