// Package chord provides chord construction from root and formula,
// inversion with octave-wrap voicing, note spelling, and the injectable
// chord-quality table.
package chord

import (
	"errors"
	"fmt"
	"slices"

	"github.com/RyanBlaney/chordmap/theory/interval"
	"github.com/RyanBlaney/chordmap/theory/pitch"
)

// ErrInvalidFormula indicates a malformed chord formula: fewer than two
// distinct offsets, offsets out of order, or duplicates modulo 12
var ErrInvalidFormula = errors.New("invalid chord formula")

// Formula is an ordered sequence of semitone offsets from a root,
// together with a symbolic quality name (e.g. "maj7" = {0, 4, 7, 11}).
// Offsets above 11 denote extensions voiced in the next octave.
// A Formula is immutable and shared by all chords of its quality.
type Formula struct {
	Name    string `json:"name"`
	Offsets []int  `json:"offsets"`
}

// NewFormula validates and builds a chord formula. Offsets must be
// non-negative, strictly ascending, at least two, and pairwise distinct
// modulo 12.
func NewFormula(name string, offsets []int) (Formula, error) {
	if len(offsets) < 2 {
		return Formula{}, fmt.Errorf("%w: %q needs at least 2 offsets, got %d",
			ErrInvalidFormula, name, len(offsets))
	}

	var seen pitch.ClassSet
	prev := -1
	for _, o := range offsets {
		if o < 0 || o <= prev {
			return Formula{}, fmt.Errorf("%w: %q offsets must be non-negative and ascending",
				ErrInvalidFormula, name)
		}
		pc := pitch.Normalize(o)
		if seen.Contains(pc) {
			return Formula{}, fmt.Errorf("%w: %q duplicates offset %d modulo 12",
				ErrInvalidFormula, name, o)
		}
		seen = seen.Add(pc)
		prev = o
	}

	return Formula{Name: name, Offsets: slices.Clone(offsets)}, nil
}

// Len returns the number of chord tones
func (f Formula) Len() int {
	return len(f.Offsets)
}

// Classes returns the pitch-class set the formula produces over the
// given root
func (f Formula) Classes(root pitch.PitchClass) pitch.ClassSet {
	var s pitch.ClassSet
	for _, o := range f.Offsets {
		s = s.Add(root.Transpose(o))
	}
	return s
}

// Intervals returns the formula's offsets as a directionless interval set
func (f Formula) Intervals() interval.Set {
	return interval.NewSetFromOffsets(f.Offsets...)
}

// Equal reports whether two formulas have the same name and offsets
func (f Formula) Equal(other Formula) bool {
	return f.Name == other.Name && slices.Equal(f.Offsets, other.Offsets)
}
