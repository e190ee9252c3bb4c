// Package interval provides named intervals over the 12-tone space,
// interval inversion, and the set operations chord and scale formulas
// are compared with.
package interval

import (
	"github.com/RyanBlaney/chordmap/theory/pitch"
)

// Interval is an ordered pair of a semitone distance in [0, 12) and a
// derived quality name. The semitone distance is the sole equality key;
// the name is looked up, never set independently. Chord formulas use
// directionless intervals; melodic motion uses directed ones,
// distinguished by the Directed/Descending flags.
type Interval struct {
	Semitones  int  `json:"semitones"`
	Directed   bool `json:"directed,omitempty"`
	Descending bool `json:"descending,omitempty"`
}

// canonicalNames maps semitone distances to their canonical quality names
var canonicalNames = [12]string{
	"perfect unison",
	"minor second",
	"major second",
	"minor third",
	"major third",
	"perfect fourth",
	"tritone",
	"perfect fifth",
	"minor sixth",
	"major sixth",
	"minor seventh",
	"major seventh",
}

// enharmonicNames lists the augmented/diminished alternates per semitone
// distance, for callers that explicitly request enharmonic-aware naming
var enharmonicNames = [12][]string{
	{"diminished second"},
	{"augmented unison"},
	{"diminished third"},
	{"augmented second"},
	{"diminished fourth"},
	{"augmented third"},
	{"augmented fourth", "diminished fifth"},
	{"diminished sixth"},
	{"augmented fifth"},
	{"diminished seventh"},
	{"augmented sixth"},
	{"diminished octave"},
}

// New builds a directionless interval, reducing the semitone count to [0, 12)
func New(semitones int) Interval {
	return Interval{Semitones: int(pitch.Normalize(semitones))}
}

// NewDirected builds a directed (melodic) interval; a negative semitone
// count marks descending motion
func NewDirected(semitones int) Interval {
	descending := semitones < 0
	if descending {
		semitones = -semitones
	}
	return Interval{
		Semitones:  int(pitch.Normalize(semitones)),
		Directed:   true,
		Descending: descending,
	}
}

// Between returns the directionless interval from a up to b
func Between(a, b pitch.Note) Interval {
	return New(pitch.Distance(a.Class(), b.Class()))
}

// BetweenClasses returns the directionless interval from pitch class a up to b
func BetweenClasses(a, b pitch.PitchClass) Interval {
	return New(pitch.Distance(a, b))
}

// Name returns the canonical quality name for the semitone distance
func (i Interval) Name() string {
	return canonicalNames[pitch.Normalize(i.Semitones)]
}

// EnharmonicNames returns the augmented/diminished alternate names for
// the semitone distance, e.g. "augmented fourth" and "diminished fifth"
// for the tritone
func (i Interval) EnharmonicNames() []string {
	alts := enharmonicNames[pitch.Normalize(i.Semitones)]
	out := make([]string, len(alts))
	copy(out, alts)
	return out
}

// Invert applies the classic interval-inversion rule
// (12 - semitones) mod 12. The unison maps to 0 again because its
// inversion, the octave, reduces back to a unison under octave
// equivalence; it is not a trivial fixed point.
func (i Interval) Invert() Interval {
	return Interval{
		Semitones:  int(pitch.Normalize(12 - i.Semitones)),
		Directed:   i.Directed,
		Descending: i.Descending,
	}
}

// Equal reports whether two intervals span the same reduced semitone
// distance. Quality names are derived from the distance, so they never
// participate in equality.
func (i Interval) Equal(other Interval) bool {
	return pitch.Normalize(i.Semitones) == pitch.Normalize(other.Semitones)
}

// String renders the quality name, prefixed with "descending" for
// descending melodic intervals
func (i Interval) String() string {
	if i.Directed && i.Descending {
		return "descending " + i.Name()
	}
	return i.Name()
}
