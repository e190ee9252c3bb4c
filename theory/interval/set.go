package interval

import "github.com/RyanBlaney/chordmap/theory/pitch"

// Set is a set of directionless intervals, identified by their reduced
// semitone distances and packed into the low 12 bits of a uint16.
// Chord and scale formulas are compared through these operations.
type Set uint16

// NewSet builds a set from the given intervals
func NewSet(intervals ...Interval) Set {
	var s Set
	for _, i := range intervals {
		s = s.Add(i)
	}
	return s
}

// NewSetFromOffsets builds a set from raw semitone offsets, reducing
// each modulo 12
func NewSetFromOffsets(offsets ...int) Set {
	var s Set
	for _, o := range offsets {
		s = s.Add(New(o))
	}
	return s
}

// Add returns the set with the interval included
func (s Set) Add(i Interval) Set {
	return s | Set(1)<<uint(pitch.Normalize(i.Semitones))
}

// Contains reports whether the interval is a member of the set
func (s Set) Contains(i Interval) bool {
	return s&(Set(1)<<uint(pitch.Normalize(i.Semitones))) != 0
}

// Union returns the set of intervals in either set
func (s Set) Union(other Set) Set {
	return s | other
}

// SubsetOf reports whether every interval in s is also in other
func (s Set) SubsetOf(other Set) bool {
	return s&other == s
}

// Intervals returns the members in ascending semitone order
func (s Set) Intervals() []Interval {
	var out []Interval
	for st := 0; st < 12; st++ {
		if s&(Set(1)<<uint(st)) != 0 {
			out = append(out, Interval{Semitones: st})
		}
	}
	return out
}
