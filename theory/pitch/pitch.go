// Package pitch provides 12-tone pitch-class arithmetic and enharmonic
// note spelling. All arithmetic is modulo 12; spelling is display-only
// and never participates in comparisons.
package pitch

import (
	"math/bits"
	"strings"
)

// PitchClass is a tone identity with octave information discarded,
// always in [0, 12). 0=C, 1=C#/Db, ..., 11=B.
type PitchClass int

// Normalize reduces any integer to a PitchClass in [0, 12)
func Normalize(n int) PitchClass {
	return PitchClass(((n % 12) + 12) % 12)
}

// Distance returns the ascending semitone count from a to b, in [0, 12)
func Distance(a, b PitchClass) int {
	return int(Normalize(int(b) - int(a)))
}

// CircularDistance returns the shortest semitone distance between a and b,
// ignoring direction, in [0, 6]
func CircularDistance(a, b PitchClass) int {
	d := Distance(a, b)
	if d > 6 {
		return 12 - d
	}
	return d
}

// Transpose moves the pitch class by the given number of semitones
// (negative values move down)
func (pc PitchClass) Transpose(semitones int) PitchClass {
	return Normalize(int(pc) + semitones)
}

// String returns the sharp-preferred spelling of the pitch class
func (pc PitchClass) String() string {
	return SpellWithDefault(pc).String()
}

// ClassSet is a set of pitch classes packed into the low 12 bits
// of a uint16. The zero value is the empty set.
type ClassSet uint16

// NewClassSet builds a set from the given pitch classes
func NewClassSet(classes ...PitchClass) ClassSet {
	var s ClassSet
	for _, pc := range classes {
		s = s.Add(pc)
	}
	return s
}

// Add returns the set with pc included
func (s ClassSet) Add(pc PitchClass) ClassSet {
	return s | ClassSet(1)<<uint(Normalize(int(pc)))
}

// Contains reports whether pc is a member of the set
func (s ClassSet) Contains(pc PitchClass) bool {
	return s&(ClassSet(1)<<uint(Normalize(int(pc)))) != 0
}

// Union returns the set of classes in either set
func (s ClassSet) Union(other ClassSet) ClassSet {
	return s | other
}

// Intersect returns the set of classes in both sets
func (s ClassSet) Intersect(other ClassSet) ClassSet {
	return s & other
}

// SubsetOf reports whether every class in s is also in other
func (s ClassSet) SubsetOf(other ClassSet) bool {
	return s&other == s
}

// Size returns the number of pitch classes in the set
func (s ClassSet) Size() int {
	return bits.OnesCount16(uint16(s))
}

// Classes returns the members of the set in ascending order
func (s ClassSet) Classes() []PitchClass {
	classes := make([]PitchClass, 0, s.Size())
	for pc := PitchClass(0); pc < 12; pc++ {
		if s.Contains(pc) {
			classes = append(classes, pc)
		}
	}
	return classes
}

// Vector returns the set as a 12-element indicator vector, ordered C..B.
// Used by similarity metrics that operate on chroma-style vectors.
func (s ClassSet) Vector() []float64 {
	v := make([]float64, 12)
	for pc := PitchClass(0); pc < 12; pc++ {
		if s.Contains(pc) {
			v[pc] = 1.0
		}
	}
	return v
}

// Transpose shifts every member of the set by the given number of semitones
func (s ClassSet) Transpose(semitones int) ClassSet {
	var out ClassSet
	for _, pc := range s.Classes() {
		out = out.Add(pc.Transpose(semitones))
	}
	return out
}

// String renders the set as sharp-spelled note names, e.g. "{C, E, G}"
func (s ClassSet) String() string {
	names := make([]string, 0, s.Size())
	for _, pc := range s.Classes() {
		names = append(names, pc.String())
	}
	return "{" + strings.Join(names, ", ") + "}"
}
