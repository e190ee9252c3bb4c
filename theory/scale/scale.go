// Package scale provides scale construction from tonic and formula,
// mode rotation, scale-degree spelling, and the injectable mode table.
//
// Two distinct mode notions are exposed and must not be confused:
// Scale.Mode produces the diatonic mode relative to the same parent
// scale (mode 1 of C major is D dorian, same pitch-class set), while
// Scale.ParallelMode re-roots the rotated pattern on the unchanged
// tonic (mode 1 of C major becomes C dorian, a different set).
package scale

import (
	"errors"
	"fmt"

	"github.com/RyanBlaney/chordmap/theory/interval"
	"github.com/RyanBlaney/chordmap/theory/pitch"
)

// ErrInvalidFormula indicates a malformed scale formula
var ErrInvalidFormula = errors.New("invalid scale formula")

// Formula is an ordered sequence of semitone offsets from a tonic
// defining a mode family, e.g. the major scale {0, 2, 4, 5, 7, 9, 11}
type Formula struct {
	Name    string `json:"name"`
	Offsets []int  `json:"offsets"`
}

// NewFormula validates and builds a scale formula. Offsets must start
// at 0, ascend strictly within [0, 12), and count at least two; this
// keeps every mode rotation well formed.
func NewFormula(name string, offsets []int) (Formula, error) {
	if len(offsets) < 2 {
		return Formula{}, fmt.Errorf("%w: %q needs at least 2 offsets, got %d",
			ErrInvalidFormula, name, len(offsets))
	}
	if offsets[0] != 0 {
		return Formula{}, fmt.Errorf("%w: %q must start at offset 0", ErrInvalidFormula, name)
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] <= offsets[i-1] || offsets[i] > 11 {
			return Formula{}, fmt.Errorf("%w: %q offsets must ascend strictly within [0, 12)",
				ErrInvalidFormula, name)
		}
	}

	out := make([]int, len(offsets))
	copy(out, offsets)
	return Formula{Name: name, Offsets: out}, nil
}

// Len returns the number of scale degrees
func (f Formula) Len() int {
	return len(f.Offsets)
}

// Intervals returns the formula's offsets as a directionless interval set
func (f Formula) Intervals() interval.Set {
	return interval.NewSetFromOffsets(f.Offsets...)
}

// Equal reports whether two formulas have the same name and offsets
func (f Formula) Equal(other Formula) bool {
	if f.Name != other.Name || len(f.Offsets) != len(other.Offsets) {
		return false
	}
	for i := range f.Offsets {
		if f.Offsets[i] != other.Offsets[i] {
			return false
		}
	}
	return true
}

// Scale is a tonic note, a parent formula and a mode index (the
// rotation offset into the formula; 0 is the base mode). Scales are
// immutable; Mode and ParallelMode return new values.
type Scale struct {
	tonic   pitch.Note
	formula Formula
	mode    int

	// pref is the spelling preference fixed at Build time from the
	// original tonic. Degree spelling falls back to it for scales
	// without one letter per degree, so a flat-key pentatonic keeps
	// spelling flat through every rotation.
	pref pitch.Preference
}

// Build constructs a scale in its base mode. The formula is validated;
// no scale value is observable on failure.
func Build(tonic pitch.Note, formula Formula) (Scale, error) {
	validated, err := NewFormula(formula.Name, formula.Offsets)
	if err != nil {
		return Scale{}, err
	}
	return Scale{tonic: tonic, formula: validated, pref: tonic.Preference()}, nil
}

// Tonic returns the scale's tonic note
func (s Scale) Tonic() pitch.Note {
	return s.tonic
}

// Formula returns the parent formula the mode index rotates into
func (s Scale) Formula() Formula {
	return s.formula
}

// ModeIndex returns the rotation offset into the parent formula
func (s Scale) ModeIndex() int {
	return s.mode
}

// offsets returns the effective offsets of the current mode: the parent
// formula rotated left by the mode index, re-based so the new first
// degree sits at 0
func (s Scale) offsets() []int {
	parent := s.formula.Offsets
	length := len(parent)

	out := make([]int, length)
	for i := 0; i < length; i++ {
		out[i] = pitch.Distance(
			pitch.Normalize(parent[s.mode]),
			pitch.Normalize(parent[(i+s.mode)%length]),
		)
	}
	return out
}

// Mode returns the kth diatonic mode relative to the same parent scale:
// the pattern rotates left by k and the tonic moves to the kth degree,
// so the pitch-class set is preserved. Mode 1 of C major is D dorian.
//
// The new tonic keeps the scale's own degree spelling (Cb major's second
// mode is Db dorian, never C#), so rotating by k and then by length-k
// restores the original scale exactly, whatever the tonic's spelling.
func (s Scale) Mode(k int) Scale {
	length := s.formula.Len()
	k = ((k % length) + length) % length
	if k == 0 {
		return s
	}

	return Scale{
		tonic:   s.Degrees()[k],
		formula: s.formula,
		mode:    (s.mode + k) % length,
		pref:    s.pref,
	}
}

// ParallelMode returns the kth mode pattern re-rooted on the unchanged
// tonic. Mode 1 of C major becomes C dorian: a different pitch-class
// set, the non-diatonic sibling of Mode.
func (s Scale) ParallelMode(k int) Scale {
	length := s.formula.Len()
	k = ((k % length) + length) % length

	return Scale{
		tonic:   s.tonic,
		formula: s.formula,
		mode:    (s.mode + k) % length,
		pref:    s.pref,
	}
}

// Degrees returns the scale-degree notes in ascending order. Seven-note
// scales spell each letter name exactly once; other scale sizes fall
// back to the tonic's accidental preference.
func (s Scale) Degrees() []pitch.Note {
	offsets := s.offsets()
	degrees := make([]pitch.Note, len(offsets))
	degrees[0] = s.tonic

	sequential := len(offsets) == 7
	for i := 1; i < len(offsets); i++ {
		pc := s.tonic.Class().Transpose(offsets[i])
		if sequential {
			letter := pitch.NextLetter(s.tonic.Letter, i)
			if n, err := pitch.SpellWithLetter(pc, letter); err == nil {
				degrees[i] = n
				continue
			}
		}
		n, _ := pitch.Spell(pc, s.pref)
		degrees[i] = n
	}
	return degrees
}

// Classes returns the scale's pitch-class set
func (s Scale) Classes() pitch.ClassSet {
	var set pitch.ClassSet
	for _, o := range s.offsets() {
		set = set.Add(s.tonic.Class().Transpose(o))
	}
	return set
}

// Contains reports whether the pitch class is a scale member
func (s Scale) Contains(pc pitch.PitchClass) bool {
	return s.Classes().Contains(pc)
}

// Equal reports structural equality: tonic spelling, parent formula and
// mode index all equal
func (s Scale) Equal(other Scale) bool {
	return s.tonic == other.tonic &&
		s.mode == other.mode &&
		s.formula.Equal(other.formula)
}

// String renders the scale as "tonic formula" with the mode index when
// rotated, e.g. "C major" or "C major (mode 2)"
func (s Scale) String() string {
	if s.mode == 0 {
		return fmt.Sprintf("%s %s", s.tonic, s.formula.Name)
	}
	return fmt.Sprintf("%s %s (mode %d)", s.tonic, s.formula.Name, s.mode)
}
