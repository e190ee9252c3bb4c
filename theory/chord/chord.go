package chord

import (
	"fmt"

	"github.com/RyanBlaney/chordmap/theory/interval"
	"github.com/RyanBlaney/chordmap/theory/pitch"
)

// Chord is a root note, a quality formula and an inversion index.
// Inversion 0 is root position; inversion n puts the nth chord tone in
// the bass. Chords are immutable; Invert returns a new value. The
// pitch-class set is invariant under inversion.
type Chord struct {
	root      pitch.Note
	formula   Formula
	inversion int
}

// VoicedNote is a spelled note with an octave placement relative to the
// root-position root (octave 0)
type VoicedNote struct {
	Note   pitch.Note `json:"note"`
	Octave int        `json:"octave"`
}

// Build constructs a chord in root position. The formula is validated;
// no chord value is observable on failure.
func Build(root pitch.Note, formula Formula) (Chord, error) {
	validated, err := NewFormula(formula.Name, formula.Offsets)
	if err != nil {
		return Chord{}, err
	}
	return Chord{root: root, formula: validated}, nil
}

// Root returns the chord's root note
func (c Chord) Root() pitch.Note {
	return c.root
}

// Formula returns the chord's quality formula
func (c Chord) Formula() Formula {
	return c.formula
}

// Inversion returns the inversion index, in [0, formula length)
func (c Chord) Inversion() int {
	return c.inversion
}

// Invert rotates the chord by n further inversions. The index is
// cumulative modulo the formula length, so inverting by n and then by
// length-n restores the original chord. Pitch-class content never
// changes, only voicing and bass.
func (c Chord) Invert(n int) Chord {
	length := c.formula.Len()
	c.inversion = ((c.inversion+n)%length + length) % length
	return c
}

// rotatedOffsets returns the formula offsets rotated left by the
// inversion index, octave-wrapped so the sequence ascends strictly from
// the new bass: any tone that would sound below it is raised an octave.
func (c Chord) rotatedOffsets() []int {
	offsets := c.formula.Offsets
	length := len(offsets)

	out := make([]int, length)
	for i := 0; i < length; i++ {
		out[i] = offsets[(i+c.inversion)%length]
	}
	for i := 1; i < length; i++ {
		for out[i] <= out[i-1] {
			out[i] += 12
		}
	}
	return out
}

// Classes returns the chord's pitch classes in sounding order, bass first
func (c Chord) Classes() []pitch.PitchClass {
	rotated := c.rotatedOffsets()
	classes := make([]pitch.PitchClass, len(rotated))
	for i, o := range rotated {
		classes[i] = c.root.Class().Transpose(o)
	}
	return classes
}

// SonorityKey returns the unordered pitch-class set of the chord, the
// matching key used by the graph engine. Invariant under inversion.
func (c Chord) SonorityKey() pitch.ClassSet {
	return c.formula.Classes(c.root.Class())
}

// Sounding returns the spelled notes in sounding order with octave
// placements relative to the root-position root. The sequence ascends
// strictly from the bass.
func (c Chord) Sounding() []VoicedNote {
	rotated := c.rotatedOffsets()
	pref := c.root.Preference()

	out := make([]VoicedNote, len(rotated))
	for i, o := range rotated {
		absolute := int(c.root.Class()) + o
		spelled, _ := pitch.Spell(pitch.Normalize(absolute), pref)
		out[i] = VoicedNote{Note: spelled, Octave: absolute / 12}
	}
	return out
}

// Notes returns the spelled notes in sounding order, without octave
// placement. Spelling follows the root's own accidental preference.
func (c Chord) Notes() []pitch.Note {
	return c.SpellAll(pitch.PreferNone)
}

// Bass returns the lowest sounding note
func (c Chord) Bass() pitch.Note {
	return c.Notes()[0]
}

// SpellAll spells every chord tone in sounding order under the given
// preference. PreferNone falls back to the preference implied by the
// root's accidental.
func (c Chord) SpellAll(pref pitch.Preference) []pitch.Note {
	if pref == pitch.PreferNone {
		pref = c.root.Preference()
	}
	classes := c.Classes()
	notes := make([]pitch.Note, len(classes))
	for i, pc := range classes {
		notes[i], _ = pitch.Spell(pc, pref)
	}
	return notes
}

// SpellAllInKey spells every chord tone following the given major key's
// convention
func (c Chord) SpellAllInKey(key pitch.Note) []pitch.Note {
	classes := c.Classes()
	notes := make([]pitch.Note, len(classes))
	for i, pc := range classes {
		notes[i] = pitch.SpellInKey(pc, key)
	}
	return notes
}

// Intervals returns the directionless intervals from the root to each
// chord tone, in formula order
func (c Chord) Intervals() []interval.Interval {
	out := make([]interval.Interval, len(c.formula.Offsets))
	for i, o := range c.formula.Offsets {
		out[i] = interval.New(o)
	}
	return out
}

// Equal reports structural equality: root spelling, formula and
// inversion all equal
func (c Chord) Equal(other Chord) bool {
	return c.root == other.root &&
		c.inversion == other.inversion &&
		c.formula.Equal(other.formula)
}

// SameSonority reports whether two chords share the same pitch-class
// set, regardless of root, quality or inversion
func (c Chord) SameSonority(other Chord) bool {
	return c.SonorityKey() == other.SonorityKey()
}

// String renders the chord as "root quality", with the bass appended
// slash-style when inverted, e.g. "C maj7" or "C maj/E"
func (c Chord) String() string {
	if c.inversion == 0 {
		return fmt.Sprintf("%s %s", c.root, c.formula.Name)
	}
	return fmt.Sprintf("%s %s/%s", c.root, c.formula.Name, c.Bass())
}
