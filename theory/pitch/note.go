package pitch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadNoteSymbol indicates a note symbol that could not be parsed
var ErrBadNoteSymbol = errors.New("bad note symbol")

// Accidental is the chromatic alteration applied to a letter name,
// ranging from double flat (-2) to double sharp (+2)
type Accidental int

const (
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
)

// Offset returns the semitone offset the accidental applies
func (a Accidental) Offset() int {
	return int(a)
}

func (a Accidental) String() string {
	switch a {
	case DoubleFlat:
		return "bb"
	case Flat:
		return "b"
	case Natural:
		return ""
	case Sharp:
		return "#"
	case DoubleSharp:
		return "##"
	default:
		return "?"
	}
}

// naturalClasses maps letter names to their natural pitch classes
var naturalClasses = map[byte]PitchClass{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// letterOrder lists the seven letter names in scale order starting from C
var letterOrder = []byte{'C', 'D', 'E', 'F', 'G', 'A', 'B'}

// Note is a pitch class together with a display spelling: a letter name
// A-G and an accidental. Two Notes with equal pitch class but different
// spelling are enharmonically equal but not identical; spelling is kept
// for display only.
type Note struct {
	Letter     byte       `json:"letter"`
	Accidental Accidental `json:"accidental"`
}

// NewNote builds a Note from a letter name and accidental
func NewNote(letter byte, accidental Accidental) (Note, error) {
	if _, ok := naturalClasses[letter]; !ok {
		return Note{}, fmt.Errorf("%w: letter %q", ErrBadNoteSymbol, string(letter))
	}
	if accidental < DoubleFlat || accidental > DoubleSharp {
		return Note{}, fmt.Errorf("%w: accidental out of range", ErrBadNoteSymbol)
	}
	return Note{Letter: letter, Accidental: accidental}, nil
}

// ParseNote resolves a note symbol like "C", "F#", "Bb" or "G##" to a Note.
// The letter may be lower case; accidentals are '#' and 'b', doubled for
// double sharps and flats.
func ParseNote(symbol string) (Note, error) {
	if symbol == "" {
		return Note{}, fmt.Errorf("%w: empty symbol", ErrBadNoteSymbol)
	}

	letter := strings.ToUpper(symbol[:1])[0]
	if _, ok := naturalClasses[letter]; !ok {
		return Note{}, fmt.Errorf("%w: %q", ErrBadNoteSymbol, symbol)
	}

	var accidental Accidental
	switch symbol[1:] {
	case "":
		accidental = Natural
	case "#":
		accidental = Sharp
	case "##", "x":
		accidental = DoubleSharp
	case "b":
		accidental = Flat
	case "bb":
		accidental = DoubleFlat
	default:
		return Note{}, fmt.Errorf("%w: %q", ErrBadNoteSymbol, symbol)
	}

	return Note{Letter: letter, Accidental: accidental}, nil
}

// Class returns the pitch class the spelling denotes
func (n Note) Class() PitchClass {
	return naturalClasses[n.Letter].Transpose(n.Accidental.Offset())
}

// String renders the spelling, e.g. "C#", "Bb", "E"
func (n Note) String() string {
	return string(n.Letter) + n.Accidental.String()
}

// EnharmonicEqual reports whether two notes denote the same pitch class,
// regardless of spelling
func (n Note) EnharmonicEqual(other Note) bool {
	return n.Class() == other.Class()
}

// Preference derives the spelling preference implied by the note's own
// accidental: flat-side accidentals prefer flat spellings, everything
// else prefers sharps
func (n Note) Preference() Preference {
	if n.Accidental < Natural {
		return PreferFlat
	}
	return PreferSharp
}

// Transpose moves the note by the given number of semitones and respells
// the result. With PreferNone the note's own preference is used.
func (n Note) Transpose(semitones int, pref Preference) Note {
	if pref == PreferNone {
		pref = n.Preference()
	}
	spelled, _ := Spell(n.Class().Transpose(semitones), pref)
	return spelled
}
