package pitch

import (
	"errors"
	"fmt"
)

// ErrSpellingAmbiguous indicates a pitch class with two equally valid
// spellings and no preference to pick between them. Recoverable: callers
// either supply a preference or use SpellWithDefault.
var ErrSpellingAmbiguous = errors.New("spelling ambiguous")

// Preference selects between enharmonic spellings of the black-key
// pitch classes
type Preference int

const (
	// PreferNone supplies no preference; spelling an accidental pitch
	// class fails with ErrSpellingAmbiguous
	PreferNone Preference = iota
	// PreferSharp spells accidentals with sharps (C#, D#, F#, G#, A#)
	PreferSharp
	// PreferFlat spells accidentals with flats (Db, Eb, Gb, Ab, Bb)
	PreferFlat
)

// sharpSpellings and flatSpellings are the canonical single-accidental
// spellings per pitch class. Naturals are identical in both tables.
var sharpSpellings = [12]Note{
	{'C', Natural}, {'C', Sharp}, {'D', Natural}, {'D', Sharp},
	{'E', Natural}, {'F', Natural}, {'F', Sharp}, {'G', Natural},
	{'G', Sharp}, {'A', Natural}, {'A', Sharp}, {'B', Natural},
}

var flatSpellings = [12]Note{
	{'C', Natural}, {'D', Flat}, {'D', Natural}, {'E', Flat},
	{'E', Natural}, {'F', Natural}, {'G', Flat}, {'G', Natural},
	{'A', Flat}, {'A', Natural}, {'B', Flat}, {'B', Natural},
}

// isAccidentalClass marks the five pitch classes with no natural spelling
var isAccidentalClass = [12]bool{
	false, true, false, true, false, false,
	true, false, true, false, true, false,
}

// Spell maps a pitch class to a Note deterministically. Natural pitch
// classes spell the same under any preference. Accidental pitch classes
// require a preference; with PreferNone the call fails with
// ErrSpellingAmbiguous and the caller must pick a default.
func Spell(pc PitchClass, pref Preference) (Note, error) {
	pc = Normalize(int(pc))
	switch pref {
	case PreferSharp:
		return sharpSpellings[pc], nil
	case PreferFlat:
		return flatSpellings[pc], nil
	default:
		if isAccidentalClass[pc] {
			return Note{}, fmt.Errorf("%w: pitch class %d", ErrSpellingAmbiguous, pc)
		}
		return sharpSpellings[pc], nil
	}
}

// SpellWithDefault spells a pitch class applying the documented default
// policy: sharp spelling for ambiguous classes. Never fails.
func SpellWithDefault(pc PitchClass) Note {
	n, _ := Spell(pc, PreferSharp)
	return n
}

// SpellInKey spells a pitch class following the convention of the given
// major key: flat keys (any flat-spelled tonic, plus F) use flat
// spellings, all other keys use sharps. Within Bb major, pitch class 10
// spells as Bb, not A#.
func SpellInKey(pc PitchClass, key Note) Note {
	n, _ := Spell(pc, keyPreference(key))
	return n
}

// keyPreference derives the spelling convention of a major key. F is the
// only natural-letter major key on the flat side of the circle of fifths.
func keyPreference(key Note) Preference {
	if key.Accidental < Natural {
		return PreferFlat
	}
	if key.Accidental == Natural && key.Letter == 'F' {
		return PreferFlat
	}
	return PreferSharp
}

// SpellWithLetter spells a pitch class on a required letter name,
// choosing the accidental that closes the gap. Scale-degree spelling
// uses this to give each letter exactly once. Fails with
// ErrSpellingAmbiguous when no accidental within the double-sharp/flat
// range reaches the pitch class from that letter.
func SpellWithLetter(pc PitchClass, letter byte) (Note, error) {
	base, ok := naturalClasses[letter]
	if !ok {
		return Note{}, fmt.Errorf("%w: letter %q", ErrBadNoteSymbol, string(letter))
	}

	// Signed shortest chromatic offset from the letter's natural class
	diff := Distance(base, Normalize(int(pc)))
	if diff > 6 {
		diff -= 12
	}
	if diff < int(DoubleFlat) || diff > int(DoubleSharp) {
		return Note{}, fmt.Errorf("%w: pitch class %d unreachable from letter %q",
			ErrSpellingAmbiguous, pc, string(letter))
	}
	return Note{Letter: letter, Accidental: Accidental(diff)}, nil
}

// NextLetter returns the letter name the given number of scale steps
// above the starting letter, wrapping G back to A
func NextLetter(letter byte, steps int) byte {
	for i, l := range letterOrder {
		if l == letter {
			return letterOrder[((i+steps)%len(letterOrder)+len(letterOrder))%len(letterOrder)]
		}
	}
	return letter
}
