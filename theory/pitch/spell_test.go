package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpell(t *testing.T) {
	tests := []struct {
		name        string
		pc          PitchClass
		pref        Preference
		expected    string
		expectError bool
	}{
		{name: "natural no preference", pc: 0, pref: PreferNone, expected: "C"},
		{name: "natural sharp preference", pc: 7, pref: PreferSharp, expected: "G"},
		{name: "natural flat preference", pc: 7, pref: PreferFlat, expected: "G"},
		{name: "accidental sharp", pc: 1, pref: PreferSharp, expected: "C#"},
		{name: "accidental flat", pc: 1, pref: PreferFlat, expected: "Db"},
		{name: "tritone sharp", pc: 6, pref: PreferSharp, expected: "F#"},
		{name: "tritone flat", pc: 6, pref: PreferFlat, expected: "Gb"},
		{name: "accidental no preference", pc: 10, pref: PreferNone, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Spell(tt.pc, tt.pref)
			if tt.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrSpellingAmbiguous)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n.String())
			assert.Equal(t, tt.pc, n.Class(), "spelling must round-trip to the pitch class")
		})
	}
}

// SpellWithDefault applies the sharp default and never fails.
func TestSpellWithDefault(t *testing.T) {
	expected := []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	for pc := PitchClass(0); pc < 12; pc++ {
		assert.Equal(t, expected[pc], SpellWithDefault(pc).String())
	}
}

func TestSpellInKey(t *testing.T) {
	bFlatKey, _ := ParseNote("Bb")
	dKey, _ := ParseNote("D")
	fKey, _ := ParseNote("F")
	fSharpKey, _ := ParseNote("F#")

	// Within a flat key, pitch class 10 spells as Bb, not A#
	assert.Equal(t, "Bb", SpellInKey(10, bFlatKey).String())
	assert.Equal(t, "A#", SpellInKey(10, dKey).String())

	// F major is the one natural-letter key on the flat side
	assert.Equal(t, "Bb", SpellInKey(10, fKey).String())
	assert.Equal(t, "A#", SpellInKey(10, fSharpKey).String())
}

func TestSpellWithLetter(t *testing.T) {
	tests := []struct {
		name        string
		pc          PitchClass
		letter      byte
		expected    string
		expectError bool
	}{
		{name: "natural", pc: 4, letter: 'E', expected: "E"},
		{name: "sharp", pc: 6, letter: 'F', expected: "F#"},
		{name: "flat", pc: 10, letter: 'B', expected: "Bb"},
		{name: "e sharp", pc: 5, letter: 'E', expected: "E#"},
		{name: "c flat", pc: 11, letter: 'C', expected: "Cb"},
		{name: "double sharp", pc: 9, letter: 'G', expected: "G##"},
		{name: "double flat", pc: 0, letter: 'D', expected: "Dbb"},
		{name: "unreachable", pc: 6, letter: 'A', expectError: true},
		{name: "bad letter", pc: 0, letter: 'Q', expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := SpellWithLetter(tt.pc, tt.letter)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n.String())
			assert.Equal(t, tt.pc, n.Class())
		})
	}
}

func TestNextLetter(t *testing.T) {
	assert.Equal(t, byte('D'), NextLetter('C', 1))
	assert.Equal(t, byte('A'), NextLetter('G', 1))
	assert.Equal(t, byte('C'), NextLetter('C', 7))
	assert.Equal(t, byte('B'), NextLetter('C', -1))
	assert.Equal(t, byte('E'), NextLetter('A', 4))
}
