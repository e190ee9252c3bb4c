package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNote(t *testing.T) {
	tests := []struct {
		name          string
		symbol        string
		expectedClass PitchClass
		expectedStr   string
		expectError   bool
	}{
		{name: "natural", symbol: "C", expectedClass: 0, expectedStr: "C"},
		{name: "sharp", symbol: "F#", expectedClass: 6, expectedStr: "F#"},
		{name: "flat", symbol: "Bb", expectedClass: 10, expectedStr: "Bb"},
		{name: "double sharp", symbol: "G##", expectedClass: 9, expectedStr: "G##"},
		{name: "double sharp x", symbol: "Fx", expectedClass: 7, expectedStr: "F##"},
		{name: "double flat", symbol: "Dbb", expectedClass: 0, expectedStr: "Dbb"},
		{name: "lower case letter", symbol: "e", expectedClass: 4, expectedStr: "E"},
		{name: "flat wrap", symbol: "Cb", expectedClass: 11, expectedStr: "Cb"},
		{name: "sharp wrap", symbol: "B#", expectedClass: 0, expectedStr: "B#"},
		{name: "empty", symbol: "", expectError: true},
		{name: "bad letter", symbol: "H", expectError: true},
		{name: "bad accidental", symbol: "C%", expectError: true},
		{name: "triple sharp", symbol: "C###", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ParseNote(tt.symbol)
			if tt.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrBadNoteSymbol)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedClass, n.Class())
			assert.Equal(t, tt.expectedStr, n.String())
		})
	}
}

func TestNewNote(t *testing.T) {
	n, err := NewNote('D', Sharp)
	require.NoError(t, err)
	assert.Equal(t, PitchClass(3), n.Class())

	_, err = NewNote('X', Natural)
	assert.ErrorIs(t, err, ErrBadNoteSymbol)

	_, err = NewNote('C', Accidental(3))
	assert.ErrorIs(t, err, ErrBadNoteSymbol)
}

func TestEnharmonicEqual(t *testing.T) {
	cSharp, err := ParseNote("C#")
	require.NoError(t, err)
	dFlat, err := ParseNote("Db")
	require.NoError(t, err)

	assert.True(t, cSharp.EnharmonicEqual(dFlat))
	assert.NotEqual(t, cSharp, dFlat, "enharmonic notes keep distinct spellings")
}

func TestNotePreference(t *testing.T) {
	tests := []struct {
		symbol   string
		expected Preference
	}{
		{symbol: "C", expected: PreferSharp},
		{symbol: "F#", expected: PreferSharp},
		{symbol: "G##", expected: PreferSharp},
		{symbol: "Bb", expected: PreferFlat},
		{symbol: "Ebb", expected: PreferFlat},
	}

	for _, tt := range tests {
		n, err := ParseNote(tt.symbol)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, n.Preference(), "preference of %s", tt.symbol)
	}
}

func TestNoteTranspose(t *testing.T) {
	c, _ := ParseNote("C")
	bb, _ := ParseNote("Bb")

	up := c.Transpose(1, PreferNone)
	assert.Equal(t, "C#", up.String(), "natural notes respell sharp by default")

	down := bb.Transpose(-2, PreferNone)
	assert.Equal(t, "Ab", down.String(), "flat notes respell flat")

	forced := c.Transpose(1, PreferFlat)
	assert.Equal(t, "Db", forced.String())

	assert.Equal(t, PitchClass(1), up.Class())
}
