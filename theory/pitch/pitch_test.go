package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected PitchClass
	}{
		{name: "in range", input: 5, expected: 5},
		{name: "zero", input: 0, expected: 0},
		{name: "octave up", input: 12, expected: 0},
		{name: "above octave", input: 14, expected: 2},
		{name: "negative", input: -1, expected: 11},
		{name: "deep negative", input: -25, expected: 11},
		{name: "large", input: 127, expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 4, Distance(0, 4))  // C up to E
	assert.Equal(t, 8, Distance(4, 0))  // E up to C
	assert.Equal(t, 0, Distance(7, 7))  // G to itself
	assert.Equal(t, 11, Distance(0, 11))
	assert.Equal(t, 1, Distance(11, 0))
}

// Distance symmetry: ascending distances in both directions sum to an
// octave, except between equal classes where both sides are zero.
func TestDistanceSymmetry(t *testing.T) {
	for a := PitchClass(0); a < 12; a++ {
		for b := PitchClass(0); b < 12; b++ {
			sum := Distance(a, b) + Distance(b, a)
			if a == b {
				assert.Equal(t, 0, sum, "distance(%d,%d)", a, b)
			} else {
				assert.Equal(t, 12, sum, "distance(%d,%d)", a, b)
			}
		}
	}
}

func TestCircularDistance(t *testing.T) {
	assert.Equal(t, 4, CircularDistance(0, 4))
	assert.Equal(t, 4, CircularDistance(4, 0))
	assert.Equal(t, 1, CircularDistance(11, 0))
	assert.Equal(t, 6, CircularDistance(0, 6))
	assert.Equal(t, 0, CircularDistance(3, 3))
}

func TestPitchClassTranspose(t *testing.T) {
	assert.Equal(t, PitchClass(2), PitchClass(0).Transpose(2))
	assert.Equal(t, PitchClass(11), PitchClass(0).Transpose(-1))
	assert.Equal(t, PitchClass(0), PitchClass(7).Transpose(17))
}

func TestClassSet(t *testing.T) {
	cMajor := NewClassSet(0, 4, 7)

	assert.Equal(t, 3, cMajor.Size())
	assert.True(t, cMajor.Contains(4))
	assert.False(t, cMajor.Contains(5))
	assert.Equal(t, []PitchClass{0, 4, 7}, cMajor.Classes())

	aMinor := NewClassSet(9, 0, 4)
	assert.Equal(t, NewClassSet(0, 4), cMajor.Intersect(aMinor))
	assert.Equal(t, NewClassSet(0, 4, 7, 9), cMajor.Union(aMinor))

	assert.True(t, NewClassSet(0, 4).SubsetOf(cMajor))
	assert.False(t, NewClassSet(0, 5).SubsetOf(cMajor))
	assert.True(t, ClassSet(0).SubsetOf(cMajor), "empty set is a subset of everything")

	assert.Equal(t, NewClassSet(2, 6, 9), cMajor.Transpose(2))
	assert.Equal(t, cMajor, cMajor.Transpose(12))
}

func TestClassSetVector(t *testing.T) {
	v := NewClassSet(0, 4, 7).Vector()
	require.Len(t, v, 12)
	assert.Equal(t, 1.0, v[0])
	assert.Equal(t, 1.0, v[4])
	assert.Equal(t, 1.0, v[7])
	assert.Equal(t, 0.0, v[1])
}

func TestClassSetString(t *testing.T) {
	assert.Equal(t, "{C, E, G}", NewClassSet(0, 4, 7).String())
	assert.Equal(t, "{}", ClassSet(0).String())
}

func TestClassSetAddDuplicate(t *testing.T) {
	s := NewClassSet(0, 4, 7)
	assert.Equal(t, s, s.Add(4))
}
