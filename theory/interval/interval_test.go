package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/chordmap/theory/pitch"
)

func TestIntervalNames(t *testing.T) {
	tests := []struct {
		semitones int
		expected  string
	}{
		{semitones: 0, expected: "perfect unison"},
		{semitones: 1, expected: "minor second"},
		{semitones: 2, expected: "major second"},
		{semitones: 3, expected: "minor third"},
		{semitones: 4, expected: "major third"},
		{semitones: 5, expected: "perfect fourth"},
		{semitones: 6, expected: "tritone"},
		{semitones: 7, expected: "perfect fifth"},
		{semitones: 8, expected: "minor sixth"},
		{semitones: 9, expected: "major sixth"},
		{semitones: 10, expected: "minor seventh"},
		{semitones: 11, expected: "major seventh"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, New(tt.semitones).Name())
		})
	}
}

func TestNewReduces(t *testing.T) {
	assert.Equal(t, 0, New(12).Semitones)
	assert.Equal(t, 2, New(14).Semitones)
	assert.Equal(t, 11, New(-1).Semitones)
}

func TestEnharmonicNames(t *testing.T) {
	tritone := New(6)
	assert.Equal(t, []string{"augmented fourth", "diminished fifth"}, tritone.EnharmonicNames())

	assert.Equal(t, []string{"augmented fifth"}, New(8).EnharmonicNames())
	assert.Equal(t, []string{"diminished seventh"}, New(9).EnharmonicNames())
}

func TestBetween(t *testing.T) {
	c, err := pitch.ParseNote("C")
	require.NoError(t, err)
	e, err := pitch.ParseNote("E")
	require.NoError(t, err)
	a, err := pitch.ParseNote("A")
	require.NoError(t, err)

	assert.Equal(t, "major third", Between(c, e).Name())
	assert.Equal(t, "minor sixth", Between(e, c).Name())
	assert.Equal(t, "minor third", Between(a, c).Name())
	assert.Equal(t, "perfect unison", Between(c, c).Name())
}

func TestNewDirected(t *testing.T) {
	up := NewDirected(3)
	assert.False(t, up.Descending)
	assert.True(t, up.Directed)
	assert.Equal(t, "minor third", up.String())

	down := NewDirected(-3)
	assert.True(t, down.Descending)
	assert.Equal(t, 3, down.Semitones)
	assert.Equal(t, "descending minor third", down.String())
}

// Interval inversion is an involution over the reduced semitone space.
func TestInvertInvolution(t *testing.T) {
	for s := 0; s < 12; s++ {
		i := New(s)
		assert.True(t, i.Invert().Invert().Equal(i), "double inversion of %d semitones", s)
	}
}

func TestInvert(t *testing.T) {
	assert.Equal(t, 8, New(4).Invert().Semitones, "major third inverts to minor sixth")
	assert.Equal(t, 5, New(7).Invert().Semitones, "perfect fifth inverts to perfect fourth")
	assert.Equal(t, 6, New(6).Invert().Semitones, "tritone is self-inverse")

	// The unison's inversion is the octave, which reduces back to 0
	// under octave equivalence.
	assert.Equal(t, 0, New(0).Invert().Semitones)
}

func TestEqualIgnoresDirection(t *testing.T) {
	assert.True(t, New(3).Equal(NewDirected(-3)))
	assert.True(t, New(2).Equal(New(14)))
	assert.False(t, New(2).Equal(New(3)))
}

func TestSetOperations(t *testing.T) {
	major := NewSetFromOffsets(0, 4, 7)
	major7 := NewSetFromOffsets(0, 4, 7, 11)

	assert.True(t, major.SubsetOf(major7))
	assert.False(t, major7.SubsetOf(major))
	assert.True(t, major.Contains(New(4)))
	assert.False(t, major.Contains(New(3)))

	union := major.Union(NewSetFromOffsets(0, 3, 7))
	assert.True(t, union.Contains(New(3)))
	assert.True(t, union.Contains(New(4)))

	intervals := major.Intervals()
	require.Len(t, intervals, 3)
	assert.Equal(t, 0, intervals[0].Semitones)
	assert.Equal(t, 4, intervals[1].Semitones)
	assert.Equal(t, 7, intervals[2].Semitones)
}

func TestSetFromOffsetsReduces(t *testing.T) {
	s := NewSetFromOffsets(0, 4, 7, 14)
	assert.True(t, s.Contains(New(2)), "offset 14 reduces to 2")
}
