package scale

import (
	"errors"
	"fmt"

	"github.com/RyanBlaney/chordmap/theory/interval"
	"github.com/RyanBlaney/chordmap/theory/pitch"
)

// intervalName looks up the canonical quality name for a degree offset
func intervalName(offset int) string {
	return interval.New(offset).Name()
}

// ErrUnknownScale indicates a scale symbol with no entry in the mode table
var ErrUnknownScale = errors.New("unknown scale")

// New resolves standard theory notation against the default mode table,
// e.g. New("C", "major") or New("D", "dorian")
func New(tonicSymbol, scaleSymbol string) (Scale, error) {
	return NewWith(DefaultModes(), tonicSymbol, scaleSymbol)
}

// NewWith resolves a tonic and scale symbol against a caller-supplied
// mode table
func NewWith(table ModeTable, tonicSymbol, scaleSymbol string) (Scale, error) {
	tonic, err := pitch.ParseNote(tonicSymbol)
	if err != nil {
		return Scale{}, fmt.Errorf("scale tonic: %w", err)
	}

	formula, ok := table.Lookup(scaleSymbol)
	if !ok {
		return Scale{}, fmt.Errorf("%w: %q", ErrUnknownScale, scaleSymbol)
	}

	return Build(tonic, formula)
}

// Description is a structured record of a scale for external rendering
type Description struct {
	Tonic     string   `json:"tonic"`
	Name      string   `json:"name"`
	ModeIndex int      `json:"mode_index"`
	Degrees   []string `json:"degrees"`
	Classes   []int    `json:"classes"`
	Intervals []string `json:"intervals"`
}

// Describe returns the scale's structured record: degree notes in
// ascending order, pitch classes and interval names from the tonic
func (s Scale) Describe() Description {
	degrees := s.Degrees()
	degreeNames := make([]string, len(degrees))
	for i, d := range degrees {
		degreeNames[i] = d.String()
	}

	offsets := s.offsets()
	classInts := make([]int, len(offsets))
	intervalNames := make([]string, len(offsets))
	for i, o := range offsets {
		classInts[i] = int(s.tonic.Class().Transpose(o))
		intervalNames[i] = intervalName(o)
	}

	return Description{
		Tonic:     s.tonic.String(),
		Name:      s.formula.Name,
		ModeIndex: s.mode,
		Degrees:   degreeNames,
		Classes:   classInts,
		Intervals: intervalNames,
	}
}
