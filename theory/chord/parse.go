package chord

import (
	"errors"
	"fmt"

	"github.com/RyanBlaney/chordmap/theory/pitch"
)

// ErrUnknownQuality indicates a quality symbol with no entry in the
// quality table
var ErrUnknownQuality = errors.New("unknown chord quality")

// New resolves standard theory notation against the default quality
// table, e.g. New("C#", "maj7")
func New(rootSymbol, qualitySymbol string) (Chord, error) {
	return NewWith(DefaultQualities(), rootSymbol, qualitySymbol)
}

// NewWith resolves a root and quality symbol against a caller-supplied
// quality table
func NewWith(table QualityTable, rootSymbol, qualitySymbol string) (Chord, error) {
	root, err := pitch.ParseNote(rootSymbol)
	if err != nil {
		return Chord{}, fmt.Errorf("chord root: %w", err)
	}

	formula, ok := table.Lookup(qualitySymbol)
	if !ok {
		return Chord{}, fmt.Errorf("%w: %q", ErrUnknownQuality, qualitySymbol)
	}

	return Build(root, formula)
}

// Description is a structured record of a chord for external rendering
type Description struct {
	Root      string   `json:"root"`
	Quality   string   `json:"quality"`
	Inversion int      `json:"inversion"`
	Bass      string   `json:"bass"`
	Notes     []string `json:"notes"`
	Classes   []int    `json:"classes"`
	Intervals []string `json:"intervals"`
}

// Describe returns the chord's structured record: notes in sounding
// order, pitch classes and interval names
func (c Chord) Describe() Description {
	notes := c.Notes()
	noteNames := make([]string, len(notes))
	for i, n := range notes {
		noteNames[i] = n.String()
	}

	classes := c.Classes()
	classInts := make([]int, len(classes))
	for i, pc := range classes {
		classInts[i] = int(pc)
	}

	intervals := c.Intervals()
	intervalNames := make([]string, len(intervals))
	for i, iv := range intervals {
		intervalNames[i] = iv.Name()
	}

	return Description{
		Root:      c.root.String(),
		Quality:   c.formula.Name,
		Inversion: c.inversion,
		Bass:      c.Bass().String(),
		Notes:     noteNames,
		Classes:   classInts,
		Intervals: intervalNames,
	}
}
