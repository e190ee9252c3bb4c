package chord

import "slices"

// QualityTable maps quality symbols to chord formulas. The table is
// plain configuration: callers extend or replace it without touching
// engine code, and every construction API accepts one.
type QualityTable map[string]Formula

// defaultQualityOffsets is the shipped chord-quality catalogue:
// triads, sixth/seventh families and the common tall extensions.
var defaultQualityOffsets = map[string][]int{
	// Triads
	"maj":  {0, 4, 7},
	"min":  {0, 3, 7},
	"dim":  {0, 3, 6},
	"aug":  {0, 4, 8},
	"sus2": {0, 2, 7},
	"sus4": {0, 5, 7},

	// Sixths and sevenths
	"maj6":       {0, 4, 7, 9},
	"min6":       {0, 3, 7, 9},
	"7":          {0, 4, 7, 10},
	"maj7":       {0, 4, 7, 11},
	"min7":       {0, 3, 7, 10},
	"minmaj7":    {0, 3, 7, 11},
	"minmaj7b13": {0, 3, 7, 11, 20},
	"dim7":       {0, 3, 6, 9},
	"m7b5":       {0, 3, 6, 10},
	"aug7":       {0, 4, 8, 10},
	"augmaj7":    {0, 4, 8, 11},

	// Extensions
	"9":     {0, 4, 7, 10, 14},
	"maj9":  {0, 4, 7, 11, 14},
	"min9":  {0, 3, 7, 10, 14},
	"add9":  {0, 4, 7, 14},
	"11":    {0, 4, 7, 10, 14, 17},
	"maj11": {0, 4, 7, 11, 14, 17},
	"min11": {0, 3, 7, 10, 14, 17},
	"13":    {0, 4, 7, 10, 14, 17, 21},
	"maj13": {0, 4, 7, 11, 14, 17, 21},
	"min13": {0, 3, 7, 10, 14, 17, 21},
}

// qualityAliases maps common notation variants to canonical table keys
var qualityAliases = map[string]string{
	"major":  "maj",
	"M":      "maj",
	"":       "maj",
	"minor":  "min",
	"m":      "min",
	"-":      "min",
	"+":      "aug",
	"dom7":   "7",
	"M7":     "maj7",
	"m7":     "min7",
	"mM7":    "minmaj7",
	"mM7b13": "minmaj7b13",
	"6":      "maj6",
	"M6":     "maj6",
	"m6":     "min6",
	"M9":     "maj9",
	"m9":     "min9",
	"M11":    "maj11",
	"m11":    "min11",
	"M13":    "maj13",
	"m13":    "min13",
}

// DefaultQualities returns a fresh copy of the shipped quality table.
// Mutating the returned table never affects other callers. The static
// catalogue is known valid; tests revalidate every entry with NewFormula.
func DefaultQualities() QualityTable {
	table := make(QualityTable, len(defaultQualityOffsets))
	for name, offsets := range defaultQualityOffsets {
		table[name] = Formula{Name: name, Offsets: slices.Clone(offsets)}
	}
	return table
}

// Lookup resolves a quality symbol against the table, trying the symbol
// itself and then the common notation aliases
func (t QualityTable) Lookup(symbol string) (Formula, bool) {
	if f, ok := t[symbol]; ok {
		return f, true
	}
	if canonical, ok := qualityAliases[symbol]; ok {
		if f, ok := t[canonical]; ok {
			return f, true
		}
	}
	return Formula{}, false
}
