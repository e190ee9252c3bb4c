package scale

// ModeTable maps scale symbols to formulas. Like the chord-quality
// table it is plain configuration: callers extend or replace it without
// touching engine code.
type ModeTable map[string]Formula

// defaultModeOffsets is the shipped scale catalogue: the seven diatonic
// modes plus the common minor variants, pentatonics, blues and
// whole-tone scales
var defaultModeOffsets = map[string][]int{
	"major":      {0, 2, 4, 5, 7, 9, 11},
	"dorian":     {0, 2, 3, 5, 7, 9, 10},
	"phrygian":   {0, 1, 3, 5, 7, 8, 10},
	"lydian":     {0, 2, 4, 6, 7, 9, 11},
	"mixolydian": {0, 2, 4, 5, 7, 9, 10},
	"minor":      {0, 2, 3, 5, 7, 8, 10},
	"locrian":    {0, 1, 3, 5, 6, 8, 10},

	"harmonic minor": {0, 2, 3, 5, 7, 8, 11},
	"melodic minor":  {0, 2, 3, 5, 7, 9, 11},

	"major pentatonic": {0, 2, 4, 7, 9},
	"minor pentatonic": {0, 3, 5, 7, 10},
	"blues":            {0, 3, 5, 6, 7, 10},
	"whole tone":       {0, 2, 4, 6, 8, 10},
}

// modeAliases maps the classical mode names onto their catalogue keys
var modeAliases = map[string]string{
	"ionian":        "major",
	"aeolian":       "minor",
	"natural minor": "minor",
}

// DefaultModes returns a fresh copy of the shipped mode table. The
// static catalogue is known valid; tests revalidate every entry with
// NewFormula.
func DefaultModes() ModeTable {
	table := make(ModeTable, len(defaultModeOffsets))
	for name, offsets := range defaultModeOffsets {
		out := make([]int, len(offsets))
		copy(out, offsets)
		table[name] = Formula{Name: name, Offsets: out}
	}
	return table
}

// Lookup resolves a scale symbol against the table, trying the symbol
// itself and then the classical aliases
func (t ModeTable) Lookup(symbol string) (Formula, bool) {
	if f, ok := t[symbol]; ok {
		return f, true
	}
	if canonical, ok := modeAliases[symbol]; ok {
		if f, ok := t[canonical]; ok {
			return f, true
		}
	}
	return Formula{}, false
}
