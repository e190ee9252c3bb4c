package explorer

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/RyanBlaney/chordmap/theory/pitch"
)

// PivotSubsets enumerates every k-note subset of a pitch-class set, in
// deterministic order. Callers use it to sweep the pivot choices of a
// chord, e.g. all two-note pivots of a triad.
func PivotSubsets(set pitch.ClassSet, k int) []pitch.ClassSet {
	classes := set.Classes()
	n := len(classes)
	if k <= 0 || k > n {
		return nil
	}

	combos := combin.Combinations(n, k)
	out := make([]pitch.ClassSet, 0, len(combos))
	for _, combo := range combos {
		var s pitch.ClassSet
		for _, idx := range combo {
			s = s.Add(classes[idx])
		}
		out = append(out, s)
	}
	return out
}
