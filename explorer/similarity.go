package explorer

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/RyanBlaney/chordmap/theory/pitch"
)

// SonorityCosine returns the cosine similarity of two sonorities,
// treating each pitch-class set as a 12-element indicator vector.
// 1 means identical sets; 0 means disjoint.
func SonorityCosine(a, b pitch.ClassSet) float64 {
	if a == 0 || b == 0 {
		return 0.0
	}
	va, vb := a.Vector(), b.Vector()

	normA := floats.Norm(va, 2)
	normB := floats.Norm(vb, 2)
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return floats.Dot(va, vb) / (normA * normB)
}

// SonorityMetrics compares two sonorities over their indicator vectors
// and returns the individual similarity measures, keyed by name. Useful
// for rendering why two chords relate.
func SonorityMetrics(a, b pitch.ClassSet) map[string]float64 {
	va, vb := a.Vector(), b.Vector()

	return map[string]float64{
		"cosine_similarity": SonorityCosine(a, b),
		"correlation":       stat.Correlation(va, vb, nil),
		"shared_classes":    float64(a.Intersect(b).Size()),
		"symmetric_diff":    float64(a.Union(b).Size() - a.Intersect(b).Size()),
	}
}
