package explorer

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/RyanBlaney/chordmap/logging"
	"github.com/RyanBlaney/chordmap/theory/chord"
	"github.com/RyanBlaney/chordmap/theory/pitch"
)

// ErrEmptyPivotSet indicates a branch call with no pivot notes over a
// candidate pool large enough that the result would be the entire chord
// space. The limit is config.EngineConfig.UnfilteredCandidateLimit.
var ErrEmptyPivotSet = errors.New("empty pivot set")

// Candidate is a ranked branch result: a neighboring chord whose
// pitch-class set contains every pivot note, its score, and the notes
// it shares with the source chord
type Candidate struct {
	Chord      chord.Chord
	Score      float64
	Shared     pitch.ClassSet
	Similarity float64
}

// Branch enumerates candidate chords over every formula in the pool and
// all 12 roots, keeps those whose pitch-class set contains the pivot
// set and differs from the source chord's (unless self-loops are
// allowed), scores and ranks them, and records the resulting nodes and
// edges into the map. The current position does not move; use MoveTo.
//
// Ranking is deterministic: descending score, then fewer pitch classes,
// then smaller root distance from the source root, then quality name.
// Root distance is undirected, the shorter way around the chromatic
// circle, so a root a fifth up and one a fourth down tie.
// Failures leave the map unchanged; no partial edges are inserted.
func (m *ExploredMap) Branch(from *Node, pivots pitch.ClassSet, pool []chord.Formula) ([]Candidate, error) {
	if from == nil {
		return nil, fmt.Errorf("%w: nil source node", ErrUnknownNode)
	}
	if existing, ok := m.index[from.key]; !ok || existing != from {
		return nil, fmt.Errorf("%w: %s not in session", ErrUnknownNode, from.key)
	}

	unfiltered := 12 * len(pool)
	if pivots == 0 && unfiltered > m.cfg.UnfilteredCandidateLimit {
		return nil, fmt.Errorf("%w: %d unfiltered candidates exceed limit %d",
			ErrEmptyPivotSet, unfiltered, m.cfg.UnfilteredCandidateLimit)
	}

	// Validate the whole pool before touching the map so a bad formula
	// cannot leave partial edges behind.
	for _, f := range pool {
		if _, err := chord.NewFormula(f.Name, f.Offsets); err != nil {
			return nil, err
		}
	}

	source := from.chord.SonorityKey()
	sourceRoot := from.chord.Root().Class()

	var candidates []Candidate
	for root := pitch.PitchClass(0); root < 12; root++ {
		rootNote := pitch.SpellWithDefault(root)
		for _, f := range pool {
			cand, err := chord.Build(rootNote, f)
			if err != nil {
				return nil, err
			}

			sonority := cand.SonorityKey()
			if !pivots.SubsetOf(sonority) {
				continue
			}
			if sonority == source && !m.cfg.AllowSelfLoop {
				continue
			}

			shared := source.Intersect(sonority)
			candidates = append(candidates, Candidate{
				Chord:      cand,
				Score:      m.score(source, sonority, pivots),
				Shared:     shared,
				Similarity: SonorityCosine(source, sonority),
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if as, bs := a.Chord.SonorityKey().Size(), b.Chord.SonorityKey().Size(); as != bs {
			return as < bs
		}
		ad := pitch.CircularDistance(sourceRoot, a.Chord.Root().Class())
		bd := pitch.CircularDistance(sourceRoot, b.Chord.Root().Class())
		if ad != bd {
			return ad < bd
		}
		return a.Chord.Formula().Name < b.Chord.Formula().Name
	})

	// All validation passed; mutate the map. Re-branching over known
	// territory reuses nodes and overwrites edge scores, so identical
	// calls never grow the map twice.
	for _, c := range candidates {
		to := m.ensureNode(c.Chord)
		m.setEdge(from, to, pivots, c.Score)
	}

	m.logger.Debug("branched", logging.Fields{
		"session":    m.sessionID.String(),
		"from":       from.chord.String(),
		"pivots":     pivots.String(),
		"pool":       len(pool),
		"candidates": len(candidates),
	})
	return candidates, nil
}

// score computes the deterministic pleasantness score of a candidate
// sonority against the source
func (m *ExploredMap) score(source, candidate, pivots pitch.ClassSet) float64 {
	w := m.cfg.Weights
	pivotTerm := w.PivotWeight * float64(pivots.Size()) / float64(candidate.Size())
	shared := float64(source.Intersect(candidate).Size())
	return pivotTerm - w.VoiceLeadingWeight*voiceLeadingCost(source, candidate) + w.SharedNoteWeight*shared
}

// voiceLeadingCost sums, for each source pitch class, the shortest
// semitone distance to any candidate pitch class. This is a greedy
// nearest-neighbor pairing, not optimal transport; candidates may
// absorb several source notes.
func voiceLeadingCost(source, candidate pitch.ClassSet) float64 {
	costs := make([]float64, 0, source.Size())
	for _, pc := range source.Classes() {
		best := 12
		for _, c := range candidate.Classes() {
			if d := pitch.CircularDistance(pc, c); d < best {
				best = d
			}
		}
		costs = append(costs, float64(best))
	}
	return floats.Sum(costs)
}
