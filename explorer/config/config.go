// Package config holds the externally supplied configuration surface of
// the chord graph engine: scoring weights and session policies. The
// engine ships defaults but never hardcodes them where a caller cannot
// override.
package config

// ScoringWeights parameterizes the deterministic pleasantness score
//
//	score = PivotWeight * |pivots| / |candidate|
//	      - VoiceLeadingWeight * voiceLeadingCost
//	      + SharedNoteWeight * |shared notes|
type ScoringWeights struct {
	PivotWeight        float64 `json:"pivot_weight"`
	VoiceLeadingWeight float64 `json:"voice_leading_weight"`
	SharedNoteWeight   float64 `json:"shared_note_weight"`
}

// DefaultScoringWeights returns the documented default weights
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		PivotWeight:        2.0,
		VoiceLeadingWeight: 1.0,
		SharedNoteWeight:   3.0,
	}
}

// EngineConfig configures an exploration session
type EngineConfig struct {
	Weights ScoringWeights `json:"weights"`

	// AllowSelfLoop keeps candidates whose sonority equals the source
	// chord's in branch results. Off by default.
	AllowSelfLoop bool `json:"allow_self_loop"`

	// UnfilteredCandidateLimit is the safety limit for branch calls
	// with an empty pivot set: if the unfiltered candidate count
	// (12 roots x pool size) exceeds it, the call is rejected instead
	// of returning the whole chord space.
	UnfilteredCandidateLimit int `json:"unfiltered_candidate_limit"`

	// MergeSonority keys graph nodes by pitch-class set alone, merging
	// structurally different chords with identical sonority into one
	// node. When off, nodes are keyed by (sonority, quality, inversion).
	MergeSonority bool `json:"merge_sonority"`
}

// DefaultEngineConfig returns the documented default session policies
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Weights:                  DefaultScoringWeights(),
		AllowSelfLoop:            false,
		UnfilteredCandidateLimit: 500,
		MergeSonority:            false,
	}
}
