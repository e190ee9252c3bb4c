// Package explorer implements the chord-relationship graph engine: given
// a chord, it enumerates and ranks neighboring chords that preserve a
// chosen pivot set, and maintains an explorable session map of visited
// chords. The full chord space is never materialized; neighbors are
// computed on demand from the bounded candidate pool each branch call
// supplies.
package explorer

import (
	"fmt"

	"github.com/RyanBlaney/chordmap/theory/chord"
)

// NodeKey is a content-derived stable identifier for a graph node. Two
// chords map to the same node exactly when their keys are equal, so
// node identity never depends on object identity.
type NodeKey string

// keyFor derives the node key for a chord. The default key is
// (pitch-class set, quality name, inversion); with mergeSonority only
// the pitch-class set counts, folding enharmonic chord structures with
// identical sonority into one node.
func keyFor(c chord.Chord, mergeSonority bool) NodeKey {
	if mergeSonority {
		return NodeKey(fmt.Sprintf("%03x", uint16(c.SonorityKey())))
	}
	return NodeKey(fmt.Sprintf("%03x:%s:%d",
		uint16(c.SonorityKey()), c.Formula().Name, c.Inversion()))
}

// Node wraps a canonical chord as a graph vertex. It satisfies
// gonum's graph.Node so the session graph can store it directly.
type Node struct {
	id    int64
	key   NodeKey
	chord chord.Chord
}

// ID returns the session-local numeric id gonum's graph assigned
func (n *Node) ID() int64 {
	return n.id
}

// Key returns the content-derived stable identifier
func (n *Node) Key() NodeKey {
	return n.key
}

// Chord returns the chord the node represents
func (n *Node) Chord() chord.Chord {
	return n.chord
}

func (n *Node) String() string {
	return n.chord.String()
}
