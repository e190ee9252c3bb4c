package explorer

import (
	"sort"

	"github.com/RyanBlaney/chordmap/theory/chord"
)

// NodeRecord is the external rendering of a graph node
type NodeRecord struct {
	Key   string            `json:"key"`
	Chord chord.Description `json:"chord"`
}

// EdgeRecord is the external rendering of a discovered transition
type EdgeRecord struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Pivots []int   `json:"pivots"`
	Score  float64 `json:"score"`
}

// Snapshot is a structured record of the session for external rendering
// of the mind-map. Persistence of a snapshot, if any, belongs to the
// embedding application.
type Snapshot struct {
	SessionID string       `json:"session_id"`
	Nodes     []NodeRecord `json:"nodes"`
	Edges     []EdgeRecord `json:"edges"`
	Current   string       `json:"current"`
}

// Snapshot renders the session's nodes, edges and current position.
// Output ordering is deterministic: nodes by key, edges by endpoints.
func (m *ExploredMap) Snapshot() Snapshot {
	nodes := make([]NodeRecord, 0, len(m.index))
	for key, n := range m.index {
		nodes = append(nodes, NodeRecord{
			Key:   string(key),
			Chord: n.chord.Describe(),
		})
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Key < nodes[j].Key })

	edges := make([]EdgeRecord, 0, len(m.edges))
	for _, e := range m.edges {
		pivots := e.Pivots.Classes()
		pivotInts := make([]int, len(pivots))
		for i, pc := range pivots {
			pivotInts[i] = int(pc)
		}
		edges = append(edges, EdgeRecord{
			From:   string(e.From),
			To:     string(e.To),
			Pivots: pivotInts,
			Score:  e.Score,
		})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})

	return Snapshot{
		SessionID: m.sessionID.String(),
		Nodes:     nodes,
		Edges:     edges,
		Current:   string(m.current.key),
	}
}
