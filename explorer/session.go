package explorer

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/RyanBlaney/chordmap/explorer/config"
	"github.com/RyanBlaney/chordmap/logging"
	"github.com/RyanBlaney/chordmap/theory/chord"
	"github.com/RyanBlaney/chordmap/theory/pitch"
)

// ErrUnknownNode indicates a session API misuse: the node is not in the
// map, or has no edge from the current position
var ErrUnknownNode = errors.New("unknown node")

// Engine creates exploration sessions. All engine state is per-session;
// concurrent sessions each own their ExploredMap and share nothing.
type Engine struct {
	cfg    config.EngineConfig
	logger logging.Logger
}

// NewEngine creates an engine with the given session configuration
func NewEngine(cfg config.EngineConfig) *Engine {
	return &Engine{
		cfg:    cfg,
		logger: logging.GetGlobalLogger().WithFields(logging.Fields{"component": "explorer"}),
	}
}

// NewDefaultEngine creates an engine with the default configuration
func NewDefaultEngine() *Engine {
	return NewEngine(config.DefaultEngineConfig())
}

// StartAt opens a session positioned at the given chord: a map with one
// node and current set to it
func (e *Engine) StartAt(start chord.Chord) *ExploredMap {
	m := &ExploredMap{
		sessionID: uuid.New(),
		cfg:       e.cfg,
		graph:     simple.NewWeightedDirectedGraph(0, 0),
		index:     make(map[NodeKey]*Node),
		edges:     make(map[edgeKey]*Edge),
		logger:    e.logger,
	}
	m.current = m.ensureNode(start)

	m.logger.Debug("session started", logging.Fields{
		"session": m.sessionID.String(),
		"chord":   start.String(),
	})
	return m
}

// PivotNotes returns the pitch-class set of a chord; callers select a
// subset of it as the pivot to branch on
func PivotNotes(c chord.Chord) pitch.ClassSet {
	return c.SonorityKey()
}

// edgeKey identifies a directed edge by its endpoint node ids
type edgeKey struct {
	from, to int64
}

// Edge records a discovered transition between two chords: the pivot
// set the branch preserved and the score it ranked with. A repeated
// branch over an existing edge overwrites pivots and score
// (last-write-wins).
type Edge struct {
	From   NodeKey        `json:"from"`
	To     NodeKey        `json:"to"`
	Pivots pitch.ClassSet `json:"pivots"`
	Score  float64        `json:"score"`
}

// ExploredMap is a session-scoped directed graph of visited chords: an
// arena of nodes indexed by content-derived key, edges with branch
// metadata, and a current-position pointer. It is a general directed
// graph, not a tree; revisiting a known node reuses the existing node
// object. A map is confined to a single logical session and needs no
// locking.
type ExploredMap struct {
	sessionID uuid.UUID
	cfg       config.EngineConfig
	graph     *simple.WeightedDirectedGraph
	index     map[NodeKey]*Node
	edges     map[edgeKey]*Edge
	current   *Node
	logger    logging.Logger
}

// SessionID returns the session's unique identifier
func (m *ExploredMap) SessionID() uuid.UUID {
	return m.sessionID
}

// Current returns the node the session is positioned at
func (m *ExploredMap) Current() *Node {
	return m.current
}

// Node returns the node for a chord if the session has visited it
func (m *ExploredMap) Node(c chord.Chord) (*Node, bool) {
	n, ok := m.index[keyFor(c, m.cfg.MergeSonority)]
	return n, ok
}

// Len returns the number of nodes in the map
func (m *ExploredMap) Len() int {
	return len(m.index)
}

// ensureNode returns the node for the chord, creating and indexing it
// when unseen. Known keys always reuse the existing node object.
func (m *ExploredMap) ensureNode(c chord.Chord) *Node {
	key := keyFor(c, m.cfg.MergeSonority)
	if n, ok := m.index[key]; ok {
		return n
	}

	n := &Node{id: m.graph.NewNode().ID(), key: key, chord: c}
	m.graph.AddNode(n)
	m.index[key] = n
	return n
}

// setEdge records or overwrites the edge metadata and mirrors it into
// the weighted graph. Self-loops live only in the metadata map; gonum's
// simple graphs reject them.
func (m *ExploredMap) setEdge(from, to *Node, pivots pitch.ClassSet, score float64) {
	m.edges[edgeKey{from.id, to.id}] = &Edge{
		From:   from.key,
		To:     to.key,
		Pivots: pivots,
		Score:  score,
	}
	if from.id != to.id {
		m.graph.SetWeightedEdge(m.graph.NewWeightedEdge(from, to, score))
	}
}

// hasEdge reports whether a directed edge has been recorded. Non-loop
// edges are answered by the weighted graph; self-loops live only in the
// metadata map.
func (m *ExploredMap) hasEdge(from, to *Node) bool {
	if from.id == to.id {
		_, ok := m.edges[edgeKey{from.id, to.id}]
		return ok
	}
	return m.graph.HasEdgeFromTo(from.id, to.id)
}

// EdgeBetween returns the recorded edge from one node to another
func (m *ExploredMap) EdgeBetween(from, to *Node) (*Edge, bool) {
	if from == nil || to == nil {
		return nil, false
	}
	e, ok := m.edges[edgeKey{from.id, to.id}]
	return e, ok
}

// Neighbors returns the nodes reachable by one recorded edge from n,
// ordered by key. The node must belong to this session.
func (m *ExploredMap) Neighbors(n *Node) ([]*Node, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: nil node", ErrUnknownNode)
	}
	if existing, ok := m.index[n.key]; !ok || existing != n {
		return nil, fmt.Errorf("%w: %s not in session", ErrUnknownNode, n.key)
	}

	var out []*Node
	it := m.graph.From(n.id)
	for it.Next() {
		out = append(out, it.Node().(*Node))
	}
	if _, ok := m.edges[edgeKey{n.id, n.id}]; ok {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out, nil
}

// MoveTo updates the current position. It fails with ErrUnknownNode when
// the node is not in the map or has no edge from the current position;
// on failure the map is unchanged.
func (m *ExploredMap) MoveTo(n *Node) error {
	if n == nil {
		return fmt.Errorf("%w: nil node", ErrUnknownNode)
	}
	if existing, ok := m.index[n.key]; !ok || existing != n {
		return fmt.Errorf("%w: %s not in session", ErrUnknownNode, n.key)
	}
	if !m.hasEdge(m.current, n) {
		return fmt.Errorf("%w: no edge from %s to %s", ErrUnknownNode, m.current.key, n.key)
	}

	m.current = n
	m.logger.Debug("moved", logging.Fields{
		"session": m.sessionID.String(),
		"chord":   n.chord.String(),
	})
	return nil
}
