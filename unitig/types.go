// This file declares Key, EdgeType, Edge, Graph, and the sentinel errors for
// package unitig.
package unitig

import (
	"errors"
	"sync"

	"github.com/nanopore-tools/sgasm/strand"
)

// Sentinel errors for unitig operations.
var (
	ErrNodeNotFound = errors.New("unitig: node not found")
	ErrNoPath       = errors.New("unitig: no path found")
)

// EdgeType classifies how a unitig edge was constructed.
type EdgeType int

// Unitig edge classifications, matching utg_data's type column.
const (
	Simple EdgeType = iota
	Compound
	Contained
	UnitigSpur
	UnitigSpur2
	SimpleDup
	RepeatBridge
)

// String renders the utg_data type string.
func (t EdgeType) String() string {
	switch t {
	case Simple:
		return "simple"
	case Compound:
		return "compound"
	case Contained:
		return "contained"
	case UnitigSpur:
		return "spur"
	case UnitigSpur2:
		return "spur:2"
	case SimpleDup:
		return "simple_dup"
	case RepeatBridge:
		return "repeat_bridge"
	default:
		return "unknown"
	}
}

// Key identifies a unitig edge: source, sink, and a "via" label that
// disambiguates parallel edges between the same (s, t) pair (the middle
// node for a simple path, or the sentinel strand.NA for a compound path).
type Key struct {
	S, T, Via strand.NodeName
}

// Edge is one unitig: a run of string-graph nodes collapsed into a single
// logical edge of the unitig multigraph. Chain holds every underlying
// string-graph node on the path from S to T inclusive, in walk order; for a
// Compound edge, Chain is empty and Internal holds the bundle's constituent
// unitig edge keys instead (see BuildSimplePaths/FindBundle).
type Edge struct {
	Key
	Type   EdgeType
	Length int
	Score  float64
	Depth  int // bundle depth at convergence, 0 for non-compound edges
	Chain  []strand.NodeName

	// Internal holds a Compound edge's constituent unitig edge keys (the
	// bundle's internal DAG); empty for Simple/Contained edges.
	Internal []Key
}

// Graph is the unitig multigraph built from a reduced strand.Graph's live
// projection. Edges are stored keyed by Key so parallel compound/simple
// edges between the same (s, t) can coexist; FreeEdges exposes the subset
// still considered live by the short-utg filters and the contig extractor.
type Graph struct {
	mu sync.RWMutex

	nodeOrder []strand.NodeName
	nodes     map[strand.NodeName]bool

	edgeOrder []Key
	edges     map[Key]*Edge

	out map[strand.NodeName][]Key
	in  map[strand.NodeName][]Key

	// removed marks edges retracted from the live view by a short-utg
	// filter; the Edge itself, and its Key, remain in edges/edgeOrder.
	removed map[Key]bool

	complementBreaches int
}

// New constructs an empty unitig Graph.
func New() *Graph {
	return &Graph{
		nodes:   make(map[strand.NodeName]bool),
		edges:   make(map[Key]*Edge),
		out:     make(map[strand.NodeName][]Key),
		in:      make(map[strand.NodeName][]Key),
		removed: make(map[Key]bool),
	}
}

// ComplementBreaches reports how many compound candidates CompoundPaths
// dropped, rather than inserted, because no reverse-complement counterpart
// survived consolidation.
func (g *Graph) ComplementBreaches() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.complementBreaches
}
