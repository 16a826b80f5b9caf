package unitig

import "github.com/nanopore-tools/sgasm/strand"

func (g *Graph) addNodeLocked(n strand.NodeName) {
	if g.nodes[n] {
		return
	}
	g.nodes[n] = true
	g.nodeOrder = append(g.nodeOrder, n)
}

// AddEdge inserts e, keyed by e.Key. Both endpoints are auto-added. The
// edge starts live (not Removed).
//
// Complexity: O(1) amortized
func (g *Graph) AddEdge(e *Edge) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNodeLocked(e.S)
	g.addNodeLocked(e.T)

	if _, exists := g.edges[e.Key]; !exists {
		g.out[e.S] = append(g.out[e.S], e.Key)
		g.in[e.T] = append(g.in[e.T], e.Key)
		g.edgeOrder = append(g.edgeOrder, e.Key)
	}
	g.edges[e.Key] = e
}

// Remove retracts key from the live view (FreeEdges) without deleting the
// classification record.
func (g *Graph) Remove(key Key) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.removed[key] = true
}

// Get returns the edge for key and whether it exists (live or removed).
func (g *Graph) Get(key Key) (*Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[key]
	return e, ok
}

// IsLive reports whether key exists and has not been Removed.
func (g *Graph) IsLive(key Key) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[key]
	return ok && !g.removed[key]
}

// Nodes returns every node in first-insertion order.
func (g *Graph) Nodes() []strand.NodeName {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]strand.NodeName, len(g.nodeOrder))
	copy(out, g.nodeOrder)
	return out
}

// OutKeys returns n's outgoing edge keys (live and removed) in insertion
// order.
func (g *Graph) OutKeys(n strand.NodeName) []Key {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Key, len(g.out[n]))
	copy(out, g.out[n])
	return out
}

// InKeys returns n's incoming edge keys (live and removed) in insertion
// order.
func (g *Graph) InKeys(n strand.NodeName) []Key {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Key, len(g.in[n]))
	copy(out, g.in[n])
	return out
}

// LiveOutKeys and LiveInKeys filter OutKeys/InKeys to edges not Removed.
func (g *Graph) LiveOutKeys(n strand.NodeName) []Key {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var out []Key
	for _, k := range g.out[n] {
		if !g.removed[k] {
			out = append(out, k)
		}
	}
	return out
}

func (g *Graph) LiveInKeys(n strand.NodeName) []Key {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var out []Key
	for _, k := range g.in[n] {
		if !g.removed[k] {
			out = append(out, k)
		}
	}
	return out
}

// LiveOutDegree and LiveInDegree count edges not Removed.
func (g *Graph) LiveOutDegree(n strand.NodeName) int { return len(g.LiveOutKeys(n)) }
func (g *Graph) LiveInDegree(n strand.NodeName) int  { return len(g.LiveInKeys(n)) }

// AllEdges returns every edge (live and removed) in insertion order, for
// unitigio writers that must emit the full classification history.
func (g *Graph) AllEdges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, 0, len(g.edgeOrder))
	for _, k := range g.edgeOrder {
		out = append(out, g.edges[k])
	}
	return out
}

// FreeEdges returns every live (not Removed) edge, in insertion order. This
// is the working set the contig extractor greedily consumes.
func (g *Graph) FreeEdges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, 0, len(g.edgeOrder))
	for _, k := range g.edgeOrder {
		if !g.removed[k] {
			out = append(out, g.edges[k])
		}
	}
	return out
}
