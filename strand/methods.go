package strand

// AddNode inserts n if absent. No-op if n already exists.
//
// Complexity: O(1)
func (g *Graph) AddNode(n NodeName) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addNodeLocked(n)
}

func (g *Graph) addNodeLocked(n NodeName) {
	if _, ok := g.nodes[n]; ok {
		return
	}
	g.nodes[n] = &Node{Name: n}
	g.nodeOrder = append(g.nodeOrder, n)
}

// AddEdge inserts a directed edge from->to with the given attributes. Both
// endpoints are auto-added. Adding the same (from, to) pair twice overwrites
// the attributes of the first; the source tooling's overlap ingester already
// deduplicates at the overlap-record level, so this should not occur for
// well-formed input.
//
// Complexity: O(1) amortized
func (g *Graph) AddEdge(from, to NodeName, attr EdgeAttr) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNodeLocked(from)
	g.addNodeLocked(to)

	key := edgeKey{from, to}
	if _, exists := g.edges[key]; !exists {
		g.out[from] = append(g.out[from], to)
		g.in[to] = append(g.in[to], from)
	}
	g.edges[key] = &Edge{From: from, To: to, Attr: attr}
}

// Edge returns the edge from->to and whether it exists.
//
// Complexity: O(1)
func (g *Graph) Edge(from, to NodeName) (*Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[edgeKey{from, to}]
	return e, ok
}

// HasNode reports whether n is a member.
//
// Complexity: O(1)
func (g *Graph) HasNode(n NodeName) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[n]
	return ok
}

// Nodes returns every node in first-insertion order.
//
// Complexity: O(V)
func (g *Graph) Nodes() []NodeName {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]NodeName, len(g.nodeOrder))
	copy(out, g.nodeOrder)
	return out
}

// Out returns n's outgoing neighbor names in the order their edges were
// added.
//
// Complexity: O(out-degree)
func (g *Graph) Out(n NodeName) []NodeName {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]NodeName, len(g.out[n]))
	copy(out, g.out[n])
	return out
}

// In returns n's incoming neighbor names in the order their edges were
// added.
//
// Complexity: O(in-degree)
func (g *Graph) In(n NodeName) []NodeName {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]NodeName, len(g.in[n]))
	copy(out, g.in[n])
	return out
}

// OutDegree and InDegree report live-and-reduced degree (every edge counts,
// regardless of State); reduction passes reason about live degree
// separately via LiveOutDegree/LiveInDegree.
func (g *Graph) OutDegree(n NodeName) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.out[n])
}

func (g *Graph) InDegree(n NodeName) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.in[n])
}

// LiveOutDegree counts only n's outgoing edges whose State is Live.
//
// Complexity: O(out-degree)
func (g *Graph) LiveOutDegree(n NodeName) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	count := 0
	for _, to := range g.out[n] {
		if e := g.edges[edgeKey{n, to}]; e.Attr.State == Live {
			count++
		}
	}
	return count
}

// LiveInDegree counts only n's incoming edges whose State is Live.
//
// Complexity: O(in-degree)
func (g *Graph) LiveInDegree(n NodeName) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	count := 0
	for _, from := range g.in[n] {
		if e := g.edges[edgeKey{from, n}]; e.Attr.State == Live {
			count++
		}
	}
	return count
}

// LiveOut returns the neighbors of n reachable by a Live outgoing edge, in
// insertion order.
func (g *Graph) LiveOut(n NodeName) []NodeName {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var out []NodeName
	for _, to := range g.out[n] {
		if e := g.edges[edgeKey{n, to}]; e.Attr.State == Live {
			out = append(out, to)
		}
	}
	return out
}

// LiveIn returns the predecessors of n reachable by a Live incoming edge, in
// insertion order.
func (g *Graph) LiveIn(n NodeName) []NodeName {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var out []NodeName
	for _, from := range g.in[n] {
		if e := g.edges[edgeKey{from, n}]; e.Attr.State == Live {
			out = append(out, from)
		}
	}
	return out
}

// SetState updates the State of the edge from->to in place. If mirror is
// true, the complement edge ReverseEnd(to)->ReverseEnd(from) (when it
// exists) is set to the same State. If that complement did not carry the
// same State as from->to before the change, the pair had already been
// marked asymmetrically: this is a complement breach, recorded under
// assertComplements==false, or a panic under assertComplements==true.
//
// Complexity: O(1)
func (g *Graph) SetState(from, to NodeName, state EdgeState, mirror bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[edgeKey{from, to}]
	if !ok {
		return
	}
	prev := e.Attr.State
	e.Attr.State = state

	if !mirror {
		return
	}
	rf, rt := ReverseEnd(to), ReverseEnd(from)
	if rev, ok := g.edges[edgeKey{rf, rt}]; ok && rev != e {
		if rev.Attr.State != prev {
			if g.assertComplements {
				panic("strand: complement breach marking " + string(from) + "->" + string(to))
			}
			g.complementBreaches++
		}
		rev.Attr.State = state
	}
}

// AllEdges returns every edge (any State) in the order edges were added,
// grouped by source node in node-insertion order. This is the iteration
// order sgio.WriteEdgeList relies on for deterministic output.
func (g *Graph) AllEdges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []*Edge
	for _, from := range g.nodeOrder {
		for _, to := range g.out[from] {
			out = append(out, g.edges[edgeKey{from, to}])
		}
	}
	return out
}
