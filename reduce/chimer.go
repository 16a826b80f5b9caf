package reduce

import (
	"github.com/nanopore-tools/sgasm/container"
	"github.com/nanopore-tools/sgasm/strand"
)

// ChimerBFSDepth bounds how far MarkChimerBridges looks from each side of a
// candidate bridge node before declaring the two sides disjoint.
const ChimerBFSDepth = 5

// MarkChimerBridges finds nodes that look like a chimeric read bridging two
// otherwise-unrelated neighbourhoods.
//
// A candidate bridge node is not picked by its own degree: it is any node
// that is simultaneously a live out-neighbour of some branch node (live
// out-degree >= 2) and a live in-neighbour of some merge node (live
// in-degree >= 2) - the candidate itself may have as little as one live
// in-edge and one live out-edge. For each candidate: no direct edge may
// connect an in-neighbour to an out-neighbour, and BFS-reachable sets from
// each side (depth ChimerBFSDepth, excluding the candidate itself) must not
// intersect. Every live edge incident to such a node is marked Chimeric,
// along with its complement. Returns the set of chimer node names in the
// order they were discovered, for sgio.WriteChimerNodes.
//
// Complexity: O(V * (d + BFS cost)) where d is live degree.
func MarkChimerBridges(g *strand.Graph) []strand.NodeName {
	var chimerNodes []strand.NodeName

	outSet := container.NewOrderedSet[strand.NodeName]()
	inSet := container.NewOrderedSet[strand.NodeName]()
	for _, n := range g.Nodes() {
		if g.LiveOutDegree(n) >= 2 {
			for _, w := range g.LiveOut(n) {
				outSet.Add(w)
			}
		}
		if g.LiveInDegree(n) >= 2 {
			for _, u := range g.LiveIn(n) {
				inSet.Add(u)
			}
		}
	}

	for _, n := range g.Nodes() {
		if !outSet.Has(n) || !inSet.Has(n) {
			continue
		}
		ins := g.LiveIn(n)
		outs := g.LiveOut(n)
		if len(ins) == 0 || len(outs) == 0 {
			continue
		}
		if sidesDirectlyConnected(g, ins, outs) {
			continue
		}
		reachIn := bfsExcluding(g, ins, n, ChimerBFSDepth)
		reachOut := bfsExcluding(g, outs, n, ChimerBFSDepth)
		if setsIntersect(reachIn, reachOut) {
			continue
		}

		chimerNodes = append(chimerNodes, n)
		for _, u := range ins {
			g.SetState(u, n, strand.Chimeric, true)
		}
		for _, w := range outs {
			g.SetState(n, w, strand.Chimeric, true)
		}
	}

	return chimerNodes
}

func sidesDirectlyConnected(g *strand.Graph, ins, outs []strand.NodeName) bool {
	for _, u := range ins {
		for _, w := range outs {
			if _, ok := g.Edge(u, w); ok {
				return true
			}
			if _, ok := g.Edge(w, u); ok {
				return true
			}
		}
	}
	return false
}

// bfsExcluding runs a breadth-first search seeded at every node in seeds
// (following live out-edges), never stepping through exclude, bounded to
// maxDepth hops, and returns the set of nodes reached (including the
// seeds themselves).
func bfsExcluding(g *strand.Graph, seeds []strand.NodeName, exclude strand.NodeName, maxDepth int) map[strand.NodeName]bool {
	visited := make(map[strand.NodeName]bool)
	type item struct {
		n     strand.NodeName
		depth int
	}
	var queue []item
	for _, s := range seeds {
		if s == exclude || visited[s] {
			continue
		}
		visited[s] = true
		queue = append(queue, item{s, 0})
	}
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		if it.depth >= maxDepth {
			continue
		}
		for _, w := range g.LiveOut(it.n) {
			if w == exclude || visited[w] {
				continue
			}
			visited[w] = true
			queue = append(queue, item{w, it.depth + 1})
		}
	}
	return visited
}

func setsIntersect(a, b map[strand.NodeName]bool) bool {
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	for k := range small {
		if large[k] {
			return true
		}
	}
	return false
}
