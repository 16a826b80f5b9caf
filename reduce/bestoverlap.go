package reduce

import "github.com/nanopore-tools/sgasm/strand"

type directedPair struct {
	from, to strand.NodeName
}

// BestOverlap keeps, for every node, only its single highest-Score live
// out-edge and its single highest-Score live in-edge; every other live
// edge is marked Repeat (removed as a probable repeat-induced branch),
// along with its complement. It records Graph.BestIn[w] = v for every
// retained incoming best edge, which the contig extractor consults for
// tie-breaking.
//
// Complexity: O(V * d)
func BestOverlap(g *strand.Graph) int {
	keep := make(map[directedPair]bool)

	for _, n := range g.Nodes() {
		if best, ok := bestScored(g, n, true); ok {
			keep[best] = true
		}
		if best, ok := bestScored(g, n, false); ok {
			keep[best] = true
			g.BestIn[n] = best.from
		}
	}

	removed := 0
	for _, n := range g.Nodes() {
		for _, w := range g.LiveOut(n) {
			if keep[directedPair{n, w}] {
				continue
			}
			g.SetState(n, w, strand.Repeat, true)
			removed++
		}
	}

	return removed
}

// bestScored returns the highest-Score live edge incident to n: if out is
// true, among n's out-edges (from=n); otherwise among n's in-edges (to=n).
// Ties keep the first edge encountered in insertion order.
func bestScored(g *strand.Graph, n strand.NodeName, out bool) (directedPair, bool) {
	var neighbors []strand.NodeName
	if out {
		neighbors = g.LiveOut(n)
	} else {
		neighbors = g.LiveIn(n)
	}
	if len(neighbors) == 0 {
		return directedPair{}, false
	}

	var best directedPair
	bestScore := 0
	found := false
	for _, nb := range neighbors {
		var from, to strand.NodeName
		if out {
			from, to = n, nb
		} else {
			from, to = nb, n
		}
		e, ok := g.Edge(from, to)
		if !ok {
			continue
		}
		if !found || e.Attr.Score > bestScore {
			best = directedPair{from, to}
			bestScore = e.Attr.Score
			found = true
		}
	}

	return best, found
}
