package reduce

import "github.com/nanopore-tools/sgasm/strand"

// LocalFlow is the --lfc alternative to BestOverlap. It only considers
// nodes with exactly one live in-edge and one live out-edge ("pass-through"
// nodes). For such a node v with single predecessor u, every other live
// out-edge u->x is removed when: x != v, x has more than one live in-edge,
// x is not itself a pass-through node, and x shares no live out-neighbour
// with v (the two branches do not reconverge locally). The in-side is
// mirrored symmetrically against v's single successor w.
//
// Complexity: O(V * d^2)
func LocalFlow(g *strand.Graph) int {
	passThrough := make(map[strand.NodeName]bool)
	for _, n := range g.Nodes() {
		if g.LiveInDegree(n) == 1 && g.LiveOutDegree(n) == 1 {
			passThrough[n] = true
		}
	}

	var toReduce []directedPair
	for v := range passThrough {
		u := g.LiveIn(v)[0]
		w := g.LiveOut(v)[0]

		for _, x := range g.LiveOut(u) {
			if x == v {
				continue
			}
			if _, live := g.Edge(u, x); !live {
				continue
			}
			if g.LiveInDegree(x) <= 1 || passThrough[x] {
				continue
			}
			if sharedOutNeighbour(g, x, v) {
				continue
			}
			toReduce = append(toReduce, directedPair{u, x})
		}

		for _, y := range g.LiveIn(w) {
			if y == v {
				continue
			}
			if _, live := g.Edge(y, w); !live {
				continue
			}
			if g.LiveOutDegree(y) <= 1 || passThrough[y] {
				continue
			}
			if sharedInNeighbour(g, y, v) {
				continue
			}
			toReduce = append(toReduce, directedPair{y, w})
		}
	}

	for _, p := range toReduce {
		g.SetState(p.from, p.to, strand.Repeat, true)
	}

	return len(toReduce)
}

func sharedOutNeighbour(g *strand.Graph, a, b strand.NodeName) bool {
	bOut := make(map[strand.NodeName]bool)
	for _, n := range g.LiveOut(b) {
		bOut[n] = true
	}
	for _, n := range g.LiveOut(a) {
		if bOut[n] {
			return true
		}
	}
	return false
}

func sharedInNeighbour(g *strand.Graph, a, b strand.NodeName) bool {
	bIn := make(map[strand.NodeName]bool)
	for _, n := range g.LiveIn(b) {
		bIn[n] = true
	}
	for _, n := range g.LiveIn(a) {
		if bIn[n] {
			return true
		}
	}
	return false
}
