package reduce

import "github.com/nanopore-tools/sgasm/strand"

// MarkSpurs marks dead-end branches as Spur: for any node with at least two
// live out-edges, an out-edge whose target has no further live out-edges is
// a spur; symmetrically, for any node with at least two live in-edges, an
// in-edge whose source has no further live in-edges is a spur. Both sides'
// complements are marked too. The source tool calls this pass twice
// (before and after best-overlap/local-flow resolution) since resolving
// best overlaps can expose new dead ends; callers should do the same.
//
// Complexity: O(V * d)
func MarkSpurs(g *strand.Graph) int {
	marked := 0

	for _, n := range g.Nodes() {
		outs := g.LiveOut(n)
		if len(outs) >= 2 {
			for _, w := range outs {
				if g.LiveOutDegree(w) == 0 {
					g.SetState(n, w, strand.Spur, true)
					marked++
				}
			}
		}
		ins := g.LiveIn(n)
		if len(ins) >= 2 {
			for _, u := range ins {
				if g.LiveInDegree(u) == 0 {
					g.SetState(u, n, strand.Spur, true)
					marked++
				}
			}
		}
	}

	return marked
}
