package reduce

import (
	"sort"

	"github.com/nanopore-tools/sgasm/strand"
)

// Fuzz is the Myers transitive-reduction fuzz tolerance, matching the
// source tool's constant of the same name.
const Fuzz = 500

// TransitiveReduction runs Myers' transitive reduction over every node's
// live out-edges. For node v with live out-neighbours sorted by ascending
// edge length, a neighbour x is eliminated ("in play" but reachable
// through a shorter two-hop detour v->w->x) when
// len(v,w)+len(w,x) < maxLen, where maxLen is v's longest out-edge length
// plus Fuzz. As a special case, if every one of w's out-edges is shorter
// than Fuzz, w's single shortest out-neighbour is also eliminated even if
// the two-hop sum test did not already catch it (this handles very short
// trailing overlaps the length-sum test alone would miss). Eliminated
// destinations have their v->x edge (and its complement) marked
// TransitivelyReduced.
//
// Complexity: O(V * d^2) where d is the maximum live out-degree.
func TransitiveReduction(g *strand.Graph) {
	for _, v := range g.Nodes() {
		reduceNode(g, v)
	}
}

type outEdge struct {
	to  strand.NodeName
	len int
}

func sortedLiveOut(g *strand.Graph, v strand.NodeName) []outEdge {
	neigh := g.LiveOut(v)
	out := make([]outEdge, 0, len(neigh))
	for _, w := range neigh {
		e, ok := g.Edge(v, w)
		if !ok {
			continue
		}
		out = append(out, outEdge{to: w, len: e.Attr.Length})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].len < out[j].len })
	return out
}

func reduceNode(g *strand.Graph, v strand.NodeName) {
	outs := sortedLiveOut(g, v)
	if len(outs) == 0 {
		return
	}

	inPlay := make(map[strand.NodeName]bool, len(outs))
	for _, o := range outs {
		inPlay[o.to] = true
	}
	eliminated := make(map[strand.NodeName]bool)

	maxLen := outs[len(outs)-1].len + Fuzz

	for _, o := range outs {
		w := o.to
		if eliminated[w] {
			continue
		}
		wOuts := sortedLiveOut(g, w)
		allShort := len(wOuts) > 0
		for _, wo := range wOuts {
			if wo.len >= Fuzz {
				allShort = false
			}
			if !inPlay[wo.to] || eliminated[wo.to] {
				continue
			}
			if o.len+wo.len < maxLen {
				eliminated[wo.to] = true
			}
		}
		if allShort && inPlay[wOuts[0].to] {
			eliminated[wOuts[0].to] = true
		}
	}

	for x := range eliminated {
		g.SetState(v, x, strand.TransitivelyReduced, true)
	}
}
