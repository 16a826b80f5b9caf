package tiling

import (
	"sort"

	"github.com/nanopore-tools/sgasm/contig"
	"github.com/nanopore-tools/sgasm/strand"
	"github.com/nanopore-tools/sgasm/unitig"
)

// Build expands every contig record's unitig edge list (contig.Path.Edges)
// into a flat tiling path of string-graph edges, and separately collects
// every compound unitig's alternate bubble paths (grouped by (start, end),
// dropping groups that never got past a single alternate).
//
// Complexity: O(contigs * edge count + bubble internal edges)
func Build(records []contig.Record, sg *strand.Graph, ug *unitig.Graph) ([]Path, []AlternateGroup) {
	altByKey := make(map[[2]strand.NodeName]*AlternateGroup)
	var out []Path

	for _, rec := range records {
		var hops []Hop
		for _, key := range rec.Path.Edges {
			edge, ok := ug.Get(key)
			if !ok {
				continue
			}
			if edge.Type == unitig.Compound {
				primary, alternates := expandCompound(sg, ug, edge)
				hops = append(hops, primary...)
				if len(alternates) >= 1 {
					groupKey := [2]strand.NodeName{edge.S, edge.T}
					g, exists := altByKey[groupKey]
					if !exists {
						g = &AlternateGroup{S: edge.S, T: edge.T}
						altByKey[groupKey] = g
					}
					g.Paths = append(g.Paths, alternates...)
				}
				continue
			}
			hops = append(hops, hopsFromChain(sg, edge.Chain)...)
		}
		out = append(out, Path{CtgName: rec.Name, Hops: hops})
	}

	var groups []AlternateGroup
	for _, g := range altByKey {
		if len(g.Paths) < 2 {
			continue // a group with a single alternate is not emitted
		}
		groups = append(groups, *g)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].S != groups[j].S {
			return groups[i].S < groups[j].S
		}
		return groups[i].T < groups[j].T
	})

	return out, groups
}

func hopsFromChain(sg *strand.Graph, chain []strand.NodeName) []Hop {
	var hops []Hop
	for i := 0; i+1 < len(chain); i++ {
		e, ok := sg.Edge(chain[i], chain[i+1])
		if !ok {
			continue
		}
		hops = append(hops, Hop{
			V: chain[i], W: chain[i+1],
			ReadID: e.Attr.ReadID, SpanFrom: e.Attr.SpanFrom, SpanTo: e.Attr.SpanTo,
			Score: e.Attr.Score, Identity: e.Attr.Identity, InPhase: e.Attr.InPhase,
		})
	}
	return hops
}

// expandCompound repeatedly extracts the highest-total-Score path through
// compound's internal DAG (unitig.Edge.Internal), removing its edges from
// the pool and recomputing, until no s->t path remains. The first
// extraction (highest score, since extraction always removes the current
// best first) is returned as the primary hop sequence; every subsequent
// extraction is returned as an alternate hop sequence.
func expandCompound(sg *strand.Graph, ug *unitig.Graph, compound *unitig.Edge) ([]Hop, [][]Hop) {
	pool := make(map[unitig.Key]bool, len(compound.Internal))
	for _, k := range compound.Internal {
		pool[k] = true
	}

	var all [][]Hop
	for {
		path, ok := highestScorePath(ug, pool, compound.S, compound.T)
		if !ok {
			break
		}
		var hops []Hop
		for _, k := range path {
			e, _ := ug.Get(k)
			hops = append(hops, hopsFromChain(sg, e.Chain)...)
			delete(pool, k)
		}
		all = append(all, hops)
	}

	if len(all) == 0 {
		return nil, nil
	}
	return all[0], all[1:]
}

// highestScorePath finds the maximum-total-Score path from s to t using
// only edges present in pool, via topological longest-path over the DAG
// pool induces (bundle internal edges are acyclic by bundle-finder
// construction).
func highestScorePath(ug *unitig.Graph, pool map[unitig.Key]bool, s, t strand.NodeName) ([]unitig.Key, bool) {
	adj := make(map[strand.NodeName][]unitig.Key)
	indeg := make(map[strand.NodeName]int)
	nodes := make(map[strand.NodeName]bool)
	for k := range pool {
		adj[k.S] = append(adj[k.S], k)
		indeg[k.T]++
		nodes[k.S], nodes[k.T] = true, true
	}
	// Sort every adjacency list once, by (T, Via), so a tie in accumulated
	// Score always resolves the same way regardless of map iteration order.
	for n := range adj {
		outs := adj[n]
		sort.Slice(outs, func(i, j int) bool {
			if outs[i].T != outs[j].T {
				return outs[i].T < outs[j].T
			}
			return outs[i].Via < outs[j].Via
		})
		adj[n] = outs
	}

	var order []strand.NodeName
	queue := []strand.NodeName{}
	for n := range nodes {
		if indeg[n] == 0 {
			queue = append(queue, n)
		}
	}
	sort.Slice(queue, func(i, j int) bool { return queue[i] < queue[j] })
	remaining := make(map[strand.NodeName]int, len(indeg))
	for n, d := range indeg {
		remaining[n] = d
	}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		order = append(order, n)
		for _, k := range adj[n] {
			remaining[k.T]--
			if remaining[k.T] == 0 {
				queue = append(queue, k.T)
			}
		}
	}

	bestScore := make(map[strand.NodeName]float64)
	bestPred := make(map[strand.NodeName]unitig.Key)
	hasPred := make(map[strand.NodeName]bool)
	bestScore[s] = 0
	for _, n := range order {
		if _, reached := bestScore[n]; !reached {
			continue
		}
		for _, k := range adj[n] {
			e, ok := ug.Get(k)
			if !ok {
				continue
			}
			cand := bestScore[n] + e.Score
			if cur, ok := bestScore[k.T]; !ok || cand > cur {
				bestScore[k.T] = cand
				bestPred[k.T] = k
				hasPred[k.T] = true
			}
		}
	}

	if _, ok := bestScore[t]; !ok || (t != s && !hasPred[t]) {
		return nil, false
	}

	var path []unitig.Key
	cur := t
	for cur != s {
		k, ok := bestPred[cur]
		if !ok {
			return nil, false
		}
		path = append([]unitig.Key{k}, path...)
		cur = k.S
	}
	return path, true
}
