package contig

import (
	"sort"

	"github.com/nanopore-tools/sgasm/strand"
	"github.com/nanopore-tools/sgasm/unitig"
)

// pool tracks the shrinking set of unconsumed unitig edges BuildPaths walks
// through, along with live in/out degree recomputed against only the
// unconsumed edges.
type pool struct {
	ug        *unitig.Graph
	available map[unitig.Key]bool
	outOf     map[strand.NodeName][]unitig.Key
	inDegree  map[strand.NodeName]int
	outDegree map[strand.NodeName]int
}

func newPool(ug *unitig.Graph) *pool {
	p := &pool{
		ug:        ug,
		available: make(map[unitig.Key]bool),
		outOf:     make(map[strand.NodeName][]unitig.Key),
		inDegree:  make(map[strand.NodeName]int),
		outDegree: make(map[strand.NodeName]int),
	}
	for _, e := range ug.FreeEdges() {
		p.available[e.Key] = true
		p.outOf[e.S] = append(p.outOf[e.S], e.Key)
		p.outDegree[e.S]++
		p.inDegree[e.T]++
	}
	return p
}

func (p *pool) consume(k unitig.Key) {
	delete(p.available, k)
	p.outDegree[k.S]--
	p.inDegree[k.T]--
}

func (p *pool) liveOut(n strand.NodeName) []unitig.Key {
	var out []unitig.Key
	for _, k := range p.outOf[n] {
		if p.available[k] {
			out = append(out, k)
		}
	}
	return out
}

func (p *pool) empty() bool { return len(p.available) == 0 }

// BuildPaths greedily consumes every live unitig edge into contig paths. A
// starting node is preferred when it is "non-trivial" (in/out degree over
// the remaining pool is not (1,1)); otherwise the source of any remaining
// edge is used. From a starting node, each available out-edge begins a new
// path that is extended through nodes with pool out-degree 1
// ("simple_out"), stopping before revisiting an already-walked node or its
// reverse complement. When useBestInHeuristic is true, extension also stops
// at any node t with pool in-degree > 1 whose bestIn[t] does not match the
// path's current node (the tie-break the source calls use_bestin_heuristic).
//
// Complexity: O(E)
func BuildPaths(ug *unitig.Graph, bestIn map[strand.NodeName]strand.NodeName, useBestInHeuristic bool) []Path {
	p := newPool(ug)
	sources := make(map[strand.NodeName]bool)
	for _, n := range ug.Nodes() {
		if p.inDegree[n] == 0 {
			sources[n] = true
		}
	}

	var paths []Path
	for !p.empty() {
		n, ok := pickStart(ug, p)
		if !ok {
			break
		}
		for _, k0 := range p.liveOut(n) {
			if !p.available[k0] {
				continue
			}
			paths = append(paths, walkPath(ug, p, bestIn, useBestInHeuristic, n, k0, sources))
		}
	}

	sort.SliceStable(paths, func(i, j int) bool { return paths[i].Length > paths[j].Length })
	return paths
}

func pickStart(ug *unitig.Graph, p *pool) (strand.NodeName, bool) {
	for _, n := range ug.Nodes() {
		if len(p.liveOut(n)) == 0 {
			continue
		}
		if !(p.inDegree[n] == 1 && p.outDegree[n] == 1) {
			return n, true
		}
	}
	for _, n := range ug.Nodes() {
		if len(p.liveOut(n)) > 0 {
			return n, true
		}
	}
	return "", false
}

func walkPath(ug *unitig.Graph, p *pool, bestIn map[strand.NodeName]strand.NodeName, useHeuristic bool, start strand.NodeName, k0 unitig.Key, sources map[strand.NodeName]bool) Path {
	e0 := mustEdge(ug, k0)
	nodes := []strand.NodeName{start, k0.T}
	edges := []unitig.Key{k0}
	length, score := e0.Length, e0.Score
	p.consume(k0)
	visited := map[strand.NodeName]bool{start: true, k0.T: true}
	cur := k0.T

	for {
		if cur == start {
			return Path{Nodes: nodes, Edges: edges, Length: length, Score: score, Circular: true, IsSpur: sources[start]}
		}
		outs := p.liveOut(cur)
		if len(outs) != 1 {
			break
		}
		next := outs[0]
		if useHeuristic && p.inDegree[next.T] > 1 {
			if bestIn[next.T] != cur {
				break
			}
		}
		if visited[next.T] || visited[strand.ReverseEnd(next.T)] {
			break
		}
		e := mustEdge(ug, next)
		nodes = append(nodes, next.T)
		edges = append(edges, next)
		length += e.Length
		score += e.Score
		p.consume(next)
		visited[next.T] = true
		cur = next.T
	}

	return Path{Nodes: nodes, Edges: edges, Length: length, Score: score, IsSpur: sources[start]}
}

func mustEdge(ug *unitig.Graph, k unitig.Key) *unitig.Edge {
	e, _ := ug.Get(k)
	return e
}
