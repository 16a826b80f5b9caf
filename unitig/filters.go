package unitig

import "github.com/nanopore-tools/sgasm/strand"

// spurRadius bounds how many hops RemoveSpurUnitigs walks from a source
// before giving up on finding a convergent branch node.
const spurRadius = 10

// RemoveSpurUnitigs walks outward (up to spurRadius hops) from every
// source node (live in-degree 0). If it reaches a branch node b that also
// has a live predecessor outside the walked path (so b is not solely fed
// by this source) within total edge length < spurLen, every edge on the
// source->b path, and each one's reverse complement, is retracted from the
// live view and reclassified as markAs (UnitigSpur on the first pass,
// UnitigSpur2 on the second, matching the source tool's two-pass
// spur_len progression of 50000 then 80000).
//
// Complexity: O(sources * spurRadius)
func RemoveSpurUnitigs(ug *Graph, spurLen int, markAs EdgeType) int {
	removed := 0
	for _, s := range ug.Nodes() {
		if ug.LiveInDegree(s) != 0 {
			continue
		}
		path, ok := walkToBranch(ug, s, spurRadius)
		if !ok {
			continue
		}
		total := 0
		for _, k := range path {
			total += ug.edges[k].Length
		}
		last := path[len(path)-1]
		b := last.T
		if ug.LiveInDegree(b) <= 1 || total >= spurLen {
			continue
		}
		for _, k := range path {
			ug.edgeOverride(k, markAs)
			ug.Remove(k)
			ck := complementKey(k)
			if ug.IsLive(ck) {
				ug.edgeOverride(ck, markAs)
				ug.Remove(ck)
			}
			removed++
		}
	}
	return removed
}

// walkToBranch follows the unique live out-edge chain from n, stopping
// when a branch node (live out-degree != 1) or a merge node (live
// in-degree > 1) is reached, or after maxHops, whichever comes first. ok is false if no branch node was found
// within maxHops.
func walkToBranch(ug *Graph, n strand.NodeName, maxHops int) ([]Key, bool) {
	var path []Key
	cur := n
	for hop := 0; hop < maxHops; hop++ {
		outs := ug.LiveOutKeys(cur)
		if len(outs) != 1 {
			if len(path) == 0 {
				return nil, false
			}
			return path, true
		}
		k := outs[0]
		path = append(path, k)
		cur = k.T
		if ug.LiveOutDegree(cur) != 1 || ug.LiveInDegree(cur) > 1 {
			return path, true
		}
	}
	return nil, false
}

// edgeOverride rewrites key's classification in place; used by the
// short-utg filters, which reclassify an edge as they retract it.
func (g *Graph) edgeOverride(key Key, t EdgeType) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if e, ok := g.edges[key]; ok {
		e.Type = t
	}
}

// RemoveSimpleDuplicates collapses parallel Simple edges that share the
// same (S, T): only the lexicographically-first Via survives live; the
// rest are retracted and reclassified SimpleDup.
//
// Complexity: O(E log E)
func RemoveSimpleDuplicates(ug *Graph) int {
	groups := make(map[[2]strand.NodeName][]Key)
	for _, e := range ug.FreeEdges() {
		if e.Type != Simple {
			continue
		}
		pair := [2]strand.NodeName{e.S, e.T}
		groups[pair] = append(groups[pair], e.Key)
	}

	removed := 0
	for _, keys := range groups {
		if len(keys) < 2 {
			continue
		}
		best := keys[0]
		for _, k := range keys[1:] {
			if k.Via < best.Via {
				best = k
			}
		}
		for _, k := range keys {
			if k == best {
				continue
			}
			ug.edgeOverride(k, SimpleDup)
			ug.Remove(k)
			removed++
		}
	}
	return removed
}

// repeatBridgeLengthCutoff is the maximum length of an s->t edge eligible
// for short-repeat-bridge removal.
const repeatBridgeLengthCutoff = 60000

// RemoveShortRepeatBridges retracts a live edge s->t (and its complement)
// when in(s)=1, out(s)=2, in(t)=2, out(t)=1, and the edge's length is below
// repeatBridgeLengthCutoff: a short two-way bridge typical of an
// unresolved small repeat copy.
//
// Complexity: O(E)
func RemoveShortRepeatBridges(ug *Graph) int {
	removed := 0
	for _, e := range ug.FreeEdges() {
		s, t := e.S, e.T
		if ug.LiveInDegree(s) == 1 && ug.LiveOutDegree(s) == 2 &&
			ug.LiveInDegree(t) == 2 && ug.LiveOutDegree(t) == 1 &&
			e.Length < repeatBridgeLengthCutoff {
			ug.edgeOverride(e.Key, RepeatBridge)
			ug.Remove(e.Key)
			ck := complementKey(e.Key)
			if ug.IsLive(ck) {
				ug.edgeOverride(ck, RepeatBridge)
				ug.Remove(ck)
			}
			removed++
		}
	}
	return removed
}
