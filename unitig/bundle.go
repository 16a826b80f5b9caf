package unitig

import (
	"github.com/nanopore-tools/sgasm/container"
	"github.com/nanopore-tools/sgasm/strand"
)

// Default bundle-finder cutoffs, matching the source tool's defaults.
const (
	DefaultDepthCutoff  = 48
	DefaultWidthCutoff  = 16
	DefaultLengthCutoff = 500000
)

// Bundle describes a converged bounded bubble found by FindBundle: the
// unitig edges it consolidates, its resolved end node, accumulated length
// and score along the best-scoring path to that end node, and the depth at
// which it converged.
type Bundle struct {
	Start, End strand.NodeName
	Edges      []Key
	Length     int
	Score      float64
	Depth      int
}

// FindBundle attempts to resolve the bubble rooted at branch node p (which
// must have live out-degree > 1 on ug) into a single compound unitig.
//
// It tracks a set of pending "tips" - nodes reached but not yet resolved.
// Each round, every pending tip v with at least one live out-edge is
// resolved once every one of its live in-edges originates from an
// already-resolved node (lengthTo has an entry for it): v's length/score is
// set from its highest-Score in-edge predecessor, and v's own live
// out-neighbours become new tips for the next round - unless a neighbour is
// itself already resolved (a true revisit, which is a loop and aborts the
// whole search) or that neighbour's reverse complement is already resolved
// (an expected collision, since a node and its reverse complement are the
// two ends of the same read; the neighbour is simply not added, not
// treated as a loop). A tip with no live out-edges is a dead end: it stays
// pending forever, blocking convergence on that branch until every other
// branch has truly reconnected to it, or the search fails via the cutoffs
// below.
//
// The search fails (ok=false) if the tip set ever exceeds 4, if
// width=edges/depth exceeds widthCutoff past depth 10, if depth exceeds
// depthCutoff, if a resolved tip's length exceeds lengthCutoff, if expansion
// would revisit an already-resolved node (a loop), or if a round resolves no
// new tip at all. It succeeds when exactly one tip remains, finalizing that
// tip's length/score from its best already-resolved in-edge predecessor if
// the round that converged it never got around to resolving it directly.
//
// Complexity: O(depthCutoff * bundle width)
func FindBundle(ug *Graph, p strand.NodeName, depthCutoff, widthCutoff, lengthCutoff int) (Bundle, bool) {
	lengthTo := map[strand.NodeName]int{p: 0}
	scoreTo := map[strand.NodeName]float64{p: 0}
	bundleEdges := container.NewOrderedSet[Key]()

	tips := dedupeNodes(targetsOf(ug.LiveOutKeys(p)))

	depth := 0
	for {
		depth++
		if depth > depthCutoff {
			return Bundle{}, false
		}

		var newTips []strand.NodeName
		tipUpdated := false

		for _, v := range tips {
			if len(ug.LiveOutKeys(v)) == 0 {
				newTips = append(newTips, v) // dead end: stays pending, blocks convergence
				continue
			}

			preds := ug.LiveInKeys(v)
			bestEdge := Key{}
			bestScore := 0.0
			found := false
			allScored := true
			for _, k := range preds {
				if _, ok := lengthTo[k.S]; !ok {
					allScored = false
					break
				}
				bundleEdges.Add(k)
				e := ug.edges[k]
				if !found || e.Score > bestScore {
					bestScore, bestEdge, found = e.Score, k, true
				}
			}
			if !allScored || !found {
				newTips = append(newTips, v)
				continue
			}

			e := ug.edges[bestEdge]
			lengthTo[v] = lengthTo[bestEdge.S] + e.Length
			scoreTo[v] = scoreTo[bestEdge.S] + e.Score
			if lengthTo[v] > lengthCutoff {
				return Bundle{}, false
			}

			for _, k2 := range ug.LiveOutKeys(v) {
				ww := k2.T
				if _, resolved := lengthTo[ww]; resolved {
					return Bundle{}, false // true loop: ww already resolved
				}
				if _, claimed := lengthTo[strand.ReverseEnd(ww)]; claimed {
					continue // ww's reverse complement already resolved: expected collision, skip
				}
				newTips = append(newTips, ww)
				tipUpdated = true
			}
		}

		tips = dedupeNodes(newTips)
		if len(tips) == 1 {
			end := tips[0]
			finalizeTip(ug, end, lengthTo, scoreTo, bundleEdges)
			return Bundle{
				Start:  p,
				End:    end,
				Edges:  bundleEdges.Slice(),
				Length: lengthTo[end],
				Score:  scoreTo[end],
				Depth:  depth,
			}, true
		}
		if len(tips) > 4 {
			return Bundle{}, false
		}

		width := float64(bundleEdges.Len()) / float64(depth)
		if depth > 10 && width > float64(widthCutoff) {
			return Bundle{}, false
		}
		if !tipUpdated {
			return Bundle{}, false
		}
	}
}

// finalizeTip resolves end from its best-Score in-edge predecessor among
// those predecessors that are themselves already resolved, skipping any
// that are not (rather than requiring every predecessor resolved, as a
// round's own resolution step does). This covers the case where end became
// the sole remaining tip without ever being visited to completion by the
// round that produced it. Every resolved predecessor's edge is recorded in
// bundleEdges, matching what a completed round-loop resolution would have
// done.
func finalizeTip(ug *Graph, end strand.NodeName, lengthTo map[strand.NodeName]int, scoreTo map[strand.NodeName]float64, bundleEdges *container.OrderedSet[Key]) {
	if _, ok := lengthTo[end]; ok {
		return
	}
	var bestEdge Key
	bestScore := 0.0
	found := false
	for _, k := range ug.LiveInKeys(end) {
		if _, ok := lengthTo[k.S]; !ok {
			continue // unresolved predecessor: skip, don't abort
		}
		bundleEdges.Add(k)
		e := ug.edges[k]
		if !found || e.Score > bestScore {
			bestScore, bestEdge, found = e.Score, k, true
		}
	}
	if !found {
		return
	}
	e := ug.edges[bestEdge]
	lengthTo[end] = lengthTo[bestEdge.S] + e.Length
	scoreTo[end] = scoreTo[bestEdge.S] + e.Score
}

func targetsOf(keys []Key) []strand.NodeName {
	out := make([]strand.NodeName, len(keys))
	for i, k := range keys {
		out[i] = k.T
	}
	return out
}

func dedupeNodes(ns []strand.NodeName) []strand.NodeName {
	seen := make(map[strand.NodeName]bool, len(ns))
	out := ns[:0]
	for _, n := range ns {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
