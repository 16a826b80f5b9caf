package unitig

import "sort"

import "github.com/nanopore-tools/sgasm/strand"

// CompoundPaths finds every bubble rooted at a live out-degree>1 branch
// node via FindBundle, then consolidates the candidates into the unitig
// graph as Compound edges:
//
//  1. Candidates are accepted in descending order of edge count (the
//     biggest bubbles win ties over the small bubbles they subsume).
//  2. A candidate whose edge set overlaps an already-accepted candidate
//     (forward or reverse-complement) is rejected.
//  3. An accepted compound that has no surviving reverse-complement
//     counterpart among the other accepted compounds is dropped and
//     counted as a complement breach rather than inserted half-formed.
//  4. Finally, if a branch node still has a live out-edge to more than one
//     surviving compound, only the first (largest) survives; the rest are
//     dropped as contained.
//
// Complexity: O(V * bundle cost + A log A) where A is the candidate count.
func CompoundPaths(ug *Graph, depthCutoff, widthCutoff, lengthCutoff int) []Bundle {
	var candidates []Bundle
	for _, p := range ug.Nodes() {
		if ug.LiveOutDegree(p) <= 1 {
			continue
		}
		if b, ok := FindBundle(ug, p, depthCutoff, widthCutoff, lengthCutoff); ok {
			candidates = append(candidates, b)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return len(candidates[i].Edges) > len(candidates[j].Edges)
	})

	claimed := make(map[Key]bool)
	var accepted []Bundle
	for _, cand := range candidates {
		overlaps := false
		for _, k := range cand.Edges {
			if claimed[k] || claimed[complementKey(k)] {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}
		for _, k := range cand.Edges {
			claimed[k] = true
			claimed[complementKey(k)] = true
		}
		accepted = append(accepted, cand)
	}

	hasComplement := make(map[[2]strand.NodeName]bool, len(accepted))
	for _, b := range accepted {
		hasComplement[[2]strand.NodeName{b.Start, b.End}] = true
	}

	var survivors []Bundle
	for _, b := range accepted {
		if !hasComplement[[2]strand.NodeName{strand.ReverseEnd(b.End), strand.ReverseEnd(b.Start)}] {
			ug.mu.Lock()
			ug.complementBreaches++
			ug.mu.Unlock()
			continue
		}
		survivors = append(survivors, b)
	}

	seenStart := make(map[strand.NodeName]bool, len(survivors))
	var final []Bundle
	for _, b := range survivors {
		if seenStart[b.Start] {
			continue // contained: a bigger compound from the same branch already won
		}
		seenStart[b.Start] = true
		final = append(final, b)
	}

	for _, b := range final {
		ug.AddEdge(&Edge{
			Key:      Key{S: b.Start, T: b.End, Via: syntheticVia(b)},
			Type:     Compound,
			Length:   b.Length,
			Score:    b.Score,
			Depth:    b.Depth,
			Internal: b.Edges,
		})
	}

	return final
}

func complementKey(k Key) Key {
	return Key{S: strand.ReverseEnd(k.T), T: strand.ReverseEnd(k.S), Via: strand.ReverseEnd(k.Via)}
}

// syntheticVia is the via label for a Compound edge. The source tool uses
// the literal sentinel "NA" here (a compound unitig has no single
// middle node), which strand.ReverseEnd already passes through unchanged -
// convenient, since it means reverse-complementing a compound Key needs no
// special case.
func syntheticVia(b Bundle) strand.NodeName {
	return strand.NA
}
