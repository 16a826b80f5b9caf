package contig

import (
	"github.com/nanopore-tools/sgasm/strand"
	"github.com/nanopore-tools/sgasm/unitig"
)

// MaxHaplospurRounds bounds the iterative contig-graph resolution in
// Haplospur, matching the source tool's round cap.
const MaxHaplospurRounds = 100

// incoming is one candidate predecessor contig feeding a node in the
// contig-level multigraph Haplospur builds internally. from is the node its
// last unitig edge leaves and score is that edge's Score.
type incoming struct {
	from   strand.NodeName
	length int
	score  float64
	isSpur bool
}

// Haplospur refines bestIn before a final, heuristic-guided extraction
// pass. It first walks the unitig graph with the best-in heuristic
// disabled (BuildPaths(ug, bestIn, false)) to get a contig-level view, then
// iteratively strips incoming contigs that are both spurs and shorter than
// half the longest incoming contig at their shared destination node. A
// node left with a single incoming contig is only marked for bestIn
// recomputation: the surviving contig's length is not merged into the
// contigs leaving that node, so every round compares the original contig
// lengths. After at most MaxHaplospurRounds rounds (or earlier
// convergence), it recomputes bestIn for every node whose incoming set
// shrank, preferring the surviving predecessor with the highest underlying
// unitig edge Score, and returns the refined map for a final
// BuildPaths(ug, refined, true) call.
//
// Complexity: O(rounds * contigs)
func Haplospur(ug *unitig.Graph, bestIn map[strand.NodeName]strand.NodeName) map[strand.NodeName]strand.NodeName {
	simple := BuildPaths(ug, bestIn, false)

	byDest := make(map[strand.NodeName][]incoming)
	for _, p := range simple {
		if len(p.Nodes) < 2 {
			continue
		}
		dest := p.Nodes[len(p.Nodes)-1]
		last := p.Edges[len(p.Edges)-1]
		byDest[dest] = append(byDest[dest], incoming{
			from: last.S, length: p.Length, score: mustEdge(ug, last).Score, isSpur: p.IsSpur,
		})
	}

	shrunk := make(map[strand.NodeName]bool)
	for round := 0; round < MaxHaplospurRounds; round++ {
		changed := false
		for dest, ins := range byDest {
			if len(ins) <= 1 {
				continue
			}
			maxLen := 0
			for _, in := range ins {
				if in.length > maxLen {
					maxLen = in.length
				}
			}
			var kept []incoming
			for _, in := range ins {
				if in.isSpur && in.length < maxLen/2 {
					changed = true
					shrunk[dest] = true
					continue
				}
				kept = append(kept, in)
			}
			byDest[dest] = kept
			if len(kept) == 1 {
				shrunk[dest] = true
			}
		}
		if !changed {
			break
		}
	}

	refined := make(map[strand.NodeName]strand.NodeName, len(bestIn))
	for k, v := range bestIn {
		refined[k] = v
	}
	for dest := range shrunk {
		ins := byDest[dest]
		if len(ins) == 0 {
			continue
		}
		best := ins[0]
		for _, in := range ins[1:] {
			if in.score > best.score {
				best = in
			}
		}
		refined[dest] = best.from
	}

	return refined
}
