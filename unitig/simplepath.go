package unitig

import "github.com/nanopore-tools/sgasm/strand"

// BuildSimplePaths walks every chain of nodes with live in-degree=1 and
// live out-degree=1 in sg's live projection into a single Simple unitig
// edge. Both the forward and the reverse-complement direction of every
// chain are produced, since sg itself is complement-symmetric: walking from
// every non-simple (branch or terminal) node's live out-edges naturally
// discovers both. Standalone cycles made entirely of simple nodes (no
// branch point anywhere on the loop) are returned separately as
// circularPaths, since they never have a non-simple node to start a walk
// from.
//
// Complexity: O(V + E)
func BuildSimplePaths(sg *strand.Graph) (ug *Graph, circularPaths [][]strand.NodeName) {
	ug = New()
	interior := make(map[strand.NodeName]bool)

	for _, v := range sg.Nodes() {
		if isSimpleNode(sg, v) {
			continue // only start walks from branch/terminal nodes
		}
		for _, w := range sg.LiveOut(v) {
			chain := walkChain(sg, v, w)
			for _, n := range chain[1 : len(chain)-1] {
				interior[n] = true
			}
			via := chain[0]
			if len(chain) > 1 {
				via = chain[len(chain)/2]
			}
			ug.AddEdge(&Edge{
				Key:    Key{S: v, T: chain[len(chain)-1], Via: via},
				Type:   Simple,
				Length: chainLength(sg, chain),
				Score:  chainScore(sg, chain),
				Chain:  chain,
			})
		}
	}

	// Standalone cycles: every node on them is simple and none was visited
	// as an interior node of a branch-rooted walk.
	seen := make(map[strand.NodeName]bool)
	for _, v := range sg.Nodes() {
		if !isSimpleNode(sg, v) || interior[v] || seen[v] {
			continue
		}
		cycle := []strand.NodeName{v}
		seen[v] = true
		cur := v
		for {
			next := sg.LiveOut(cur)
			if len(next) != 1 {
				break // malformed; abandon as non-circular, leave unclassified
			}
			cur = next[0]
			if cur == v {
				circularPaths = append(circularPaths, cycle)
				break
			}
			if seen[cur] {
				break
			}
			seen[cur] = true
			cycle = append(cycle, cur)
		}
	}

	return ug, circularPaths
}

func isSimpleNode(sg *strand.Graph, n strand.NodeName) bool {
	return sg.LiveInDegree(n) == 1 && sg.LiveOutDegree(n) == 1
}

// walkChain follows the unique live out-edge from each node starting at
// v->w until reaching a non-simple node (or returning to v, a cycle
// attached to a branch node).
func walkChain(sg *strand.Graph, v, w strand.NodeName) []strand.NodeName {
	chain := []strand.NodeName{v, w}
	cur := w
	for isSimpleNode(sg, cur) {
		next := sg.LiveOut(cur)
		if len(next) != 1 || next[0] == v {
			break
		}
		cur = next[0]
		chain = append(chain, cur)
	}
	return chain
}

func chainLength(sg *strand.Graph, chain []strand.NodeName) int {
	total := 0
	for i := 0; i+1 < len(chain); i++ {
		if e, ok := sg.Edge(chain[i], chain[i+1]); ok {
			total += e.Attr.Length
		}
	}
	return total
}

func chainScore(sg *strand.Graph, chain []strand.NodeName) float64 {
	total := 0.0
	for i := 0; i+1 < len(chain); i++ {
		if e, ok := sg.Edge(chain[i], chain[i+1]); ok {
			total += float64(e.Attr.Score)
		}
	}
	return total
}
