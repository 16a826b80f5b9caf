package contig

import (
	"fmt"

	"github.com/nanopore-tools/sgasm/strand"
	"github.com/nanopore-tools/sgasm/unitig"
)

// Record is one named, emitted contig: either a linear F/R pair member or a
// solitary circular contig.
type Record struct {
	Name string
	Path Path
	Type string // "ctg_linear" or "ctg_circular"
}

// Extract assigns names to paths (already sorted by descending length by
// BuildPaths) and expands each linear path into its forward/reverse
// complement pair. A circular path emits a single record instead, named
// "<prefix><index>" with no F/R suffix and no zero-padding; linear contigs
// are named "<prefix><NNNNNN><F|R>".
func Extract(paths []Path, prefix string) []Record {
	var out []Record
	for i, p := range paths {
		idx := i + 1
		if p.Circular {
			out = append(out, Record{Name: fmt.Sprintf("%s%d", prefix, idx), Path: p, Type: "ctg_circular"})
			continue
		}
		base := fmt.Sprintf("%s%06d", prefix, idx)
		out = append(out, Record{Name: base + "F", Path: p, Type: "ctg_linear"})
		out = append(out, Record{Name: base + "R", Path: reverseComplementPath(p), Type: "ctg_linear"})
	}
	return out
}

// reverseComplementPath mirrors a path's node chain and edge key list
// end-for-end through strand.ReverseEnd, matching the string graph's own
// complement invariant. An edge key (s, via, t) becomes
// (ReverseEnd(t), ReverseEnd(via), ReverseEnd(s)); a compound edge's
// synthetic "NA" via is left untouched, since it carries no orientation.
func reverseComplementPath(p Path) Path {
	n := len(p.Nodes)
	nodes := make([]strand.NodeName, n)
	for i, node := range p.Nodes {
		nodes[n-1-i] = strand.ReverseEnd(node)
	}

	edges := make([]unitig.Key, len(p.Edges))
	for i, k := range p.Edges {
		edges[len(p.Edges)-1-i] = unitig.Key{
			S: strand.ReverseEnd(k.T), T: strand.ReverseEnd(k.S), Via: strand.ReverseEnd(k.Via),
		}
	}

	return Path{
		Nodes:    nodes,
		Edges:    edges,
		Length:   p.Length,
		Score:    p.Score,
		Circular: p.Circular,
		IsSpur:   p.IsSpur,
	}
}
