package sgio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/nanopore-tools/sgasm/strand"
)

// WriteEdgeList writes the sg_edges_list format: one line per edge,
// "v w rid sp tp score identity type inphase", in strand.Graph.AllEdges
// order (node-insertion order, then per-node edge-insertion order). Every
// edge is written regardless of its reduction State; the type column
// carries the classification (G/TR/C/R/S).
func WriteEdgeList(w io.Writer, g *strand.Graph) error {
	bw := bufio.NewWriter(w)
	for _, e := range g.AllEdges() {
		a := e.Attr
		_, err := fmt.Fprintf(bw, "%s %s %s %5d %5d %5d %5.2f %s %s\n",
			e.From, e.To, a.ReadID, a.SpanFrom, a.SpanTo, a.Score, a.Identity, a.State, a.InPhase)
		if err != nil {
			return fmt.Errorf("sgio: write edge list: %w", err)
		}
	}
	return bw.Flush()
}

// WriteChimerNodes writes one node name per line, in discovery order, as
// returned by reduce.MarkChimerBridges.
func WriteChimerNodes(w io.Writer, nodes []strand.NodeName) error {
	bw := bufio.NewWriter(w)
	for _, n := range nodes {
		if _, err := fmt.Fprintln(bw, n); err != nil {
			return fmt.Errorf("sgio: write chimer nodes: %w", err)
		}
	}
	return bw.Flush()
}
