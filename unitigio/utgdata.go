package unitigio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/nanopore-tools/sgasm/unitig"
)

// WriteUtgData writes the utg_data format: one line per edge,
// "s via t type length score payload", in unitig.Graph.AllEdges order
// (which never forgets a classification once assigned). payload is the
// "~"-joined node chain for Simple/Contained edges, or the "|"-joined
// "s~via~t" internal-edge list for Compound edges.
func WriteUtgData(w io.Writer, ug *unitig.Graph) error {
	bw := bufio.NewWriter(w)
	for _, e := range ug.AllEdges() {
		if _, err := fmt.Fprintln(bw, e.S, e.Via, e.T, e.Type, e.Length, e.Score, payload(e)); err != nil {
			return fmt.Errorf("unitigio: write utg_data: %w", err)
		}
	}
	return bw.Flush()
}

// WriteUtgData0 writes the same format as WriteUtgData, intended to be
// called by cmd/sgasm right after simple-path construction (before
// compound consolidation and the short-utg filters run), giving a debug
// snapshot of the pre-filter unitig graph.
func WriteUtgData0(w io.Writer, ug *unitig.Graph) error {
	return WriteUtgData(w, ug)
}

func payload(e *unitig.Edge) string {
	if e.Type == unitig.Compound {
		parts := make([]string, 0, len(e.Internal))
		for _, k := range e.Internal {
			parts = append(parts, fmt.Sprintf("%s~%s~%s", k.S, k.Via, k.T))
		}
		return strings.Join(parts, "|")
	}

	parts := make([]string, 0, len(e.Chain))
	for _, n := range e.Chain {
		parts = append(parts, string(n))
	}
	return strings.Join(parts, "~")
}
