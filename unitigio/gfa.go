package unitigio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/nanopore-tools/sgasm/unitig"
)

// WriteGFA writes a plain GFA rendition of ug's live edges: one S line per
// node (sequence withheld, "*", since base-letter emission is out of scope)
// and one L line per live edge. Node length is approximated by the longest
// incident live edge's Length, since no sequence is available to measure.
func WriteGFA(w io.Writer, ug *unitig.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, "H\tVN:Z:1.0"); err != nil {
		return err
	}

	nodeLen := make(map[string]int)
	edges := ug.FreeEdges()
	for _, e := range edges {
		if e.Length > nodeLen[string(e.S)] {
			nodeLen[string(e.S)] = e.Length
		}
		if e.Length > nodeLen[string(e.T)] {
			nodeLen[string(e.T)] = e.Length
		}
	}
	for _, n := range ug.Nodes() {
		if _, err := fmt.Fprintf(bw, "S\t%s\t*\tLN:i:%d\n", n, nodeLen[string(n)]); err != nil {
			return fmt.Errorf("unitigio: write gfa: %w", err)
		}
	}
	for _, e := range edges {
		if _, err := fmt.Fprintf(bw, "L\t%s\t+\t%s\t+\t0M\n", e.S, e.T); err != nil {
			return fmt.Errorf("unitigio: write gfa: %w", err)
		}
	}

	return bw.Flush()
}

// WriteDualGFA writes the "dual" GFA rendition: every live unitig edge
// s->via->t becomes its own node named "s~via~t", and two dual nodes are
// linked whenever one's t matches the other's s (they share an endpoint in
// the original unitig graph).
func WriteDualGFA(w io.Writer, ug *unitig.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, "H\tVN:Z:1.0"); err != nil {
		return err
	}

	edges := ug.FreeEdges()
	name := func(e *unitig.Edge) string { return fmt.Sprintf("%s~%s~%s", e.S, e.Via, e.T) }

	for _, e := range edges {
		if _, err := fmt.Fprintf(bw, "S\t%s\t*\tLN:i:%d\n", name(e), e.Length); err != nil {
			return fmt.Errorf("unitigio: write dual gfa: %w", err)
		}
	}

	byStart := make(map[string][]*unitig.Edge)
	for _, e := range edges {
		byStart[string(e.S)] = append(byStart[string(e.S)], e)
	}
	for _, e := range edges {
		for _, next := range byStart[string(e.T)] {
			if _, err := fmt.Fprintf(bw, "L\t%s\t+\t%s\t+\t0M\n", name(e), name(next)); err != nil {
				return fmt.Errorf("unitigio: write dual gfa: %w", err)
			}
		}
	}

	return bw.Flush()
}
