package tiling

import (
	"bufio"
	"fmt"
	"io"
)

// WriteTilingPaths writes the tiling-path format: one line per hop,
// "ctg_id v w rid s t aln_score identity inphase", in the order the paths
// and their hops were built.
func WriteTilingPaths(w io.Writer, paths []Path) error {
	bw := bufio.NewWriter(w)
	for _, p := range paths {
		for _, h := range p.Hops {
			_, err := fmt.Fprintf(bw, "%s %s %s %s %5d %5d %5d %5.2f %s\n",
				p.CtgName, h.V, h.W, h.ReadID, h.SpanFrom, h.SpanTo, h.Score, h.Identity, h.InPhase)
			if err != nil {
				return fmt.Errorf("tiling: write tiling paths: %w", err)
			}
		}
	}
	return bw.Flush()
}

// WriteAlternates writes each alternate group's member paths, labelling
// every hop with the (s, t) pair and a 1-based member index within the
// group so a downstream consumer can tell alternates of the same bubble
// apart without re-deriving (S, T) from the hop endpoints.
func WriteAlternates(w io.Writer, groups []AlternateGroup) error {
	bw := bufio.NewWriter(w)
	for _, g := range groups {
		for member, hops := range g.Paths {
			ctgID := fmt.Sprintf("%s~%s~alt%d", g.S, g.T, member+1)
			for _, h := range hops {
				_, err := fmt.Fprintf(bw, "%s %s %s %s %5d %5d %5d %5.2f %s\n",
					ctgID, h.V, h.W, h.ReadID, h.SpanFrom, h.SpanTo, h.Score, h.Identity, h.InPhase)
				if err != nil {
					return fmt.Errorf("tiling: write alternates: %w", err)
				}
			}
		}
	}
	return bw.Flush()
}
