package tiling

import "github.com/nanopore-tools/sgasm/strand"

// Hop is one string-graph edge in a tiling path, carrying the fields the
// tiling-path file format emits.
type Hop struct {
	V, W     strand.NodeName
	ReadID   string
	SpanFrom int
	SpanTo   int
	Score    int
	Identity float64
	InPhase  string
}

// Path is one contig's fully-expanded tiling path.
type Path struct {
	CtgName string
	Hops    []Hop
}

// AlternateGroup collects every non-primary path discovered through one
// compound unitig's bubble, keyed by its (start, end) pair. Paths holds
// only alternates (the primary insert is never included); a group left
// with a single alternate is dropped by Build rather than emitted, since a
// lone alternate has nothing else in its group to distinguish it from.
type AlternateGroup struct {
	S, T  strand.NodeName
	Paths [][]Hop
}
