package strand

import "github.com/nanopore-tools/sgasm/overlap"

// BuildFromOverlaps constructs a Graph from normalised overlap records,
// applying the four-case edge-emission table: which pair of directed edges
// an overlap contributes depends on whether F's overlap begins at its own
// start (FBegin>0 means F extends beyond G on its left) and on G's relative
// orientation (GBegin<GEnd forward, otherwise reverse). An overlap that
// would project a zero-length edge on either side is dropped entirely: both
// candidate edges are skipped, matching the source tool exactly.
//
// Edge Score is stored as the negative of the record's alignment score, so
// that reduce.BestOverlap's "pick the highest Score" rule recovers the
// source's "pick the lowest alignment-distance score" semantics without a
// separate comparator.
//
// Read ids must be non-empty digit strings; a record whose node names fail
// NodeName.Validate is returned as an ErrMalformedNode error.
func BuildFromOverlaps(records []overlap.Record, opts ...GraphOption) (*Graph, error) {
	g := New(opts...)
	for _, r := range records {
		if err := addOverlap(g, r); err != nil {
			return nil, err
		}
	}
	g.initReduceState()
	return g, nil
}

func addOverlap(g *Graph, r overlap.Record) error {
	score := -r.Score

	fB, _ := NewNodeName(r.FID, Begin)
	fE, _ := NewNodeName(r.FID, EndE)
	gB, _ := NewNodeName(r.GID, Begin)
	gE, _ := NewNodeName(r.GID, EndE)
	if err := fB.Validate(); err != nil {
		return err
	}
	if err := gB.Validate(); err != nil {
		return err
	}

	switch {
	case r.FBegin > 0 && r.GBegin < r.GEnd:
		if r.FBegin == 0 || r.GEnd-r.GLen == 0 {
			return nil
		}
		g.AddEdge(gB, fB, EdgeAttr{ReadID: r.FID, SpanFrom: r.FBegin, SpanTo: 0, Length: abs(r.FBegin), Score: score, Identity: r.Identity, InPhase: r.InPhase})
		g.AddEdge(fE, gE, EdgeAttr{ReadID: r.GID, SpanFrom: r.GEnd, SpanTo: r.GLen, Length: abs(r.GEnd - r.GLen), Score: score, Identity: r.Identity, InPhase: r.InPhase})

	case r.FBegin > 0 && r.GBegin >= r.GEnd:
		if r.FBegin == 0 || r.GEnd == 0 {
			return nil
		}
		g.AddEdge(gE, fB, EdgeAttr{ReadID: r.FID, SpanFrom: r.FBegin, SpanTo: 0, Length: abs(r.FBegin), Score: score, Identity: r.Identity, InPhase: r.InPhase})
		g.AddEdge(fE, gB, EdgeAttr{ReadID: r.GID, SpanFrom: r.GEnd, SpanTo: 0, Length: abs(r.GEnd), Score: score, Identity: r.Identity, InPhase: r.InPhase})

	case r.FBegin == 0 && r.GBegin < r.GEnd:
		if r.GBegin == 0 || r.FEnd-r.FLen == 0 {
			return nil
		}
		g.AddEdge(fB, gB, EdgeAttr{ReadID: r.GID, SpanFrom: r.GBegin, SpanTo: 0, Length: abs(r.GBegin), Score: score, Identity: r.Identity, InPhase: r.InPhase})
		g.AddEdge(gE, fE, EdgeAttr{ReadID: r.FID, SpanFrom: r.FEnd, SpanTo: r.FLen, Length: abs(r.FEnd - r.FLen), Score: score, Identity: r.Identity, InPhase: r.InPhase})

	default: // r.FBegin == 0 && r.GBegin >= r.GEnd
		if r.GBegin-r.GLen == 0 || r.FEnd-r.FLen == 0 {
			return nil
		}
		g.AddEdge(fB, gE, EdgeAttr{ReadID: r.GID, SpanFrom: r.GBegin, SpanTo: r.GLen, Length: abs(r.GBegin - r.GLen), Score: score, Identity: r.Identity, InPhase: r.InPhase})
		g.AddEdge(gB, fE, EdgeAttr{ReadID: r.FID, SpanFrom: r.FEnd, SpanTo: r.FLen, Length: abs(r.FEnd - r.FLen), Score: score, Identity: r.Identity, InPhase: r.InPhase})
	}

	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// initReduceState sets every edge's State to Live; BuildFromOverlaps always
// starts from a fully-live graph, and reduction passes only ever narrow it.
func (g *Graph) initReduceState() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, e := range g.edges {
		e.Attr.State = Live
	}
}
