package reduce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanopore-tools/sgasm/strand"
)

func mustNode(t *testing.T, id string, end strand.End) strand.NodeName {
	t.Helper()
	n, err := strand.NewNodeName(id, end)
	require.NoError(t, err)
	return n
}

// A live chain a:B->b:B->c:B plus a direct long edge a:B->c:B: the shorter
// two-hop detour should collapse the long edge.
func TestTransitiveReduction_CollapsesRedundantLongEdge(t *testing.T) {
	g := strand.New()
	a := mustNode(t, "1", strand.Begin)
	b := mustNode(t, "2", strand.Begin)
	c := mustNode(t, "3", strand.Begin)

	g.AddEdge(a, b, strand.EdgeAttr{Length: 100, Score: 1})
	g.AddEdge(b, c, strand.EdgeAttr{Length: 100, Score: 1})
	g.AddEdge(a, c, strand.EdgeAttr{Length: 250, Score: 1}) // redundant: a->b->c sums to 200 < 250+500

	TransitiveReduction(g)

	e, ok := g.Edge(a, c)
	require.True(t, ok)
	assert.Equal(t, strand.TransitivelyReduced, e.Attr.State)

	eAB, _ := g.Edge(a, b)
	assert.Equal(t, strand.Live, eAB.Attr.State)
}

func TestTransitiveReduction_IsIdempotent(t *testing.T) {
	g := strand.New()
	a := mustNode(t, "1", strand.Begin)
	b := mustNode(t, "2", strand.Begin)
	c := mustNode(t, "3", strand.Begin)
	g.AddEdge(a, b, strand.EdgeAttr{Length: 100, Score: 1})
	g.AddEdge(b, c, strand.EdgeAttr{Length: 100, Score: 1})
	g.AddEdge(a, c, strand.EdgeAttr{Length: 250, Score: 1})

	TransitiveReduction(g)
	first, _ := g.Edge(a, c)
	firstState := first.Attr.State

	TransitiveReduction(g)
	second, _ := g.Edge(a, c)
	assert.Equal(t, firstState, second.Attr.State)
}

func TestMarkSpurs_DeadEndOutEdgeMarked(t *testing.T) {
	g := strand.New()
	n := mustNode(t, "1", strand.Begin)
	deadEnd := mustNode(t, "2", strand.Begin)
	live := mustNode(t, "3", strand.Begin)
	liveTail := mustNode(t, "4", strand.Begin)

	g.AddEdge(n, deadEnd, strand.EdgeAttr{Length: 10, Score: 1})
	g.AddEdge(n, live, strand.EdgeAttr{Length: 10, Score: 1})
	g.AddEdge(live, liveTail, strand.EdgeAttr{Length: 10, Score: 1})

	marked := MarkSpurs(g)
	assert.Equal(t, 1, marked)

	e, _ := g.Edge(n, deadEnd)
	assert.Equal(t, strand.Spur, e.Attr.State)
}

// TestMarkChimerBridges_FlagsDegreeOneCandidate exercises a bridge node
// whose own live in-degree and out-degree are both exactly 1: it is a
// candidate only because it is an out-neighbour of a branch node (B, live
// out-degree 2) and an in-neighbour of a merge node (M, live in-degree 2).
func TestMarkChimerBridges_FlagsDegreeOneCandidate(t *testing.T) {
	g := strand.New()
	b := mustNode(t, "1", strand.Begin)
	n := mustNode(t, "2", strand.Begin)
	x := mustNode(t, "3", strand.Begin)
	m := mustNode(t, "4", strand.Begin)
	y := mustNode(t, "5", strand.Begin)

	g.AddEdge(b, n, strand.EdgeAttr{Length: 10, Score: 1})
	g.AddEdge(b, x, strand.EdgeAttr{Length: 10, Score: 1})
	g.AddEdge(n, m, strand.EdgeAttr{Length: 10, Score: 1})
	g.AddEdge(y, m, strand.EdgeAttr{Length: 10, Score: 1})

	chimers := MarkChimerBridges(g)
	require.Len(t, chimers, 1)
	assert.Equal(t, n, chimers[0])

	eIn, ok := g.Edge(b, n)
	require.True(t, ok)
	assert.Equal(t, strand.Chimeric, eIn.Attr.State)

	eOut, ok := g.Edge(n, m)
	require.True(t, ok)
	assert.Equal(t, strand.Chimeric, eOut.Attr.State)
}

func TestBestOverlap_KeepsOnlyHighestScoredPerNode(t *testing.T) {
	g := strand.New()
	n := mustNode(t, "1", strand.Begin)
	w1 := mustNode(t, "2", strand.Begin)
	w2 := mustNode(t, "3", strand.Begin)
	m := mustNode(t, "4", strand.Begin)

	g.AddEdge(n, w1, strand.EdgeAttr{Length: 10, Score: 5})
	g.AddEdge(n, w2, strand.EdgeAttr{Length: 10, Score: 9})
	// w1's best in-edge comes from m, so n->w1 is neither n's best out-edge
	// nor w1's best in-edge.
	g.AddEdge(m, w1, strand.EdgeAttr{Length: 10, Score: 20})

	BestOverlap(g)

	e1, _ := g.Edge(n, w1)
	e2, _ := g.Edge(n, w2)
	assert.Equal(t, strand.Repeat, e1.Attr.State)
	assert.Equal(t, strand.Live, e2.Attr.State)
	assert.Equal(t, n, g.BestIn[w2])
}
