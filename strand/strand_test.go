package strand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNodeName_RoundTripsThroughReverseEnd(t *testing.T) {
	n, err := NewNodeName("42", Begin)
	require.NoError(t, err)
	assert.Equal(t, NodeName("42:B"), n)
	assert.NoError(t, n.Validate())

	assert.Equal(t, NodeName("42:E"), ReverseEnd(n))
	assert.Equal(t, n, ReverseEnd(ReverseEnd(n)))
	assert.Equal(t, NA, ReverseEnd(NA))
}

func TestNewNodeName_RejectsEmptyReadID(t *testing.T) {
	_, err := NewNodeName("", Begin)
	require.ErrorIs(t, err, ErrMalformedNode)
}

func TestNodeName_ValidateRejectsMalformed(t *testing.T) {
	assert.ErrorIs(t, NodeName("not-a-node").Validate(), ErrMalformedNode)
	assert.NoError(t, NodeName("NA").Validate())
}

func TestGraph_AddEdgeAndDegreeTracking(t *testing.T) {
	g := New()
	g.AddEdge("1:B", "2:B", EdgeAttr{ReadID: "1", Score: 5, State: Live})
	g.AddEdge("1:B", "3:B", EdgeAttr{ReadID: "2", Score: 3, State: Spur})

	assert.Equal(t, 2, g.OutDegree("1:B"))
	assert.Equal(t, 1, g.LiveOutDegree("1:B"))
	assert.Equal(t, []NodeName{"2:B"}, g.LiveOut("1:B"))
	assert.ElementsMatch(t, []NodeName{"1:B", "2:B", "3:B"}, g.Nodes())

	e, ok := g.Edge("1:B", "2:B")
	require.True(t, ok)
	assert.Equal(t, Live, e.Attr.State)
}

func TestGraph_SetStateMirrorsComplementAndCountsBreach(t *testing.T) {
	g := New()
	// The pair starts out of step (Live vs Repeat): a mirrored mark on it is
	// a breach.
	g.AddEdge("1:B", "2:B", EdgeAttr{State: Live})
	g.AddEdge("2:E", "1:E", EdgeAttr{State: Repeat})

	g.SetState("1:B", "2:B", Spur, true)
	e, ok := g.Edge("2:E", "1:E")
	require.True(t, ok)
	assert.Equal(t, Spur, e.Attr.State, "mirror=true must propagate state to the complement edge")
	assert.Equal(t, 1, g.ComplementBreaches())
}

func TestGraph_WithComplementAssertionsPanicsOnBreach(t *testing.T) {
	g := New(WithComplementAssertions())
	g.AddEdge("1:B", "2:B", EdgeAttr{State: Live})
	g.AddEdge("2:E", "1:E", EdgeAttr{State: Repeat})

	assert.Panics(t, func() {
		g.SetState("1:B", "2:B", Spur, true)
	})
}

func TestGraph_AllEdgesPreservesInsertionOrder(t *testing.T) {
	g := New()
	g.AddEdge("1:B", "2:B", EdgeAttr{ReadID: "first"})
	g.AddEdge("1:B", "3:B", EdgeAttr{ReadID: "second"})
	g.AddEdge("2:B", "3:B", EdgeAttr{ReadID: "third"})

	edges := g.AllEdges()
	require.Len(t, edges, 3)
	assert.Equal(t, "first", edges[0].Attr.ReadID)
	assert.Equal(t, "second", edges[1].Attr.ReadID)
	assert.Equal(t, "third", edges[2].Attr.ReadID)
}
