package tiling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanopore-tools/sgasm/contig"
	"github.com/nanopore-tools/sgasm/strand"
	"github.com/nanopore-tools/sgasm/unitig"
)

func buildLinearFixture() ([]contig.Record, *strand.Graph, *unitig.Graph) {
	sg := strand.New()
	sg.AddEdge("1:B", "2:B", strand.EdgeAttr{ReadID: "1", SpanFrom: 0, SpanTo: 100, Score: 5, Identity: 99.0, InPhase: "u", State: strand.Live})
	sg.AddEdge("2:B", "3:B", strand.EdgeAttr{ReadID: "2", SpanFrom: 0, SpanTo: 90, Score: 4, Identity: 98.0, InPhase: "u", State: strand.Live})

	ug := unitig.New()
	key := unitig.Key{S: "1:B", T: "3:B", Via: "2:B"}
	ug.AddEdge(&unitig.Edge{
		Key: key, Type: unitig.Simple,
		Length: 190, Score: 9, Chain: []strand.NodeName{"1:B", "2:B", "3:B"},
	})

	records := []contig.Record{
		{Name: "ctg000001F", Path: contig.Path{Nodes: []strand.NodeName{"1:B", "3:B"}, Edges: []unitig.Key{key}}},
	}
	return records, sg, ug
}

func TestBuild_LinearChainExpandsBothHops(t *testing.T) {
	records, sg, ug := buildLinearFixture()

	paths, groups := Build(records, sg, ug)
	require.Len(t, paths, 1)
	require.Len(t, paths[0].Hops, 2)
	assert.Equal(t, "1:B", string(paths[0].Hops[0].V))
	assert.Equal(t, "3:B", string(paths[0].Hops[1].W))
	assert.Empty(t, groups)
}

func buildBubbleFixture() ([]contig.Record, *strand.Graph, *unitig.Graph) {
	sg := strand.New()
	sg.AddEdge("s:B", "a:B", strand.EdgeAttr{ReadID: "a", SpanFrom: 0, SpanTo: 50, Score: 3, State: strand.Live})
	sg.AddEdge("a:B", "t:B", strand.EdgeAttr{ReadID: "a2", SpanFrom: 0, SpanTo: 50, Score: 3, State: strand.Live})
	sg.AddEdge("s:B", "b:B", strand.EdgeAttr{ReadID: "b", SpanFrom: 0, SpanTo: 40, Score: 1, State: strand.Live})
	sg.AddEdge("b:B", "t:B", strand.EdgeAttr{ReadID: "b2", SpanFrom: 0, SpanTo: 40, Score: 1, State: strand.Live})
	sg.AddEdge("s:B", "c:B", strand.EdgeAttr{ReadID: "c", SpanFrom: 0, SpanTo: 30, Score: 1, State: strand.Live})
	sg.AddEdge("c:B", "t:B", strand.EdgeAttr{ReadID: "c2", SpanFrom: 0, SpanTo: 30, Score: 1, State: strand.Live})

	ug := unitig.New()
	viaA := unitig.Key{S: "s:B", T: "t:B", Via: "a:B"}
	viaB := unitig.Key{S: "s:B", T: "t:B", Via: "b:B"}
	viaC := unitig.Key{S: "s:B", T: "t:B", Via: "c:B"}
	ug.AddEdge(&unitig.Edge{Key: viaA, Type: unitig.Simple, Length: 100, Score: 6, Chain: []strand.NodeName{"s:B", "a:B", "t:B"}})
	ug.AddEdge(&unitig.Edge{Key: viaB, Type: unitig.Simple, Length: 80, Score: 2, Chain: []strand.NodeName{"s:B", "b:B", "t:B"}})
	ug.AddEdge(&unitig.Edge{Key: viaC, Type: unitig.Simple, Length: 60, Score: 2, Chain: []strand.NodeName{"s:B", "c:B", "t:B"}})

	bundle := unitig.Key{S: "s:B", T: "t:B", Via: strand.NA}
	ug.AddEdge(&unitig.Edge{
		Key: bundle, Type: unitig.Compound, Length: 100, Score: 6,
		Internal: []unitig.Key{viaA, viaB, viaC},
	})

	records := []contig.Record{
		{Name: "ctg000001F", Path: contig.Path{Nodes: []strand.NodeName{"s:B", "t:B"}, Edges: []unitig.Key{bundle}}},
	}
	return records, sg, ug
}

func TestBuild_CompoundBubbleYieldsPrimaryAndAlternateGroup(t *testing.T) {
	records, sg, ug := buildBubbleFixture()

	paths, groups := Build(records, sg, ug)
	require.Len(t, paths, 1)
	require.NotEmpty(t, paths[0].Hops)
	assert.Equal(t, "a", paths[0].Hops[0].ReadID)

	require.Len(t, groups, 1)
	assert.Equal(t, strand.NodeName("s:B"), groups[0].S)
	assert.Equal(t, strand.NodeName("t:B"), groups[0].T)
	require.Len(t, groups[0].Paths, 2)
	assert.Equal(t, "b", groups[0].Paths[0][0].ReadID)
	assert.Equal(t, "c", groups[0].Paths[1][0].ReadID)
}
