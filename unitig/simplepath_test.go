package unitig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanopore-tools/sgasm/strand"
)

func TestBuildSimplePaths_LinearChainCollapsesToOneEdge(t *testing.T) {
	sg := strand.New()
	mk := func(id string, end strand.End) strand.NodeName {
		n, _ := strand.NewNodeName(id, end)
		return n
	}
	// A single chain 1..10, each read-end node live in/out degree 1 except
	// the very first and last.
	ids := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}
	for i := 0; i+1 < len(ids); i++ {
		sg.AddEdge(mk(ids[i], strand.Begin), mk(ids[i+1], strand.Begin), strand.EdgeAttr{Length: 100, Score: 1})
	}

	ug, circular := BuildSimplePaths(sg)
	require.Empty(t, circular)

	edges := ug.FreeEdges()
	require.Len(t, edges, 1)
	assert.Equal(t, mk("1", strand.Begin), edges[0].S)
	assert.Equal(t, mk("10", strand.Begin), edges[0].T)
	assert.Equal(t, 900, edges[0].Length)
}
