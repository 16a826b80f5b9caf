package contig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanopore-tools/sgasm/strand"
	"github.com/nanopore-tools/sgasm/unitig"
)

func TestBuildPaths_LinearChainYieldsOnePath(t *testing.T) {
	ug := unitig.New()
	ug.AddEdge(&unitig.Edge{Key: unitig.Key{S: "1:B", T: "2:B", Via: "m"}, Type: unitig.Simple, Length: 100, Score: 1})
	ug.AddEdge(&unitig.Edge{Key: unitig.Key{S: "2:B", T: "3:B", Via: "n"}, Type: unitig.Simple, Length: 100, Score: 1})

	paths := BuildPaths(ug, map[strand.NodeName]strand.NodeName{}, true)
	require.Len(t, paths, 1)
	assert.Equal(t, 200, paths[0].Length)
}

func TestExtract_LinearPathEmitsForwardReversePair(t *testing.T) {
	paths := []Path{{Nodes: []strand.NodeName{"1:B", "2:B"}, Length: 100}}
	records := Extract(paths, "ctg")
	require.Len(t, records, 2)
	assert.Equal(t, "ctg000001F", records[0].Name)
	assert.Equal(t, "ctg000001R", records[1].Name)
	assert.Equal(t, strand.NodeName("2:E"), records[1].Path.Nodes[0])
}

func TestExtract_CircularPathEmitsSingleRecord(t *testing.T) {
	paths := []Path{{Nodes: []strand.NodeName{"1:B", "2:B", "1:B"}, Length: 200, Circular: true}}
	records := Extract(paths, "ctg")
	require.Len(t, records, 1)
	assert.Equal(t, "ctg1", records[0].Name)
}
