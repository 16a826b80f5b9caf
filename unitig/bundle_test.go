package unitig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanopore-tools/sgasm/strand"
)

// buildBubble reproduces the "bubble" fixture: node 4 branches into two
// chains that reconverge at node 10.
func buildBubble() *Graph {
	ug := New()
	add := func(s, t, via string) {
		ug.AddEdge(&Edge{Key: Key{S: strand.NodeName(s), T: strand.NodeName(t), Via: strand.NodeName(via)}, Type: Simple, Length: 1000, Score: 1})
	}
	add("1", "2", "1a")
	add("2", "3", "2a")
	add("3", "4", "3a")
	add("4", "5b1", "4a")
	add("5b1", "6b1", "5a")
	add("6b1", "10", "6a")
	add("4", "7b2", "4b")
	add("7b2", "8b2", "7a")
	add("8b2", "9b2", "8a")
	add("9b2", "10", "9a")
	add("10", "11", "10a")
	return ug
}

func TestFindBundle_ConvergesAtReconvergentNode(t *testing.T) {
	ug := buildBubble()
	b, ok := FindBundle(ug, "4", DefaultDepthCutoff, DefaultWidthCutoff, DefaultLengthCutoff)
	require.True(t, ok)
	assert.Equal(t, strand.NodeName("10"), b.End)
	// Both branches from "4" to "10" are equal-Score (1000x3 via 6b1, 1000x4
	// via 9b2, tied per-edge Score 1); the tie-break keeps the
	// first-encountered predecessor (6b1->10), giving 2000 (4->5b1->6b1) +
	// 1000 (6b1->10) = 3000.
	assert.Equal(t, 3000, b.Length)
	assert.Equal(t, 3, b.Depth)
}

func TestFindBundle_FailsWhenTipsExceedFour(t *testing.T) {
	ug := New()
	add := func(s, t, via string) {
		ug.AddEdge(&Edge{Key: Key{S: strand.NodeName(s), T: strand.NodeName(t), Via: strand.NodeName(via)}, Type: Simple, Length: 100, Score: 1})
	}
	// branch node 1 fans out to five dead-end tips that never reconverge.
	for i := 0; i < 5; i++ {
		add("1", string(rune('a'+i)), "v")
	}
	_, ok := FindBundle(ug, "1", DefaultDepthCutoff, DefaultWidthCutoff, DefaultLengthCutoff)
	assert.False(t, ok)
}

func TestFindBundle_FailsWhenLengthExceedsCutoff(t *testing.T) {
	ug := New()
	ug.AddEdge(&Edge{Key: Key{S: "1", T: "2a", Via: "x"}, Type: Simple, Length: 600000, Score: 1})
	ug.AddEdge(&Edge{Key: Key{S: "1", T: "2b", Via: "y"}, Type: Simple, Length: 1, Score: 1})
	ug.AddEdge(&Edge{Key: Key{S: "2a", T: "3", Via: "z"}, Type: Simple, Length: 1, Score: 1})
	ug.AddEdge(&Edge{Key: Key{S: "2b", T: "3", Via: "w"}, Type: Simple, Length: 1, Score: 1})

	_, ok := FindBundle(ug, "1", DefaultDepthCutoff, DefaultWidthCutoff, DefaultLengthCutoff)
	assert.False(t, ok)
}
