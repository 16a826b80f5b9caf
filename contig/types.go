package contig

import (
	"github.com/nanopore-tools/sgasm/strand"
	"github.com/nanopore-tools/sgasm/unitig"
)

// Path is one contig path through the unitig multigraph: the chain of
// unitig nodes it visits and the unitig edges it consumed, in walk order.
type Path struct {
	Nodes    []strand.NodeName
	Edges    []unitig.Key
	Length   int
	Score    float64
	Circular bool
	IsSpur   bool
}
