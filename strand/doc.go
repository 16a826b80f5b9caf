// Package strand implements the string-graph data model: read-end nodes,
// directed overlap edges, and the reversible classification state each edge
// carries as the reduction passes in package reduce run over it.
//
// A string graph never deletes an edge once added; reduction passes only
// flip an edge's State. This keeps every downstream writer (sgio, unitigio)
// able to emit the full edge list, including the ones a reader will never
// walk, exactly as the source tooling does.
package strand
