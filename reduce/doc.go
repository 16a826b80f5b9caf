// Package reduce implements the string-graph reduction passes: transitive
// reduction (Myers), chimer-bridge marking, spur removal, best-overlap
// retention, and the local-flow alternative to best-overlap retention.
//
// Every pass here only ever narrows strand.Graph's Live edge set by calling
// Graph.SetState; it never deletes a node or edge, so sgio.WriteEdgeList can
// still emit the full history of what happened to each edge.
package reduce
