// Package unitig builds the unitig multigraph from a reduced strand.Graph's
// live ("G") edge projection: simple paths between branch nodes, bounded
// bubble (compound-path) consolidation, and the short-unitig cleanup
// filters (spur-utg, simple-duplicate, short-repeat-bridge).
//
// A unitig edge never disappears once classified; the short-utg filters
// only retract edges from the *live* view (Graph.FreeEdges), exactly as
// strand.Graph's reduction passes only flip State rather than delete.
package unitig
