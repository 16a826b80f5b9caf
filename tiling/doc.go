// Package tiling re-expands contig paths, which are expressed over the
// unitig multigraph, back down into the underlying string-graph edges a
// downstream sequence loader needs to compose an actual contig sequence.
// Compound unitigs (bubbles) are expanded by repeatedly extracting the
// highest-scoring path through the bubble's internal DAG: the first
// extraction is the primary insert, and every subsequent extraction (after
// removing the edges just used) becomes an alternate, grouped by the
// bubble's (start, end) pair. A bubble that only ever yields one path
// contributes no alternates at all.
package tiling
