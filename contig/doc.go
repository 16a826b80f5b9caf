// Package contig walks the unitig multigraph's live edges into contig
// paths: a greedy best-in-aware extension (BuildPaths/Extract) and the
// haplospur refinement pass that iteratively resolves ambiguous incoming
// edges at branch nodes before a final extraction pass.
package contig
