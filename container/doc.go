// Package container provides deterministic, insertion-ordered collections and
// a size-aware progress meter.
//
// The string-graph reducer and contig extractor built on top of this package
// must produce byte-identical output across runs given the same input: Go's
// plain map does not guarantee iteration order, so every collection whose
// iteration order can reach an output file is backed by OrderedSet,
// OrderedMap or an insertion-order slice, or is sorted before that order is
// used.
package container
