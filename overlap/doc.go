// Package overlap parses the plain-text overlap relation (one record per
// line, terminated by a line starting with "-") into normalised Record
// values ready for strand.BuildFromOverlaps.
package overlap
