// Package sgio serialises a reduced strand.Graph to the line-oriented text
// formats the downstream tiling-path and contig tooling expect:
// sg_edges_list and chimers_nodes.
package sgio
