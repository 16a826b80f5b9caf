// Package unitigio serialises a unitig.Graph to the utg_data/utg_data0 text
// format and to plain and "dual" GFA.
package unitigio
