package overlap

// Record is one normalised overlap between reads F and G. Ingest swaps
// GBegin/GEnd at parse time for reverse-strand records (GStrand==1), so
// downstream code (strand.BuildFromOverlaps) reads G's orientation from the
// coordinates alone: GBegin<GEnd is forward, GBegin>GEnd is reverse.
type Record struct {
	FID, GID           string
	Score              int
	Identity           float64
	FStrand            int // 0 forward, 1 reverse (informational; F is always taken as the reference strand)
	FBegin, FEnd, FLen int
	GStrand            int // 0 forward, 1 reverse
	GBegin, GEnd, GLen int
	InPhase            string // 'u' when absent in the source line
}

// Forward reports whether the alignment on G runs forward relative to F
// (GBegin < GEnd after normalisation).
func (r Record) Forward() bool {
	return r.GBegin < r.GEnd
}
