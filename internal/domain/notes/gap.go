package notes

// DefaultSilenceThreshold is the gap, in seconds, above which a silence is
// reported between two ordinary segments.
const DefaultSilenceThreshold = 4.0

// GapTracker remembers where the last ordinary segment ended. Cue segments
// must never be fed to it, so a pause around a cue is not a silence.
type GapTracker struct {
	threshold float64
	lastEnd   float64
	seen      bool
}

func NewGapTracker(threshold float64) *GapTracker {
	return &GapTracker{threshold: threshold}
}

// Check reports whether the gap before a segment starting at start exceeds
// the threshold, then records end as the new reference point.
func (g *GapTracker) Check(start, end float64) bool {
	silent := g.seen && start-g.lastEnd > g.threshold
	g.lastEnd = end
	g.seen = true
	return silent
}
