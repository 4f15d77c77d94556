package routing

import "fmt"

// CongestionKey addresses one channel-track location on the grid.
type CongestionKey struct {
	Kind  NodeKind
	X     int
	Y     int
	Track int
}

// String renders the key in the boundary form consumed by visualizers,
// e.g. "CHANX_4_0_2".
func (k CongestionKey) String() string {
	return fmt.Sprintf("%s_%d_%d_%d", k.Kind, k.X, k.Y, k.Track)
}

// CongestionCounts tallies raw channel-track usage across nets.
type CongestionCounts map[CongestionKey]int

// Add records one use of the record's channel-track location. Records
// that are not CHANX or CHANY are ignored.
func (c CongestionCounts) Add(rec NodeRecord) {
	if !rec.Kind.IsChannel() {
		return
	}
	c[CongestionKey{Kind: rec.Kind, X: rec.X, Y: rec.Y, Track: rec.Track}]++
}

// Merge folds another count map into this one.
func (c CongestionCounts) Merge(other CongestionCounts) {
	for k, n := range other {
		c[k] += n
	}
}

// Normalize divides every count by the maximum observed, producing a
// CongestionMap with values in (0, 1]. An empty count map yields an
// empty (non-nil) result.
func (c CongestionCounts) Normalize() CongestionMap {
	out := make(CongestionMap, len(c))
	max := 0
	for _, n := range c {
		if n > max {
			max = n
		}
	}
	if max == 0 {
		return out
	}
	for k, n := range c {
		out[k] = float64(n) / float64(max)
	}
	return out
}

// CongestionMap holds normalized channel-track usage intensities in [0, 1].
type CongestionMap map[CongestionKey]float64

// Max returns the largest intensity, 0 for an empty map. A non-empty
// normalized map always reports 1.
func (m CongestionMap) Max() float64 {
	max := 0.0
	for _, v := range m {
		if v > max {
			max = v
		}
	}
	return max
}
